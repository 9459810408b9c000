package mldsa

// Params is a frozen record of the numeric constants that distinguish one
// ML-DSA parameter set from another. Every core operation takes a *Params
// explicitly; there is no subtyping or interface dispatch (see DESIGN.md, "Open
// Question decisions").
type Params struct {
	Name string

	K int // dimension of t, s2, w
	L int // dimension of s1, y, z

	Eta     int // secret coefficient bound
	EtaBits int // bits per packed eta coefficient (3 for eta=2, 4 for eta=4)

	Tau int // number of ±1 coefficients in the challenge polynomial

	Gamma1Bits int    // log2(gamma1): 17 or 19 (z packs into 18 or 20 bit fields, see Gamma1PackBits)
	Gamma2     uint32 // low-order rounding range

	Omega  int // max hint weight
	Lambda int // collision strength of c~, in bits

	W1Bits int // bits per packed w1 coefficient (6 for gamma2=(q-1)/88, else 4)
}

// Gamma1 returns 2^Gamma1Bits.
func (p *Params) Gamma1() uint32 { return uint32(1) << uint(p.Gamma1Bits) }

// Gamma1PackBits returns the number of bits used to pack one z coefficient:
// one more than Gamma1Bits, since a centered coefficient's range
// [-(gamma1-1), gamma1] has 2*gamma1 = 2^(Gamma1Bits+1) distinct values.
func (p *Params) Gamma1PackBits() int { return p.Gamma1Bits + 1 }

// Beta returns tau*eta, the bound used in the z and r0 rejection checks.
func (p *Params) Beta() uint32 { return uint32(p.Tau * p.Eta) }

// CTildeBytes returns the length in bytes of the commitment hash c~.
func (p *Params) CTildeBytes() int { return p.Lambda / 4 }

// EtaBytes returns the packed size in bytes of one eta-bounded polynomial.
func (p *Params) EtaBytes() int { return n * p.EtaBits / 8 }

// T0Bytes returns the packed size in bytes of one t0 polynomial (13-bit coefficients).
func (p *Params) T0Bytes() int { return n * d / 8 }

// T1Bytes returns the packed size in bytes of one t1 polynomial (10-bit coefficients).
func (p *Params) T1Bytes() int { return n * 10 / 8 }

// Gamma1Bytes returns the packed size in bytes of one z polynomial.
func (p *Params) Gamma1Bytes() int { return n * p.Gamma1PackBits() / 8 }

// W1Bytes returns the packed size in bytes of one w1 polynomial.
func (p *Params) W1Bytes() int { return n * p.W1Bits / 8 }

// PublicKeySize returns the exact encoded length of a public key.
func (p *Params) PublicKeySize() int { return 32 + p.K*p.T1Bytes() }

// PrivateKeySize returns the exact encoded length of a private key.
func (p *Params) PrivateKeySize() int {
	return 32 + 32 + 64 + (p.K+p.L)*p.EtaBytes() + p.K*p.T0Bytes()
}

// SignatureSize returns the exact encoded length of a signature.
func (p *Params) SignatureSize() int {
	return p.CTildeBytes() + p.L*p.Gamma1Bytes() + p.Omega + p.K
}

// MLDSA44 is the ML-DSA-44 parameter set (NIST security category 2).
var MLDSA44 = &Params{
	Name: "ML-DSA-44",

	K: 4, L: 4,
	Eta: 2, EtaBits: 3,
	Tau:        39,
	Gamma1Bits: 17,
	Gamma2:     gamma2QMinus1Div88,
	Omega:      80,
	Lambda:     128,
	W1Bits:     6,
}

// MLDSA65 is the ML-DSA-65 parameter set (NIST security category 3).
var MLDSA65 = &Params{
	Name: "ML-DSA-65",

	K: 6, L: 5,
	Eta: 4, EtaBits: 4,
	Tau:        49,
	Gamma1Bits: 19,
	Gamma2:     gamma2QMinus1Div32,
	Omega:      55,
	Lambda:     192,
	W1Bits:     4,
}

// MLDSA87 is the ML-DSA-87 parameter set (NIST security category 5).
var MLDSA87 = &Params{
	Name: "ML-DSA-87",

	K: 8, L: 7,
	Eta: 2, EtaBits: 3,
	Tau:        60,
	Gamma1Bits: 19,
	Gamma2:     gamma2QMinus1Div32,
	Omega:      75,
	Lambda:     256,
	W1Bits:     4,
}
