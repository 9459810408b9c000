package mldsa

import (
	"io"
)

// GenerateKey generates a new ML-DSA key pair for the given parameter set
// using rand as the entropy source for the key seed. Implements FIPS 204
// Algorithm 1 (ML-DSA.KeyGen), dispatched on p rather than duplicated once
// per parameter set.
func GenerateKey(p *Params, rand io.Reader) (*PrivateKey, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, err
	}
	return NewPrivateKeyFromSeed(p, seed)
}

// NewPrivateKeyFromSeed deterministically derives a key pair from a 32-byte
// seed. Implements FIPS 204 Algorithm 6 (ML-DSA.KeyGen_internal).
func NewPrivateKeyFromSeed(p *Params, seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidParameter
	}

	h := newSHAKE256()
	h.absorb(seed)
	h.absorb([]byte{byte(p.K), byte(p.L)})

	expanded := make([]byte, 128)
	h.squeeze(expanded)
	defer destroyBytes(expanded)

	sk := &PrivateKey{params: p}
	copy(sk.rho[:], expanded[:32])
	rhoPrime := expanded[32:96]
	copy(sk.key[:], expanded[96:128])

	sk.s1 = make([]ringElement, p.L)
	sk.s2 = make([]ringElement, p.K)
	sk.t0 = make([]ringElement, p.K)
	sk.a = make([]nttElement, p.K*p.L)

	for i := 0; i < p.L; i++ {
		sk.s1[i] = sampleBoundedPoly(rhoPrime, p.Eta, uint16(i))
	}
	for i := 0; i < p.K; i++ {
		sk.s2[i] = sampleBoundedPoly(rhoPrime, p.Eta, uint16(p.L+i))
	}

	expandA(sk.a, p, sk.rho[:])

	s1NTT := make([]nttElement, p.L)
	for i := 0; i < p.L; i++ {
		s1NTT[i] = ntt(sk.s1[i])
	}

	t := make([]ringElement, p.K)
	t1 := make([]ringElement, p.K)
	for i := 0; i < p.K; i++ {
		acc := nttVectorDot(sk.a[i*p.L:(i+1)*p.L], s1NTT)
		t[i] = polyAdd(invNTT(acc), sk.s2[i])
		for j := 0; j < n; j++ {
			t1[i][j], sk.t0[i][j] = power2Round(t[i][j])
		}
	}
	destroyNTTVector(s1NTT)

	pkBytes := EncodePublicKey(p, sk.rho[:], t1)
	h.reset()
	h.absorb(pkBytes)
	h.squeeze(sk.tr[:])

	sk.pub = &PublicKey{
		params: p,
		rho:    sk.rho,
		t1:     t1,
		tr:     sk.tr,
		a:      sk.a,
	}

	return sk, nil
}

// expandA fills a (length K*L) with A[i][j] = sampleNTTPoly(rho, j, i),
// implementing FIPS 204 Algorithm 32 (ExpandA). A is stored NTT-transformed
// already: sampleNTTPoly samples directly in the NTT domain, so no separate
// forward transform is applied (see DESIGN.md, "Open Question decisions").
func expandA(a []nttElement, p *Params, rho []byte) {
	for i := 0; i < p.K; i++ {
		for j := 0; j < p.L; j++ {
			a[i*p.L+j] = sampleNTTPoly(rho, byte(j), byte(i))
		}
	}
}
