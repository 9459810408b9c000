package mldsa

import "crypto"

// PublicKey is an ML-DSA public key for a specific parameter set.
type PublicKey struct {
	params *Params

	rho [32]byte      // public seed
	t1  []ringElement // high bits of t, length K
	tr  [64]byte      // H(pk), cached for verification
	a   []nttElement  // expanded matrix A, length K*L, NTT domain
}

// PrivateKey is an ML-DSA private key for a specific parameter set.
type PrivateKey struct {
	params *Params

	rho [32]byte      // public seed
	key [32]byte      // private signing seed
	tr  [64]byte      // H(pk)
	s1  []ringElement // secret vector, length L
	s2  []ringElement // secret vector, length K
	t0  []ringElement // low bits of t, length K
	a   []nttElement  // expanded matrix A, length K*L, NTT domain

	pub *PublicKey // cached public key, derived once at construction
}

// Params returns the parameter set this key was generated or parsed under.
func (pk *PublicKey) Params() *Params { return pk.params }

// Params returns the parameter set this key was generated or parsed under.
func (sk *PrivateKey) Params() *Params { return sk.params }

// Public returns the public key corresponding to sk.
func (sk *PrivateKey) Public() crypto.PublicKey { return sk.pub }

// Equal reports whether pk and other are the same public key.
func (pk *PublicKey) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey)
	if !ok || o.params != pk.params || pk.rho != o.rho || len(pk.t1) != len(o.t1) {
		return false
	}
	for i := range pk.t1 {
		if pk.t1[i] != o.t1[i] {
			return false
		}
	}
	return true
}

// Equal reports whether sk and other are the same private key.
func (sk *PrivateKey) Equal(other crypto.PrivateKey) bool {
	o, ok := other.(*PrivateKey)
	if !ok || o.params != sk.params {
		return false
	}
	return sk.rho == o.rho && sk.key == o.key
}

// Bytes returns the canonical encoded form of the public key.
func (pk *PublicKey) Bytes() []byte {
	return EncodePublicKey(pk.params, pk.rho[:], pk.t1)
}

// Bytes returns the canonical encoded form of the private key.
func (sk *PrivateKey) Bytes() []byte {
	return EncodePrivateKey(sk.params, sk.rho[:], sk.key[:], sk.tr[:], sk.s1, sk.s2, sk.t0)
}

// Destroy zeroes the secret material held by sk (key, s1, s2, t0) and drops
// the cached public key, so Public returns a nil *PublicKey afterward. The key
// must not be used afterward. A *PublicKey obtained earlier from Public holds
// no secrets and is left untouched.
func (sk *PrivateKey) Destroy() {
	destroyBytes(sk.key[:])
	destroyPolyVector(sk.s1)
	destroyPolyVector(sk.s2)
	destroyPolyVector(sk.t0)
	sk.pub = nil
}

// NewPublicKey parses an encoded public key for the given parameter set.
// Implements FIPS 204 Algorithm 23 (pkDecode) plus matrix expansion.
func NewPublicKey(p *Params, b []byte) (*PublicKey, error) {
	rho, t1, err := DecodePublicKey(p, b)
	if err != nil {
		return nil, err
	}

	pk := &PublicKey{params: p, t1: t1}
	copy(pk.rho[:], rho)

	pk.a = make([]nttElement, p.K*p.L)
	expandA(pk.a, p, pk.rho[:])

	h := newSHAKE256()
	h.absorb(b)
	h.squeeze(pk.tr[:])

	return pk, nil
}

// NewPrivateKey parses an encoded private key for the given parameter set.
// Implements FIPS 204 Algorithm 25 (skDecode) plus matrix expansion and
// public-key reconstruction.
func NewPrivateKey(p *Params, b []byte) (*PrivateKey, error) {
	rho, key, tr, s1, s2, t0, err := DecodePrivateKey(p, b)
	if err != nil {
		return nil, err
	}

	sk := &PrivateKey{params: p, s1: s1, s2: s2, t0: t0}
	copy(sk.rho[:], rho)
	copy(sk.key[:], key)
	copy(sk.tr[:], tr)

	sk.a = make([]nttElement, p.K*p.L)
	expandA(sk.a, p, sk.rho[:])

	t1, err := reconstructT1(p, sk.a, s1, s2, t0)
	if err != nil {
		return nil, err
	}

	sk.pub = &PublicKey{
		params: p,
		rho:    sk.rho,
		t1:     t1,
		tr:     sk.tr,
		a:      sk.a,
	}
	return sk, nil
}

// reconstructT1 recomputes t1 from the secret vectors and t0, the way a
// decoder without the original t1 bytes must, so a private key parsed from
// its canonical encoding can still produce a consistent public key.
func reconstructT1(p *Params, a []nttElement, s1, s2, t0 []ringElement) ([]ringElement, error) {
	s1NTT := make([]nttElement, p.L)
	for i := range s1 {
		s1NTT[i] = ntt(s1[i])
	}
	defer destroyNTTVector(s1NTT)

	t1 := make([]ringElement, p.K)
	for i := 0; i < p.K; i++ {
		acc := nttVectorDot(a[i*p.L:(i+1)*p.L], s1NTT)
		t := polyAdd(invNTT(acc), s2[i])
		for j := 0; j < n; j++ {
			hi, lo := power2Round(t[j])
			if lo != t0[i][j] {
				return nil, ErrInvalidEncoding
			}
			t1[i][j] = hi
		}
	}
	return t1, nil
}
