package mldsa

import (
	"crypto"
	"crypto/rand"
	"io"
)

// Sign implements crypto.Signer. opts may be a *SignerOpts to supply a
// context string; a nil or zero-value opts signs with no context. rnd, if
// non-nil, supplies the per-signature randomness rnd; crypto/rand.Reader is
// used otherwise.
func (sk *PrivateKey) Sign(rnd io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	var context []byte
	if so, ok := opts.(*SignerOpts); ok && so != nil {
		context = so.Context
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	return sk.SignWithContext(rnd, message, context)
}

// SignWithContext signs message under an optional context string for domain
// separation, per FIPS 204 §6.2: M' = 0x00 || len(context) || context || message.
func (sk *PrivateKey) SignWithContext(rnd io.Reader, message, context []byte) ([]byte, error) {
	if len(context) > maxContextSize {
		return nil, ErrInvalidParameter
	}

	var r [RandomnessSize]byte
	if _, err := io.ReadFull(rnd, r[:]); err != nil {
		return nil, err
	}
	defer destroyBytes(r[:])

	mPrime := make([]byte, 2+len(context)+len(message))
	mPrime[0] = 0
	mPrime[1] = byte(len(context))
	copy(mPrime[2:], context)
	copy(mPrime[2+len(context):], message)

	return sk.SignInternal(r[:], mPrime)
}

// SignInternal implements FIPS 204 Algorithm 7 (ML-DSA.Sign_internal)
// directly on an already domain-separated message, for callers performing
// their own message-representative construction (e.g. HashML-DSA, or an
// external hedge over rnd).
func (sk *PrivateKey) SignInternal(rnd, mPrime []byte) ([]byte, error) {
	p := sk.params

	h := newSHAKE256()
	h.absorb(sk.tr[:])
	h.absorb(mPrime)
	mu := make([]byte, 64)
	h.squeeze(mu)

	h.reset()
	h.absorb(sk.key[:])
	h.absorb(rnd)
	h.absorb(mu)
	rhoPrime := make([]byte, 64)
	h.squeeze(rhoPrime)
	defer destroyBytes(rhoPrime)

	s1NTT := make([]nttElement, p.L)
	s2NTT := make([]nttElement, p.K)
	t0NTT := make([]nttElement, p.K)
	for i := 0; i < p.L; i++ {
		s1NTT[i] = ntt(sk.s1[i])
	}
	for i := 0; i < p.K; i++ {
		s2NTT[i] = ntt(sk.s2[i])
		t0NTT[i] = ntt(sk.t0[i])
	}
	defer func() {
		destroyNTTVector(s1NTT)
		destroyNTTVector(s2NTT)
		destroyNTTVector(t0NTT)
	}()

	beta := p.Beta()
	gamma1 := p.Gamma1()
	gamma2 := p.Gamma2
	cTildeLen := p.CTildeBytes()

	y := make([]ringElement, p.L)
	yNTT := make([]nttElement, p.L)
	w := make([]ringElement, p.K)
	w1 := make([]ringElement, p.K)
	z := make([]ringElement, p.L)
	r0 := make([][n]int32, p.K)
	ct0 := make([]ringElement, p.K)
	hints := make([]ringElement, p.K)
	wipe := func() {
		destroyPolyVector(y)
		destroyNTTVector(yNTT)
		destroyPolyVector(z)
		destroyPolyVector(ct0)
	}
	defer wipe()

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		wipe()
		kappa := uint16(attempt * p.L)

		for i := 0; i < p.L; i++ {
			y[i] = expandMask(p, rhoPrime, kappa+uint16(i))
			yNTT[i] = ntt(y[i])
		}

		for i := 0; i < p.K; i++ {
			acc := nttVectorDot(sk.a[i*p.L:(i+1)*p.L], yNTT)
			w[i] = invNTT(acc)
			for j := 0; j < n; j++ {
				w1[i][j] = fieldElement(highBits(w[i][j], gamma2))
			}
		}

		h.reset()
		h.absorb(mu)
		for i := 0; i < p.K; i++ {
			h.absorb(packRingUnsigned(&w1[i], p.W1Bits))
		}
		cTilde := make([]byte, cTildeLen)
		h.squeeze(cTilde)

		c := sampleChallenge(cTilde, p.Tau)
		cNTT := ntt(c)

		for i := 0; i < p.L; i++ {
			cs1 := invNTT(nttMul(cNTT, s1NTT[i]))
			z[i] = polyAdd(y[i], cs1)
			destroyPoly(&cs1)
		}
		if !vectorCheckNorm(z, gamma1-beta) {
			continue
		}

		for i := 0; i < p.K; i++ {
			cs2 := invNTT(nttMul(cNTT, s2NTT[i]))
			for j := 0; j < n; j++ {
				_, r0[i][j] = decompose(fieldSub(w[i][j], cs2[j]), gamma2)
			}
			destroyPoly(&cs2)
		}
		if !vectorCheckNormSigned(r0, int32(gamma2-beta)) {
			continue
		}

		for i := 0; i < p.K; i++ {
			ct0[i] = invNTT(nttMul(cNTT, t0NTT[i]))
		}
		if !vectorCheckNorm(ct0, gamma2) {
			continue
		}

		for i := 0; i < p.K; i++ {
			cs2 := invNTT(nttMul(cNTT, s2NTT[i]))
			for j := 0; j < n; j++ {
				r := fieldSub(w[i][j], cs2[j])
				hints[i][j] = makeHint(ct0[i][j], r, gamma2)
			}
			destroyPoly(&cs2)
		}
		if countOnes(hints) > p.Omega {
			continue
		}

		return EncodeSignature(p, cTilde, z, hints), nil
	}

	return nil, ErrSigningFailed
}
