package mldsa

// Verify reports whether sig is a valid ML-DSA signature over message under
// an optional context string. Implements the context-wrapped entry point of
// FIPS 204 §6.2.
func (pk *PublicKey) Verify(sig, message, context []byte) bool {
	if len(context) > maxContextSize {
		return false
	}

	mPrime := make([]byte, 2+len(context)+len(message))
	mPrime[0] = 0
	mPrime[1] = byte(len(context))
	copy(mPrime[2:], context)
	copy(mPrime[2+len(context):], message)

	return pk.VerifyInternal(sig, mPrime)
}

// VerifyInternal implements FIPS 204 Algorithm 8 (ML-DSA.Verify_internal)
// directly on an already domain-separated message.
func (pk *PublicKey) VerifyInternal(sig, mPrime []byte) bool {
	p := pk.params
	if len(sig) != p.SignatureSize() {
		return false
	}

	cTilde, z, hints, err := DecodeSignature(p, sig)
	if err != nil {
		return false
	}

	gamma1 := p.Gamma1()
	beta := p.Beta()
	if !vectorCheckNorm(z, gamma1-beta) {
		return false
	}

	h := newSHAKE256()
	h.absorb(pk.tr[:])
	h.absorb(mPrime)
	mu := make([]byte, 64)
	h.squeeze(mu)

	c := sampleChallenge(cTilde, p.Tau)
	cNTT := ntt(c)

	zNTT := make([]nttElement, p.L)
	for i := 0; i < p.L; i++ {
		zNTT[i] = ntt(z[i])
	}

	t1NTT := make([]nttElement, p.K)
	for i := 0; i < p.K; i++ {
		var scaled ringElement
		for j := 0; j < n; j++ {
			scaled[j] = pk.t1[i][j] << d
		}
		t1NTT[i] = ntt(scaled)
	}

	w1 := make([]ringElement, p.K)
	h.reset()
	h.absorb(mu)

	for i := 0; i < p.K; i++ {
		acc := nttVectorDot(pk.a[i*p.L:(i+1)*p.L], zNTT)
		ct1 := nttMul(cNTT, t1NTT[i])
		acc = polySub(acc, ct1)
		wApprox := invNTT(acc)

		for j := 0; j < n; j++ {
			w1[i][j] = useHint(hints[i][j], wApprox[j], p.Gamma2)
		}
		h.absorb(packRingUnsigned(&w1[i], p.W1Bits))
	}

	cTildeCheck := make([]byte, p.CTildeBytes())
	h.squeeze(cTildeCheck)

	var diff byte
	for i := range cTilde {
		diff |= cTilde[i] ^ cTildeCheck[i]
	}
	return diff == 0
}
