package mldsa

// sampleNTTPoly generates a uniformly random polynomial in NTT domain
// using rejection sampling from SHAKE128 output.
// Implements FIPS 204 Algorithm 30 (RejNTTPoly).
func sampleNTTPoly(rho []byte, s, r byte) nttElement {
	h := newSHAKE128()
	h.absorb(rho)
	h.absorb([]byte{s, r})

	var buf [shake128Rate]byte
	var a nttElement
	j := 0

	for {
		h.squeezeBlock(buf[:])
		for i := 0; i < len(buf) && j < n; i += 3 {
			d := uint32(buf[i]) | uint32(buf[i+1])<<8 | (uint32(buf[i+2])&0x7f)<<16
			if d < q {
				a[j] = fieldElement(d)
				j++
			}
		}
		if j >= n {
			return a
		}
	}
}

// sampleBoundedPoly generates a polynomial with coefficients in [-eta, eta]
// using rejection sampling from SHAKE256 output.
// Implements FIPS 204 Algorithm 31 (RejBoundedPoly).
func sampleBoundedPoly(seed []byte, eta int, nonce uint16) ringElement {
	h := newSHAKE256()
	h.absorb(seed)
	h.absorb([]byte{byte(nonce), byte(nonce >> 8)})

	var buf [shake256Rate]byte
	var a ringElement
	j := 0
	offset := 0

	h.squeezeBlock(buf[:])

	for j < n {
		if offset >= len(buf) {
			h.squeezeBlock(buf[:])
			offset = 0
		}

		z0 := buf[offset] & 0x0f
		z1 := buf[offset] >> 4
		offset++

		if eta == 2 {
			// Valid raw nibbles are 0-14; reduced mod 5 they map to centered values 2,1,0,-1,-2.
			if z0 < 15 {
				z0 = z0 % 5
				a[j] = fieldSub(2, fieldElement(z0))
				j++
			}
			if j < n && z1 < 15 {
				z1 = z1 % 5
				a[j] = fieldSub(2, fieldElement(z1))
				j++
			}
		} else { // eta == 4
			// Valid raw nibbles are 0-8, mapped to centered values 4..-4.
			if z0 <= 8 {
				a[j] = fieldSub(4, fieldElement(z0))
				j++
			}
			if j < n && z1 <= 8 {
				a[j] = fieldSub(4, fieldElement(z1))
				j++
			}
		}
	}
	return a
}

// sampleChallenge generates the challenge polynomial c with tau non-zero
// coefficients in {-1, 1}. Uses Fisher-Yates shuffle.
// Implements FIPS 204 Algorithm 29 (SampleInBall).
func sampleChallenge(seed []byte, tau int) ringElement {
	h := newSHAKE256()
	h.absorb(seed)

	var buf [shake256Rate]byte
	h.squeezeBlock(buf[:])

	// First 8 bytes encode sign bits.
	var signs uint64
	for i := 0; i < 8; i++ {
		signs |= uint64(buf[i]) << (8 * i)
	}
	offset := 8

	var c ringElement
	for i := n - tau; i < n; i++ {
		var j byte
		for {
			if offset >= len(buf) {
				h.squeezeBlock(buf[:])
				offset = 0
			}
			j = buf[offset]
			offset++
			if int(j) <= i {
				break
			}
		}

		c[i] = c[j]
		if signs&1 == 0 {
			c[j] = 1
		} else {
			c[j] = q - 1 // -1 mod q
		}
		signs >>= 1
	}
	return c
}

// expandMask generates a polynomial with coefficients in [-gamma1+1, gamma1]
// deterministically from seed and nonce. Implements FIPS 204 Algorithm 34
// (ExpandMask), generalized over gamma1 bit width via the shared
// unpackRingCentered bit accumulator rather than a hand-unrolled pair of
// 18-bit/20-bit functions.
func expandMask(p *Params, seed []byte, nonce uint16) ringElement {
	h := newSHAKE256()
	h.absorb(seed)
	h.absorb([]byte{byte(nonce), byte(nonce >> 8)})

	buf := make([]byte, p.Gamma1Bytes())
	h.squeeze(buf)
	return unpackRingCentered(buf, p.Gamma1PackBits(), fieldElement(p.Gamma1()))
}
