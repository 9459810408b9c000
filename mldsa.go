// Package mldsa implements ML-DSA (Module-Lattice Digital Signature Algorithm)
// as specified in FIPS 204.
//
// ML-DSA is a post-quantum digital signature scheme standardized by NIST. This
// package implements the cryptographic core: key generation, signing
// (Fiat-Shamir with aborts), verification, and the byte-exact encodings for
// keys and signatures, for all three standardized parameter sets:
//
//   - ML-DSA-44: NIST security category 2
//   - ML-DSA-65: NIST security category 3
//   - ML-DSA-87: NIST security category 5
//
// Basic usage:
//
//	sk, err := mldsa.GenerateKey(mldsa.MLDSA65, rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	sig, err := sk.Sign(rand.Reader, message, nil)
//	if err != nil {
//	    // handle error
//	}
//	pk := sk.Public().(*mldsa.PublicKey)
//	valid := pk.Verify(sig, message, nil)
//
// Message preparation (the context-string wrapping of FIPS 204 §6) is
// performed by Sign/Verify; SignInternal/VerifyInternal operate directly on
// an already-prepared buffer for callers doing their own domain separation.
package mldsa

import "crypto"

// Global ML-DSA constants from FIPS 204. These are identical across all
// three parameter sets.
const (
	// n is the number of coefficients in a polynomial.
	n = 256

	// q is the modulus: q = 2^23 - 2^13 + 1 = 8380417.
	q = 8380417

	// d is the number of bits dropped from t by Power2Round.
	d = 13

	// SeedSize is the size in bytes of the random seed used for key generation.
	SeedSize = 32

	// RandomnessSize is the size in bytes of the per-signature randomness rnd.
	RandomnessSize = 32

	// maxSignAttempts bounds the Fiat-Shamir rejection loop. Exceeding it is
	// an implementation fault, not an input error.
	maxSignAttempts = 1000

	// maxContextSize is the largest context string accepted by Sign/Verify.
	maxContextSize = 255
)

// Derived ring constant.
const qMinus1Div2 = (q - 1) / 2

// gamma2 values shared across parameter sets.
const (
	gamma2QMinus1Div88 = (q - 1) / 88 // ML-DSA-44
	gamma2QMinus1Div32 = (q - 1) / 32 // ML-DSA-65, ML-DSA-87
)

// SignerOpts implements crypto.SignerOpts for ML-DSA signing operations.
// It allows specifying an optional context string for domain separation.
type SignerOpts struct {
	// Context is an optional context string for domain separation (max 255 bytes).
	// If nil, no context is used.
	Context []byte
}

// HashFunc returns 0 to indicate that ML-DSA does not use pre-hashing.
// ML-DSA signs messages directly rather than message digests.
func (opts *SignerOpts) HashFunc() crypto.Hash {
	return 0
}

// Compile-time interface assertions.
var (
	_ crypto.Signer    = (*PrivateKey)(nil)
	_ crypto.PublicKey = (*PublicKey)(nil)
)
