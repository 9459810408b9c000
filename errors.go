package mldsa

import "errors"

// Sentinel errors returned by this package. Use errors.Is to test for them;
// wrapped errors carry additional context via %w.
var (
	// ErrInvalidEncoding is returned when a key or signature byte string is
	// the wrong length or fails a range check during decoding.
	ErrInvalidEncoding = errors.New("mldsa: invalid encoding")

	// ErrInvalidParameter is returned for out-of-contract arguments, such as
	// a context string longer than 255 bytes.
	ErrInvalidParameter = errors.New("mldsa: invalid parameter")

	// ErrSigningFailed is returned when signing could not find an acceptable
	// (z, h) pair within the bounded number of attempts. This indicates an
	// implementation or randomness-source fault, not a property of the
	// message or key.
	ErrSigningFailed = errors.New("mldsa: signing failed to converge")
)
