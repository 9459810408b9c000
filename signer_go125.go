//go:build go1.25

package mldsa

import (
	"crypto"
	"io"
)

// SignMessage implements crypto.MessageSigner (Go 1.25+): ML-DSA signs the
// message directly rather than a precomputed digest, so it is exposed
// through MessageSigner instead of (or in addition to) the digest-oriented
// Signer contract.
func (sk *PrivateKey) SignMessage(rand io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.Sign(rand, message, opts)
}

// Compile-time interface assertion for crypto.MessageSigner (Go 1.25+).
var _ crypto.MessageSigner = (*PrivateKey)(nil)
