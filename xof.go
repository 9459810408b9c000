package mldsa

import "crypto/sha3"

// shake128Rate and shake256Rate are the FIPS 202 sponge rates in bytes.
const (
	shake128Rate = 168
	shake256Rate = 136
)

// xof wraps crypto/sha3's SHAKE implementation behind the incremental
// absorb/squeeze contract the samplers (sample.go) are written against. Any
// FIPS 202-conformant XOF could sit behind this type; crypto/sha3 is used
// because it is what the corpus's own ML-DSA implementation standardized on.
type xof struct {
	s *sha3.SHAKE
}

func newSHAKE128() *xof { return &xof{sha3.NewSHAKE128()} }
func newSHAKE256() *xof { return &xof{sha3.NewSHAKE256()} }

// absorb appends p to the input stream. Must not be called after squeeze.
func (x *xof) absorb(p []byte) { x.s.Write(p) }

// squeeze finalizes absorbing (on first call) and fills buf from the output
// stream, continuing it across calls.
func (x *xof) squeeze(buf []byte) { x.s.Read(buf) }

// squeezeBlock reads exactly one rate-sized block, matching the corpus's
// preference for block-sized squeezing over incremental buffer growth during
// rejection sampling (spec.md §4.1, §9).
func (x *xof) squeezeBlock(buf []byte) { x.s.Read(buf) }

// reset returns the XOF to its initial absorb phase.
func (x *xof) reset() { x.s.Reset() }
