package mldsa

import "runtime"

// infinityNorm returns the centered absolute value of a, in constant time:
// no branch on the coefficient's value, by selecting between a and q-a via
// a mask derived from the sign of the comparison rather than an if.
func infinityNorm(a fieldElement) uint32 {
	c := uint32(a)
	alt := uint32(q) - c

	// d is negative iff c > qMinus1Div2, i.e. iff the centered form is alt.
	d := int32(qMinus1Div2) - int32(c)
	sel := uint32(d>>31) // all-ones if c > qMinus1Div2, else 0

	return (c &^ sel) | (alt & sel)
}

// checkNorm reports whether every centered coefficient of f has infinity
// norm strictly less than bound. It examines every coefficient and performs
// no data-dependent branch (spec.md §4.4, §5).
func checkNorm(f *ringElement, bound uint32) bool {
	var acc uint32
	for i := range f {
		v := infinityNorm(f[i])
		// (bound - v - 1) underflows (top bit set) iff v >= bound.
		acc |= (bound - v - 1) >> 31
	}
	return acc == 0
}

// vectorCheckNorm applies checkNorm across every polynomial in v, examining
// every coefficient of every polynomial unconditionally.
func vectorCheckNorm(v []ringElement, bound uint32) bool {
	var acc uint32
	for i := range v {
		for j := range v[i] {
			val := infinityNorm(v[i][j])
			acc |= (bound - val - 1) >> 31
		}
	}
	return acc == 0
}

// vectorCheckNormSigned is vectorCheckNorm for already-centered int32
// coefficients (used for r0, which decompose returns signed).
func vectorCheckNormSigned(v [][n]int32, bound int32) bool {
	var acc uint32
	for i := range v {
		for j := range v[i] {
			val := v[i][j]
			mask := val >> 31 // all-ones iff val is negative
			val = (val ^ mask) - mask
			acc |= uint32(bound-val-1) >> 31
		}
	}
	return acc == 0
}

// countOnes sums the (0 or 1) coefficients of a hint vector without
// branching on any individual coefficient.
func countOnes(v []ringElement) int {
	count := 0
	for i := range v {
		for j := range v[i] {
			count += int(v[i][j])
		}
	}
	return count
}

// destroyPoly zeroes a polynomial's coefficients and pins it live across the
// clearing loop so the compiler cannot elide the stores as dead.
func destroyPoly(f *ringElement) {
	for i := range f {
		f[i] = 0
	}
	runtime.KeepAlive(f)
}

// destroyPolyVector zeroes every polynomial in a vector.
func destroyPolyVector(v []ringElement) {
	for i := range v {
		destroyPoly(&v[i])
	}
}

// destroyNTTVector zeroes every element in an NTT-domain vector.
func destroyNTTVector(v []nttElement) {
	for i := range v {
		for j := range v[i] {
			v[i][j] = 0
		}
	}
	runtime.KeepAlive(v)
}

// destroyBytes zeroes a byte buffer holding key or signature material.
func destroyBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// nttVectorDot accumulates the pointwise product of two NTT-domain
// vectors: sum_j a[j] * b[j].
func nttVectorDot(a []nttElement, b []nttElement) nttElement {
	var acc nttElement
	for j := range a {
		acc = polyAdd(acc, nttMul(a[j], b[j]))
	}
	return acc
}
