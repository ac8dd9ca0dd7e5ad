// Package field implements modular arithmetic and bit utilities for the
// ML-KEM/Kyber ring modulus q=3329, along with the constant-time helpers
// the rest of the module needs to keep secret-dependent control flow out
// of its arithmetic.
package field

import (
	"crypto/subtle"
	"math/bits"
)

// Q is the ring modulus shared by every ML-KEM and Kyber parameter set.
const Q = 3329

// N is the number of coefficients in a ring element.
const N = 256

// NInv is 128^-1 mod Q, the scalar applied after an inverse NTT.
const NInv = 3303

// Zeta is the primitive 256th root of unity mod Q used to build the
// forward/inverse NTT twiddle tables.
const Zeta = 17

// barrettMultiplier and barrettShift implement Barrett reduction for the
// 12-bit modulus Q: for x in [0, Q^2), x mod Q == x - ((x*barrettMultiplier)
// >> barrettShift)*Q, up to one trailing correction subtraction.
const (
	barrettShift      = 24
	barrettMultiplier = (uint64(1) << barrettShift) / Q
)

// Reduce maps x in [0, Q^2) to its canonical representative in [0, Q).
func Reduce(x uint32) uint16 {
	t := (uint64(x) * barrettMultiplier) >> barrettShift
	r := uint32(x) - uint32(t)*Q
	if r >= Q {
		r -= Q
	}
	return uint16(r)
}

// Add returns (a+b) mod Q. a and b must already be canonical.
func Add(a, b uint16) uint16 {
	r := uint32(a) + uint32(b)
	if r >= Q {
		r -= Q
	}
	return uint16(r)
}

// Sub returns (a-b) mod Q. a and b must already be canonical.
func Sub(a, b uint16) uint16 {
	r := uint32(a) + Q - uint32(b)
	if r >= Q {
		r -= Q
	}
	return uint16(r)
}

// Mul returns (a*b) mod Q. a and b must already be canonical.
func Mul(a, b uint16) uint16 {
	return Reduce(uint32(a) * uint32(b))
}

// Neg returns (-a) mod Q. a must already be canonical.
func Neg(a uint16) uint16 {
	if a == 0 {
		return 0
	}
	return Q - a
}

// BitLen returns the number of bits needed to represent n, matching the
// teacher's own small bit-length helpers used throughout ring/utils.
func BitLen(n int) int {
	return bits.Len(uint(n))
}

// SelectBytes fills dst with a if choose==1, b if choose==0, for equal
// length a, b and dst, without a secret-dependent branch. It is a thin
// wrapper over crypto/subtle so every implicit-rejection call site reads
// the same way: copy the rejection path in, then conditionally overwrite
// it with the real path.
func SelectBytes(dst, a, b []byte, choose int) {
	copy(dst, b)
	subtle.ConstantTimeCopy(choose, dst, a)
}

// ConstantTimeEqual reports 1 if a and b are byte-for-byte identical and
// of equal length, 0 otherwise, via crypto/subtle so the comparison never
// branches on where the first difference is.
func ConstantTimeEqual(a, b []byte) int {
	return subtle.ConstantTimeCompare(a, b)
}
