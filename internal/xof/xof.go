// Package xof collects the exact hash/XOF contracts ML-KEM and Kyber
// need (H, G, J, PRF_eta, XOF) behind the SHA-3 family from
// golang.org/x/crypto/sha3, so every call site above this package spells
// the FIPS 203 notation instead of a raw sha3 call.
package xof

import "golang.org/x/crypto/sha3"

// H is SHA3-256.
func H(x []byte) [32]byte {
	return sha3.Sum256(x)
}

// G is SHA3-512, returned as two 32-byte halves (a, b) such that
// G(x) = a || b.
func G(x []byte) (a, b [32]byte) {
	full := sha3.Sum512(x)
	copy(a[:], full[:32])
	copy(b[:], full[32:])
	return a, b
}

// J is SHAKE-256 truncated to 32 bytes, used on the implicit-rejection
// path to derive the pseudo-random substitute shared secret.
func J(x []byte) [32]byte {
	var out [32]byte
	sha3.ShakeSum256(out[:], x)
	return out
}

// PRF is PRF_eta(s,b) = SHAKE-256(s || b, 64*eta), the centered-binomial
// noise source.
func PRF(eta int, s []byte, b byte) []byte {
	out := make([]byte, 64*eta)
	h := sha3.NewShake256()
	h.Write(s)
	h.Write([]byte{b})
	h.Read(out)
	return out
}

// Squeezer is the minimal streaming interface NTT-Sample needs: repeated
// Read calls continue squeezing the same sponge state rather than
// restarting it, which is what lets the rejection-sampling loop in the
// ring package ask for more bytes when a stream is exhausted before 256
// coefficients have been accepted.
type Squeezer interface {
	Read(p []byte) (int, error)
}

// NewXOF returns XOF(rho, i, j) = SHAKE-128(rho || i || j) as a Squeezer,
// ready for repeated Read calls. Matrix generation calls NewXOF(rho, j, i)
// (coordinates swapped) to fill A-hat[i][j].
func NewXOF(rho []byte, i, j byte) Squeezer {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{i, j})
	return h
}
