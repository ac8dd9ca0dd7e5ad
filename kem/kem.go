// Package kem implements the FIPS 203 / Kyber round-3 CCA transform: the
// Fujisaki-Okamoto wrapper that turns kpke's CPA-secure PKE into a
// key-encapsulation mechanism with constant-time implicit rejection.
package kem

import (
	"io"

	"github.com/latticego/mlkem/field"
	"github.com/latticego/mlkem/internal/xof"
	"github.com/latticego/mlkem/kpke"
)

func readExactly(rng io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rng, b); err != nil {
		return nil, newError("random", DrbgExhausted, err)
	}
	return b, nil
}

// KeyGen draws d and z from rng and returns (ek, dk). dk is laid out as
// dk_pke || ek || H(ek) || z.
func KeyGen(p ParameterSet, rng io.Reader) (ek, dk []byte, err error) {
	d, err := readExactly(rng, 32)
	if err != nil {
		return nil, nil, err
	}
	z, err := readExactly(rng, 32)
	if err != nil {
		return nil, nil, err
	}

	ekPKE, dkPKE, err := kpke.KeyGen(p.pke, d)
	if err != nil {
		return nil, nil, newError("KeyGen", InvalidLength, err)
	}

	h := xof.H(ekPKE)
	dk = append(append([]byte{}, dkPKE...), ekPKE...)
	dk = append(dk, h[:]...)
	dk = append(dk, z...)
	return ekPKE, dk, nil
}

// Encaps validates ek, draws a fresh 32-byte message from rng, and
// returns the derived shared secret K and ciphertext c.
func Encaps(p ParameterSet, ek []byte, rng io.Reader) (k, c []byte, err error) {
	if len(ek) != p.EKSize() {
		return nil, nil, newError("Encaps", InvalidLength, nil)
	}

	m, err := readExactly(rng, 32)
	if err != nil {
		return nil, nil, err
	}

	hEk := xof.H(ek)
	kBytes, r := xof.G(append(append([]byte{}, m...), hEk[:]...))

	c, err = kpke.Encrypt(p.pke, ek, m, r[:])
	if err != nil {
		return nil, nil, wrapKPKEError("Encaps", err)
	}

	k = kBytes[:]
	if p.lit.Variant == kpke.Kyber {
		hc := xof.H(c)
		wrapped := xof.J(append(append([]byte{}, k...), hc[:]...))
		k = wrapped[:]
	}
	return k, c, nil
}

// Decaps validates dk and c, recomputes the encryption coins from the
// recovered plaintext, and constant-time-selects between the real shared
// secret and the implicit-rejection substitute depending on whether
// re-encryption reproduces c. It never branches on that comparison.
func Decaps(p ParameterSet, dk, c []byte) ([]byte, error) {
	if len(c) != p.CiphertextSize() {
		return nil, newError("Decaps", InvalidLength, nil)
	}
	if len(dk) != p.DKSize() {
		return nil, newError("Decaps", InvalidLength, nil)
	}

	k := p.lit.K
	dkPKE := dk[:384*k]
	ekPKE := dk[384*k : 768*k+32]
	h := dk[768*k+32 : 768*k+64]
	z := dk[768*k+64 : 768*k+96]

	if p.lit.Variant == kpke.MLKEM {
		gotH := xof.H(ekPKE)
		if field.ConstantTimeEqual(gotH[:], h) != 1 {
			return nil, newError("Decaps", HashCheck, nil)
		}
	}

	mPrime, err := kpke.Decrypt(p.pke, dkPKE, c)
	if err != nil {
		return nil, wrapKPKEError("Decaps", err)
	}

	kPrimeBytes, rPrime := xof.G(append(append([]byte{}, mPrime...), h...))

	kBar := xof.J(append(append([]byte{}, z...), c...))

	cPrime, err := kpke.Encrypt(p.pke, ekPKE, mPrime, rPrime[:])
	if err != nil {
		return nil, wrapKPKEError("Decaps", err)
	}

	kPrime := kPrimeBytes[:]
	if p.lit.Variant == kpke.Kyber {
		hc := xof.H(c)
		wrapped := xof.J(append(append([]byte{}, kPrime...), hc[:]...))
		kPrime = wrapped[:]
	}

	match := field.ConstantTimeEqual(c, cPrime)
	out := make([]byte, 32)
	field.SelectBytes(out, kPrime, kBar[:], match)
	return out, nil
}

func wrapKPKEError(op string, err error) error {
	switch err {
	case kpke.ErrModulusCheck:
		return newError(op, ModulusCheck, err)
	case kpke.ErrInvalidLength:
		return newError(op, InvalidLength, err)
	default:
		return newError(op, DomainMismatch, err)
	}
}
