package kpke

import (
	"errors"

	"github.com/latticego/mlkem/internal/xof"
	"github.com/latticego/mlkem/lattice"
	"github.com/latticego/mlkem/ring"
)

// ErrModulusCheck is returned by Encrypt when the t-hat encoded in ek_pke
// does not re-encode to the same bytes it was decoded from: some
// coefficient is not canonical mod Q.
var ErrModulusCheck = errors.New("kpke: t-hat is not canonical (modulus check failed)")

// ErrInvalidLength is returned when a byte input does not match the size
// this Params dictates.
var ErrInvalidLength = errors.New("kpke: invalid byte length")

// KeyGen runs K-PKE.KeyGen on the 32-byte seed d, returning ek_pke and
// dk_pke. For the ML-KEM variant the byte k is appended to d before
// hashing, for domain separation between parameter sets; the Kyber
// variant omits it.
func KeyGen(p Params, d []byte) (ekPKE, dkPKE []byte, err error) {
	if len(d) != 32 {
		return nil, nil, ErrInvalidLength
	}

	seedInput := d
	if p.Variant == MLKEM {
		seedInput = append(append([]byte{}, d...), byte(p.K))
	}
	rho, sigma := xof.G(seedInput)

	aHat, err := buildMatrix(rho[:], p.K)
	if err != nil {
		return nil, nil, err
	}

	s, counter, err := sampleNoiseVector(sigma[:], p.Eta1, p.K, 0)
	if err != nil {
		return nil, nil, err
	}
	e, _, err := sampleNoiseVector(sigma[:], p.Eta1, p.K, counter)
	if err != nil {
		return nil, nil, err
	}

	sHat, err := s.ToNTT()
	if err != nil {
		return nil, nil, err
	}
	eHat, err := e.ToNTT()
	if err != nil {
		return nil, nil, err
	}

	asHat, err := lattice.MatMul(aHat, sHat)
	if err != nil {
		return nil, nil, err
	}
	tHat, err := lattice.Add(asHat, eHat)
	if err != nil {
		return nil, nil, err
	}

	ekPKE = append(tHat.Encode(12), rho[:]...)
	dkPKE = sHat.Encode(12)
	return ekPKE, dkPKE, nil
}

// Encrypt runs K-PKE.Encrypt: encrypts the 32-byte message m under ek_pke
// using the 32 bytes of randomness r as the encryption coins.
func Encrypt(p Params, ekPKE, m, r []byte) ([]byte, error) {
	if len(ekPKE) != p.EKSize() {
		return nil, ErrInvalidLength
	}
	if len(m) != 32 || len(r) != 32 {
		return nil, ErrInvalidLength
	}

	tHatBytes := ekPKE[:384*p.K]
	rho := ekPKE[384*p.K:]

	tHat, err := lattice.DecodeVector(tHatBytes, p.K, 12, ring.NTT)
	if err != nil {
		return nil, err
	}
	// encode_12(decode_12(tHatBytes)) == tHatBytes iff every coefficient
	// was already canonical mod Q; see ring.Poly.Encode's doc comment.
	if !bytesEqual(tHat.Encode(12), tHatBytes) {
		return nil, ErrModulusCheck
	}

	aHatT, err := buildMatrixTransposed(rho, p.K)
	if err != nil {
		return nil, err
	}

	y, counter, err := sampleNoiseVector(r, p.Eta1, p.K, 0)
	if err != nil {
		return nil, err
	}
	e1, counter, err := sampleNoiseVector(r, p.Eta2, p.K, counter)
	if err != nil {
		return nil, err
	}
	e2, err := samplePoly(r, p.Eta2, counter)
	if err != nil {
		return nil, err
	}

	yHat, err := y.ToNTT()
	if err != nil {
		return nil, err
	}

	uHatProduct, err := lattice.MatMul(aHatT, yHat)
	if err != nil {
		return nil, err
	}
	uStd, err := uHatProduct.FromNTT()
	if err != nil {
		return nil, err
	}
	u, err := lattice.Add(uStd, e1)
	if err != nil {
		return nil, err
	}

	mPoly, err := ring.Decode(m, 1, ring.Standard)
	if err != nil {
		return nil, err
	}
	mu := mPoly.Decompress(1)

	tyHat, err := lattice.Dot(tHat, yHat)
	if err != nil {
		return nil, err
	}
	ty, err := ring.FromNTT(tyHat)
	if err != nil {
		return nil, err
	}
	vNoMsg, err := ring.Add(ty, e2)
	if err != nil {
		return nil, err
	}
	v, err := ring.Add(vNoMsg, mu)
	if err != nil {
		return nil, err
	}

	c1 := u.Compress(p.DU).Encode(p.DU)
	c2 := v.Compress(p.DV).Encode(p.DV)
	return append(c1, c2...), nil
}

// Decrypt runs K-PKE.Decrypt: recovers the 32-byte message encrypted
// into c under dk_pke.
func Decrypt(p Params, dkPKE, c []byte) ([]byte, error) {
	if len(dkPKE) != p.DKSize() {
		return nil, ErrInvalidLength
	}
	if len(c) != p.CiphertextSize() {
		return nil, ErrInvalidLength
	}

	c1Len := 32 * p.DU * p.K
	c1 := c[:c1Len]
	c2 := c[c1Len:]

	uCompressed, err := lattice.DecodeVector(c1, p.K, p.DU, ring.Standard)
	if err != nil {
		return nil, err
	}
	u := uCompressed.Decompress(p.DU)

	vCompressed, err := ring.Decode(c2, p.DV, ring.Standard)
	if err != nil {
		return nil, err
	}
	v := vCompressed.Decompress(p.DV)

	sHat, err := lattice.DecodeVector(dkPKE, p.K, 12, ring.NTT)
	if err != nil {
		return nil, err
	}

	uHat, err := u.ToNTT()
	if err != nil {
		return nil, err
	}
	suHat, err := lattice.Dot(sHat, uHat)
	if err != nil {
		return nil, err
	}
	su, err := ring.FromNTT(suHat)
	if err != nil {
		return nil, err
	}
	w, err := ring.Sub(v, su)
	if err != nil {
		return nil, err
	}

	return w.Compress(1).Encode(1), nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
