package ring

import (
	"errors"

	"github.com/latticego/mlkem/field"
)

// ErrInvalidLength is returned when a byte input does not match the size
// a decode/compress operation requires.
var ErrInvalidLength = errors.New("ring: invalid byte length")

// Encode packs the polynomial's coefficients at d bits each,
// little-endian within each byte, into 32*d bytes. For d<12 the modulus
// is 2^d and coefficients are assumed to already fit in d bits. For
// d==12 the modulus is Q, not 2^12: each coefficient is reduced mod Q
// before packing. That distinction is what makes the d=12 modulus check
// work at all — Decode is a raw, non-reducing unpack, so a non-canonical
// input (coefficient in [Q,4096)) decodes to a value Encode(12) will
// then fold back into [0,Q), producing different bytes than the input.
// A caller compares decode-then-encode against the original bytes to
// detect that fold (see kpke.Encrypt's modulus check).
func (p Poly) Encode(d int) []byte {
	if d == 12 {
		reduced := p.Coeffs
		for i, c := range reduced {
			reduced[i] = c % Q
		}
		return field.PackBits(reduced[:], d)
	}
	return field.PackBits(p.Coeffs[:], d)
}

// Decode unpacks 32*d bytes into a polynomial of the given domain. It
// performs no range reduction: at d=12 a non-canonical input (coefficient
// >= Q, but still < 4096) decodes losslessly, so that a caller can detect
// it by re-encoding and comparing bytes against the original.
func Decode(b []byte, d int, domain Domain) (Poly, error) {
	if len(b) != 32*d {
		return Poly{}, ErrInvalidLength
	}
	p := Poly{Domain: domain}
	values := field.UnpackBits[uint16](b, d, N)
	copy(p.Coeffs[:], values)
	return p, nil
}

// Compress lossily quantizes every coefficient to d bits:
// round((2^d/Q)*x) mod 2^d, computed as the exact integer formula
// (2^d*x + floor(Q/2)) / Q to avoid floating point.
func (p Poly) Compress(d int) Poly {
	r := Poly{Domain: p.Domain}
	mod := uint32(1) << uint(d)
	for i, c := range p.Coeffs {
		num := uint64(mod)*uint64(c) + Q/2
		r.Coeffs[i] = uint16((num / Q) % uint64(mod))
	}
	return r
}

// Decompress reconstructs an approximation of the original coefficient
// from its d-bit compressed form: round((Q/2^d)*x) = (Q*x + 2^(d-1)) >> d.
func (p Poly) Decompress(d int) Poly {
	r := Poly{Domain: p.Domain}
	half := uint32(1) << uint(d-1)
	for i, c := range p.Coeffs {
		r.Coeffs[i] = uint16((uint32(c)*Q + half) >> uint(d))
	}
	return r
}
