package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticego/mlkem/field"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, d := range []int{1, 4, 5, 10, 11, 12} {
		p := Zero(Standard)
		max := 1 << uint(d)
		if d == 12 {
			max = Q
		}
		for i := range p.Coeffs {
			p.Coeffs[i] = uint16(rng.Intn(max))
		}

		b := p.Encode(d)
		require.Len(t, b, 32*d)

		got, err := Decode(b, d, Standard)
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode(make([]byte, 10), 12, Standard)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestCompressDecompressBound(t *testing.T) {
	for _, d := range []int{1, 4, 5, 10, 11} {
		bound := (Q >> uint(d+1)) + 1
		p := Zero(Standard)
		for x := 0; x < Q; x++ {
			p.Coeffs[0] = uint16(x)
			round := p.Compress(d).Decompress(d)

			diff := int(p.Coeffs[0]) - int(round.Coeffs[0])
			diff = ((diff % Q) + Q) % Q
			if diff > Q/2 {
				diff = Q - diff
			}
			require.LessOrEqualf(t, diff, bound, "d=%d x=%d", d, x)
		}
	}
}

func TestModulusCheckDetectsNonCanonical(t *testing.T) {
	// Build the raw 12-bit packing of a non-canonical value (Q itself,
	// which fits in 12 bits but is not < Q) directly with PackBits,
	// bypassing Poly.Encode's own mod-Q reduction.
	raw := [256]uint16{}
	raw[0] = Q
	encoded := field.PackBits(raw[:], 12)

	decoded, err := Decode(encoded, 12, Standard)
	require.NoError(t, err)
	require.Equal(t, uint16(Q), decoded.Coeffs[0], "decode must not silently reduce mod Q")
	require.False(t, decoded.IsCanonical())

	reEncoded := decoded.Encode(12)
	require.NotEqual(t, encoded, reEncoded, "encode must fold a non-canonical coefficient mod Q, changing the bytes")
}

func TestEncodeCanonicalIsByteStable(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := Zero(Standard)
	for i := range p.Coeffs {
		p.Coeffs[i] = uint16(rng.Intn(Q))
	}
	encoded := p.Encode(12)

	decoded, err := Decode(encoded, 12, Standard)
	require.NoError(t, err)
	require.Equal(t, encoded, decoded.Encode(12), "round trip of a canonical value must be byte-stable")
}
