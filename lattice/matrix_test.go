package lattice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticego/mlkem/ring"
)

func randomVector(rng *rand.Rand, k int) Matrix {
	v := NewVector(k, ring.Standard)
	for i := 0; i < k; i++ {
		p := ring.Zero(ring.Standard)
		for c := range p.Coeffs {
			p.Coeffs[c] = uint16(rng.Intn(ring.Q))
		}
		v.Set(i, 0, p)
	}
	return v
}

func TestTransposeIsShapeSwappingView(t *testing.T) {
	m := New(2, 3, ring.Standard)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	p := ring.One()
	m.Set(1, 2, p)

	mt := m.Transpose()
	require.Equal(t, 3, mt.Rows())
	require.Equal(t, 2, mt.Cols())
	require.True(t, ring.Equal(p, mt.At(2, 1)))
}

func TestTransposeSharesBackingStorage(t *testing.T) {
	m := New(2, 2, ring.Standard)
	mt := m.Transpose()

	p := ring.One()
	m.Set(0, 1, p)
	require.True(t, ring.Equal(p, mt.At(1, 0)), "transpose must observe writes through the original view")
}

func TestDotMatchesManualInnerProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	u := randomVector(rng, 3)
	v := randomVector(rng, 3)

	got, err := Dot(u, v)
	require.NoError(t, err)

	want := ring.Zero(ring.Standard)
	for i := 0; i < 3; i++ {
		prod, err := ring.Mul(u.At(i, 0), v.At(i, 0))
		require.NoError(t, err)
		want, err = ring.Add(want, prod)
		require.NoError(t, err)
	}
	require.True(t, ring.Equal(want, got))
}

func TestMatMulShapeMismatch(t *testing.T) {
	a := New(2, 3, ring.NTT)
	b := New(2, 2, ring.NTT)
	_, err := MatMul(a, b)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestEncodeDecodeVectorRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	v := randomVector(rng, 3)
	for i := 0; i < 3; i++ {
		p := v.At(i, 0)
		p.ReduceCanonical()
		v.Set(i, 0, p)
	}

	encoded := v.Encode(12)
	require.Len(t, encoded, 3*384)

	decoded, err := DecodeVector(encoded, 3, 12, ring.Standard)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.True(t, ring.Equal(v.At(i, 0), decoded.At(i, 0)))
	}
}

func TestDecodeVectorRejectsWrongLength(t *testing.T) {
	_, err := DecodeVector(make([]byte, 10), 3, 12, ring.Standard)
	require.ErrorIs(t, err, ring.ErrInvalidLength)
}
