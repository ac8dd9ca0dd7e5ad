package drbg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seedBytes() [48]byte {
	var s [48]byte
	for i := range s {
		s[i] = byte(i)
	}
	return s
}

func TestCTRDRBGDeterministic(t *testing.T) {
	a, err := NewCTRDRBG(seedBytes(), nil)
	require.NoError(t, err)
	b, err := NewCTRDRBG(seedBytes(), nil)
	require.NoError(t, err)

	bufA := make([]byte, 100)
	bufB := make([]byte, 100)
	_, err = a.Read(bufA)
	require.NoError(t, err)
	_, err = b.Read(bufB)
	require.NoError(t, err)
	require.Equal(t, bufA, bufB)
}

func TestCTRDRBGAdvancesState(t *testing.T) {
	d, err := NewCTRDRBG(seedBytes(), nil)
	require.NoError(t, err)

	first := make([]byte, 48)
	second := make([]byte, 48)
	_, err = d.Read(first)
	require.NoError(t, err)
	_, err = d.Read(second)
	require.NoError(t, err)
	require.NotEqual(t, first, second, "consecutive reads must not repeat output")
}

func TestCTRDRBGDifferentPersonalizationDiffers(t *testing.T) {
	a, err := NewCTRDRBG(seedBytes(), []byte("alpha"))
	require.NoError(t, err)
	b, err := NewCTRDRBG(seedBytes(), []byte("beta"))
	require.NoError(t, err)

	bufA := make([]byte, 32)
	bufB := make([]byte, 32)
	_, err = a.Read(bufA)
	require.NoError(t, err)
	_, err = b.Read(bufB)
	require.NoError(t, err)
	require.NotEqual(t, bufA, bufB)
}

func TestCTRDRBGExhaustedUntilReseed(t *testing.T) {
	d, err := NewCTRDRBG(seedBytes(), nil)
	require.NoError(t, err)
	d.calls = reseedInterval

	_, err = d.Read(make([]byte, 16))
	require.ErrorIs(t, err, ErrExhausted)

	require.NoError(t, d.Reseed(seedBytes(), nil))
	_, err = d.Read(make([]byte, 16))
	require.NoError(t, err)
}

func TestOSSourceProducesRequestedLength(t *testing.T) {
	var s OSSource
	buf := make([]byte, 32)
	n, err := s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 32, n)
}
