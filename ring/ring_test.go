package ring

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func randomPoly(rng *rand.Rand) Poly {
	p := Zero(Standard)
	for i := range p.Coeffs {
		p.Coeffs[i] = uint16(rng.Intn(Q))
	}
	return p
}

func TestNTTInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		p := randomPoly(rng)

		transformed, err := ToNTT(p)
		require.NoError(t, err)
		require.Equal(t, NTT, transformed.Domain)

		back, err := FromNTT(transformed)
		require.NoError(t, err)
		if diff := cmp.Diff(p, back); diff != "" {
			t.Fatalf("FromNTT(ToNTT(p)) != p (-want +got):\n%s", diff)
		}
	}
}

func TestNTTMultiplicationAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		a := randomPoly(rng)
		b := randomPoly(rng)

		want, err := Mul(a, b)
		require.NoError(t, err)

		aHat, err := ToNTT(a)
		require.NoError(t, err)
		bHat, err := ToNTT(b)
		require.NoError(t, err)
		prodHat, err := Mul(aHat, bHat)
		require.NoError(t, err)
		got, err := FromNTT(prodHat)
		require.NoError(t, err)

		require.True(t, Equal(want, got), "trial %d: from_ntt(to_ntt(a)*to_ntt(b)) != a*b", trial)
	}
}

func TestDomainMismatchErrors(t *testing.T) {
	std := Zero(Standard)
	nttDomain := Zero(NTT)

	_, err := Add(std, nttDomain)
	require.ErrorIs(t, err, ErrDomainMismatch)

	_, err = Sub(std, nttDomain)
	require.ErrorIs(t, err, ErrDomainMismatch)

	_, err = Mul(std, nttDomain)
	require.ErrorIs(t, err, ErrDomainMismatch)

	_, err = ToNTT(nttDomain)
	require.ErrorIs(t, err, ErrDomainMismatch)

	_, err = FromNTT(std)
	require.ErrorIs(t, err, ErrDomainMismatch)
}

func TestAddSubInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := randomPoly(rng)
	b := randomPoly(rng)

	sum, err := Add(a, b)
	require.NoError(t, err)
	back, err := Sub(sum, b)
	require.NoError(t, err)
	require.True(t, Equal(a, back))
}
