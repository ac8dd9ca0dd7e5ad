package kpke

import (
	"github.com/latticego/mlkem/internal/xof"
	"github.com/latticego/mlkem/lattice"
	"github.com/latticego/mlkem/ring"
)

// buildMatrix samples A-hat[i][j] = NTT-Sample(XOF(rho, j, i)) for
// i,j in [0,k); note the coordinate swap.
func buildMatrix(rho []byte, k int) (lattice.Matrix, error) {
	m := lattice.New(k, k, ring.NTT)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			p, err := ring.NTTSample(xof.NewXOF(rho, byte(j), byte(i)))
			if err != nil {
				return lattice.Matrix{}, err
			}
			m.Set(i, j, p)
		}
	}
	return m, nil
}

// buildMatrixTransposed samples A-hat^T[i][j] = A-hat[j][i] directly, by
// swapping the XOF coordinate order instead of transposing after the
// fact.
func buildMatrixTransposed(rho []byte, k int) (lattice.Matrix, error) {
	m := lattice.New(k, k, ring.NTT)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			p, err := ring.NTTSample(xof.NewXOF(rho, byte(i), byte(j)))
			if err != nil {
				return lattice.Matrix{}, err
			}
			m.Set(i, j, p)
		}
	}
	return m, nil
}

// sampleNoiseVector draws a length-k Standard-domain vector from
// CBD_eta(PRF_eta(sigma, counter)), incrementing counter once per
// element, and returns the counter value after the last draw.
func sampleNoiseVector(sigma []byte, eta, k int, counter byte) (lattice.Matrix, byte, error) {
	v := lattice.NewVector(k, ring.Standard)
	for i := 0; i < k; i++ {
		p, err := samplePoly(sigma, eta, counter)
		if err != nil {
			return lattice.Matrix{}, 0, err
		}
		v.Set(i, 0, p)
		counter++
	}
	return v, counter, nil
}

// samplePoly draws a single Standard-domain polynomial from
// CBD_eta(PRF_eta(sigma, counter)).
func samplePoly(sigma []byte, eta int, counter byte) (ring.Poly, error) {
	bytes := xof.PRF(eta, sigma, counter)
	return ring.CBD(bytes, eta)
}
