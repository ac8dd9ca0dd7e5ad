package ring

import "github.com/latticego/mlkem/field"

// zetas[i] = Zeta^bitrev7(i) mod Q for i in [0,128), the bit-reversed
// twiddle table the forward/inverse NTT butterflies walk sequentially.
// Computed once at package init rather than transcribed as a literal
// table, so the generating relationship to field.Zeta stays visible.
var zetas [128]uint16

func init() {
	for i := range zetas {
		zetas[i] = uint16(modPow(field.Zeta, bitrev7(i), field.Q))
	}
}

func bitrev7(x int) int {
	r := 0
	for i := 0; i < 7; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

func modPow(base, exp, mod int) int {
	result := 1
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % mod
		}
		exp >>= 1
		base = base * base % mod
	}
	return result
}

// ToNTT transforms a Standard-domain polynomial into the NTT domain via
// the forward, decimation-in-time, bit-reversed-output Cooley-Tukey
// transform.
func ToNTT(p Poly) (Poly, error) {
	if p.Domain != Standard {
		return Poly{}, ErrDomainMismatch
	}
	r := p
	r.Domain = NTT

	k := 1
	for l := 128; l >= 2; l >>= 1 {
		for start := 0; start < N; start += 2 * l {
			zeta := zetas[k]
			k++
			for j := start; j < start+l; j++ {
				t := field.Mul(zeta, r.Coeffs[j+l])
				r.Coeffs[j+l] = field.Sub(r.Coeffs[j], t)
				r.Coeffs[j] = field.Add(r.Coeffs[j], t)
			}
		}
	}
	return r, nil
}

// FromNTT transforms an NTT-domain polynomial back to the Standard
// domain via the inverse, decimation-in-frequency Gentleman-Sande
// transform, followed by the n^-1 scaling.
func FromNTT(p Poly) (Poly, error) {
	if p.Domain != NTT {
		return Poly{}, ErrDomainMismatch
	}
	r := p
	r.Domain = Standard

	k := 127
	for l := 2; l <= 128; l <<= 1 {
		for start := 0; start < N; start += 2 * l {
			zeta := zetas[k]
			k--
			for j := start; j < start+l; j++ {
				t := r.Coeffs[j]
				r.Coeffs[j] = field.Add(t, r.Coeffs[j+l])
				r.Coeffs[j+l] = field.Mul(zeta, field.Sub(r.Coeffs[j+l], t))
			}
		}
	}
	for i := range r.Coeffs {
		r.Coeffs[i] = field.Mul(r.Coeffs[i], field.NInv)
	}
	return r, nil
}

// baseMul performs the coefficient-wise "base" multiplication of two
// NTT-domain polynomials: each of the 64 degree-4 quads splits into two
// degree-2 products mod X^2-gamma and X^2+gamma respectively.
func baseMul(a, b Poly) Poly {
	var r Poly
	r.Domain = NTT
	for i := 0; i < 64; i++ {
		gamma := zetas[64+i]
		idx := 4 * i
		r.Coeffs[idx], r.Coeffs[idx+1] = baseMulPair(
			a.Coeffs[idx], a.Coeffs[idx+1], b.Coeffs[idx], b.Coeffs[idx+1], gamma)
		negGamma := field.Neg(gamma)
		r.Coeffs[idx+2], r.Coeffs[idx+3] = baseMulPair(
			a.Coeffs[idx+2], a.Coeffs[idx+3], b.Coeffs[idx+2], b.Coeffs[idx+3], negGamma)
	}
	return r
}

// baseMulPair computes (a0,a1)*(b0,b1) mod X^2-gamma:
// r0 = a0*b0 + gamma*a1*b1, r1 = a0*b1 + a1*b0.
func baseMulPair(a0, a1, b0, b1, gamma uint16) (r0, r1 uint16) {
	r0 = field.Add(field.Mul(a0, b0), field.Mul(gamma, field.Mul(a1, b1)))
	r1 = field.Add(field.Mul(a0, b1), field.Mul(a1, b0))
	return
}
