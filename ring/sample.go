package ring

import (
	"math/bits"

	"github.com/latticego/mlkem/field"
	"github.com/latticego/mlkem/internal/xof"
)

// CBD samples a Standard-domain polynomial from the centered binomial
// distribution with parameter eta, consuming exactly 64*eta bytes: for
// each of the 256 output coefficients, 2*eta fresh bits split into two
// eta-bit halves (a,b), and the coefficient is popcount(a)-popcount(b)
// mod Q.
func CBD(b []byte, eta int) (Poly, error) {
	if len(b) != 64*eta {
		return Poly{}, ErrInvalidLength
	}

	p := Poly{Domain: Standard}
	bitPos := 0
	getBits := func(n int) uint32 {
		var v uint32
		for i := 0; i < n; i++ {
			bit := uint32(b[bitPos/8]>>(uint(bitPos)%8)) & 1
			v |= bit << uint(i)
			bitPos++
		}
		return v
	}
	for i := 0; i < N; i++ {
		a := popcount(getBits(eta))
		b := popcount(getBits(eta))
		p.Coeffs[i] = field.Add(uint16(a), field.Neg(uint16(b)))
	}
	return p, nil
}

// NTTSample implements FIPS 203 Algorithm 6 ("SampleNTT" / Kyber's
// "Parse"): it reads 3 bytes at a time from xs, forms two 12-bit
// candidates, and accepts each that is < Q until 256 coefficients have
// been accepted, re-squeezing the stream for more bytes if it runs out
// before then. This keeps squeezing for as long as rejection sampling
// needs, rather than assuming a fixed byte budget is always enough.
func NTTSample(xs xof.Squeezer) (Poly, error) {
	p := Poly{Domain: NTT}

	var buf [168]byte // one SHAKE-128 rate's worth per refill
	accepted := 0
	bufLen := 0
	bufPos := 0

	refill := func() error {
		n, err := xs.Read(buf[:])
		if n == 0 && err != nil {
			return err
		}
		bufLen = n
		bufPos = 0
		return nil
	}

	nextTriple := func() (byte, byte, byte, error) {
		var t [3]byte
		for i := 0; i < 3; i++ {
			if bufPos == bufLen {
				if err := refill(); err != nil {
					return 0, 0, 0, err
				}
			}
			t[i] = buf[bufPos]
			bufPos++
		}
		return t[0], t[1], t[2], nil
	}

	for accepted < N {
		b0, b1, b2, err := nextTriple()
		if err != nil {
			return Poly{}, err
		}
		d1 := uint16(b0) | (uint16(b1&0x0F) << 8)
		d2 := (uint16(b1) >> 4) | (uint16(b2) << 4)

		if d1 < Q && accepted < N {
			p.Coeffs[accepted] = d1
			accepted++
		}
		if d2 < Q && accepted < N {
			p.Coeffs[accepted] = d2
			accepted++
		}
	}
	return p, nil
}

// popcount returns the number of set bits in x; CBD uses it to sum each
// eta-bit half.
func popcount(x uint32) int {
	return bits.OnesCount32(x)
}
