package field

import "golang.org/x/exp/constraints"

// PackBits little-endian bit-packs count values of the given bit width
// into a freshly allocated byte slice of length ceil(count*width/8). It
// is the single generic implementation encode_d in the ring package
// specializes to each d in {1..12}, rather than duplicating the packing
// loop per width.
func PackBits[T constraints.Integer](values []T, width int) []byte {
	out := make([]byte, (len(values)*width+7)/8)

	var acc uint32
	var accBits uint
	pos := 0
	for _, v := range values {
		acc |= uint32(v) << accBits
		accBits += uint(width)
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	if accBits > 0 {
		out[pos] = byte(acc)
	}
	return out
}

// UnpackBits is the inverse of PackBits: it reads count values of the
// given bit width, little-endian within each byte, from b.
func UnpackBits[T constraints.Integer](b []byte, width, count int) []T {
	out := make([]T, count)

	mask := uint32(1)<<uint(width) - 1

	var acc uint32
	var accBits uint
	pos := 0
	for i := 0; i < count; i++ {
		for accBits < uint(width) {
			acc |= uint32(b[pos]) << accBits
			pos++
			accBits += 8
		}
		out[i] = T(acc & mask)
		acc >>= uint(width)
		accBits -= uint(width)
	}
	return out
}
