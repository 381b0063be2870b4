package fixed

import "math/bits"

// mulU32 returns the 128 bit product x*y shifted right by 32, truncated to 64
// bits.
func mulU32(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)

	return hi<<32 | lo>>32
}

// mulS32 is mulU32 for two's complement operands.
func mulS32(x, y int64) int64 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))

	// Turn the unsigned product into the signed one.
	if x < 0 {
		hi -= uint64(y)
	}
	if y < 0 {
		hi -= uint64(x)
	}

	return int64(hi<<32 | lo>>32)
}

// divU32 returns (x << 32) / y truncated to 64 bits. It panics if y is zero.
func divU32(x, y uint64) uint64 {
	hi, lo := x>>32, x<<32

	// The quotient bits above 64 (hi / y) are dropped.
	q, _ := bits.Div64(hi%y, lo, y)

	return q
}

// divS32 is divU32 for two's complement operands, truncating toward zero.
func divS32(x, y int64) int64 {
	q := int64(divU32(abs64(x), abs64(y)))
	if (x < 0) != (y < 0) {
		return -q
	}

	return q
}

func abs64(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}

	return uint64(v)
}
