package minifloat

import (
	"cmp"
	"math"
)

// layout describes a sign/exponent/mantissa bit pattern of at most 64 bits.
type layout struct {
	exp  uint
	man  uint
	bias int

	// finite layouts have no infinities. Their only NaN is the pattern with
	// every exponent and mantissa bit set, so the largest exponent still holds
	// normal numbers.
	finite bool
}

var (
	e5m2 = layout{exp: 5, man: 2, bias: 15}
	e4m3 = layout{exp: 4, man: 3, bias: 7, finite: true}
	bf16 = layout{exp: 8, man: 7, bias: 127}
	bf32 = layout{exp: 11, man: 20, bias: 1023}
	bf64 = layout{exp: 15, man: 48, bias: 16383}
)

func (l layout) signMask() uint64 { return 1 << (l.exp + l.man) }
func (l layout) manMask() uint64  { return 1<<l.man - 1 }
func (l layout) maxExp() uint64   { return 1<<l.exp - 1 }

func (l layout) fields(raw uint64) (sign bool, exp, man uint64) {
	return raw&l.signMask() != 0, raw >> l.man & l.maxExp(), raw & l.manMask()
}

func (l layout) inf() uint64 { return l.maxExp() << l.man }

func (l layout) nan() uint64 {
	if l.finite {
		return l.inf() | l.manMask()
	}

	return l.inf() | 1<<(l.man-1)
}

func (l layout) max() uint64 {
	if l.finite {
		return l.inf() | (l.manMask() - 1)
	}

	return (l.maxExp()-1)<<l.man | l.manMask()
}

func (l layout) one() uint64 { return uint64(l.bias) << l.man }

func (l layout) isNaN(raw uint64) bool {
	_, e, m := l.fields(raw)
	if l.finite {
		return e == l.maxExp() && m == l.manMask()
	}

	return e == l.maxExp() && m != 0
}

func (l layout) isInf(raw uint64) bool {
	_, e, m := l.fields(raw)

	return !l.finite && e == l.maxExp() && m == 0
}

func (l layout) isFinite(raw uint64) bool { return !l.isNaN(raw) && !l.isInf(raw) }

func (l layout) isZero(raw uint64) bool { return raw&^l.signMask() == 0 }

func (l layout) isSubnormal(raw uint64) bool {
	_, e, m := l.fields(raw)

	return e == 0 && m != 0
}

func (l layout) isNormal(raw uint64) bool {
	_, e, _ := l.fields(raw)

	return e != 0 && l.isFinite(raw)
}

func (l layout) isNegative(raw uint64) bool {
	if l.finite && l.isNaN(raw) {
		return false
	}

	return raw&l.signMask() != 0
}

// decode returns the value of raw. It is exact whenever the value fits a
// float64.
func (l layout) decode(raw uint64) float64 {
	sign, e, m := l.fields(raw)

	var v float64

	switch {
	case l.isNaN(raw):
		return math.NaN()
	case l.isInf(raw):
		v = math.Inf(1)
	case e == 0:
		v = math.Ldexp(float64(m), 1-l.bias-int(l.man))
	default:
		v = math.Ldexp(float64(1<<l.man|m), int(e)-l.bias-int(l.man))
	}

	if sign {
		return -v
	}

	return v
}

// encode rounds v to the nearest representable pattern, ties to even. Values
// beyond the largest finite number become infinite, or saturate to it in
// finite layouts.
func (l layout) encode(v float64) uint64 {
	var sign uint64
	if math.Signbit(v) {
		sign = l.signMask()
	}

	switch {
	case math.IsNaN(v):
		return l.nan()
	case math.IsInf(v, 0):
		return sign | l.overflow()
	case v == 0:
		return sign
	}

	a := math.Abs(v)
	frac, exp := math.Frexp(a)

	e := exp - 1 + l.bias
	if e <= 0 {
		// Subnormal. Rounding up into the smallest normal sets the low
		// exponent bit on its own.
		m := uint64(math.RoundToEven(math.Ldexp(a, int(l.man)+l.bias-1)))

		return sign | m
	}

	m := uint64(math.RoundToEven((2*frac - 1) * float64(uint64(1)<<l.man)))
	if m > l.manMask() {
		m = 0
		e++
	}

	raw := uint64(e)<<l.man | m
	if uint64(e) > l.maxExp() || raw > l.max() {
		return sign | l.overflow()
	}

	return sign | raw
}

func (l layout) overflow() uint64 {
	if l.finite {
		return l.max()
	}

	return l.inf()
}

func (l layout) equal(a, b uint64) bool {
	return a == b || l.isNaN(a) && l.isNaN(b)
}

// compare orders patterns by value. NaN sorts above everything else and equal
// to itself; the two zeros are equal.
func (l layout) compare(a, b uint64) int {
	an, bn := l.isNaN(a), l.isNaN(b)

	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}

	return cmp.Compare(l.key(a), l.key(b))
}

// key maps sign and magnitude onto a signed integer with the same order.
func (l layout) key(raw uint64) int64 {
	m := int64(raw &^ l.signMask())
	if raw&l.signMask() != 0 {
		return -m
	}

	return m
}
