package bcd

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/numerics"
)

func validPacked[T constraints.Unsigned](raw T) bool {
	for ; raw != 0; raw >>= 4 {
		if raw&0xF > 9 {
			return false
		}
	}

	return true
}

func pack[T constraints.Unsigned](v uint64) T {
	var raw T
	for shift := 0; v != 0; shift += 4 {
		raw |= T(v%10) << shift
		v /= 10
	}

	return raw
}

func unpack[T constraints.Unsigned](raw T) uint64 {
	var v uint64
	for w := uint64(1); raw != 0; raw >>= 4 {
		v += uint64(raw&0xF) * w
		w *= 10
	}

	return v
}

// arith holds the decimal operations shared by every type. The result of
// each is checked against max.
type arith struct {
	name string
	max  uint64
}

func (a arith) check(v uint64, op string, x, y uint64) (uint64, error) {
	if v > a.max {
		return 0, numerics.Errorf(&Error, numerics.ErrOverflow, "%s: %d %s %d", a.name, x, op, y)
	}

	return v, nil
}

func (a arith) add(x, y uint64) (uint64, error) { return a.check(x+y, "+", x, y) }

func (a arith) sub(x, y uint64) (uint64, error) {
	if y > x {
		return 0, numerics.Errorf(&Error, numerics.ErrOverflow, "%s: %d - %d", a.name, x, y)
	}

	return x - y, nil
}

func (a arith) mul(x, y uint64) (uint64, error) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return 0, numerics.Errorf(&Error, numerics.ErrOverflow, "%s: %d * %d", a.name, x, y)
	}

	return a.check(lo, "*", x, y)
}

func (a arith) div(x, y uint64) (uint64, error) {
	if y == 0 {
		return 0, numerics.Errorf(&Error, numerics.ErrDivideByZero, "%s: %d / 0", a.name, x)
	}

	return x / y, nil
}

func (a arith) rem(x, y uint64) (uint64, error) {
	if y == 0 {
		return 0, numerics.Errorf(&Error, numerics.ErrDivideByZero, "%s: %d %% 0", a.name, x)
	}

	return x % y, nil
}

func (a arith) fromValue(v uint64) error {
	if v > a.max {
		return numerics.Errorf(&Error, numerics.ErrOutOfRange, "%d does not fit %s", v, a.name)
	}

	return nil
}

func (a arith) invalidRaw(raw uint64, width int) error {
	return numerics.Errorf(&Error, numerics.ErrInvalidRaw, "%#0*x is not a valid %s", width/4, raw, a.name)
}
