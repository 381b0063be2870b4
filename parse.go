package numerics

import (
	"errors"
	"strconv"

	"github.com/zeebo/errs"
)

// ParseUint parses decimal text into an unsigned integer of bitSize bits.
func ParseUint(class *errs.Class, typ, s string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, parseError(class, typ, s, err)
	}

	return v, nil
}

// ParseInt parses decimal text into a signed integer of bitSize bits.
func ParseInt(class *errs.Class, typ, s string, bitSize int) (int64, error) {
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, parseError(class, typ, s, err)
	}

	return v, nil
}

// ParseFloat parses decimal text, including NaN and the infinities. Text
// beyond the float64 range parses as the signed infinity.
func ParseFloat(class *errs.Class, typ, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, SyntaxError(class, typ, s)
	}

	return v, nil
}

func parseError(class *errs.Class, typ, s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return Errorf(class, ErrOverflow, "%q does not fit %s", s, typ)
	}

	return SyntaxError(class, typ, s)
}

// Try turns a (value, error) result into a (value, ok) one. The value is the
// zero value whenever err is not nil.
func Try[T any](v T, err error) (T, bool) {
	if err != nil {
		var zero T

		return zero, false
	}

	return v, true
}
