package numerics

import "fmt"

// Value is implemented by every numeric type.
type Value interface {
	fmt.Stringer

	// Bits returns the width of the raw bit pattern.
	Bits() int

	// AppendRaw appends the raw bit pattern, big-endian and full width.
	AppendRaw(dst []byte) []byte
}

// Classifier is implemented by the floating point types.
type Classifier interface {
	IsNaN() bool
	IsInf() bool
	IsFinite() bool
	IsNormal() bool
	IsSubnormal() bool
	IsZero() bool
	IsNegative() bool
}

// Ordered is implemented by every numeric type T for itself.
type Ordered[T any] interface {
	Compare(other T) int
	Equal(other T) bool
}

// CompareAny compares x with an untyped operand. A nil operand sorts before
// every value. Operands of a different type yield ErrTypeMismatch.
func CompareAny[T Ordered[T]](x T, other any) (int, error) {
	switch o := other.(type) {
	case nil:
		return 1, nil
	case T:
		return x.Compare(o), nil
	}

	return 0, Errorf(&Error, ErrTypeMismatch, "cannot compare %T with %T", x, other)
}
