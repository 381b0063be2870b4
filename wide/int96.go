package wide

import (
	"fmt"
	"math"
	"math/big"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// Int96 is a signed two's complement 96 bit integer.
type Int96 struct {
	bits UInt96
}

var _ numerics.Value = Int96{}
var _ numerics.Ordered[Int96] = Int96{}

var (
	// MaxInt96 is 2^95 - 1.
	MaxInt96 = Int96{bits: UInt96{upper: math.MaxInt32, lower: math.MaxUint64}}

	// MinInt96 is -2^95.
	MinInt96 = Int96{bits: UInt96{upper: 1 << 31}}

	minInt96Big = MinInt96.Big()
	maxInt96Big = MaxInt96.Big()
)

// NewInt96 returns the Int96 with the given two's complement words.
func NewInt96(upper uint32, lower uint64) Int96 {
	return Int96{bits: New(upper, lower)}
}

// FromInt64 returns v as an Int96.
func FromInt64(v int64) Int96 {
	return Int96{bits: UInt96{upper: uint32(v >> 63), lower: uint64(v)}}
}

// FromBigInt96 returns v as an Int96. Values outside [-2^95, 2^95) are out of
// range.
func FromBigInt96(v *big.Int) (Int96, error) {
	if v.Cmp(minInt96Big) < 0 || v.Cmp(maxInt96Big) > 0 {
		return Int96{}, numerics.Errorf(&Error, numerics.ErrOutOfRange, "%s does not fit Int96", v)
	}

	m := Int96{bits: fromBigBits(v)}
	if v.Sign() < 0 {
		return m.Neg(), nil
	}

	return m, nil
}

// Upper returns the upper 32 bits.
func (a Int96) Upper() uint32 { return a.bits.upper }

// Lower returns the lower 64 bits.
func (a Int96) Lower() uint64 { return a.bits.lower }

// UInt96 reinterprets a as unsigned. Negative values are out of range.
func (a Int96) UInt96() (UInt96, error) {
	if a.Sign() < 0 {
		return UInt96{}, numerics.Errorf(&Error, numerics.ErrOutOfRange, "%s does not fit UInt96", a)
	}

	return a.bits, nil
}

// Sign returns -1, 0 or +1.
func (a Int96) Sign() int {
	switch {
	case a.bits.upper>>31 != 0:
		return -1
	case a.bits.IsZero():
		return 0
	}

	return 1
}

// IsZero reports whether a is zero.
func (a Int96) IsZero() bool { return a.bits.IsZero() }

// magnitude returns |a|. The magnitude of MinInt96 is 2^95.
func (a Int96) magnitude() UInt96 {
	if a.Sign() < 0 {
		return a.Neg().bits
	}

	return a.bits
}

// Big returns a as a big.Int.
func (a Int96) Big() *big.Int {
	m := a.magnitude().Big()
	if a.Sign() < 0 {
		return m.Neg(m)
	}

	return m
}

// Float64 returns the nearest float64 to a.
func (a Int96) Float64() float64 {
	f := a.magnitude().Float64()
	if a.Sign() < 0 {
		return -f
	}

	return f
}

// Neg returns -a. The negation of MinInt96 is MinInt96.
func (a Int96) Neg() Int96 {
	return Int96{bits: a.bits.Not().Inc()}
}

// Abs returns |a|. The absolute value of MinInt96 is MinInt96.
func (a Int96) Abs() Int96 {
	if a.Sign() < 0 {
		return a.Neg()
	}

	return a
}

// Add returns a + b, wrapping on overflow.
func (a Int96) Add(b Int96) Int96 { return Int96{bits: a.bits.Add(b.bits)} }

// Sub returns a - b, wrapping on overflow.
func (a Int96) Sub(b Int96) Int96 { return Int96{bits: a.bits.Sub(b.bits)} }

// Mul returns a * b, wrapping on overflow.
func (a Int96) Mul(b Int96) Int96 { return Int96{bits: a.bits.Mul(b.bits)} }

// Inc returns a + 1.
func (a Int96) Inc() Int96 { return Int96{bits: a.bits.Inc()} }

// Dec returns a - 1.
func (a Int96) Dec() Int96 { return Int96{bits: a.bits.Dec()} }

// QuoRem returns the quotient truncated toward zero and the remainder, which
// takes the sign of a. MinInt96 / -1 wraps to MinInt96.
func (a Int96) QuoRem(b Int96) (q, r Int96, err error) {
	mq, mr, err := a.magnitude().QuoRem(b.magnitude())
	if err != nil {
		return Int96{}, Int96{}, err
	}

	q, r = Int96{bits: mq}, Int96{bits: mr}

	if (a.Sign() < 0) != (b.Sign() < 0) {
		q = q.Neg()
	}

	if a.Sign() < 0 {
		r = r.Neg()
	}

	return q, r, nil
}

// Div returns a / b truncated toward zero.
func (a Int96) Div(b Int96) (Int96, error) {
	q, _, err := a.QuoRem(b)

	return q, err
}

// Rem returns the remainder of a / b.
func (a Int96) Rem(b Int96) (Int96, error) {
	_, r, err := a.QuoRem(b)

	return r, err
}

// And returns a & b.
func (a Int96) And(b Int96) Int96 { return Int96{bits: a.bits.And(b.bits)} }

// Or returns a | b.
func (a Int96) Or(b Int96) Int96 { return Int96{bits: a.bits.Or(b.bits)} }

// Xor returns a ^ b.
func (a Int96) Xor(b Int96) Int96 { return Int96{bits: a.bits.Xor(b.bits)} }

// Not returns ^a.
func (a Int96) Not() Int96 { return Int96{bits: a.bits.Not()} }

// Lsh returns a << (n mod 96).
func (a Int96) Lsh(n uint) Int96 { return Int96{bits: a.bits.Lsh(n)} }

// Rsh returns a >> (n mod 96), replicating the sign bit.
func (a Int96) Rsh(n uint) Int96 {
	if a.Sign() < 0 {
		return Int96{bits: a.bits.Not().Rsh(n).Not()}
	}

	return Int96{bits: a.bits.Rsh(n)}
}

// URsh returns a >> (n mod 96), shifting in zeros.
func (a Int96) URsh(n uint) Int96 { return Int96{bits: a.bits.Rsh(n)} }

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (a Int96) Compare(b Int96) int {
	// Flipping the sign bit maps two's complement order onto unsigned order.
	flip := UInt96{upper: 1 << 31}

	return a.bits.Xor(flip).Compare(b.bits.Xor(flip))
}

// Equal reports whether a == b.
func (a Int96) Equal(b Int96) bool { return a == b }

// CompareAny compares a with an untyped operand.
func (a Int96) CompareAny(other any) (int, error) {
	return numerics.CompareAny(a, other)
}

// Bits returns 96.
func (Int96) Bits() int { return width }

// AppendRaw appends the 12 byte big-endian two's complement representation.
func (a Int96) AppendRaw(dst []byte) []byte { return a.bits.AppendRaw(dst) }

// String returns the decimal representation of a.
func (a Int96) String() string {
	if a.Sign() < 0 {
		return "-" + a.magnitude().String()
	}

	return a.bits.String()
}

// Format implements fmt.Formatter.
func (a Int96) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Big())
}

// ParseInt96 parses signed decimal text. Text outside the Int96 range
// overflows.
func ParseInt96(s string) (Int96, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int96{}, numerics.SyntaxError(&Error, "Int96", s)
	}

	a, err := FromBigInt96(v)
	if err != nil {
		return Int96{}, numerics.Errorf(&Error, numerics.ErrOverflow, "%s does not fit Int96", s)
	}

	return a, nil
}

// TryParseInt96 is like ParseInt96 but reports failure with a boolean.
func TryParseInt96(s string) (Int96, bool) {
	v, err := ParseInt96(s)
	if err != nil {
		return Int96{}, false
	}

	return v, true
}

// ParseInt96Locale parses text written with the conventions of tag.
func ParseInt96Locale(s string, tag language.Tag) (Int96, error) {
	return ParseInt96(numerics.Delocalize(s, tag))
}
