package wide

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// UInt96 is an unsigned 96 bit integer made of a 32 bit upper word and a 64
// bit lower word. Its value is upper*2^64 + lower.
type UInt96 struct {
	upper uint32
	lower uint64
}

var _ numerics.Value = UInt96{}
var _ numerics.Ordered[UInt96] = UInt96{}

// MaxUInt96 is the largest UInt96, 2^96 - 1.
var MaxUInt96 = UInt96{upper: math.MaxUint32, lower: math.MaxUint64}

const (
	width = 96

	// 2^96 - 1 has 29 decimal digits.
	maxDigits = 29

	two64 = 1 << 64
)

// New returns the UInt96 with the given words.
func New(upper uint32, lower uint64) UInt96 {
	return UInt96{upper: upper, lower: lower}
}

// FromUint64 returns v as a UInt96.
func FromUint64(v uint64) UInt96 {
	return UInt96{lower: v}
}

// FromUint32 returns v as a UInt96.
func FromUint32(v uint32) UInt96 {
	return UInt96{lower: uint64(v)}
}

// FromBig returns v as a UInt96. Negative values and values of more than 96
// bits are out of range.
func FromBig(v *big.Int) (UInt96, error) {
	if v.Sign() < 0 || v.BitLen() > width {
		return UInt96{}, numerics.Errorf(&Error, numerics.ErrOutOfRange, "%s does not fit UInt96", v)
	}

	return fromBigBits(v), nil
}

// fromBigBits takes the low 96 bits of the magnitude of v.
func fromBigBits(v *big.Int) UInt96 {
	var buf [16]byte
	new(big.Int).Abs(v).FillBytes(buf[:])

	return UInt96{
		upper: binary.BigEndian.Uint32(buf[4:8]),
		lower: binary.BigEndian.Uint64(buf[8:16]),
	}
}

// FromFloat64 truncates f toward zero. NaN, negative values and values of 2^96
// or more are out of range.
func FromFloat64(f float64) (UInt96, error) {
	if math.IsNaN(f) || f <= -1 || f >= two64*(1<<32) {
		return UInt96{}, numerics.Errorf(&Error, numerics.ErrOutOfRange, "%v does not fit UInt96", f)
	}

	f = math.Trunc(f)
	if f < two64 {
		return FromUint64(uint64(f)), nil
	}

	upper := math.Floor(f / two64)

	return UInt96{
		upper: uint32(upper),
		lower: uint64(f - upper*two64),
	}, nil
}

// Upper returns the upper 32 bits.
func (a UInt96) Upper() uint32 { return a.upper }

// Lower returns the lower 64 bits.
func (a UInt96) Lower() uint64 { return a.lower }

// Uint64 returns the lower 64 bits. See IsUint64.
func (a UInt96) Uint64() uint64 { return a.lower }

// IsUint64 reports whether a fits in a uint64.
func (a UInt96) IsUint64() bool { return a.upper == 0 }

// IsZero reports whether a is zero.
func (a UInt96) IsZero() bool { return a.upper == 0 && a.lower == 0 }

// Big returns a as a big.Int.
func (a UInt96) Big() *big.Int {
	v := new(big.Int).SetUint64(uint64(a.upper))
	v.Lsh(v, 64)

	return v.Or(v, new(big.Int).SetUint64(a.lower))
}

// Float64 returns the nearest float64 to upper*2^64 + lower. Values above 2^53
// lose precision.
func (a UInt96) Float64() float64 {
	return float64(a.upper)*two64 + float64(a.lower)
}

// Int96 reinterprets a as signed. Values of 2^95 or more are out of range.
func (a UInt96) Int96() (Int96, error) {
	if a.upper>>31 != 0 {
		return Int96{}, numerics.Errorf(&Error, numerics.ErrOutOfRange, "%s does not fit Int96", a)
	}

	return Int96{bits: a}, nil
}

// Add returns a + b, wrapping on overflow.
func (a UInt96) Add(b UInt96) UInt96 {
	lower := a.lower + b.lower

	var carry uint32
	if lower < a.lower {
		carry = 1
	}

	return UInt96{upper: a.upper + b.upper + carry, lower: lower}
}

// Sub returns a - b, wrapping on underflow.
func (a UInt96) Sub(b UInt96) UInt96 {
	lower := a.lower - b.lower

	var borrow uint32
	if lower > a.lower {
		borrow = 1
	}

	return UInt96{upper: a.upper - b.upper - borrow, lower: lower}
}

// Inc returns a + 1.
func (a UInt96) Inc() UInt96 { return a.Add(UInt96{lower: 1}) }

// Dec returns a - 1.
func (a UInt96) Dec() UInt96 { return a.Sub(UInt96{lower: 1}) }

// Mul returns a * b truncated to 96 bits. Both operands are split into three
// 32 bit limbs and the partial products below 2^96 are summed.
func (a UInt96) Mul(b UInt96) UInt96 {
	a0, a1, a2 := uint64(uint32(a.lower)), uint64(a.lower>>32), uint64(a.upper)
	b0, b1, b2 := uint64(uint32(b.lower)), uint64(b.lower>>32), uint64(b.upper)

	p := a0 * b0
	r0 := uint32(p)
	carry := p >> 32

	p = carry + a0*b1
	mid := p & math.MaxUint32
	carry = p >> 32

	p = mid + a1*b0
	r1 := uint32(p)
	carry += p >> 32

	r2 := uint32(carry) + uint32(a0*b2) + uint32(a1*b1) + uint32(a2*b0)

	return UInt96{
		upper: r2,
		lower: uint64(r1)<<32 | uint64(r0),
	}
}

// QuoRem returns the quotient and remainder of a / b.
func (a UInt96) QuoRem(b UInt96) (q, r UInt96, err error) {
	if b.IsZero() {
		return UInt96{}, UInt96{}, numerics.Errorf(&Error, numerics.ErrDivideByZero, "%s / 0", a)
	}

	if a.Compare(b) < 0 {
		return UInt96{}, a, nil
	}

	if a.upper == 0 {
		return FromUint64(a.lower / b.lower), FromUint64(a.lower % b.lower), nil
	}

	// Restoring long division, one dividend bit at a time from the most
	// significant set bit down.
	for i := width - 1 - a.LeadingZeros(); i >= 0; i-- {
		overflow := r.upper>>31 != 0

		r = r.Lsh(1)
		r.lower |= uint64(a.bit(uint(i)))

		if overflow || r.Compare(b) >= 0 {
			r = r.Sub(b)
			q = q.setBit(uint(i))
		}
	}

	return q, r, nil
}

// Div returns a / b.
func (a UInt96) Div(b UInt96) (UInt96, error) {
	q, _, err := a.QuoRem(b)

	return q, err
}

// Rem returns a % b.
func (a UInt96) Rem(b UInt96) (UInt96, error) {
	_, r, err := a.QuoRem(b)

	return r, err
}

// quoRem32 divides a by a single limb.
func (a UInt96) quoRem32(d uint32) (UInt96, uint32) {
	upper, r := a.upper/d, a.upper%d
	lower, rem := bits.Div64(uint64(r), a.lower, uint64(d))

	return UInt96{upper: upper, lower: lower}, uint32(rem)
}

func (a UInt96) bit(i uint) uint32 {
	if i >= 64 {
		return (a.upper >> (i - 64)) & 1
	}

	return uint32(a.lower>>i) & 1
}

func (a UInt96) setBit(i uint) UInt96 {
	if i >= 64 {
		a.upper |= 1 << (i - 64)
	} else {
		a.lower |= 1 << i
	}

	return a
}

// And returns a & b.
func (a UInt96) And(b UInt96) UInt96 {
	return UInt96{upper: a.upper & b.upper, lower: a.lower & b.lower}
}

// AndNot returns a &^ b.
func (a UInt96) AndNot(b UInt96) UInt96 {
	return UInt96{upper: a.upper &^ b.upper, lower: a.lower &^ b.lower}
}

// Or returns a | b.
func (a UInt96) Or(b UInt96) UInt96 {
	return UInt96{upper: a.upper | b.upper, lower: a.lower | b.lower}
}

// Xor returns a ^ b.
func (a UInt96) Xor(b UInt96) UInt96 {
	return UInt96{upper: a.upper ^ b.upper, lower: a.lower ^ b.lower}
}

// Not returns ^a.
func (a UInt96) Not() UInt96 {
	return UInt96{upper: ^a.upper, lower: ^a.lower}
}

// Lsh returns a << (n mod 96).
func (a UInt96) Lsh(n uint) UInt96 {
	n %= width

	switch {
	case n == 0:
		return a
	case n < 64:
		return UInt96{
			upper: a.upper<<n | uint32(a.lower>>(64-n)),
			lower: a.lower << n,
		}
	default:
		return UInt96{upper: uint32(a.lower << (n - 64))}
	}
}

// Rsh returns a >> (n mod 96), shifting in zeros.
func (a UInt96) Rsh(n uint) UInt96 {
	n %= width

	switch {
	case n == 0:
		return a
	case n < 64:
		return UInt96{
			upper: a.upper >> n,
			lower: a.lower>>n | uint64(a.upper)<<(64-n),
		}
	default:
		return UInt96{lower: uint64(a.upper) >> (n - 64)}
	}
}

// RotateLeft returns a rotated left by (k mod 96) bits. To rotate right, call
// RotateLeft(-k).
func (a UInt96) RotateLeft(k int) UInt96 {
	n := uint(((k % width) + width) % width)
	if n == 0 {
		return a
	}

	return a.Lsh(n).Or(a.Rsh(width - n))
}

// RotateRight returns a rotated right by (k mod 96) bits.
func (a UInt96) RotateRight(k int) UInt96 {
	return a.RotateLeft(-k)
}

// LeadingZeros returns the number of leading zero bits; 96 for zero.
func (a UInt96) LeadingZeros() int {
	if a.upper != 0 {
		return bits.LeadingZeros32(a.upper)
	}

	return 32 + bits.LeadingZeros64(a.lower)
}

// TrailingZeros returns the number of trailing zero bits; 96 for zero.
func (a UInt96) TrailingZeros() int {
	if a.lower != 0 {
		return bits.TrailingZeros64(a.lower)
	}

	return 64 + bits.TrailingZeros32(a.upper)
}

// OnesCount returns the number of one bits.
func (a UInt96) OnesCount() int {
	return bits.OnesCount32(a.upper) + bits.OnesCount64(a.lower)
}

// Log2 returns the integer base 2 logarithm of a; 0 for zero.
func (a UInt96) Log2() int {
	if a.IsZero() {
		return 0
	}

	return width - 1 - a.LeadingZeros()
}

// IsPow2 reports whether a is a power of two.
func (a UInt96) IsPow2() bool {
	return a.OnesCount() == 1
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (a UInt96) Compare(b UInt96) int {
	switch {
	case a.upper < b.upper:
		return -1
	case a.upper > b.upper:
		return 1
	case a.lower < b.lower:
		return -1
	case a.lower > b.lower:
		return 1
	}

	return 0
}

// Equal reports whether a == b.
func (a UInt96) Equal(b UInt96) bool { return a == b }

// CompareAny compares a with an untyped operand.
func (a UInt96) CompareAny(other any) (int, error) {
	return numerics.CompareAny(a, other)
}

// Bits returns 96.
func (UInt96) Bits() int { return width }

// AppendRaw appends the 12 byte big-endian representation of a.
func (a UInt96) AppendRaw(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, a.upper)

	return binary.BigEndian.AppendUint64(dst, a.lower)
}

// String returns the decimal representation of a.
func (a UInt96) String() string {
	if a.upper == 0 {
		return strconv.FormatUint(a.lower, 10)
	}

	var buf [maxDigits]byte
	i := len(buf)

	for !a.IsZero() {
		var d uint32
		a, d = a.quoRem32(10)
		i--
		buf[i] = byte('0' + d)
	}

	return string(buf[i:])
}

// Format implements fmt.Formatter.
func (a UInt96) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Big())
}

// Parse parses decimal text. Text that does not fit in 96 bits overflows.
func Parse(s string) (UInt96, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return UInt96{}, numerics.SyntaxError(&Error, "UInt96", s)
	}

	if v.Sign() < 0 || v.BitLen() > width {
		return UInt96{}, numerics.Errorf(&Error, numerics.ErrOverflow, "%s does not fit UInt96", s)
	}

	return fromBigBits(v), nil
}

// TryParse is like Parse but reports failure with a boolean.
func TryParse(s string) (UInt96, bool) {
	v, err := Parse(s)
	if err != nil {
		return UInt96{}, false
	}

	return v, true
}

// ParseLocale parses text written with the conventions of tag.
func ParseLocale(s string, tag language.Tag) (UInt96, error) {
	return Parse(numerics.Delocalize(s, tag))
}
