package minifloat

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// BFloat32 is the upper half of an IEEE 754 binary64.
type BFloat32 struct {
	raw uint32
}

var _ numerics.Value = BFloat32{}
var _ numerics.Classifier = BFloat32{}
var _ numerics.Ordered[BFloat32] = BFloat32{}

var (
	NegZeroBFloat32 = BFloat32{raw: uint32(bf32.signMask())}
	OneBFloat32     = BFloat32{raw: uint32(bf32.one())}
	NegOneBFloat32  = BFloat32{raw: uint32(bf32.signMask() | bf32.one())}
	EpsilonBFloat32 = BFloat32{raw: 1}
	MaxBFloat32     = BFloat32{raw: uint32(bf32.max())}
	MinBFloat32     = BFloat32{raw: uint32(bf32.signMask() | bf32.max())}
	NaNBFloat32     = BFloat32{raw: uint32(bf32.nan())}
	InfBFloat32     = BFloat32{raw: uint32(bf32.inf())}
	NegInfBFloat32  = BFloat32{raw: uint32(bf32.signMask() | bf32.inf())}
)

func BFloat32FromRaw(raw uint32) BFloat32 { return BFloat32{raw: raw} }

func (x BFloat32) Raw() uint32 { return x.raw }

func BFloat32FromFloat32(v float32) BFloat32 { return BFloat32FromFloat64(float64(v)) }

// BFloat32FromFloat64 truncates v to its upper 32 bits.
func BFloat32FromFloat64(v float64) BFloat32 {
	if math.IsNaN(v) {
		return NaNBFloat32
	}

	return BFloat32{raw: uint32(math.Float64bits(v) >> 32)}
}

func (x BFloat32) Float32() float32 { return float32(x.Float64()) }

func (x BFloat32) Float64() float64 { return math.Float64frombits(uint64(x.raw) << 32) }

func (x BFloat32) IsNaN() bool       { return bf32.isNaN(uint64(x.raw)) }
func (x BFloat32) IsInf() bool       { return bf32.isInf(uint64(x.raw)) }
func (x BFloat32) IsFinite() bool    { return bf32.isFinite(uint64(x.raw)) }
func (x BFloat32) IsNormal() bool    { return bf32.isNormal(uint64(x.raw)) }
func (x BFloat32) IsSubnormal() bool { return bf32.isSubnormal(uint64(x.raw)) }
func (x BFloat32) IsZero() bool      { return bf32.isZero(uint64(x.raw)) }
func (x BFloat32) IsNegative() bool  { return bf32.isNegative(uint64(x.raw)) }

// Signbit reports whether the sign bit is set.
func (x BFloat32) Signbit() bool { return uint64(x.raw)&bf32.signMask() != 0 }

// Exponent returns the biased exponent field.
func (x BFloat32) Exponent() uint64 {
	_, e, _ := bf32.fields(uint64(x.raw))

	return e
}

// Mantissa returns the mantissa field without the implicit leading bit.
func (x BFloat32) Mantissa() uint64 {
	_, _, m := bf32.fields(uint64(x.raw))

	return m
}

func (x BFloat32) Add(y BFloat32) BFloat32 { return BFloat32FromFloat64(x.Float64() + y.Float64()) }
func (x BFloat32) Sub(y BFloat32) BFloat32 { return BFloat32FromFloat64(x.Float64() - y.Float64()) }
func (x BFloat32) Mul(y BFloat32) BFloat32 { return BFloat32FromFloat64(x.Float64() * y.Float64()) }
func (x BFloat32) Div(y BFloat32) BFloat32 { return BFloat32FromFloat64(x.Float64() / y.Float64()) }

// Rem returns the remainder of x / y with the sign of x, like math.Mod.
func (x BFloat32) Rem(y BFloat32) BFloat32 { return BFloat32FromFloat64(math.Mod(x.Float64(), y.Float64())) }

func (x BFloat32) Inc() BFloat32 { return BFloat32FromFloat64(x.Float64() + 1) }
func (x BFloat32) Dec() BFloat32 { return BFloat32FromFloat64(x.Float64() - 1) }

// Neg flips the sign bit.
func (x BFloat32) Neg() BFloat32 { return BFloat32{raw: x.raw ^ uint32(bf32.signMask())} }

// Abs clears the sign bit.
func (x BFloat32) Abs() BFloat32 { return BFloat32{raw: x.raw &^ uint32(bf32.signMask())} }

// CopySign returns x with the sign bit of sign.
func (x BFloat32) CopySign(sign BFloat32) BFloat32 {
	m := uint32(bf32.signMask())

	return BFloat32{raw: x.raw&^m | sign.raw&m}
}

// Equal reports whether x and y have the same pattern. Every NaN equals every
// other NaN.
func (x BFloat32) Equal(y BFloat32) bool { return bf32.equal(uint64(x.raw), uint64(y.raw)) }

// Compare orders x and y by value with NaN above everything else.
func (x BFloat32) Compare(y BFloat32) int { return bf32.compare(uint64(x.raw), uint64(y.raw)) }

func (x BFloat32) CompareAny(other any) (int, error) { return numerics.CompareAny(x, other) }

func (BFloat32) Bits() int { return 32 }

func (x BFloat32) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint32(dst, x.raw) }

// String returns the shortest decimal text that parses back to x.
func (x BFloat32) String() string { return numerics.FormatFloat(x.Float64()) }

func (x BFloat32) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, x.String(), x.Float64())
}

// ParseBFloat32 parses decimal text, NaN or an infinity.
func ParseBFloat32(s string) (BFloat32, error) {
	v, err := numerics.ParseFloat(&Error, "BFloat32", s)
	if err != nil {
		return BFloat32{}, err
	}

	return BFloat32FromFloat64(v), nil
}

func TryParseBFloat32(s string) (BFloat32, bool) { return numerics.Try(ParseBFloat32(s)) }

func ParseBFloat32Locale(s string, tag language.Tag) (BFloat32, error) {
	return ParseBFloat32(numerics.Delocalize(s, tag))
}

// BFloat16 narrows x.
func (x BFloat32) BFloat16() BFloat16 { return BFloat16FromFloat64(x.Float64()) }

// BFloat64 widens x exactly.
func (x BFloat32) BFloat64() BFloat64 { return BFloat64FromFloat64(x.Float64()) }
