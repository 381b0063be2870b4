package minifloat

import (
	"fmt"
	"math"

	"github.com/x448/float16"
	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// BFloat8 is the upper byte of an IEEE 754 binary16.
type BFloat8 struct {
	raw uint8
}

var _ numerics.Value = BFloat8{}
var _ numerics.Classifier = BFloat8{}
var _ numerics.Ordered[BFloat8] = BFloat8{}

var (
	NegZeroBFloat8 = BFloat8{raw: uint8(e5m2.signMask())}
	OneBFloat8     = BFloat8{raw: uint8(e5m2.one())}
	NegOneBFloat8  = BFloat8{raw: uint8(e5m2.signMask() | e5m2.one())}
	EpsilonBFloat8 = BFloat8{raw: 1}
	MaxBFloat8     = BFloat8{raw: uint8(e5m2.max())}
	MinBFloat8     = BFloat8{raw: uint8(e5m2.signMask() | e5m2.max())}
	NaNBFloat8     = BFloat8{raw: uint8(e5m2.nan())}
	InfBFloat8     = BFloat8{raw: uint8(e5m2.inf())}
	NegInfBFloat8  = BFloat8{raw: uint8(e5m2.signMask() | e5m2.inf())}
)

func BFloat8FromRaw(raw uint8) BFloat8 { return BFloat8{raw: raw} }

func (x BFloat8) Raw() uint8 { return x.raw }

// BFloat8FromFloat32 rounds v to the nearest binary16 and keeps its upper
// byte.
func BFloat8FromFloat32(v float32) BFloat8 {
	if math.IsNaN(float64(v)) {
		return NaNBFloat8
	}

	return BFloat8{raw: uint8(float16.Fromfloat32(v).Bits() >> 8)}
}

func BFloat8FromFloat64(v float64) BFloat8 { return BFloat8FromFloat32(float32(v)) }

func (x BFloat8) Float32() float32 { return float16.Frombits(uint16(x.raw) << 8).Float32() }

func (x BFloat8) Float64() float64 { return float64(x.Float32()) }

func (x BFloat8) IsNaN() bool       { return e5m2.isNaN(uint64(x.raw)) }
func (x BFloat8) IsInf() bool       { return e5m2.isInf(uint64(x.raw)) }
func (x BFloat8) IsFinite() bool    { return e5m2.isFinite(uint64(x.raw)) }
func (x BFloat8) IsNormal() bool    { return e5m2.isNormal(uint64(x.raw)) }
func (x BFloat8) IsSubnormal() bool { return e5m2.isSubnormal(uint64(x.raw)) }
func (x BFloat8) IsZero() bool      { return e5m2.isZero(uint64(x.raw)) }
func (x BFloat8) IsNegative() bool  { return e5m2.isNegative(uint64(x.raw)) }

// Signbit reports whether the sign bit is set.
func (x BFloat8) Signbit() bool { return uint64(x.raw)&e5m2.signMask() != 0 }

// Exponent returns the biased exponent field.
func (x BFloat8) Exponent() uint64 {
	_, e, _ := e5m2.fields(uint64(x.raw))

	return e
}

// Mantissa returns the mantissa field without the implicit leading bit.
func (x BFloat8) Mantissa() uint64 {
	_, _, m := e5m2.fields(uint64(x.raw))

	return m
}

func (x BFloat8) Add(y BFloat8) BFloat8 { return BFloat8FromFloat64(x.Float64() + y.Float64()) }
func (x BFloat8) Sub(y BFloat8) BFloat8 { return BFloat8FromFloat64(x.Float64() - y.Float64()) }
func (x BFloat8) Mul(y BFloat8) BFloat8 { return BFloat8FromFloat64(x.Float64() * y.Float64()) }
func (x BFloat8) Div(y BFloat8) BFloat8 { return BFloat8FromFloat64(x.Float64() / y.Float64()) }

// Rem returns the remainder of x / y with the sign of x, like math.Mod.
func (x BFloat8) Rem(y BFloat8) BFloat8 { return BFloat8FromFloat64(math.Mod(x.Float64(), y.Float64())) }

func (x BFloat8) Inc() BFloat8 { return BFloat8FromFloat64(x.Float64() + 1) }
func (x BFloat8) Dec() BFloat8 { return BFloat8FromFloat64(x.Float64() - 1) }

// Neg flips the sign bit.
func (x BFloat8) Neg() BFloat8 { return BFloat8{raw: x.raw ^ uint8(e5m2.signMask())} }

// Abs clears the sign bit.
func (x BFloat8) Abs() BFloat8 { return BFloat8{raw: x.raw &^ uint8(e5m2.signMask())} }

// CopySign returns x with the sign bit of sign.
func (x BFloat8) CopySign(sign BFloat8) BFloat8 {
	m := uint8(e5m2.signMask())

	return BFloat8{raw: x.raw&^m | sign.raw&m}
}

// Equal reports whether x and y have the same pattern. Every NaN equals every
// other NaN.
func (x BFloat8) Equal(y BFloat8) bool { return e5m2.equal(uint64(x.raw), uint64(y.raw)) }

// Compare orders x and y by value with NaN above everything else.
func (x BFloat8) Compare(y BFloat8) int { return e5m2.compare(uint64(x.raw), uint64(y.raw)) }

func (x BFloat8) CompareAny(other any) (int, error) { return numerics.CompareAny(x, other) }

func (BFloat8) Bits() int { return 8 }

func (x BFloat8) AppendRaw(dst []byte) []byte { return append(dst, x.raw) }

// String returns the shortest decimal text that parses back to x.
func (x BFloat8) String() string { return numerics.FormatFloat(x.Float64()) }

func (x BFloat8) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, x.String(), x.Float64())
}

// ParseBFloat8 parses decimal text, NaN or an infinity.
func ParseBFloat8(s string) (BFloat8, error) {
	v, err := numerics.ParseFloat(&Error, "BFloat8", s)
	if err != nil {
		return BFloat8{}, err
	}

	return BFloat8FromFloat64(v), nil
}

func TryParseBFloat8(s string) (BFloat8, bool) { return numerics.Try(ParseBFloat8(s)) }

func ParseBFloat8Locale(s string, tag language.Tag) (BFloat8, error) {
	return ParseBFloat8(numerics.Delocalize(s, tag))
}

// BFloat16 widens x exactly.
func (x BFloat8) BFloat16() BFloat16 { return BFloat16FromFloat32(x.Float32()) }
