package minifloat

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// BFloat16 is the upper half of an IEEE 754 binary32.
type BFloat16 struct {
	raw uint16
}

var _ numerics.Value = BFloat16{}
var _ numerics.Classifier = BFloat16{}
var _ numerics.Ordered[BFloat16] = BFloat16{}

var (
	NegZeroBFloat16 = BFloat16{raw: uint16(bf16.signMask())}
	OneBFloat16     = BFloat16{raw: uint16(bf16.one())}
	NegOneBFloat16  = BFloat16{raw: uint16(bf16.signMask() | bf16.one())}
	EpsilonBFloat16 = BFloat16{raw: 1}
	MaxBFloat16     = BFloat16{raw: uint16(bf16.max())}
	MinBFloat16     = BFloat16{raw: uint16(bf16.signMask() | bf16.max())}
	NaNBFloat16     = BFloat16{raw: uint16(bf16.nan())}
	InfBFloat16     = BFloat16{raw: uint16(bf16.inf())}
	NegInfBFloat16  = BFloat16{raw: uint16(bf16.signMask() | bf16.inf())}
)

func BFloat16FromRaw(raw uint16) BFloat16 { return BFloat16{raw: raw} }

func (x BFloat16) Raw() uint16 { return x.raw }

// BFloat16FromFloat32 truncates v to its upper 16 bits.
func BFloat16FromFloat32(v float32) BFloat16 {
	if math.IsNaN(float64(v)) {
		return NaNBFloat16
	}

	return BFloat16{raw: uint16(math.Float32bits(v) >> 16)}
}

func BFloat16FromFloat64(v float64) BFloat16 { return BFloat16FromFloat32(float32(v)) }

func (x BFloat16) Float32() float32 { return math.Float32frombits(uint32(x.raw) << 16) }

func (x BFloat16) Float64() float64 { return float64(x.Float32()) }

func (x BFloat16) IsNaN() bool       { return bf16.isNaN(uint64(x.raw)) }
func (x BFloat16) IsInf() bool       { return bf16.isInf(uint64(x.raw)) }
func (x BFloat16) IsFinite() bool    { return bf16.isFinite(uint64(x.raw)) }
func (x BFloat16) IsNormal() bool    { return bf16.isNormal(uint64(x.raw)) }
func (x BFloat16) IsSubnormal() bool { return bf16.isSubnormal(uint64(x.raw)) }
func (x BFloat16) IsZero() bool      { return bf16.isZero(uint64(x.raw)) }
func (x BFloat16) IsNegative() bool  { return bf16.isNegative(uint64(x.raw)) }

// Signbit reports whether the sign bit is set.
func (x BFloat16) Signbit() bool { return uint64(x.raw)&bf16.signMask() != 0 }

// Exponent returns the biased exponent field.
func (x BFloat16) Exponent() uint64 {
	_, e, _ := bf16.fields(uint64(x.raw))

	return e
}

// Mantissa returns the mantissa field without the implicit leading bit.
func (x BFloat16) Mantissa() uint64 {
	_, _, m := bf16.fields(uint64(x.raw))

	return m
}

func (x BFloat16) Add(y BFloat16) BFloat16 { return BFloat16FromFloat64(x.Float64() + y.Float64()) }
func (x BFloat16) Sub(y BFloat16) BFloat16 { return BFloat16FromFloat64(x.Float64() - y.Float64()) }
func (x BFloat16) Mul(y BFloat16) BFloat16 { return BFloat16FromFloat64(x.Float64() * y.Float64()) }
func (x BFloat16) Div(y BFloat16) BFloat16 { return BFloat16FromFloat64(x.Float64() / y.Float64()) }

// Rem returns the remainder of x / y with the sign of x, like math.Mod.
func (x BFloat16) Rem(y BFloat16) BFloat16 { return BFloat16FromFloat64(math.Mod(x.Float64(), y.Float64())) }

func (x BFloat16) Inc() BFloat16 { return BFloat16FromFloat64(x.Float64() + 1) }
func (x BFloat16) Dec() BFloat16 { return BFloat16FromFloat64(x.Float64() - 1) }

// Neg flips the sign bit.
func (x BFloat16) Neg() BFloat16 { return BFloat16{raw: x.raw ^ uint16(bf16.signMask())} }

// Abs clears the sign bit.
func (x BFloat16) Abs() BFloat16 { return BFloat16{raw: x.raw &^ uint16(bf16.signMask())} }

// CopySign returns x with the sign bit of sign.
func (x BFloat16) CopySign(sign BFloat16) BFloat16 {
	m := uint16(bf16.signMask())

	return BFloat16{raw: x.raw&^m | sign.raw&m}
}

// Equal reports whether x and y have the same pattern. Every NaN equals every
// other NaN.
func (x BFloat16) Equal(y BFloat16) bool { return bf16.equal(uint64(x.raw), uint64(y.raw)) }

// Compare orders x and y by value with NaN above everything else.
func (x BFloat16) Compare(y BFloat16) int { return bf16.compare(uint64(x.raw), uint64(y.raw)) }

func (x BFloat16) CompareAny(other any) (int, error) { return numerics.CompareAny(x, other) }

func (BFloat16) Bits() int { return 16 }

func (x BFloat16) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint16(dst, x.raw) }

// String returns the shortest decimal text that parses back to x.
func (x BFloat16) String() string { return numerics.FormatFloat(x.Float64()) }

func (x BFloat16) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, x.String(), x.Float64())
}

// ParseBFloat16 parses decimal text, NaN or an infinity.
func ParseBFloat16(s string) (BFloat16, error) {
	v, err := numerics.ParseFloat(&Error, "BFloat16", s)
	if err != nil {
		return BFloat16{}, err
	}

	return BFloat16FromFloat64(v), nil
}

func TryParseBFloat16(s string) (BFloat16, bool) { return numerics.Try(ParseBFloat16(s)) }

func ParseBFloat16Locale(s string, tag language.Tag) (BFloat16, error) {
	return ParseBFloat16(numerics.Delocalize(s, tag))
}

// BFloat8 narrows x.
func (x BFloat16) BFloat8() BFloat8 { return BFloat8FromFloat32(x.Float32()) }

// BFloat32 widens x exactly.
func (x BFloat16) BFloat32() BFloat32 { return BFloat32FromFloat32(x.Float32()) }
