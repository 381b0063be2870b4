package minifloat

import (
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// E4M3 is the 8 bit float with 4 exponent and 3 mantissa bits. It has no
// infinities and a single NaN magnitude, which extends its range to 448.
type E4M3 struct {
	raw uint8
}

var _ numerics.Value = E4M3{}
var _ numerics.Classifier = E4M3{}
var _ numerics.Ordered[E4M3] = E4M3{}

var (
	NegZeroE4M3 = E4M3{raw: uint8(e4m3.signMask())}
	OneE4M3     = E4M3{raw: uint8(e4m3.one())}
	NegOneE4M3  = E4M3{raw: uint8(e4m3.signMask() | e4m3.one())}
	EpsilonE4M3 = E4M3{raw: 1}
	MaxE4M3     = E4M3{raw: uint8(e4m3.max())}
	MinE4M3     = E4M3{raw: uint8(e4m3.signMask() | e4m3.max())}
	NaNE4M3     = E4M3{raw: uint8(e4m3.nan())}
)

func E4M3FromRaw(raw uint8) E4M3 { return E4M3{raw: raw} }

func (x E4M3) Raw() uint8 { return x.raw }

// E4M3FromFloat32 rounds v to the nearest E4M3, ties to even.
func E4M3FromFloat32(v float32) E4M3 { return E4M3{raw: uint8(e4m3.encode(float64(v)))} }

// E4M3FromFloat64 rounds v to the nearest E4M3, ties to even.
func E4M3FromFloat64(v float64) E4M3 { return E4M3{raw: uint8(e4m3.encode(v))} }

func (x E4M3) Float32() float32 { return float32(x.Float64()) }

func (x E4M3) Float64() float64 { return e4m3.decode(uint64(x.raw)) }

func (x E4M3) IsNaN() bool       { return e4m3.isNaN(uint64(x.raw)) }
func (x E4M3) IsInf() bool       { return e4m3.isInf(uint64(x.raw)) }
func (x E4M3) IsFinite() bool    { return e4m3.isFinite(uint64(x.raw)) }
func (x E4M3) IsNormal() bool    { return e4m3.isNormal(uint64(x.raw)) }
func (x E4M3) IsSubnormal() bool { return e4m3.isSubnormal(uint64(x.raw)) }
func (x E4M3) IsZero() bool      { return e4m3.isZero(uint64(x.raw)) }
func (x E4M3) IsNegative() bool  { return e4m3.isNegative(uint64(x.raw)) }

// Signbit reports whether the sign bit is set.
func (x E4M3) Signbit() bool { return uint64(x.raw)&e4m3.signMask() != 0 }

// Exponent returns the biased exponent field.
func (x E4M3) Exponent() uint64 {
	_, e, _ := e4m3.fields(uint64(x.raw))

	return e
}

// Mantissa returns the mantissa field without the implicit leading bit.
func (x E4M3) Mantissa() uint64 {
	_, _, m := e4m3.fields(uint64(x.raw))

	return m
}

func (x E4M3) Add(y E4M3) E4M3 { return E4M3FromFloat64(x.Float64() + y.Float64()) }
func (x E4M3) Sub(y E4M3) E4M3 { return E4M3FromFloat64(x.Float64() - y.Float64()) }
func (x E4M3) Mul(y E4M3) E4M3 { return E4M3FromFloat64(x.Float64() * y.Float64()) }
func (x E4M3) Div(y E4M3) E4M3 { return E4M3FromFloat64(x.Float64() / y.Float64()) }

// Rem returns the remainder of x / y with the sign of x, like math.Mod.
func (x E4M3) Rem(y E4M3) E4M3 { return E4M3FromFloat64(math.Mod(x.Float64(), y.Float64())) }

func (x E4M3) Inc() E4M3 { return E4M3FromFloat64(x.Float64() + 1) }
func (x E4M3) Dec() E4M3 { return E4M3FromFloat64(x.Float64() - 1) }

// Neg flips the sign bit.
func (x E4M3) Neg() E4M3 { return E4M3{raw: x.raw ^ uint8(e4m3.signMask())} }

// Abs clears the sign bit.
func (x E4M3) Abs() E4M3 { return E4M3{raw: x.raw &^ uint8(e4m3.signMask())} }

// CopySign returns x with the sign bit of sign.
func (x E4M3) CopySign(sign E4M3) E4M3 {
	m := uint8(e4m3.signMask())

	return E4M3{raw: x.raw&^m | sign.raw&m}
}

// Equal reports whether x and y have the same pattern. Every NaN equals every
// other NaN.
func (x E4M3) Equal(y E4M3) bool { return e4m3.equal(uint64(x.raw), uint64(y.raw)) }

// Compare orders x and y by value with NaN above everything else.
func (x E4M3) Compare(y E4M3) int { return e4m3.compare(uint64(x.raw), uint64(y.raw)) }

func (x E4M3) CompareAny(other any) (int, error) { return numerics.CompareAny(x, other) }

func (E4M3) Bits() int { return 8 }

func (x E4M3) AppendRaw(dst []byte) []byte { return append(dst, x.raw) }

// String returns the shortest decimal text that parses back to x.
func (x E4M3) String() string { return numerics.FormatFloat(x.Float64()) }

func (x E4M3) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, x.String(), x.Float64())
}

// ParseE4M3 parses decimal text, NaN or an infinity.
func ParseE4M3(s string) (E4M3, error) {
	v, err := numerics.ParseFloat(&Error, "E4M3", s)
	if err != nil {
		return E4M3{}, err
	}

	return E4M3FromFloat64(v), nil
}

func TryParseE4M3(s string) (E4M3, bool) { return numerics.Try(ParseE4M3(s)) }

func ParseE4M3Locale(s string, tag language.Tag) (E4M3, error) {
	return ParseE4M3(numerics.Delocalize(s, tag))
}

func (x E4M3) E5M2() E5M2 { return E5M2FromFloat32(x.Float32()) }

func (x E4M3) Quarter() Quarter { return QuarterFromFloat32(x.Float32()) }
