package minifloat

import (
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// E5M2 is the 8 bit float with 5 exponent and 2 mantissa bits used for
// machine learning workloads. It keeps the IEEE infinities and NaNs.
type E5M2 struct {
	raw uint8
}

var _ numerics.Value = E5M2{}
var _ numerics.Classifier = E5M2{}
var _ numerics.Ordered[E5M2] = E5M2{}

var (
	NegZeroE5M2 = E5M2{raw: uint8(e5m2.signMask())}
	OneE5M2     = E5M2{raw: uint8(e5m2.one())}
	NegOneE5M2  = E5M2{raw: uint8(e5m2.signMask() | e5m2.one())}
	EpsilonE5M2 = E5M2{raw: 1}
	MaxE5M2     = E5M2{raw: uint8(e5m2.max())}
	MinE5M2     = E5M2{raw: uint8(e5m2.signMask() | e5m2.max())}
	NaNE5M2     = E5M2{raw: uint8(e5m2.nan())}
	InfE5M2     = E5M2{raw: uint8(e5m2.inf())}
	NegInfE5M2  = E5M2{raw: uint8(e5m2.signMask() | e5m2.inf())}
)

func E5M2FromRaw(raw uint8) E5M2 { return E5M2{raw: raw} }

func (x E5M2) Raw() uint8 { return x.raw }

// E5M2FromFloat32 rounds v to the nearest E5M2, ties to even.
func E5M2FromFloat32(v float32) E5M2 { return E5M2{raw: uint8(e5m2.encode(float64(v)))} }

// E5M2FromFloat64 rounds v to the nearest E5M2, ties to even.
func E5M2FromFloat64(v float64) E5M2 { return E5M2{raw: uint8(e5m2.encode(v))} }

func (x E5M2) Float32() float32 { return float32(x.Float64()) }

func (x E5M2) Float64() float64 { return e5m2.decode(uint64(x.raw)) }

func (x E5M2) IsNaN() bool       { return e5m2.isNaN(uint64(x.raw)) }
func (x E5M2) IsInf() bool       { return e5m2.isInf(uint64(x.raw)) }
func (x E5M2) IsFinite() bool    { return e5m2.isFinite(uint64(x.raw)) }
func (x E5M2) IsNormal() bool    { return e5m2.isNormal(uint64(x.raw)) }
func (x E5M2) IsSubnormal() bool { return e5m2.isSubnormal(uint64(x.raw)) }
func (x E5M2) IsZero() bool      { return e5m2.isZero(uint64(x.raw)) }
func (x E5M2) IsNegative() bool  { return e5m2.isNegative(uint64(x.raw)) }

// Signbit reports whether the sign bit is set.
func (x E5M2) Signbit() bool { return uint64(x.raw)&e5m2.signMask() != 0 }

// Exponent returns the biased exponent field.
func (x E5M2) Exponent() uint64 {
	_, e, _ := e5m2.fields(uint64(x.raw))

	return e
}

// Mantissa returns the mantissa field without the implicit leading bit.
func (x E5M2) Mantissa() uint64 {
	_, _, m := e5m2.fields(uint64(x.raw))

	return m
}

func (x E5M2) Add(y E5M2) E5M2 { return E5M2FromFloat64(x.Float64() + y.Float64()) }
func (x E5M2) Sub(y E5M2) E5M2 { return E5M2FromFloat64(x.Float64() - y.Float64()) }
func (x E5M2) Mul(y E5M2) E5M2 { return E5M2FromFloat64(x.Float64() * y.Float64()) }
func (x E5M2) Div(y E5M2) E5M2 { return E5M2FromFloat64(x.Float64() / y.Float64()) }

// Rem returns the remainder of x / y with the sign of x, like math.Mod.
func (x E5M2) Rem(y E5M2) E5M2 { return E5M2FromFloat64(math.Mod(x.Float64(), y.Float64())) }

func (x E5M2) Inc() E5M2 { return E5M2FromFloat64(x.Float64() + 1) }
func (x E5M2) Dec() E5M2 { return E5M2FromFloat64(x.Float64() - 1) }

// Neg flips the sign bit.
func (x E5M2) Neg() E5M2 { return E5M2{raw: x.raw ^ uint8(e5m2.signMask())} }

// Abs clears the sign bit.
func (x E5M2) Abs() E5M2 { return E5M2{raw: x.raw &^ uint8(e5m2.signMask())} }

// CopySign returns x with the sign bit of sign.
func (x E5M2) CopySign(sign E5M2) E5M2 {
	m := uint8(e5m2.signMask())

	return E5M2{raw: x.raw&^m | sign.raw&m}
}

// Equal reports whether x and y have the same pattern. Every NaN equals every
// other NaN.
func (x E5M2) Equal(y E5M2) bool { return e5m2.equal(uint64(x.raw), uint64(y.raw)) }

// Compare orders x and y by value with NaN above everything else.
func (x E5M2) Compare(y E5M2) int { return e5m2.compare(uint64(x.raw), uint64(y.raw)) }

func (x E5M2) CompareAny(other any) (int, error) { return numerics.CompareAny(x, other) }

func (E5M2) Bits() int { return 8 }

func (x E5M2) AppendRaw(dst []byte) []byte { return append(dst, x.raw) }

// String returns the shortest decimal text that parses back to x.
func (x E5M2) String() string { return numerics.FormatFloat(x.Float64()) }

func (x E5M2) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, x.String(), x.Float64())
}

// ParseE5M2 parses decimal text, NaN or an infinity.
func ParseE5M2(s string) (E5M2, error) {
	v, err := numerics.ParseFloat(&Error, "E5M2", s)
	if err != nil {
		return E5M2{}, err
	}

	return E5M2FromFloat64(v), nil
}

func TryParseE5M2(s string) (E5M2, bool) { return numerics.Try(ParseE5M2(s)) }

func ParseE5M2Locale(s string, tag language.Tag) (E5M2, error) {
	return ParseE5M2(numerics.Delocalize(s, tag))
}

func (x E5M2) E4M3() E4M3 { return E4M3FromFloat32(x.Float32()) }

func (x E5M2) Quarter() Quarter { return QuarterFromFloat32(x.Float32()) }
