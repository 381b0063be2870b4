package minifloat

import (
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// Quarter is an 8 bit IEEE 754 style float with 1 sign, 5 exponent and 2
// mantissa bits.
type Quarter struct {
	raw uint8
}

var _ numerics.Value = Quarter{}
var _ numerics.Classifier = Quarter{}
var _ numerics.Ordered[Quarter] = Quarter{}

var (
	NegZeroQuarter = Quarter{raw: uint8(e5m2.signMask())}
	OneQuarter     = Quarter{raw: uint8(e5m2.one())}
	NegOneQuarter  = Quarter{raw: uint8(e5m2.signMask() | e5m2.one())}
	EpsilonQuarter = Quarter{raw: 1}
	MaxQuarter     = Quarter{raw: uint8(e5m2.max())}
	MinQuarter     = Quarter{raw: uint8(e5m2.signMask() | e5m2.max())}
	NaNQuarter     = Quarter{raw: uint8(e5m2.nan())}
	InfQuarter     = Quarter{raw: uint8(e5m2.inf())}
	NegInfQuarter  = Quarter{raw: uint8(e5m2.signMask() | e5m2.inf())}
)

func QuarterFromRaw(raw uint8) Quarter { return Quarter{raw: raw} }

func (x Quarter) Raw() uint8 { return x.raw }

// QuarterFromFloat32 rounds v to the nearest Quarter, ties to even.
func QuarterFromFloat32(v float32) Quarter { return Quarter{raw: uint8(e5m2.encode(float64(v)))} }

// QuarterFromFloat64 rounds v to the nearest Quarter, ties to even.
func QuarterFromFloat64(v float64) Quarter { return Quarter{raw: uint8(e5m2.encode(v))} }

func (x Quarter) Float32() float32 { return float32(x.Float64()) }

func (x Quarter) Float64() float64 { return e5m2.decode(uint64(x.raw)) }

func (x Quarter) IsNaN() bool       { return e5m2.isNaN(uint64(x.raw)) }
func (x Quarter) IsInf() bool       { return e5m2.isInf(uint64(x.raw)) }
func (x Quarter) IsFinite() bool    { return e5m2.isFinite(uint64(x.raw)) }
func (x Quarter) IsNormal() bool    { return e5m2.isNormal(uint64(x.raw)) }
func (x Quarter) IsSubnormal() bool { return e5m2.isSubnormal(uint64(x.raw)) }
func (x Quarter) IsZero() bool      { return e5m2.isZero(uint64(x.raw)) }
func (x Quarter) IsNegative() bool  { return e5m2.isNegative(uint64(x.raw)) }

// Signbit reports whether the sign bit is set.
func (x Quarter) Signbit() bool { return uint64(x.raw)&e5m2.signMask() != 0 }

// Exponent returns the biased exponent field.
func (x Quarter) Exponent() uint64 {
	_, e, _ := e5m2.fields(uint64(x.raw))

	return e
}

// Mantissa returns the mantissa field without the implicit leading bit.
func (x Quarter) Mantissa() uint64 {
	_, _, m := e5m2.fields(uint64(x.raw))

	return m
}

func (x Quarter) Add(y Quarter) Quarter { return QuarterFromFloat64(x.Float64() + y.Float64()) }
func (x Quarter) Sub(y Quarter) Quarter { return QuarterFromFloat64(x.Float64() - y.Float64()) }
func (x Quarter) Mul(y Quarter) Quarter { return QuarterFromFloat64(x.Float64() * y.Float64()) }
func (x Quarter) Div(y Quarter) Quarter { return QuarterFromFloat64(x.Float64() / y.Float64()) }

// Rem returns the remainder of x / y with the sign of x, like math.Mod.
func (x Quarter) Rem(y Quarter) Quarter { return QuarterFromFloat64(math.Mod(x.Float64(), y.Float64())) }

func (x Quarter) Inc() Quarter { return QuarterFromFloat64(x.Float64() + 1) }
func (x Quarter) Dec() Quarter { return QuarterFromFloat64(x.Float64() - 1) }

// Neg flips the sign bit.
func (x Quarter) Neg() Quarter { return Quarter{raw: x.raw ^ uint8(e5m2.signMask())} }

// Abs clears the sign bit.
func (x Quarter) Abs() Quarter { return Quarter{raw: x.raw &^ uint8(e5m2.signMask())} }

// CopySign returns x with the sign bit of sign.
func (x Quarter) CopySign(sign Quarter) Quarter {
	m := uint8(e5m2.signMask())

	return Quarter{raw: x.raw&^m | sign.raw&m}
}

// Equal reports whether x and y have the same pattern. Every NaN equals every
// other NaN.
func (x Quarter) Equal(y Quarter) bool { return e5m2.equal(uint64(x.raw), uint64(y.raw)) }

// Compare orders x and y by value with NaN above everything else.
func (x Quarter) Compare(y Quarter) int { return e5m2.compare(uint64(x.raw), uint64(y.raw)) }

func (x Quarter) CompareAny(other any) (int, error) { return numerics.CompareAny(x, other) }

func (Quarter) Bits() int { return 8 }

func (x Quarter) AppendRaw(dst []byte) []byte { return append(dst, x.raw) }

// String returns the shortest decimal text that parses back to x.
func (x Quarter) String() string { return numerics.FormatFloat(x.Float64()) }

func (x Quarter) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, x.String(), x.Float64())
}

// ParseQuarter parses decimal text, NaN or an infinity.
func ParseQuarter(s string) (Quarter, error) {
	v, err := numerics.ParseFloat(&Error, "Quarter", s)
	if err != nil {
		return Quarter{}, err
	}

	return QuarterFromFloat64(v), nil
}

func TryParseQuarter(s string) (Quarter, bool) { return numerics.Try(ParseQuarter(s)) }

func ParseQuarterLocale(s string, tag language.Tag) (Quarter, error) {
	return ParseQuarter(numerics.Delocalize(s, tag))
}

func (x Quarter) E4M3() E4M3 { return E4M3FromFloat32(x.Float32()) }

func (x Quarter) E5M2() E5M2 { return E5M2FromFloat32(x.Float32()) }
