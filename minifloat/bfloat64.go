package minifloat

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/wide"
)

// BFloat64 is the upper half of an IEEE 754 binary128. Its exponent range is
// far wider than float64's.
type BFloat64 struct {
	raw uint64
}

var _ numerics.Value = BFloat64{}
var _ numerics.Classifier = BFloat64{}
var _ numerics.Ordered[BFloat64] = BFloat64{}

var (
	NegZeroBFloat64 = BFloat64{raw: uint64(bf64.signMask())}
	OneBFloat64     = BFloat64{raw: uint64(bf64.one())}
	NegOneBFloat64  = BFloat64{raw: uint64(bf64.signMask() | bf64.one())}
	EpsilonBFloat64 = BFloat64{raw: 1}
	MaxBFloat64     = BFloat64{raw: uint64(bf64.max())}
	MinBFloat64     = BFloat64{raw: uint64(bf64.signMask() | bf64.max())}
	NaNBFloat64     = BFloat64{raw: uint64(bf64.nan())}
	InfBFloat64     = BFloat64{raw: uint64(bf64.inf())}
	NegInfBFloat64  = BFloat64{raw: uint64(bf64.signMask() | bf64.inf())}
)

func BFloat64FromRaw(raw uint64) BFloat64 { return BFloat64{raw: raw} }

func (x BFloat64) Raw() uint64 { return x.raw }

func (x BFloat64) IsNaN() bool       { return bf64.isNaN(uint64(x.raw)) }
func (x BFloat64) IsInf() bool       { return bf64.isInf(uint64(x.raw)) }
func (x BFloat64) IsFinite() bool    { return bf64.isFinite(uint64(x.raw)) }
func (x BFloat64) IsNormal() bool    { return bf64.isNormal(uint64(x.raw)) }
func (x BFloat64) IsSubnormal() bool { return bf64.isSubnormal(uint64(x.raw)) }
func (x BFloat64) IsZero() bool      { return bf64.isZero(uint64(x.raw)) }
func (x BFloat64) IsNegative() bool  { return bf64.isNegative(uint64(x.raw)) }

// Signbit reports whether the sign bit is set.
func (x BFloat64) Signbit() bool { return uint64(x.raw)&bf64.signMask() != 0 }

// Exponent returns the biased exponent field.
func (x BFloat64) Exponent() uint64 {
	_, e, _ := bf64.fields(uint64(x.raw))

	return e
}

// Mantissa returns the mantissa field without the implicit leading bit.
func (x BFloat64) Mantissa() uint64 {
	_, _, m := bf64.fields(uint64(x.raw))

	return m
}

func (x BFloat64) Add(y BFloat64) BFloat64 { return BFloat64FromFloat64(x.Float64() + y.Float64()) }
func (x BFloat64) Sub(y BFloat64) BFloat64 { return BFloat64FromFloat64(x.Float64() - y.Float64()) }
func (x BFloat64) Mul(y BFloat64) BFloat64 { return BFloat64FromFloat64(x.Float64() * y.Float64()) }
func (x BFloat64) Div(y BFloat64) BFloat64 { return BFloat64FromFloat64(x.Float64() / y.Float64()) }

// Rem returns the remainder of x / y with the sign of x, like math.Mod.
func (x BFloat64) Rem(y BFloat64) BFloat64 { return BFloat64FromFloat64(math.Mod(x.Float64(), y.Float64())) }

func (x BFloat64) Inc() BFloat64 { return BFloat64FromFloat64(x.Float64() + 1) }
func (x BFloat64) Dec() BFloat64 { return BFloat64FromFloat64(x.Float64() - 1) }

// Neg flips the sign bit.
func (x BFloat64) Neg() BFloat64 { return BFloat64{raw: x.raw ^ uint64(bf64.signMask())} }

// Abs clears the sign bit.
func (x BFloat64) Abs() BFloat64 { return BFloat64{raw: x.raw &^ uint64(bf64.signMask())} }

// CopySign returns x with the sign bit of sign.
func (x BFloat64) CopySign(sign BFloat64) BFloat64 {
	m := uint64(bf64.signMask())

	return BFloat64{raw: x.raw&^m | sign.raw&m}
}

// Equal reports whether x and y have the same pattern. Every NaN equals every
// other NaN.
func (x BFloat64) Equal(y BFloat64) bool { return bf64.equal(uint64(x.raw), uint64(y.raw)) }

// Compare orders x and y by value with NaN above everything else.
func (x BFloat64) Compare(y BFloat64) int { return bf64.compare(uint64(x.raw), uint64(y.raw)) }

func (x BFloat64) CompareAny(other any) (int, error) { return numerics.CompareAny(x, other) }

func (BFloat64) Bits() int { return 64 }

func (x BFloat64) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint64(dst, x.raw) }

func TryParseBFloat64(s string) (BFloat64, bool) { return numerics.Try(ParseBFloat64(s)) }

func ParseBFloat64Locale(s string, tag language.Tag) (BFloat64, error) {
	return ParseBFloat64(numerics.Delocalize(s, tag))
}

func BFloat64FromFloat32(v float32) BFloat64 { return BFloat64FromFloat64(float64(v)) }

// BFloat64FromFloat64 rebiases the exponent of v and keeps the upper 48 bits
// of its mantissa. Every float64 exponent, subnormals included, is a normal
// BFloat64 exponent.
func BFloat64FromFloat64(v float64) BFloat64 {
	b := math.Float64bits(v)
	sign := b & (1 << 63)
	exp := int(b >> 52 & 0x7FF)
	man := b & (1<<52 - 1)

	switch {
	case math.IsNaN(v):
		return NaNBFloat64
	case math.IsInf(v, 0):
		return BFloat64{raw: sign | bf64.inf()}
	case exp == 0 && man == 0:
		return BFloat64{raw: sign}
	case exp == 0:
		// Normalize the subnormal so its leading one becomes implicit.
		p := 63 - bits.LeadingZeros64(man)
		man = man << (52 - p) & (1<<52 - 1)
		exp = p - 1074 + 1023
	}

	return BFloat64{raw: sign | uint64(exp-1023+bf64.bias)<<48 | man>>4}
}

func (x BFloat64) Float32() float32 { return float32(x.Float64()) }

// Float64 rebiases the exponent of x. Values beyond the float64 range become
// infinite. Values below the float64 normal range become subnormals, losing
// low mantissa bits by truncation, or zero.
func (x BFloat64) Float64() float64 {
	neg, e, m := bf64.fields(x.raw)

	var sign uint64
	if neg {
		sign = 1 << 63
	}

	u := int(e) - bf64.bias

	switch {
	case x.IsNaN():
		return math.NaN()
	case x.IsInf() || u > 1023:
		return math.Float64frombits(sign | 0x7FF<<52)
	case e == 0 || u < -1074:
		return math.Float64frombits(sign)
	case u >= -1022:
		return math.Float64frombits(sign | uint64(u+1023)<<52 | m<<4)
	}

	sig := (1<<48 | m) << 4

	return math.Float64frombits(sign | sig>>uint(-1022-u))
}

// Big returns x exactly. NaN has no big.Float value and returns nil.
func (x BFloat64) Big() *big.Float {
	neg, e, m := bf64.fields(x.raw)
	f := new(big.Float).SetPrec(bf64.man + 1)

	switch {
	case x.IsNaN():
		return nil
	case x.IsInf():
		return f.SetInf(neg)
	case e == 0:
		f.SetMantExp(new(big.Float).SetUint64(m), 1-bf64.bias-int(bf64.man))
	default:
		f.SetMantExp(new(big.Float).SetUint64(1<<bf64.man|m), int(e)-bf64.bias-int(bf64.man))
	}

	if neg {
		f.Neg(f)
	}

	return f
}

// bfloat64FromBig truncates f to a BFloat64.
func bfloat64FromBig(f *big.Float) BFloat64 {
	var sign uint64
	if f.Signbit() {
		sign = bf64.signMask()
	}

	if f.IsInf() {
		return BFloat64{raw: sign | bf64.inf()}
	}

	if f.Sign() == 0 {
		return BFloat64{raw: sign}
	}

	mant := new(big.Float)
	e := f.MantExp(mant) - 1 + bf64.bias
	mant.Abs(mant)

	switch {
	case e >= int(bf64.maxExp()):
		return BFloat64{raw: sign | bf64.inf()}
	case e <= 0:
		abs := new(big.Float).Abs(f)
		m, _ := new(big.Float).SetMantExp(abs, bf64.bias-1+int(bf64.man)).Uint64()

		return BFloat64{raw: sign | m}
	}

	sig, _ := new(big.Float).SetMantExp(mant, int(bf64.man)+1).Uint64()

	return BFloat64{raw: sign | uint64(e)<<bf64.man | sig&bf64.manMask()}
}

// String returns the shortest decimal text that parses back to x.
func (x BFloat64) String() string {
	if x.IsNaN() {
		return "NaN"
	}

	f := x.Big()
	if f.IsInf() || f.Sign() == 0 {
		return f.Text('g', -1)
	}

	if e := f.MantExp(nil); e < -1000 || e > 1000 {
		if s, ok := shortestScaled(f); ok {
			return s
		}
	}

	return f.Text('g', -1)
}

// scaledPrec is the working precision of shortestScaled. It leaves enough
// guard bits over the 49 bit significand that the leading 17 digits are
// correctly rounded.
const scaledPrec = 192

// shortestScaled formats f, whose decimal exponent is far outside the %g
// fixed point window, in the same layout as f.Text('g', -1). Exact decimal
// expansion of such values is quadratic in the exponent, so f is first scaled
// by a power of ten into [0.1, 10) and each candidate length is checked by
// parsing it back at f's precision.
func shortestScaled(f *big.Float) (string, bool) {
	abs := new(big.Float).Abs(f)
	e10 := int(math.Floor(float64(abs.MantExp(nil)-1) * math.Log10(2)))

	pow, _, err := big.ParseFloat(fmt.Sprintf("1e%d", -e10), 10, scaledPrec, big.ToNearestEven)
	if err != nil {
		return "", false
	}

	scaled := new(big.Float).SetPrec(scaledPrec).Mul(abs, pow)

	for digits := 0; digits < 17; digits++ {
		text := scaled.Text('e', digits)

		i := strings.IndexByte(text, 'e')
		exp, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return "", false
		}

		candidate := text[:i] + "e" + strconv.Itoa(exp+e10)

		back, _, err := big.ParseFloat(candidate, 10, f.Prec(), big.ToNearestEven)
		if err != nil || back.Cmp(abs) != 0 {
			continue
		}

		exp += e10

		sign := "+"
		if exp < 0 {
			sign = "-"
			exp = -exp
		}

		s := fmt.Sprintf("%se%s%02d", text[:i], sign, exp)
		if f.Signbit() {
			s = "-" + s
		}

		return s, true
	}

	return "", false
}

func (x BFloat64) Format(f fmt.State, verb rune) {
	if x.IsNaN() {
		numerics.Format(f, verb, x.String(), math.NaN())

		return
	}

	numerics.Format(f, verb, x.String(), x.Big())
}

// ParseBFloat64 parses decimal text, NaN or an infinity. Decimal text is
// rounded to the nearest 49 bit significand, ties to even, so text from
// String parses back exactly even beyond the float64 range.
func ParseBFloat64(s string) (BFloat64, error) {
	if strings.EqualFold(s, "nan") {
		return NaNBFloat64, nil
	}

	f, _, err := big.ParseFloat(s, 10, bf64.man+1, big.ToNearestEven)
	if err != nil {
		return BFloat64{}, numerics.SyntaxError(&Error, "BFloat64", s)
	}

	return bfloat64FromBig(f), nil
}

// BFloat32 narrows x.
func (x BFloat64) BFloat32() BFloat32 { return BFloat32FromFloat64(x.Float64()) }

// BFloat64FromUInt96 converts u, keeping its 49 most significant bits.
func BFloat64FromUInt96(u wide.UInt96) BFloat64 {
	if u.IsZero() {
		return BFloat64{}
	}

	p := u.Log2()

	var sig wide.UInt96
	if p >= int(bf64.man) {
		sig = u.Rsh(uint(p) - bf64.man)
	} else {
		sig = u.Lsh(bf64.man - uint(p))
	}

	return BFloat64{raw: uint64(p+bf64.bias)<<bf64.man | sig.Lower()&bf64.manMask()}
}

// UInt96 truncates x toward zero. NaN, negative values and values of 2^96 or
// more are out of range.
func (x BFloat64) UInt96() (wide.UInt96, error) {
	neg, e, m := bf64.fields(x.raw)

	switch {
	case x.IsZero():
		return wide.UInt96{}, nil
	case x.IsNaN() || neg:
		return wide.UInt96{}, numerics.Errorf(&Error, numerics.ErrOutOfRange, "%s does not fit UInt96", x)
	}

	u := int(e) - bf64.bias

	switch {
	case e == 0 || u < 0:
		return wide.UInt96{}, nil
	case u >= 96:
		return wide.UInt96{}, numerics.Errorf(&Error, numerics.ErrOutOfRange, "%s does not fit UInt96", x)
	}

	sig := wide.FromUint64(1<<bf64.man | m)
	if u >= int(bf64.man) {
		return sig.Lsh(uint(u) - bf64.man), nil
	}

	return sig.Rsh(bf64.man - uint(u)), nil
}
