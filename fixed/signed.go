package fixed

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// Q3_4 is a signed fixed point number with 4 fraction bits.
type Q3_4 struct {
	raw int8
}

var _ numerics.Value = Q3_4{}
var _ numerics.Ordered[Q3_4] = Q3_4{}

var (
	OneQ3_4     = Q3_4{raw: 1 << 4}
	EpsilonQ3_4 = Q3_4{raw: 1}
	MaxQ3_4     = Q3_4{raw: math.MaxInt8}
	MinQ3_4     = Q3_4{raw: math.MinInt8}
	NegOneQ3_4  = Q3_4{raw: -1 << 4}
)

var q3_4Lo, q3_4Hi = big.NewInt(math.MinInt8), big.NewInt(math.MaxInt8)

func Q3_4FromRaw(raw int8) Q3_4 { return Q3_4{raw: raw} }

func (a Q3_4) Raw() int8 { return a.raw }

// Q3_4FromFloat32 truncates v to the nearest multiple of EpsilonQ3_4 toward
// zero.
func Q3_4FromFloat32(v float32) Q3_4 { return Q3_4{raw: int8(v * (1 << 4))} }

// Q3_4FromFloat64 truncates v to the nearest multiple of EpsilonQ3_4 toward
// zero.
func Q3_4FromFloat64(v float64) Q3_4 { return Q3_4{raw: int8(v * (1 << 4))} }

func Q3_4FromInt32(v int32) Q3_4 { return Q3_4{raw: int8(v) << 4} }

func Q3_4FromInt64(v int64) Q3_4 { return Q3_4{raw: int8(v) << 4} }

func (a Q3_4) Float32() float32 { return float32(a.raw) / (1 << 4) }

func (a Q3_4) Float64() float64 { return float64(a.raw) / (1 << 4) }

// Int32 returns the integer part, rounded toward negative infinity.
func (a Q3_4) Int32() int32 { return int32(a.raw >> 4) }

// Int64 returns the integer part, rounded toward negative infinity.
func (a Q3_4) Int64() int64 { return int64(a.raw >> 4) }

func (a Q3_4) Add(b Q3_4) Q3_4 { return Q3_4{raw: a.raw + b.raw} }

func (a Q3_4) Sub(b Q3_4) Q3_4 { return Q3_4{raw: a.raw - b.raw} }

func (a Q3_4) Mul(b Q3_4) Q3_4 {
	p := int16(a.raw) * int16(b.raw)

	return Q3_4{raw: int8(p >> 4)}
}

// Div returns a / b truncated toward zero. It panics if b is zero.
func (a Q3_4) Div(b Q3_4) Q3_4 {
	d := int16(a.raw) << 4

	return Q3_4{raw: int8(d / int16(b.raw))}
}

// Rem returns the remainder of a / b. It panics if b is zero.
func (a Q3_4) Rem(b Q3_4) Q3_4 { return Q3_4{raw: a.raw % b.raw} }

func (a Q3_4) Inc() Q3_4 { return a.Add(OneQ3_4) }

func (a Q3_4) Dec() Q3_4 { return a.Sub(OneQ3_4) }

func (a Q3_4) Neg() Q3_4 { return Q3_4{raw: -a.raw} }

// Abs returns |a|. The absolute value of MinQ3_4 is MinQ3_4.
func (a Q3_4) Abs() Q3_4 {
	if a.raw < 0 {
		return a.Neg()
	}

	return a
}

func (a Q3_4) Compare(b Q3_4) int { return cmp.Compare(a.raw, b.raw) }

func (a Q3_4) Equal(b Q3_4) bool { return a.raw == b.raw }

func (a Q3_4) CompareAny(other any) (int, error) { return numerics.CompareAny(a, other) }

func (Q3_4) Bits() int { return 8 }

func (a Q3_4) AppendRaw(dst []byte) []byte { return append(dst, uint8(a.raw)) }

// String returns the exact decimal value.
func (a Q3_4) String() string { return formatRaw(big.NewInt(int64(a.raw)), 4) }

func (a Q3_4) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Float64())
}

func ParseQ3_4(s string) (Q3_4, error) {
	v, err := parseRaw("Q3_4", s, 4, q3_4Lo, q3_4Hi)
	if err != nil {
		return Q3_4{}, err
	}

	return Q3_4{raw: int8(v.Int64())}, nil
}

func TryParseQ3_4(s string) (Q3_4, bool) { return numerics.Try(ParseQ3_4(s)) }

func ParseQ3_4Locale(s string, tag language.Tag) (Q3_4, error) {
	return ParseQ3_4(numerics.Delocalize(s, tag))
}

// Q7_8 widens a exactly.
func (a Q3_4) Q7_8() Q7_8 { return Q7_8{raw: int16(a.raw) << 4} }

// Q7_8 is a signed fixed point number with 8 fraction bits.
type Q7_8 struct {
	raw int16
}

var _ numerics.Value = Q7_8{}
var _ numerics.Ordered[Q7_8] = Q7_8{}

var (
	OneQ7_8     = Q7_8{raw: 1 << 8}
	EpsilonQ7_8 = Q7_8{raw: 1}
	MaxQ7_8     = Q7_8{raw: math.MaxInt16}
	MinQ7_8     = Q7_8{raw: math.MinInt16}
	NegOneQ7_8  = Q7_8{raw: -1 << 8}
)

var q7_8Lo, q7_8Hi = big.NewInt(math.MinInt16), big.NewInt(math.MaxInt16)

func Q7_8FromRaw(raw int16) Q7_8 { return Q7_8{raw: raw} }

func (a Q7_8) Raw() int16 { return a.raw }

// Q7_8FromFloat32 truncates v to the nearest multiple of EpsilonQ7_8 toward
// zero.
func Q7_8FromFloat32(v float32) Q7_8 { return Q7_8{raw: int16(v * (1 << 8))} }

// Q7_8FromFloat64 truncates v to the nearest multiple of EpsilonQ7_8 toward
// zero.
func Q7_8FromFloat64(v float64) Q7_8 { return Q7_8{raw: int16(v * (1 << 8))} }

func Q7_8FromInt32(v int32) Q7_8 { return Q7_8{raw: int16(v) << 8} }

func Q7_8FromInt64(v int64) Q7_8 { return Q7_8{raw: int16(v) << 8} }

func (a Q7_8) Float32() float32 { return float32(a.raw) / (1 << 8) }

func (a Q7_8) Float64() float64 { return float64(a.raw) / (1 << 8) }

// Int32 returns the integer part, rounded toward negative infinity.
func (a Q7_8) Int32() int32 { return int32(a.raw >> 8) }

// Int64 returns the integer part, rounded toward negative infinity.
func (a Q7_8) Int64() int64 { return int64(a.raw >> 8) }

func (a Q7_8) Add(b Q7_8) Q7_8 { return Q7_8{raw: a.raw + b.raw} }

func (a Q7_8) Sub(b Q7_8) Q7_8 { return Q7_8{raw: a.raw - b.raw} }

func (a Q7_8) Mul(b Q7_8) Q7_8 {
	p := int32(a.raw) * int32(b.raw)

	return Q7_8{raw: int16(p >> 8)}
}

// Div returns a / b truncated toward zero. It panics if b is zero.
func (a Q7_8) Div(b Q7_8) Q7_8 {
	d := int32(a.raw) << 8

	return Q7_8{raw: int16(d / int32(b.raw))}
}

// Rem returns the remainder of a / b. It panics if b is zero.
func (a Q7_8) Rem(b Q7_8) Q7_8 { return Q7_8{raw: a.raw % b.raw} }

func (a Q7_8) Inc() Q7_8 { return a.Add(OneQ7_8) }

func (a Q7_8) Dec() Q7_8 { return a.Sub(OneQ7_8) }

func (a Q7_8) Neg() Q7_8 { return Q7_8{raw: -a.raw} }

// Abs returns |a|. The absolute value of MinQ7_8 is MinQ7_8.
func (a Q7_8) Abs() Q7_8 {
	if a.raw < 0 {
		return a.Neg()
	}

	return a
}

func (a Q7_8) Compare(b Q7_8) int { return cmp.Compare(a.raw, b.raw) }

func (a Q7_8) Equal(b Q7_8) bool { return a.raw == b.raw }

func (a Q7_8) CompareAny(other any) (int, error) { return numerics.CompareAny(a, other) }

func (Q7_8) Bits() int { return 16 }

func (a Q7_8) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint16(dst, uint16(a.raw)) }

// String returns the exact decimal value.
func (a Q7_8) String() string { return formatRaw(big.NewInt(int64(a.raw)), 8) }

func (a Q7_8) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Float64())
}

func ParseQ7_8(s string) (Q7_8, error) {
	v, err := parseRaw("Q7_8", s, 8, q7_8Lo, q7_8Hi)
	if err != nil {
		return Q7_8{}, err
	}

	return Q7_8{raw: int16(v.Int64())}, nil
}

func TryParseQ7_8(s string) (Q7_8, bool) { return numerics.Try(ParseQ7_8(s)) }

func ParseQ7_8Locale(s string, tag language.Tag) (Q7_8, error) {
	return ParseQ7_8(numerics.Delocalize(s, tag))
}

// Q15_16 widens a exactly.
func (a Q7_8) Q15_16() Q15_16 { return Q15_16{raw: int32(a.raw) << 8} }

// Q3_4 narrows a, dropping the low fraction bits and the high integer bits.
func (a Q7_8) Q3_4() Q3_4 { return Q3_4{raw: int8(a.raw >> 4)} }

// Q15_16 is a signed fixed point number with 16 fraction bits.
type Q15_16 struct {
	raw int32
}

var _ numerics.Value = Q15_16{}
var _ numerics.Ordered[Q15_16] = Q15_16{}

var (
	OneQ15_16     = Q15_16{raw: 1 << 16}
	EpsilonQ15_16 = Q15_16{raw: 1}
	MaxQ15_16     = Q15_16{raw: math.MaxInt32}
	MinQ15_16     = Q15_16{raw: math.MinInt32}
	NegOneQ15_16  = Q15_16{raw: -1 << 16}
)

var q15_16Lo, q15_16Hi = big.NewInt(math.MinInt32), big.NewInt(math.MaxInt32)

func Q15_16FromRaw(raw int32) Q15_16 { return Q15_16{raw: raw} }

func (a Q15_16) Raw() int32 { return a.raw }

// Q15_16FromFloat32 truncates v to the nearest multiple of EpsilonQ15_16 toward
// zero.
func Q15_16FromFloat32(v float32) Q15_16 { return Q15_16{raw: int32(v * (1 << 16))} }

// Q15_16FromFloat64 truncates v to the nearest multiple of EpsilonQ15_16 toward
// zero.
func Q15_16FromFloat64(v float64) Q15_16 { return Q15_16{raw: int32(v * (1 << 16))} }

func Q15_16FromInt32(v int32) Q15_16 { return Q15_16{raw: int32(v) << 16} }

func Q15_16FromInt64(v int64) Q15_16 { return Q15_16{raw: int32(v) << 16} }

func (a Q15_16) Float32() float32 { return float32(a.raw) / (1 << 16) }

func (a Q15_16) Float64() float64 { return float64(a.raw) / (1 << 16) }

// Int32 returns the integer part, rounded toward negative infinity.
func (a Q15_16) Int32() int32 { return int32(a.raw >> 16) }

// Int64 returns the integer part, rounded toward negative infinity.
func (a Q15_16) Int64() int64 { return int64(a.raw >> 16) }

func (a Q15_16) Add(b Q15_16) Q15_16 { return Q15_16{raw: a.raw + b.raw} }

func (a Q15_16) Sub(b Q15_16) Q15_16 { return Q15_16{raw: a.raw - b.raw} }

func (a Q15_16) Mul(b Q15_16) Q15_16 {
	p := int64(a.raw) * int64(b.raw)

	return Q15_16{raw: int32(p >> 16)}
}

// Div returns a / b truncated toward zero. It panics if b is zero.
func (a Q15_16) Div(b Q15_16) Q15_16 {
	d := int64(a.raw) << 16

	return Q15_16{raw: int32(d / int64(b.raw))}
}

// Rem returns the remainder of a / b. It panics if b is zero.
func (a Q15_16) Rem(b Q15_16) Q15_16 { return Q15_16{raw: a.raw % b.raw} }

func (a Q15_16) Inc() Q15_16 { return a.Add(OneQ15_16) }

func (a Q15_16) Dec() Q15_16 { return a.Sub(OneQ15_16) }

func (a Q15_16) Neg() Q15_16 { return Q15_16{raw: -a.raw} }

// Abs returns |a|. The absolute value of MinQ15_16 is MinQ15_16.
func (a Q15_16) Abs() Q15_16 {
	if a.raw < 0 {
		return a.Neg()
	}

	return a
}

func (a Q15_16) Compare(b Q15_16) int { return cmp.Compare(a.raw, b.raw) }

func (a Q15_16) Equal(b Q15_16) bool { return a.raw == b.raw }

func (a Q15_16) CompareAny(other any) (int, error) { return numerics.CompareAny(a, other) }

func (Q15_16) Bits() int { return 32 }

func (a Q15_16) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint32(dst, uint32(a.raw)) }

// String returns the exact decimal value.
func (a Q15_16) String() string { return formatRaw(big.NewInt(int64(a.raw)), 16) }

func (a Q15_16) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Float64())
}

func ParseQ15_16(s string) (Q15_16, error) {
	v, err := parseRaw("Q15_16", s, 16, q15_16Lo, q15_16Hi)
	if err != nil {
		return Q15_16{}, err
	}

	return Q15_16{raw: int32(v.Int64())}, nil
}

func TryParseQ15_16(s string) (Q15_16, bool) { return numerics.Try(ParseQ15_16(s)) }

func ParseQ15_16Locale(s string, tag language.Tag) (Q15_16, error) {
	return ParseQ15_16(numerics.Delocalize(s, tag))
}

// Q31_32 widens a exactly.
func (a Q15_16) Q31_32() Q31_32 { return Q31_32{raw: int64(a.raw) << 16} }

// Q7_8 narrows a, dropping the low fraction bits and the high integer bits.
func (a Q15_16) Q7_8() Q7_8 { return Q7_8{raw: int16(a.raw >> 8)} }

// Q31_32 is a signed fixed point number with 32 fraction bits.
type Q31_32 struct {
	raw int64
}

var _ numerics.Value = Q31_32{}
var _ numerics.Ordered[Q31_32] = Q31_32{}

var (
	OneQ31_32     = Q31_32{raw: 1 << 32}
	EpsilonQ31_32 = Q31_32{raw: 1}
	MaxQ31_32     = Q31_32{raw: math.MaxInt64}
	MinQ31_32     = Q31_32{raw: math.MinInt64}
	NegOneQ31_32  = Q31_32{raw: -1 << 32}
)

var q31_32Lo, q31_32Hi = big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64)

func Q31_32FromRaw(raw int64) Q31_32 { return Q31_32{raw: raw} }

func (a Q31_32) Raw() int64 { return a.raw }

// Q31_32FromFloat32 truncates v to the nearest multiple of EpsilonQ31_32 toward
// zero.
func Q31_32FromFloat32(v float32) Q31_32 { return Q31_32{raw: int64(v * (1 << 32))} }

// Q31_32FromFloat64 truncates v to the nearest multiple of EpsilonQ31_32 toward
// zero.
func Q31_32FromFloat64(v float64) Q31_32 { return Q31_32{raw: int64(v * (1 << 32))} }

func Q31_32FromInt32(v int32) Q31_32 { return Q31_32{raw: int64(v) << 32} }

func Q31_32FromInt64(v int64) Q31_32 { return Q31_32{raw: int64(v) << 32} }

func (a Q31_32) Float32() float32 { return float32(a.raw) / (1 << 32) }

func (a Q31_32) Float64() float64 { return float64(a.raw) / (1 << 32) }

// Int32 returns the integer part, rounded toward negative infinity.
func (a Q31_32) Int32() int32 { return int32(a.raw >> 32) }

// Int64 returns the integer part, rounded toward negative infinity.
func (a Q31_32) Int64() int64 { return int64(a.raw >> 32) }

func (a Q31_32) Add(b Q31_32) Q31_32 { return Q31_32{raw: a.raw + b.raw} }

func (a Q31_32) Sub(b Q31_32) Q31_32 { return Q31_32{raw: a.raw - b.raw} }

func (a Q31_32) Mul(b Q31_32) Q31_32 {
	return Q31_32{raw: mulS32(a.raw, b.raw)}
}

// Div returns a / b truncated toward zero. It panics if b is zero.
func (a Q31_32) Div(b Q31_32) Q31_32 {
	return Q31_32{raw: divS32(a.raw, b.raw)}
}

// Rem returns the remainder of a / b. It panics if b is zero.
func (a Q31_32) Rem(b Q31_32) Q31_32 { return Q31_32{raw: a.raw % b.raw} }

func (a Q31_32) Inc() Q31_32 { return a.Add(OneQ31_32) }

func (a Q31_32) Dec() Q31_32 { return a.Sub(OneQ31_32) }

func (a Q31_32) Neg() Q31_32 { return Q31_32{raw: -a.raw} }

// Abs returns |a|. The absolute value of MinQ31_32 is MinQ31_32.
func (a Q31_32) Abs() Q31_32 {
	if a.raw < 0 {
		return a.Neg()
	}

	return a
}

func (a Q31_32) Compare(b Q31_32) int { return cmp.Compare(a.raw, b.raw) }

func (a Q31_32) Equal(b Q31_32) bool { return a.raw == b.raw }

func (a Q31_32) CompareAny(other any) (int, error) { return numerics.CompareAny(a, other) }

func (Q31_32) Bits() int { return 64 }

func (a Q31_32) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint64(dst, uint64(a.raw)) }

// String returns the exact decimal value.
func (a Q31_32) String() string { return formatRaw(big.NewInt(int64(a.raw)), 32) }

func (a Q31_32) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Float64())
}

func ParseQ31_32(s string) (Q31_32, error) {
	v, err := parseRaw("Q31_32", s, 32, q31_32Lo, q31_32Hi)
	if err != nil {
		return Q31_32{}, err
	}

	return Q31_32{raw: int64(v.Int64())}, nil
}

func TryParseQ31_32(s string) (Q31_32, bool) { return numerics.Try(ParseQ31_32(s)) }

func ParseQ31_32Locale(s string, tag language.Tag) (Q31_32, error) {
	return ParseQ31_32(numerics.Delocalize(s, tag))
}

// Q15_16 narrows a, dropping the low fraction bits and the high integer bits.
func (a Q31_32) Q15_16() Q15_16 { return Q15_16{raw: int32(a.raw >> 16)} }
