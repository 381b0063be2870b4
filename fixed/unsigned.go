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

// UQ4_4 is an unsigned fixed point number with 4 fraction bits.
type UQ4_4 struct {
	raw uint8
}

var _ numerics.Value = UQ4_4{}
var _ numerics.Ordered[UQ4_4] = UQ4_4{}

var (
	OneUQ4_4     = UQ4_4{raw: 1 << 4}
	EpsilonUQ4_4 = UQ4_4{raw: 1}
	MaxUQ4_4     = UQ4_4{raw: math.MaxUint8}
	MinUQ4_4     = UQ4_4{raw: 0}
)

var uq4_4Lo, uq4_4Hi = new(big.Int), new(big.Int).SetUint64(math.MaxUint8)

func UQ4_4FromRaw(raw uint8) UQ4_4 { return UQ4_4{raw: raw} }

func (a UQ4_4) Raw() uint8 { return a.raw }

// UQ4_4FromFloat32 truncates v to the nearest multiple of EpsilonUQ4_4 toward
// zero.
func UQ4_4FromFloat32(v float32) UQ4_4 { return UQ4_4{raw: uint8(v * (1 << 4))} }

// UQ4_4FromFloat64 truncates v to the nearest multiple of EpsilonUQ4_4 toward
// zero.
func UQ4_4FromFloat64(v float64) UQ4_4 { return UQ4_4{raw: uint8(v * (1 << 4))} }

func UQ4_4FromUint32(v uint32) UQ4_4 { return UQ4_4{raw: uint8(v) << 4} }

func UQ4_4FromUint64(v uint64) UQ4_4 { return UQ4_4{raw: uint8(v) << 4} }

func (a UQ4_4) Float32() float32 { return float32(a.raw) / (1 << 4) }

func (a UQ4_4) Float64() float64 { return float64(a.raw) / (1 << 4) }

// Uint32 returns the integer part.
func (a UQ4_4) Uint32() uint32 { return uint32(a.raw >> 4) }

// Uint64 returns the integer part.
func (a UQ4_4) Uint64() uint64 { return uint64(a.raw >> 4) }

func (a UQ4_4) Add(b UQ4_4) UQ4_4 { return UQ4_4{raw: a.raw + b.raw} }

func (a UQ4_4) Sub(b UQ4_4) UQ4_4 { return UQ4_4{raw: a.raw - b.raw} }

func (a UQ4_4) Mul(b UQ4_4) UQ4_4 {
	p := uint16(a.raw) * uint16(b.raw)

	return UQ4_4{raw: uint8(p >> 4)}
}

// Div returns a / b truncated toward zero. It panics if b is zero.
func (a UQ4_4) Div(b UQ4_4) UQ4_4 {
	d := uint16(a.raw) << 4

	return UQ4_4{raw: uint8(d / uint16(b.raw))}
}

// Rem returns the remainder of a / b. It panics if b is zero.
func (a UQ4_4) Rem(b UQ4_4) UQ4_4 { return UQ4_4{raw: a.raw % b.raw} }

func (a UQ4_4) Inc() UQ4_4 { return a.Add(OneUQ4_4) }

func (a UQ4_4) Dec() UQ4_4 { return a.Sub(OneUQ4_4) }

func (a UQ4_4) Compare(b UQ4_4) int { return cmp.Compare(a.raw, b.raw) }

func (a UQ4_4) Equal(b UQ4_4) bool { return a.raw == b.raw }

func (a UQ4_4) CompareAny(other any) (int, error) { return numerics.CompareAny(a, other) }

func (UQ4_4) Bits() int { return 8 }

func (a UQ4_4) AppendRaw(dst []byte) []byte { return append(dst, uint8(a.raw)) }

// String returns the exact decimal value.
func (a UQ4_4) String() string { return formatRaw(new(big.Int).SetUint64(uint64(a.raw)), 4) }

func (a UQ4_4) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Float64())
}

func ParseUQ4_4(s string) (UQ4_4, error) {
	v, err := parseRaw("UQ4_4", s, 4, uq4_4Lo, uq4_4Hi)
	if err != nil {
		return UQ4_4{}, err
	}

	return UQ4_4{raw: uint8(v.Uint64())}, nil
}

func TryParseUQ4_4(s string) (UQ4_4, bool) { return numerics.Try(ParseUQ4_4(s)) }

func ParseUQ4_4Locale(s string, tag language.Tag) (UQ4_4, error) {
	return ParseUQ4_4(numerics.Delocalize(s, tag))
}

// UQ8_8 widens a exactly.
func (a UQ4_4) UQ8_8() UQ8_8 { return UQ8_8{raw: uint16(a.raw) << 4} }

// UQ8_8 is an unsigned fixed point number with 8 fraction bits.
type UQ8_8 struct {
	raw uint16
}

var _ numerics.Value = UQ8_8{}
var _ numerics.Ordered[UQ8_8] = UQ8_8{}

var (
	OneUQ8_8     = UQ8_8{raw: 1 << 8}
	EpsilonUQ8_8 = UQ8_8{raw: 1}
	MaxUQ8_8     = UQ8_8{raw: math.MaxUint16}
	MinUQ8_8     = UQ8_8{raw: 0}
)

var uq8_8Lo, uq8_8Hi = new(big.Int), new(big.Int).SetUint64(math.MaxUint16)

func UQ8_8FromRaw(raw uint16) UQ8_8 { return UQ8_8{raw: raw} }

func (a UQ8_8) Raw() uint16 { return a.raw }

// UQ8_8FromFloat32 truncates v to the nearest multiple of EpsilonUQ8_8 toward
// zero.
func UQ8_8FromFloat32(v float32) UQ8_8 { return UQ8_8{raw: uint16(v * (1 << 8))} }

// UQ8_8FromFloat64 truncates v to the nearest multiple of EpsilonUQ8_8 toward
// zero.
func UQ8_8FromFloat64(v float64) UQ8_8 { return UQ8_8{raw: uint16(v * (1 << 8))} }

func UQ8_8FromUint32(v uint32) UQ8_8 { return UQ8_8{raw: uint16(v) << 8} }

func UQ8_8FromUint64(v uint64) UQ8_8 { return UQ8_8{raw: uint16(v) << 8} }

func (a UQ8_8) Float32() float32 { return float32(a.raw) / (1 << 8) }

func (a UQ8_8) Float64() float64 { return float64(a.raw) / (1 << 8) }

// Uint32 returns the integer part.
func (a UQ8_8) Uint32() uint32 { return uint32(a.raw >> 8) }

// Uint64 returns the integer part.
func (a UQ8_8) Uint64() uint64 { return uint64(a.raw >> 8) }

func (a UQ8_8) Add(b UQ8_8) UQ8_8 { return UQ8_8{raw: a.raw + b.raw} }

func (a UQ8_8) Sub(b UQ8_8) UQ8_8 { return UQ8_8{raw: a.raw - b.raw} }

func (a UQ8_8) Mul(b UQ8_8) UQ8_8 {
	p := uint32(a.raw) * uint32(b.raw)

	return UQ8_8{raw: uint16(p >> 8)}
}

// Div returns a / b truncated toward zero. It panics if b is zero.
func (a UQ8_8) Div(b UQ8_8) UQ8_8 {
	d := uint32(a.raw) << 8

	return UQ8_8{raw: uint16(d / uint32(b.raw))}
}

// Rem returns the remainder of a / b. It panics if b is zero.
func (a UQ8_8) Rem(b UQ8_8) UQ8_8 { return UQ8_8{raw: a.raw % b.raw} }

func (a UQ8_8) Inc() UQ8_8 { return a.Add(OneUQ8_8) }

func (a UQ8_8) Dec() UQ8_8 { return a.Sub(OneUQ8_8) }

func (a UQ8_8) Compare(b UQ8_8) int { return cmp.Compare(a.raw, b.raw) }

func (a UQ8_8) Equal(b UQ8_8) bool { return a.raw == b.raw }

func (a UQ8_8) CompareAny(other any) (int, error) { return numerics.CompareAny(a, other) }

func (UQ8_8) Bits() int { return 16 }

func (a UQ8_8) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint16(dst, uint16(a.raw)) }

// String returns the exact decimal value.
func (a UQ8_8) String() string { return formatRaw(new(big.Int).SetUint64(uint64(a.raw)), 8) }

func (a UQ8_8) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Float64())
}

func ParseUQ8_8(s string) (UQ8_8, error) {
	v, err := parseRaw("UQ8_8", s, 8, uq8_8Lo, uq8_8Hi)
	if err != nil {
		return UQ8_8{}, err
	}

	return UQ8_8{raw: uint16(v.Uint64())}, nil
}

func TryParseUQ8_8(s string) (UQ8_8, bool) { return numerics.Try(ParseUQ8_8(s)) }

func ParseUQ8_8Locale(s string, tag language.Tag) (UQ8_8, error) {
	return ParseUQ8_8(numerics.Delocalize(s, tag))
}

// UQ16_16 widens a exactly.
func (a UQ8_8) UQ16_16() UQ16_16 { return UQ16_16{raw: uint32(a.raw) << 8} }

// UQ4_4 narrows a, dropping the low fraction bits and the high integer bits.
func (a UQ8_8) UQ4_4() UQ4_4 { return UQ4_4{raw: uint8(a.raw >> 4)} }

// UQ16_16 is an unsigned fixed point number with 16 fraction bits.
type UQ16_16 struct {
	raw uint32
}

var _ numerics.Value = UQ16_16{}
var _ numerics.Ordered[UQ16_16] = UQ16_16{}

var (
	OneUQ16_16     = UQ16_16{raw: 1 << 16}
	EpsilonUQ16_16 = UQ16_16{raw: 1}
	MaxUQ16_16     = UQ16_16{raw: math.MaxUint32}
	MinUQ16_16     = UQ16_16{raw: 0}
)

var uq16_16Lo, uq16_16Hi = new(big.Int), new(big.Int).SetUint64(math.MaxUint32)

func UQ16_16FromRaw(raw uint32) UQ16_16 { return UQ16_16{raw: raw} }

func (a UQ16_16) Raw() uint32 { return a.raw }

// UQ16_16FromFloat32 truncates v to the nearest multiple of EpsilonUQ16_16 toward
// zero.
func UQ16_16FromFloat32(v float32) UQ16_16 { return UQ16_16{raw: uint32(v * (1 << 16))} }

// UQ16_16FromFloat64 truncates v to the nearest multiple of EpsilonUQ16_16 toward
// zero.
func UQ16_16FromFloat64(v float64) UQ16_16 { return UQ16_16{raw: uint32(v * (1 << 16))} }

func UQ16_16FromUint32(v uint32) UQ16_16 { return UQ16_16{raw: uint32(v) << 16} }

func UQ16_16FromUint64(v uint64) UQ16_16 { return UQ16_16{raw: uint32(v) << 16} }

func (a UQ16_16) Float32() float32 { return float32(a.raw) / (1 << 16) }

func (a UQ16_16) Float64() float64 { return float64(a.raw) / (1 << 16) }

// Uint32 returns the integer part.
func (a UQ16_16) Uint32() uint32 { return uint32(a.raw >> 16) }

// Uint64 returns the integer part.
func (a UQ16_16) Uint64() uint64 { return uint64(a.raw >> 16) }

func (a UQ16_16) Add(b UQ16_16) UQ16_16 { return UQ16_16{raw: a.raw + b.raw} }

func (a UQ16_16) Sub(b UQ16_16) UQ16_16 { return UQ16_16{raw: a.raw - b.raw} }

func (a UQ16_16) Mul(b UQ16_16) UQ16_16 {
	p := uint64(a.raw) * uint64(b.raw)

	return UQ16_16{raw: uint32(p >> 16)}
}

// Div returns a / b truncated toward zero. It panics if b is zero.
func (a UQ16_16) Div(b UQ16_16) UQ16_16 {
	d := uint64(a.raw) << 16

	return UQ16_16{raw: uint32(d / uint64(b.raw))}
}

// Rem returns the remainder of a / b. It panics if b is zero.
func (a UQ16_16) Rem(b UQ16_16) UQ16_16 { return UQ16_16{raw: a.raw % b.raw} }

func (a UQ16_16) Inc() UQ16_16 { return a.Add(OneUQ16_16) }

func (a UQ16_16) Dec() UQ16_16 { return a.Sub(OneUQ16_16) }

func (a UQ16_16) Compare(b UQ16_16) int { return cmp.Compare(a.raw, b.raw) }

func (a UQ16_16) Equal(b UQ16_16) bool { return a.raw == b.raw }

func (a UQ16_16) CompareAny(other any) (int, error) { return numerics.CompareAny(a, other) }

func (UQ16_16) Bits() int { return 32 }

func (a UQ16_16) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint32(dst, uint32(a.raw)) }

// String returns the exact decimal value.
func (a UQ16_16) String() string { return formatRaw(new(big.Int).SetUint64(uint64(a.raw)), 16) }

func (a UQ16_16) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Float64())
}

func ParseUQ16_16(s string) (UQ16_16, error) {
	v, err := parseRaw("UQ16_16", s, 16, uq16_16Lo, uq16_16Hi)
	if err != nil {
		return UQ16_16{}, err
	}

	return UQ16_16{raw: uint32(v.Uint64())}, nil
}

func TryParseUQ16_16(s string) (UQ16_16, bool) { return numerics.Try(ParseUQ16_16(s)) }

func ParseUQ16_16Locale(s string, tag language.Tag) (UQ16_16, error) {
	return ParseUQ16_16(numerics.Delocalize(s, tag))
}

// UQ32_32 widens a exactly.
func (a UQ16_16) UQ32_32() UQ32_32 { return UQ32_32{raw: uint64(a.raw) << 16} }

// UQ8_8 narrows a, dropping the low fraction bits and the high integer bits.
func (a UQ16_16) UQ8_8() UQ8_8 { return UQ8_8{raw: uint16(a.raw >> 8)} }

// UQ32_32 is an unsigned fixed point number with 32 fraction bits.
type UQ32_32 struct {
	raw uint64
}

var _ numerics.Value = UQ32_32{}
var _ numerics.Ordered[UQ32_32] = UQ32_32{}

var (
	OneUQ32_32     = UQ32_32{raw: 1 << 32}
	EpsilonUQ32_32 = UQ32_32{raw: 1}
	MaxUQ32_32     = UQ32_32{raw: math.MaxUint64}
	MinUQ32_32     = UQ32_32{raw: 0}
)

var uq32_32Lo, uq32_32Hi = new(big.Int), new(big.Int).SetUint64(math.MaxUint64)

func UQ32_32FromRaw(raw uint64) UQ32_32 { return UQ32_32{raw: raw} }

func (a UQ32_32) Raw() uint64 { return a.raw }

// UQ32_32FromFloat32 truncates v to the nearest multiple of EpsilonUQ32_32 toward
// zero.
func UQ32_32FromFloat32(v float32) UQ32_32 { return UQ32_32{raw: uint64(v * (1 << 32))} }

// UQ32_32FromFloat64 truncates v to the nearest multiple of EpsilonUQ32_32 toward
// zero.
func UQ32_32FromFloat64(v float64) UQ32_32 { return UQ32_32{raw: uint64(v * (1 << 32))} }

func UQ32_32FromUint32(v uint32) UQ32_32 { return UQ32_32{raw: uint64(v) << 32} }

func UQ32_32FromUint64(v uint64) UQ32_32 { return UQ32_32{raw: uint64(v) << 32} }

func (a UQ32_32) Float32() float32 { return float32(a.raw) / (1 << 32) }

func (a UQ32_32) Float64() float64 { return float64(a.raw) / (1 << 32) }

// Uint32 returns the integer part.
func (a UQ32_32) Uint32() uint32 { return uint32(a.raw >> 32) }

// Uint64 returns the integer part.
func (a UQ32_32) Uint64() uint64 { return uint64(a.raw >> 32) }

func (a UQ32_32) Add(b UQ32_32) UQ32_32 { return UQ32_32{raw: a.raw + b.raw} }

func (a UQ32_32) Sub(b UQ32_32) UQ32_32 { return UQ32_32{raw: a.raw - b.raw} }

func (a UQ32_32) Mul(b UQ32_32) UQ32_32 {
	return UQ32_32{raw: mulU32(a.raw, b.raw)}
}

// Div returns a / b truncated toward zero. It panics if b is zero.
func (a UQ32_32) Div(b UQ32_32) UQ32_32 {
	return UQ32_32{raw: divU32(a.raw, b.raw)}
}

// Rem returns the remainder of a / b. It panics if b is zero.
func (a UQ32_32) Rem(b UQ32_32) UQ32_32 { return UQ32_32{raw: a.raw % b.raw} }

func (a UQ32_32) Inc() UQ32_32 { return a.Add(OneUQ32_32) }

func (a UQ32_32) Dec() UQ32_32 { return a.Sub(OneUQ32_32) }

func (a UQ32_32) Compare(b UQ32_32) int { return cmp.Compare(a.raw, b.raw) }

func (a UQ32_32) Equal(b UQ32_32) bool { return a.raw == b.raw }

func (a UQ32_32) CompareAny(other any) (int, error) { return numerics.CompareAny(a, other) }

func (UQ32_32) Bits() int { return 64 }

func (a UQ32_32) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint64(dst, uint64(a.raw)) }

// String returns the exact decimal value.
func (a UQ32_32) String() string { return formatRaw(new(big.Int).SetUint64(uint64(a.raw)), 32) }

func (a UQ32_32) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, a.String(), a.Float64())
}

func ParseUQ32_32(s string) (UQ32_32, error) {
	v, err := parseRaw("UQ32_32", s, 32, uq32_32Lo, uq32_32Hi)
	if err != nil {
		return UQ32_32{}, err
	}

	return UQ32_32{raw: uint64(v.Uint64())}, nil
}

func TryParseUQ32_32(s string) (UQ32_32, bool) { return numerics.Try(ParseUQ32_32(s)) }

func ParseUQ32_32Locale(s string, tag language.Tag) (UQ32_32, error) {
	return ParseUQ32_32(numerics.Delocalize(s, tag))
}

// UQ16_16 narrows a, dropping the low fraction bits and the high integer bits.
func (a UQ32_32) UQ16_16() UQ16_16 { return UQ16_16{raw: uint32(a.raw >> 16)} }
