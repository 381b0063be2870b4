package zigzag

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// ZigZag8 is an 8 bit ZigZag code.
type ZigZag8 struct {
	code uint8
}

var _ numerics.Value = ZigZag8{}
var _ numerics.Ordered[ZigZag8] = ZigZag8{}

var (
	// MaxZigZag8 encodes math.MaxInt8.
	MaxZigZag8 = ZigZag8FromDecoded(math.MaxInt8)

	// MinZigZag8 encodes math.MinInt8.
	MinZigZag8 = ZigZag8FromDecoded(math.MinInt8)
)

// ZigZag8FromDecoded encodes v.
func ZigZag8FromDecoded(v int8) ZigZag8 { return ZigZag8{code: encode[uint8](v, 8)} }

// ZigZag8FromEncoded wraps an existing code.
func ZigZag8FromEncoded(e uint8) ZigZag8 { return ZigZag8{code: e} }

func (z ZigZag8) EncodedValue() uint8 { return z.code }

func (z ZigZag8) DecodedValue() int8 { return decode[int8](z.code) }

func (z ZigZag8) Add(o ZigZag8) ZigZag8 { return ZigZag8FromDecoded(z.DecodedValue() + o.DecodedValue()) }

func (z ZigZag8) Sub(o ZigZag8) ZigZag8 { return ZigZag8FromDecoded(z.DecodedValue() - o.DecodedValue()) }

// Neg returns the code of the negated value. MinZigZag8 is its own negation.
func (z ZigZag8) Neg() ZigZag8 { return ZigZag8FromDecoded(-z.DecodedValue()) }

func (z ZigZag8) Inc() ZigZag8 { return ZigZag8FromDecoded(z.DecodedValue() + 1) }

func (z ZigZag8) Dec() ZigZag8 { return ZigZag8FromDecoded(z.DecodedValue() - 1) }

// Compare orders codes by their decoded values.
func (z ZigZag8) Compare(o ZigZag8) int { return cmp.Compare(z.DecodedValue(), o.DecodedValue()) }

func (z ZigZag8) Equal(o ZigZag8) bool { return z.code == o.code }

func (z ZigZag8) CompareAny(other any) (int, error) { return numerics.CompareAny(z, other) }

func (ZigZag8) Bits() int { return 8 }

func (z ZigZag8) AppendRaw(dst []byte) []byte { return append(dst, z.code) }

// String returns the decimal decoded value.
func (z ZigZag8) String() string { return strconv.FormatInt(int64(z.DecodedValue()), 10) }

func (z ZigZag8) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, z.String(), z.DecodedValue())
}

// ParseZigZag8 parses the decimal decoded value.
func ParseZigZag8(s string) (ZigZag8, error) {
	v, err := numerics.ParseInt(&Error, "ZigZag8", s, 8)
	if err != nil {
		return ZigZag8{}, err
	}

	return ZigZag8FromDecoded(int8(v)), nil
}

func TryParseZigZag8(s string) (ZigZag8, bool) { return numerics.Try(ParseZigZag8(s)) }

func ParseZigZag8Locale(s string, tag language.Tag) (ZigZag8, error) {
	return ParseZigZag8(numerics.Delocalize(s, tag))
}

// ZigZag16 widens z. The decoded value is unchanged.
func (z ZigZag8) ZigZag16() ZigZag16 { return ZigZag16FromDecoded(int16(z.DecodedValue())) }

// ZigZag16 is a 16 bit ZigZag code.
type ZigZag16 struct {
	code uint16
}

var _ numerics.Value = ZigZag16{}
var _ numerics.Ordered[ZigZag16] = ZigZag16{}

var (
	// MaxZigZag16 encodes math.MaxInt16.
	MaxZigZag16 = ZigZag16FromDecoded(math.MaxInt16)

	// MinZigZag16 encodes math.MinInt16.
	MinZigZag16 = ZigZag16FromDecoded(math.MinInt16)
)

// ZigZag16FromDecoded encodes v.
func ZigZag16FromDecoded(v int16) ZigZag16 { return ZigZag16{code: encode[uint16](v, 16)} }

// ZigZag16FromEncoded wraps an existing code.
func ZigZag16FromEncoded(e uint16) ZigZag16 { return ZigZag16{code: e} }

func (z ZigZag16) EncodedValue() uint16 { return z.code }

func (z ZigZag16) DecodedValue() int16 { return decode[int16](z.code) }

func (z ZigZag16) Add(o ZigZag16) ZigZag16 { return ZigZag16FromDecoded(z.DecodedValue() + o.DecodedValue()) }

func (z ZigZag16) Sub(o ZigZag16) ZigZag16 { return ZigZag16FromDecoded(z.DecodedValue() - o.DecodedValue()) }

// Neg returns the code of the negated value. MinZigZag16 is its own negation.
func (z ZigZag16) Neg() ZigZag16 { return ZigZag16FromDecoded(-z.DecodedValue()) }

func (z ZigZag16) Inc() ZigZag16 { return ZigZag16FromDecoded(z.DecodedValue() + 1) }

func (z ZigZag16) Dec() ZigZag16 { return ZigZag16FromDecoded(z.DecodedValue() - 1) }

// Compare orders codes by their decoded values.
func (z ZigZag16) Compare(o ZigZag16) int { return cmp.Compare(z.DecodedValue(), o.DecodedValue()) }

func (z ZigZag16) Equal(o ZigZag16) bool { return z.code == o.code }

func (z ZigZag16) CompareAny(other any) (int, error) { return numerics.CompareAny(z, other) }

func (ZigZag16) Bits() int { return 16 }

func (z ZigZag16) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint16(dst, z.code) }

// String returns the decimal decoded value.
func (z ZigZag16) String() string { return strconv.FormatInt(int64(z.DecodedValue()), 10) }

func (z ZigZag16) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, z.String(), z.DecodedValue())
}

// ParseZigZag16 parses the decimal decoded value.
func ParseZigZag16(s string) (ZigZag16, error) {
	v, err := numerics.ParseInt(&Error, "ZigZag16", s, 16)
	if err != nil {
		return ZigZag16{}, err
	}

	return ZigZag16FromDecoded(int16(v)), nil
}

func TryParseZigZag16(s string) (ZigZag16, bool) { return numerics.Try(ParseZigZag16(s)) }

func ParseZigZag16Locale(s string, tag language.Tag) (ZigZag16, error) {
	return ParseZigZag16(numerics.Delocalize(s, tag))
}

// ZigZag32 widens z. The decoded value is unchanged.
func (z ZigZag16) ZigZag32() ZigZag32 { return ZigZag32FromDecoded(int32(z.DecodedValue())) }

// ZigZag8 narrows z, truncating the decoded value like a native conversion.
func (z ZigZag16) ZigZag8() ZigZag8 { return ZigZag8FromDecoded(int8(z.DecodedValue())) }

// ZigZag32 is a 32 bit ZigZag code.
type ZigZag32 struct {
	code uint32
}

var _ numerics.Value = ZigZag32{}
var _ numerics.Ordered[ZigZag32] = ZigZag32{}

var (
	// MaxZigZag32 encodes math.MaxInt32.
	MaxZigZag32 = ZigZag32FromDecoded(math.MaxInt32)

	// MinZigZag32 encodes math.MinInt32.
	MinZigZag32 = ZigZag32FromDecoded(math.MinInt32)
)

// ZigZag32FromDecoded encodes v.
func ZigZag32FromDecoded(v int32) ZigZag32 { return ZigZag32{code: encode[uint32](v, 32)} }

// ZigZag32FromEncoded wraps an existing code.
func ZigZag32FromEncoded(e uint32) ZigZag32 { return ZigZag32{code: e} }

func (z ZigZag32) EncodedValue() uint32 { return z.code }

func (z ZigZag32) DecodedValue() int32 { return decode[int32](z.code) }

func (z ZigZag32) Add(o ZigZag32) ZigZag32 { return ZigZag32FromDecoded(z.DecodedValue() + o.DecodedValue()) }

func (z ZigZag32) Sub(o ZigZag32) ZigZag32 { return ZigZag32FromDecoded(z.DecodedValue() - o.DecodedValue()) }

// Neg returns the code of the negated value. MinZigZag32 is its own negation.
func (z ZigZag32) Neg() ZigZag32 { return ZigZag32FromDecoded(-z.DecodedValue()) }

func (z ZigZag32) Inc() ZigZag32 { return ZigZag32FromDecoded(z.DecodedValue() + 1) }

func (z ZigZag32) Dec() ZigZag32 { return ZigZag32FromDecoded(z.DecodedValue() - 1) }

// Compare orders codes by their decoded values.
func (z ZigZag32) Compare(o ZigZag32) int { return cmp.Compare(z.DecodedValue(), o.DecodedValue()) }

func (z ZigZag32) Equal(o ZigZag32) bool { return z.code == o.code }

func (z ZigZag32) CompareAny(other any) (int, error) { return numerics.CompareAny(z, other) }

func (ZigZag32) Bits() int { return 32 }

func (z ZigZag32) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint32(dst, z.code) }

// String returns the decimal decoded value.
func (z ZigZag32) String() string { return strconv.FormatInt(int64(z.DecodedValue()), 10) }

func (z ZigZag32) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, z.String(), z.DecodedValue())
}

// ParseZigZag32 parses the decimal decoded value.
func ParseZigZag32(s string) (ZigZag32, error) {
	v, err := numerics.ParseInt(&Error, "ZigZag32", s, 32)
	if err != nil {
		return ZigZag32{}, err
	}

	return ZigZag32FromDecoded(int32(v)), nil
}

func TryParseZigZag32(s string) (ZigZag32, bool) { return numerics.Try(ParseZigZag32(s)) }

func ParseZigZag32Locale(s string, tag language.Tag) (ZigZag32, error) {
	return ParseZigZag32(numerics.Delocalize(s, tag))
}

// ZigZag64 widens z. The decoded value is unchanged.
func (z ZigZag32) ZigZag64() ZigZag64 { return ZigZag64FromDecoded(int64(z.DecodedValue())) }

// ZigZag16 narrows z, truncating the decoded value like a native conversion.
func (z ZigZag32) ZigZag16() ZigZag16 { return ZigZag16FromDecoded(int16(z.DecodedValue())) }

// ZigZag64 is a 64 bit ZigZag code.
type ZigZag64 struct {
	code uint64
}

var _ numerics.Value = ZigZag64{}
var _ numerics.Ordered[ZigZag64] = ZigZag64{}

var (
	// MaxZigZag64 encodes math.MaxInt64.
	MaxZigZag64 = ZigZag64FromDecoded(math.MaxInt64)

	// MinZigZag64 encodes math.MinInt64.
	MinZigZag64 = ZigZag64FromDecoded(math.MinInt64)
)

// ZigZag64FromDecoded encodes v.
func ZigZag64FromDecoded(v int64) ZigZag64 { return ZigZag64{code: encode[uint64](v, 64)} }

// ZigZag64FromEncoded wraps an existing code.
func ZigZag64FromEncoded(e uint64) ZigZag64 { return ZigZag64{code: e} }

func (z ZigZag64) EncodedValue() uint64 { return z.code }

func (z ZigZag64) DecodedValue() int64 { return decode[int64](z.code) }

func (z ZigZag64) Add(o ZigZag64) ZigZag64 { return ZigZag64FromDecoded(z.DecodedValue() + o.DecodedValue()) }

func (z ZigZag64) Sub(o ZigZag64) ZigZag64 { return ZigZag64FromDecoded(z.DecodedValue() - o.DecodedValue()) }

// Neg returns the code of the negated value. MinZigZag64 is its own negation.
func (z ZigZag64) Neg() ZigZag64 { return ZigZag64FromDecoded(-z.DecodedValue()) }

func (z ZigZag64) Inc() ZigZag64 { return ZigZag64FromDecoded(z.DecodedValue() + 1) }

func (z ZigZag64) Dec() ZigZag64 { return ZigZag64FromDecoded(z.DecodedValue() - 1) }

// Compare orders codes by their decoded values.
func (z ZigZag64) Compare(o ZigZag64) int { return cmp.Compare(z.DecodedValue(), o.DecodedValue()) }

func (z ZigZag64) Equal(o ZigZag64) bool { return z.code == o.code }

func (z ZigZag64) CompareAny(other any) (int, error) { return numerics.CompareAny(z, other) }

func (ZigZag64) Bits() int { return 64 }

func (z ZigZag64) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint64(dst, z.code) }

// String returns the decimal decoded value.
func (z ZigZag64) String() string { return strconv.FormatInt(int64(z.DecodedValue()), 10) }

func (z ZigZag64) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, z.String(), z.DecodedValue())
}

// ParseZigZag64 parses the decimal decoded value.
func ParseZigZag64(s string) (ZigZag64, error) {
	v, err := numerics.ParseInt(&Error, "ZigZag64", s, 64)
	if err != nil {
		return ZigZag64{}, err
	}

	return ZigZag64FromDecoded(int64(v)), nil
}

func TryParseZigZag64(s string) (ZigZag64, bool) { return numerics.Try(ParseZigZag64(s)) }

func ParseZigZag64Locale(s string, tag language.Tag) (ZigZag64, error) {
	return ParseZigZag64(numerics.Delocalize(s, tag))
}

// ZigZag32 narrows z, truncating the decoded value like a native conversion.
func (z ZigZag64) ZigZag32() ZigZag32 { return ZigZag32FromDecoded(int32(z.DecodedValue())) }
