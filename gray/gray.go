package gray

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// Gray8 is an 8 bit Gray code.
type Gray8 struct {
	code uint8
}

var _ numerics.Value = Gray8{}
var _ numerics.Ordered[Gray8] = Gray8{}

// Gray8FromBinary encodes b.
func Gray8FromBinary(b uint8) Gray8 { return Gray8{code: encode(b)} }

// Gray8FromGray wraps an existing code.
func Gray8FromGray(g uint8) Gray8 { return Gray8{code: g} }

// GrayValue returns the code.
func (g Gray8) GrayValue() uint8 { return g.code }

// BinaryValue returns the decoded binary value.
func (g Gray8) BinaryValue() uint8 { return decode(g.code, 8) }

// Inc returns the code of the next binary value, wrapping at the maximum.
func (g Gray8) Inc() Gray8 { return Gray8FromBinary(g.BinaryValue() + 1) }

// Dec returns the code of the previous binary value, wrapping at zero.
func (g Gray8) Dec() Gray8 { return Gray8FromBinary(g.BinaryValue() - 1) }

// Add returns the code of the wrapped sum of the binary values.
func (g Gray8) Add(o Gray8) Gray8 { return Gray8FromBinary(g.BinaryValue() + o.BinaryValue()) }

// Sub returns the code of the wrapped difference of the binary values.
func (g Gray8) Sub(o Gray8) Gray8 { return Gray8FromBinary(g.BinaryValue() - o.BinaryValue()) }

// Compare orders codes by their binary values.
func (g Gray8) Compare(o Gray8) int { return cmp.Compare(g.BinaryValue(), o.BinaryValue()) }

func (g Gray8) Equal(o Gray8) bool { return g.code == o.code }

func (g Gray8) CompareAny(other any) (int, error) { return numerics.CompareAny(g, other) }

func (Gray8) Bits() int { return 8 }

func (g Gray8) AppendRaw(dst []byte) []byte { return append(dst, g.code) }

// String returns the decimal binary value.
func (g Gray8) String() string { return strconv.FormatUint(uint64(g.BinaryValue()), 10) }

func (g Gray8) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, g.String(), g.BinaryValue())
}

// ParseGray8 parses the decimal binary value.
func ParseGray8(s string) (Gray8, error) {
	v, err := numerics.ParseUint(&Error, "Gray8", s, 8)
	if err != nil {
		return Gray8{}, err
	}

	return Gray8FromBinary(uint8(v)), nil
}

func TryParseGray8(s string) (Gray8, bool) { return numerics.Try(ParseGray8(s)) }

func ParseGray8Locale(s string, tag language.Tag) (Gray8, error) {
	return ParseGray8(numerics.Delocalize(s, tag))
}

// Gray16 widens g. The binary value is unchanged.
func (g Gray8) Gray16() Gray16 { return Gray16FromBinary(uint16(g.BinaryValue())) }

// Gray16 is a 16 bit Gray code.
type Gray16 struct {
	code uint16
}

var _ numerics.Value = Gray16{}
var _ numerics.Ordered[Gray16] = Gray16{}

// Gray16FromBinary encodes b.
func Gray16FromBinary(b uint16) Gray16 { return Gray16{code: encode(b)} }

// Gray16FromGray wraps an existing code.
func Gray16FromGray(g uint16) Gray16 { return Gray16{code: g} }

// GrayValue returns the code.
func (g Gray16) GrayValue() uint16 { return g.code }

// BinaryValue returns the decoded binary value.
func (g Gray16) BinaryValue() uint16 { return decode(g.code, 16) }

// Inc returns the code of the next binary value, wrapping at the maximum.
func (g Gray16) Inc() Gray16 { return Gray16FromBinary(g.BinaryValue() + 1) }

// Dec returns the code of the previous binary value, wrapping at zero.
func (g Gray16) Dec() Gray16 { return Gray16FromBinary(g.BinaryValue() - 1) }

// Add returns the code of the wrapped sum of the binary values.
func (g Gray16) Add(o Gray16) Gray16 { return Gray16FromBinary(g.BinaryValue() + o.BinaryValue()) }

// Sub returns the code of the wrapped difference of the binary values.
func (g Gray16) Sub(o Gray16) Gray16 { return Gray16FromBinary(g.BinaryValue() - o.BinaryValue()) }

// Compare orders codes by their binary values.
func (g Gray16) Compare(o Gray16) int { return cmp.Compare(g.BinaryValue(), o.BinaryValue()) }

func (g Gray16) Equal(o Gray16) bool { return g.code == o.code }

func (g Gray16) CompareAny(other any) (int, error) { return numerics.CompareAny(g, other) }

func (Gray16) Bits() int { return 16 }

func (g Gray16) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint16(dst, g.code) }

// String returns the decimal binary value.
func (g Gray16) String() string { return strconv.FormatUint(uint64(g.BinaryValue()), 10) }

func (g Gray16) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, g.String(), g.BinaryValue())
}

// ParseGray16 parses the decimal binary value.
func ParseGray16(s string) (Gray16, error) {
	v, err := numerics.ParseUint(&Error, "Gray16", s, 16)
	if err != nil {
		return Gray16{}, err
	}

	return Gray16FromBinary(uint16(v)), nil
}

func TryParseGray16(s string) (Gray16, bool) { return numerics.Try(ParseGray16(s)) }

func ParseGray16Locale(s string, tag language.Tag) (Gray16, error) {
	return ParseGray16(numerics.Delocalize(s, tag))
}

// Gray32 widens g. The binary value is unchanged.
func (g Gray16) Gray32() Gray32 { return Gray32FromBinary(uint32(g.BinaryValue())) }

// Gray8 narrows g, keeping the low bits of the binary value.
func (g Gray16) Gray8() Gray8 { return Gray8FromBinary(uint8(g.BinaryValue())) }

// Gray32 is a 32 bit Gray code.
type Gray32 struct {
	code uint32
}

var _ numerics.Value = Gray32{}
var _ numerics.Ordered[Gray32] = Gray32{}

// Gray32FromBinary encodes b.
func Gray32FromBinary(b uint32) Gray32 { return Gray32{code: encode(b)} }

// Gray32FromGray wraps an existing code.
func Gray32FromGray(g uint32) Gray32 { return Gray32{code: g} }

// GrayValue returns the code.
func (g Gray32) GrayValue() uint32 { return g.code }

// BinaryValue returns the decoded binary value.
func (g Gray32) BinaryValue() uint32 { return decode(g.code, 32) }

// Inc returns the code of the next binary value, wrapping at the maximum.
func (g Gray32) Inc() Gray32 { return Gray32FromBinary(g.BinaryValue() + 1) }

// Dec returns the code of the previous binary value, wrapping at zero.
func (g Gray32) Dec() Gray32 { return Gray32FromBinary(g.BinaryValue() - 1) }

// Add returns the code of the wrapped sum of the binary values.
func (g Gray32) Add(o Gray32) Gray32 { return Gray32FromBinary(g.BinaryValue() + o.BinaryValue()) }

// Sub returns the code of the wrapped difference of the binary values.
func (g Gray32) Sub(o Gray32) Gray32 { return Gray32FromBinary(g.BinaryValue() - o.BinaryValue()) }

// Compare orders codes by their binary values.
func (g Gray32) Compare(o Gray32) int { return cmp.Compare(g.BinaryValue(), o.BinaryValue()) }

func (g Gray32) Equal(o Gray32) bool { return g.code == o.code }

func (g Gray32) CompareAny(other any) (int, error) { return numerics.CompareAny(g, other) }

func (Gray32) Bits() int { return 32 }

func (g Gray32) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint32(dst, g.code) }

// String returns the decimal binary value.
func (g Gray32) String() string { return strconv.FormatUint(uint64(g.BinaryValue()), 10) }

func (g Gray32) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, g.String(), g.BinaryValue())
}

// ParseGray32 parses the decimal binary value.
func ParseGray32(s string) (Gray32, error) {
	v, err := numerics.ParseUint(&Error, "Gray32", s, 32)
	if err != nil {
		return Gray32{}, err
	}

	return Gray32FromBinary(uint32(v)), nil
}

func TryParseGray32(s string) (Gray32, bool) { return numerics.Try(ParseGray32(s)) }

func ParseGray32Locale(s string, tag language.Tag) (Gray32, error) {
	return ParseGray32(numerics.Delocalize(s, tag))
}

// Gray64 widens g. The binary value is unchanged.
func (g Gray32) Gray64() Gray64 { return Gray64FromBinary(uint64(g.BinaryValue())) }

// Gray16 narrows g, keeping the low bits of the binary value.
func (g Gray32) Gray16() Gray16 { return Gray16FromBinary(uint16(g.BinaryValue())) }

// Gray64 is a 64 bit Gray code.
type Gray64 struct {
	code uint64
}

var _ numerics.Value = Gray64{}
var _ numerics.Ordered[Gray64] = Gray64{}

// Gray64FromBinary encodes b.
func Gray64FromBinary(b uint64) Gray64 { return Gray64{code: encode(b)} }

// Gray64FromGray wraps an existing code.
func Gray64FromGray(g uint64) Gray64 { return Gray64{code: g} }

// GrayValue returns the code.
func (g Gray64) GrayValue() uint64 { return g.code }

// BinaryValue returns the decoded binary value.
func (g Gray64) BinaryValue() uint64 { return decode(g.code, 64) }

// Inc returns the code of the next binary value, wrapping at the maximum.
func (g Gray64) Inc() Gray64 { return Gray64FromBinary(g.BinaryValue() + 1) }

// Dec returns the code of the previous binary value, wrapping at zero.
func (g Gray64) Dec() Gray64 { return Gray64FromBinary(g.BinaryValue() - 1) }

// Add returns the code of the wrapped sum of the binary values.
func (g Gray64) Add(o Gray64) Gray64 { return Gray64FromBinary(g.BinaryValue() + o.BinaryValue()) }

// Sub returns the code of the wrapped difference of the binary values.
func (g Gray64) Sub(o Gray64) Gray64 { return Gray64FromBinary(g.BinaryValue() - o.BinaryValue()) }

// Compare orders codes by their binary values.
func (g Gray64) Compare(o Gray64) int { return cmp.Compare(g.BinaryValue(), o.BinaryValue()) }

func (g Gray64) Equal(o Gray64) bool { return g.code == o.code }

func (g Gray64) CompareAny(other any) (int, error) { return numerics.CompareAny(g, other) }

func (Gray64) Bits() int { return 64 }

func (g Gray64) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint64(dst, g.code) }

// String returns the decimal binary value.
func (g Gray64) String() string { return strconv.FormatUint(uint64(g.BinaryValue()), 10) }

func (g Gray64) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, g.String(), g.BinaryValue())
}

// ParseGray64 parses the decimal binary value.
func ParseGray64(s string) (Gray64, error) {
	v, err := numerics.ParseUint(&Error, "Gray64", s, 64)
	if err != nil {
		return Gray64{}, err
	}

	return Gray64FromBinary(uint64(v)), nil
}

func TryParseGray64(s string) (Gray64, bool) { return numerics.Try(ParseGray64(s)) }

func ParseGray64Locale(s string, tag language.Tag) (Gray64, error) {
	return ParseGray64(numerics.Delocalize(s, tag))
}

// Gray32 narrows g, keeping the low bits of the binary value.
func (g Gray64) Gray32() Gray32 { return Gray32FromBinary(uint32(g.BinaryValue())) }
