package bcd

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
)

// UnpackedBCD is a single decimal digit held in a byte.
type UnpackedBCD struct {
	raw uint8
}

var _ numerics.Value = UnpackedBCD{}
var _ numerics.Ordered[UnpackedBCD] = UnpackedBCD{}

var arithUnpackedBCD = arith{name: "UnpackedBCD", max: 9}

var (
	MinUnpackedBCD = UnpackedBCD{}
	OneUnpackedBCD = UnpackedBCD{raw: 1}
	MaxUnpackedBCD = UnpackedBCD{raw: 9}
)

// UnpackedBCDFromRaw validates raw and wraps it.
func UnpackedBCDFromRaw(raw uint8) (UnpackedBCD, error) {
	if raw > 9 {
		return UnpackedBCD{}, arithUnpackedBCD.invalidRaw(uint64(raw), 8)
	}

	return UnpackedBCD{raw: raw}, nil
}

// MustUnpackedBCDFromRaw is like UnpackedBCDFromRaw but panics if raw is invalid.
func MustUnpackedBCDFromRaw(raw uint8) UnpackedBCD {
	b, err := UnpackedBCDFromRaw(raw)
	if err != nil {
		panic(err)
	}

	return b
}

// UnpackedBCDFromValue encodes the decimal value v.
func UnpackedBCDFromValue(v uint64) (UnpackedBCD, error) {
	if err := arithUnpackedBCD.fromValue(v); err != nil {
		return UnpackedBCD{}, err
	}

	return UnpackedBCD{raw: uint8(v)}, nil
}

func (b UnpackedBCD) Raw() uint8 { return b.raw }

// Value returns the decimal value.
func (b UnpackedBCD) Value() uint64 { return uint64(b.raw) }

func (b UnpackedBCD) result(v uint64, err error) (UnpackedBCD, error) {
	if err != nil {
		return UnpackedBCD{}, err
	}

	return UnpackedBCD{raw: uint8(v)}, nil
}

func (b UnpackedBCD) Add(o UnpackedBCD) (UnpackedBCD, error) {
	return b.result(arithUnpackedBCD.add(b.Value(), o.Value()))
}

func (b UnpackedBCD) Sub(o UnpackedBCD) (UnpackedBCD, error) {
	return b.result(arithUnpackedBCD.sub(b.Value(), o.Value()))
}

func (b UnpackedBCD) Mul(o UnpackedBCD) (UnpackedBCD, error) {
	return b.result(arithUnpackedBCD.mul(b.Value(), o.Value()))
}

func (b UnpackedBCD) Div(o UnpackedBCD) (UnpackedBCD, error) {
	return b.result(arithUnpackedBCD.div(b.Value(), o.Value()))
}

func (b UnpackedBCD) Rem(o UnpackedBCD) (UnpackedBCD, error) {
	return b.result(arithUnpackedBCD.rem(b.Value(), o.Value()))
}

func (b UnpackedBCD) Inc() (UnpackedBCD, error) { return b.Add(OneUnpackedBCD) }

func (b UnpackedBCD) Dec() (UnpackedBCD, error) { return b.Sub(OneUnpackedBCD) }

func (b UnpackedBCD) Compare(o UnpackedBCD) int { return cmp.Compare(b.raw, o.raw) }

func (b UnpackedBCD) Equal(o UnpackedBCD) bool { return b.raw == o.raw }

func (b UnpackedBCD) CompareAny(other any) (int, error) { return numerics.CompareAny(b, other) }

func (UnpackedBCD) Bits() int { return 8 }

func (b UnpackedBCD) AppendRaw(dst []byte) []byte { return append(dst, b.raw) }

// String returns the decimal value without padding.
func (b UnpackedBCD) String() string { return strconv.FormatUint(b.Value(), 10) }

// Digits returns the digit.
func (b UnpackedBCD) Digits() string { return fmt.Sprintf("%01d", b.Value()) }

func (b UnpackedBCD) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, b.String(), b.Value())
}

// ParseUnpackedBCD parses a decimal value.
func ParseUnpackedBCD(s string) (UnpackedBCD, error) {
	v, err := numerics.ParseUint(&Error, "UnpackedBCD", s, 64)
	if err != nil {
		return UnpackedBCD{}, err
	}

	return UnpackedBCDFromValue(v)
}

func TryParseUnpackedBCD(s string) (UnpackedBCD, bool) { return numerics.Try(ParseUnpackedBCD(s)) }

func ParseUnpackedBCDLocale(s string, tag language.Tag) (UnpackedBCD, error) {
	return ParseUnpackedBCD(numerics.Delocalize(s, tag))
}

// PackedBCD8 widens b. The decimal value is unchanged.
func (b UnpackedBCD) PackedBCD8() PackedBCD8 { return PackedBCD8{raw: b.raw} }

// PackedBCD8 holds 2 decimal digits packed two per byte.
type PackedBCD8 struct {
	raw uint8
}

var _ numerics.Value = PackedBCD8{}
var _ numerics.Ordered[PackedBCD8] = PackedBCD8{}

var arithPackedBCD8 = arith{name: "PackedBCD8", max: 99}

var (
	MinPackedBCD8 = PackedBCD8{}
	OnePackedBCD8 = PackedBCD8{raw: 1}
	MaxPackedBCD8 = PackedBCD8{raw: 0x99}
)

// PackedBCD8FromRaw validates raw and wraps it.
func PackedBCD8FromRaw(raw uint8) (PackedBCD8, error) {
	if !validPacked(raw) {
		return PackedBCD8{}, arithPackedBCD8.invalidRaw(uint64(raw), 8)
	}

	return PackedBCD8{raw: raw}, nil
}

// MustPackedBCD8FromRaw is like PackedBCD8FromRaw but panics if raw is invalid.
func MustPackedBCD8FromRaw(raw uint8) PackedBCD8 {
	b, err := PackedBCD8FromRaw(raw)
	if err != nil {
		panic(err)
	}

	return b
}

// PackedBCD8FromValue encodes the decimal value v.
func PackedBCD8FromValue(v uint64) (PackedBCD8, error) {
	if err := arithPackedBCD8.fromValue(v); err != nil {
		return PackedBCD8{}, err
	}

	return PackedBCD8{raw: pack[uint8](v)}, nil
}

func (b PackedBCD8) Raw() uint8 { return b.raw }

// Value returns the decimal value.
func (b PackedBCD8) Value() uint64 { return unpack(b.raw) }

func (b PackedBCD8) result(v uint64, err error) (PackedBCD8, error) {
	if err != nil {
		return PackedBCD8{}, err
	}

	return PackedBCD8{raw: pack[uint8](v)}, nil
}

func (b PackedBCD8) Add(o PackedBCD8) (PackedBCD8, error) {
	return b.result(arithPackedBCD8.add(b.Value(), o.Value()))
}

func (b PackedBCD8) Sub(o PackedBCD8) (PackedBCD8, error) {
	return b.result(arithPackedBCD8.sub(b.Value(), o.Value()))
}

func (b PackedBCD8) Mul(o PackedBCD8) (PackedBCD8, error) {
	return b.result(arithPackedBCD8.mul(b.Value(), o.Value()))
}

func (b PackedBCD8) Div(o PackedBCD8) (PackedBCD8, error) {
	return b.result(arithPackedBCD8.div(b.Value(), o.Value()))
}

func (b PackedBCD8) Rem(o PackedBCD8) (PackedBCD8, error) {
	return b.result(arithPackedBCD8.rem(b.Value(), o.Value()))
}

func (b PackedBCD8) Inc() (PackedBCD8, error) { return b.Add(OnePackedBCD8) }

func (b PackedBCD8) Dec() (PackedBCD8, error) { return b.Sub(OnePackedBCD8) }

func (b PackedBCD8) Compare(o PackedBCD8) int { return cmp.Compare(b.raw, o.raw) }

func (b PackedBCD8) Equal(o PackedBCD8) bool { return b.raw == o.raw }

func (b PackedBCD8) CompareAny(other any) (int, error) { return numerics.CompareAny(b, other) }

func (PackedBCD8) Bits() int { return 8 }

func (b PackedBCD8) AppendRaw(dst []byte) []byte { return append(dst, b.raw) }

// String returns the decimal value without padding.
func (b PackedBCD8) String() string { return strconv.FormatUint(b.Value(), 10) }

// Digits returns all 2 digits, zero padded.
func (b PackedBCD8) Digits() string { return fmt.Sprintf("%02d", b.Value()) }

func (b PackedBCD8) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, b.String(), b.Value())
}

// ParsePackedBCD8 parses a decimal value.
func ParsePackedBCD8(s string) (PackedBCD8, error) {
	v, err := numerics.ParseUint(&Error, "PackedBCD8", s, 64)
	if err != nil {
		return PackedBCD8{}, err
	}

	return PackedBCD8FromValue(v)
}

func TryParsePackedBCD8(s string) (PackedBCD8, bool) { return numerics.Try(ParsePackedBCD8(s)) }

func ParsePackedBCD8Locale(s string, tag language.Tag) (PackedBCD8, error) {
	return ParsePackedBCD8(numerics.Delocalize(s, tag))
}

// PackedBCD16 widens b. The decimal value is unchanged.
func (b PackedBCD8) PackedBCD16() PackedBCD16 { return PackedBCD16{raw: uint16(b.raw)} }

// UnpackedBCD narrows b. Values that do not fit are out of range.
func (b PackedBCD8) UnpackedBCD() (UnpackedBCD, error) { return UnpackedBCDFromValue(b.Value()) }

// PackedBCD16 holds 4 decimal digits packed two per byte.
type PackedBCD16 struct {
	raw uint16
}

var _ numerics.Value = PackedBCD16{}
var _ numerics.Ordered[PackedBCD16] = PackedBCD16{}

var arithPackedBCD16 = arith{name: "PackedBCD16", max: 9999}

var (
	MinPackedBCD16 = PackedBCD16{}
	OnePackedBCD16 = PackedBCD16{raw: 1}
	MaxPackedBCD16 = PackedBCD16{raw: 0x9999}
)

// PackedBCD16FromRaw validates raw and wraps it.
func PackedBCD16FromRaw(raw uint16) (PackedBCD16, error) {
	if !validPacked(raw) {
		return PackedBCD16{}, arithPackedBCD16.invalidRaw(uint64(raw), 16)
	}

	return PackedBCD16{raw: raw}, nil
}

// MustPackedBCD16FromRaw is like PackedBCD16FromRaw but panics if raw is invalid.
func MustPackedBCD16FromRaw(raw uint16) PackedBCD16 {
	b, err := PackedBCD16FromRaw(raw)
	if err != nil {
		panic(err)
	}

	return b
}

// PackedBCD16FromValue encodes the decimal value v.
func PackedBCD16FromValue(v uint64) (PackedBCD16, error) {
	if err := arithPackedBCD16.fromValue(v); err != nil {
		return PackedBCD16{}, err
	}

	return PackedBCD16{raw: pack[uint16](v)}, nil
}

func (b PackedBCD16) Raw() uint16 { return b.raw }

// Value returns the decimal value.
func (b PackedBCD16) Value() uint64 { return unpack(b.raw) }

func (b PackedBCD16) result(v uint64, err error) (PackedBCD16, error) {
	if err != nil {
		return PackedBCD16{}, err
	}

	return PackedBCD16{raw: pack[uint16](v)}, nil
}

func (b PackedBCD16) Add(o PackedBCD16) (PackedBCD16, error) {
	return b.result(arithPackedBCD16.add(b.Value(), o.Value()))
}

func (b PackedBCD16) Sub(o PackedBCD16) (PackedBCD16, error) {
	return b.result(arithPackedBCD16.sub(b.Value(), o.Value()))
}

func (b PackedBCD16) Mul(o PackedBCD16) (PackedBCD16, error) {
	return b.result(arithPackedBCD16.mul(b.Value(), o.Value()))
}

func (b PackedBCD16) Div(o PackedBCD16) (PackedBCD16, error) {
	return b.result(arithPackedBCD16.div(b.Value(), o.Value()))
}

func (b PackedBCD16) Rem(o PackedBCD16) (PackedBCD16, error) {
	return b.result(arithPackedBCD16.rem(b.Value(), o.Value()))
}

func (b PackedBCD16) Inc() (PackedBCD16, error) { return b.Add(OnePackedBCD16) }

func (b PackedBCD16) Dec() (PackedBCD16, error) { return b.Sub(OnePackedBCD16) }

func (b PackedBCD16) Compare(o PackedBCD16) int { return cmp.Compare(b.raw, o.raw) }

func (b PackedBCD16) Equal(o PackedBCD16) bool { return b.raw == o.raw }

func (b PackedBCD16) CompareAny(other any) (int, error) { return numerics.CompareAny(b, other) }

func (PackedBCD16) Bits() int { return 16 }

func (b PackedBCD16) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint16(dst, b.raw) }

// String returns the decimal value without padding.
func (b PackedBCD16) String() string { return strconv.FormatUint(b.Value(), 10) }

// Digits returns all 4 digits, zero padded.
func (b PackedBCD16) Digits() string { return fmt.Sprintf("%04d", b.Value()) }

func (b PackedBCD16) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, b.String(), b.Value())
}

// ParsePackedBCD16 parses a decimal value.
func ParsePackedBCD16(s string) (PackedBCD16, error) {
	v, err := numerics.ParseUint(&Error, "PackedBCD16", s, 64)
	if err != nil {
		return PackedBCD16{}, err
	}

	return PackedBCD16FromValue(v)
}

func TryParsePackedBCD16(s string) (PackedBCD16, bool) { return numerics.Try(ParsePackedBCD16(s)) }

func ParsePackedBCD16Locale(s string, tag language.Tag) (PackedBCD16, error) {
	return ParsePackedBCD16(numerics.Delocalize(s, tag))
}

// PackedBCD32 widens b. The decimal value is unchanged.
func (b PackedBCD16) PackedBCD32() PackedBCD32 { return PackedBCD32{raw: uint32(b.raw)} }

// PackedBCD8 narrows b. Values that do not fit are out of range.
func (b PackedBCD16) PackedBCD8() (PackedBCD8, error) { return PackedBCD8FromValue(b.Value()) }

// PackedBCD32 holds 8 decimal digits packed two per byte.
type PackedBCD32 struct {
	raw uint32
}

var _ numerics.Value = PackedBCD32{}
var _ numerics.Ordered[PackedBCD32] = PackedBCD32{}

var arithPackedBCD32 = arith{name: "PackedBCD32", max: 99_999_999}

var (
	MinPackedBCD32 = PackedBCD32{}
	OnePackedBCD32 = PackedBCD32{raw: 1}
	MaxPackedBCD32 = PackedBCD32{raw: 0x9999_9999}
)

// PackedBCD32FromRaw validates raw and wraps it.
func PackedBCD32FromRaw(raw uint32) (PackedBCD32, error) {
	if !validPacked(raw) {
		return PackedBCD32{}, arithPackedBCD32.invalidRaw(uint64(raw), 32)
	}

	return PackedBCD32{raw: raw}, nil
}

// MustPackedBCD32FromRaw is like PackedBCD32FromRaw but panics if raw is invalid.
func MustPackedBCD32FromRaw(raw uint32) PackedBCD32 {
	b, err := PackedBCD32FromRaw(raw)
	if err != nil {
		panic(err)
	}

	return b
}

// PackedBCD32FromValue encodes the decimal value v.
func PackedBCD32FromValue(v uint64) (PackedBCD32, error) {
	if err := arithPackedBCD32.fromValue(v); err != nil {
		return PackedBCD32{}, err
	}

	return PackedBCD32{raw: pack[uint32](v)}, nil
}

func (b PackedBCD32) Raw() uint32 { return b.raw }

// Value returns the decimal value.
func (b PackedBCD32) Value() uint64 { return unpack(b.raw) }

func (b PackedBCD32) result(v uint64, err error) (PackedBCD32, error) {
	if err != nil {
		return PackedBCD32{}, err
	}

	return PackedBCD32{raw: pack[uint32](v)}, nil
}

func (b PackedBCD32) Add(o PackedBCD32) (PackedBCD32, error) {
	return b.result(arithPackedBCD32.add(b.Value(), o.Value()))
}

func (b PackedBCD32) Sub(o PackedBCD32) (PackedBCD32, error) {
	return b.result(arithPackedBCD32.sub(b.Value(), o.Value()))
}

func (b PackedBCD32) Mul(o PackedBCD32) (PackedBCD32, error) {
	return b.result(arithPackedBCD32.mul(b.Value(), o.Value()))
}

func (b PackedBCD32) Div(o PackedBCD32) (PackedBCD32, error) {
	return b.result(arithPackedBCD32.div(b.Value(), o.Value()))
}

func (b PackedBCD32) Rem(o PackedBCD32) (PackedBCD32, error) {
	return b.result(arithPackedBCD32.rem(b.Value(), o.Value()))
}

func (b PackedBCD32) Inc() (PackedBCD32, error) { return b.Add(OnePackedBCD32) }

func (b PackedBCD32) Dec() (PackedBCD32, error) { return b.Sub(OnePackedBCD32) }

func (b PackedBCD32) Compare(o PackedBCD32) int { return cmp.Compare(b.raw, o.raw) }

func (b PackedBCD32) Equal(o PackedBCD32) bool { return b.raw == o.raw }

func (b PackedBCD32) CompareAny(other any) (int, error) { return numerics.CompareAny(b, other) }

func (PackedBCD32) Bits() int { return 32 }

func (b PackedBCD32) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint32(dst, b.raw) }

// String returns the decimal value without padding.
func (b PackedBCD32) String() string { return strconv.FormatUint(b.Value(), 10) }

// Digits returns all 8 digits, zero padded.
func (b PackedBCD32) Digits() string { return fmt.Sprintf("%08d", b.Value()) }

func (b PackedBCD32) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, b.String(), b.Value())
}

// ParsePackedBCD32 parses a decimal value.
func ParsePackedBCD32(s string) (PackedBCD32, error) {
	v, err := numerics.ParseUint(&Error, "PackedBCD32", s, 64)
	if err != nil {
		return PackedBCD32{}, err
	}

	return PackedBCD32FromValue(v)
}

func TryParsePackedBCD32(s string) (PackedBCD32, bool) { return numerics.Try(ParsePackedBCD32(s)) }

func ParsePackedBCD32Locale(s string, tag language.Tag) (PackedBCD32, error) {
	return ParsePackedBCD32(numerics.Delocalize(s, tag))
}

// PackedBCD64 widens b. The decimal value is unchanged.
func (b PackedBCD32) PackedBCD64() PackedBCD64 { return PackedBCD64{raw: uint64(b.raw)} }

// PackedBCD16 narrows b. Values that do not fit are out of range.
func (b PackedBCD32) PackedBCD16() (PackedBCD16, error) { return PackedBCD16FromValue(b.Value()) }

// PackedBCD64 holds 16 decimal digits packed two per byte.
type PackedBCD64 struct {
	raw uint64
}

var _ numerics.Value = PackedBCD64{}
var _ numerics.Ordered[PackedBCD64] = PackedBCD64{}

var arithPackedBCD64 = arith{name: "PackedBCD64", max: 9_999_999_999_999_999}

var (
	MinPackedBCD64 = PackedBCD64{}
	OnePackedBCD64 = PackedBCD64{raw: 1}
	MaxPackedBCD64 = PackedBCD64{raw: 0x9999_9999_9999_9999}
)

// PackedBCD64FromRaw validates raw and wraps it.
func PackedBCD64FromRaw(raw uint64) (PackedBCD64, error) {
	if !validPacked(raw) {
		return PackedBCD64{}, arithPackedBCD64.invalidRaw(uint64(raw), 64)
	}

	return PackedBCD64{raw: raw}, nil
}

// MustPackedBCD64FromRaw is like PackedBCD64FromRaw but panics if raw is invalid.
func MustPackedBCD64FromRaw(raw uint64) PackedBCD64 {
	b, err := PackedBCD64FromRaw(raw)
	if err != nil {
		panic(err)
	}

	return b
}

// PackedBCD64FromValue encodes the decimal value v.
func PackedBCD64FromValue(v uint64) (PackedBCD64, error) {
	if err := arithPackedBCD64.fromValue(v); err != nil {
		return PackedBCD64{}, err
	}

	return PackedBCD64{raw: pack[uint64](v)}, nil
}

func (b PackedBCD64) Raw() uint64 { return b.raw }

// Value returns the decimal value.
func (b PackedBCD64) Value() uint64 { return unpack(b.raw) }

func (b PackedBCD64) result(v uint64, err error) (PackedBCD64, error) {
	if err != nil {
		return PackedBCD64{}, err
	}

	return PackedBCD64{raw: pack[uint64](v)}, nil
}

func (b PackedBCD64) Add(o PackedBCD64) (PackedBCD64, error) {
	return b.result(arithPackedBCD64.add(b.Value(), o.Value()))
}

func (b PackedBCD64) Sub(o PackedBCD64) (PackedBCD64, error) {
	return b.result(arithPackedBCD64.sub(b.Value(), o.Value()))
}

func (b PackedBCD64) Mul(o PackedBCD64) (PackedBCD64, error) {
	return b.result(arithPackedBCD64.mul(b.Value(), o.Value()))
}

func (b PackedBCD64) Div(o PackedBCD64) (PackedBCD64, error) {
	return b.result(arithPackedBCD64.div(b.Value(), o.Value()))
}

func (b PackedBCD64) Rem(o PackedBCD64) (PackedBCD64, error) {
	return b.result(arithPackedBCD64.rem(b.Value(), o.Value()))
}

func (b PackedBCD64) Inc() (PackedBCD64, error) { return b.Add(OnePackedBCD64) }

func (b PackedBCD64) Dec() (PackedBCD64, error) { return b.Sub(OnePackedBCD64) }

func (b PackedBCD64) Compare(o PackedBCD64) int { return cmp.Compare(b.raw, o.raw) }

func (b PackedBCD64) Equal(o PackedBCD64) bool { return b.raw == o.raw }

func (b PackedBCD64) CompareAny(other any) (int, error) { return numerics.CompareAny(b, other) }

func (PackedBCD64) Bits() int { return 64 }

func (b PackedBCD64) AppendRaw(dst []byte) []byte { return binary.BigEndian.AppendUint64(dst, b.raw) }

// String returns the decimal value without padding.
func (b PackedBCD64) String() string { return strconv.FormatUint(b.Value(), 10) }

// Digits returns all 16 digits, zero padded.
func (b PackedBCD64) Digits() string { return fmt.Sprintf("%016d", b.Value()) }

func (b PackedBCD64) Format(f fmt.State, verb rune) {
	numerics.Format(f, verb, b.String(), b.Value())
}

// ParsePackedBCD64 parses a decimal value.
func ParsePackedBCD64(s string) (PackedBCD64, error) {
	v, err := numerics.ParseUint(&Error, "PackedBCD64", s, 64)
	if err != nil {
		return PackedBCD64{}, err
	}

	return PackedBCD64FromValue(v)
}

func TryParsePackedBCD64(s string) (PackedBCD64, bool) { return numerics.Try(ParsePackedBCD64(s)) }

func ParsePackedBCD64Locale(s string, tag language.Tag) (PackedBCD64, error) {
	return ParsePackedBCD64(numerics.Delocalize(s, tag))
}

// PackedBCD32 narrows b. Values that do not fit are out of range.
func (b PackedBCD64) PackedBCD32() (PackedBCD32, error) { return PackedBCD32FromValue(b.Value()) }
