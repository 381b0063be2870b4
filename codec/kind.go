package codec

import (
	"encoding/binary"
	"strings"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/bcd"
	"github.com/calebcase/numerics/fixed"
	"github.com/calebcase/numerics/gray"
	"github.com/calebcase/numerics/minifloat"
	"github.com/calebcase/numerics/wide"
	"github.com/calebcase/numerics/zigzag"
)

// Family groups kinds by package.
type Family string

const (
	FamilyMinifloat Family = "minifloat"
	FamilyGray      Family = "gray"
	FamilyZigZag    Family = "zigzag"
	FamilyBCD       Family = "bcd"
	FamilyFixed     Family = "fixed"
	FamilyWide      Family = "wide"
)

// Kind identifies a numeric type.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindQuarter
	KindE5M2
	KindE4M3
	KindBFloat8
	KindBFloat16
	KindBFloat32
	KindBFloat64

	KindGray8
	KindGray16
	KindGray32
	KindGray64
	KindGray96

	KindZigZag8
	KindZigZag16
	KindZigZag32
	KindZigZag64

	KindUnpackedBCD
	KindPackedBCD8
	KindPackedBCD16
	KindPackedBCD32
	KindPackedBCD64

	KindQ3_4
	KindQ7_8
	KindQ15_16
	KindQ31_32
	KindUQ4_4
	KindUQ8_8
	KindUQ16_16
	KindUQ32_32

	KindUInt96
	KindInt96

	kindCount
)

type payload int

const (
	payloadRaw payload = iota
	payloadSigned
	payloadDecimal
)

type info struct {
	name    string
	family  Family
	bits    int
	signed  bool
	payload payload

	parse func(string) (numerics.Value, error)

	// raw builds a value from exactly bits/8 big-endian bytes.
	raw func([]byte) (numerics.Value, error)

	// value builds a bcd value from its decimal value.
	value func(uint64) (numerics.Value, error)
}

func parser[T numerics.Value](fn func(string) (T, error)) func(string) (numerics.Value, error) {
	return func(s string) (numerics.Value, error) {
		v, err := fn(s)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}

func checked[T numerics.Value, U any](fn func(U) (T, error)) func(U) (numerics.Value, error) {
	return func(u U) (numerics.Value, error) {
		v, err := fn(u)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}

func raw8[T numerics.Value](fn func(uint8) T) func([]byte) (numerics.Value, error) {
	return func(b []byte) (numerics.Value, error) { return fn(b[0]), nil }
}

func raw16[T numerics.Value](fn func(uint16) T) func([]byte) (numerics.Value, error) {
	return func(b []byte) (numerics.Value, error) { return fn(binary.BigEndian.Uint16(b)), nil }
}

func raw32[T numerics.Value](fn func(uint32) T) func([]byte) (numerics.Value, error) {
	return func(b []byte) (numerics.Value, error) { return fn(binary.BigEndian.Uint32(b)), nil }
}

func raw64[T numerics.Value](fn func(uint64) T) func([]byte) (numerics.Value, error) {
	return func(b []byte) (numerics.Value, error) { return fn(binary.BigEndian.Uint64(b)), nil }
}

func raw96[T numerics.Value](fn func(uint32, uint64) T) func([]byte) (numerics.Value, error) {
	return func(b []byte) (numerics.Value, error) {
		return fn(binary.BigEndian.Uint32(b), binary.BigEndian.Uint64(b[4:])), nil
	}
}

var infos = [kindCount]info{
	KindQuarter:  {name: "Quarter", family: FamilyMinifloat, bits: 8, signed: true, parse: parser(minifloat.ParseQuarter), raw: raw8(minifloat.QuarterFromRaw)},
	KindE5M2:     {name: "E5M2", family: FamilyMinifloat, bits: 8, signed: true, parse: parser(minifloat.ParseE5M2), raw: raw8(minifloat.E5M2FromRaw)},
	KindE4M3:     {name: "E4M3", family: FamilyMinifloat, bits: 8, signed: true, parse: parser(minifloat.ParseE4M3), raw: raw8(minifloat.E4M3FromRaw)},
	KindBFloat8:  {name: "BFloat8", family: FamilyMinifloat, bits: 8, signed: true, parse: parser(minifloat.ParseBFloat8), raw: raw8(minifloat.BFloat8FromRaw)},
	KindBFloat16: {name: "BFloat16", family: FamilyMinifloat, bits: 16, signed: true, parse: parser(minifloat.ParseBFloat16), raw: raw16(minifloat.BFloat16FromRaw)},
	KindBFloat32: {name: "BFloat32", family: FamilyMinifloat, bits: 32, signed: true, parse: parser(minifloat.ParseBFloat32), raw: raw32(minifloat.BFloat32FromRaw)},
	KindBFloat64: {name: "BFloat64", family: FamilyMinifloat, bits: 64, signed: true, parse: parser(minifloat.ParseBFloat64), raw: raw64(minifloat.BFloat64FromRaw)},

	KindGray8:  {name: "Gray8", family: FamilyGray, bits: 8, parse: parser(gray.ParseGray8), raw: raw8(gray.Gray8FromGray)},
	KindGray16: {name: "Gray16", family: FamilyGray, bits: 16, parse: parser(gray.ParseGray16), raw: raw16(gray.Gray16FromGray)},
	KindGray32: {name: "Gray32", family: FamilyGray, bits: 32, parse: parser(gray.ParseGray32), raw: raw32(gray.Gray32FromGray)},
	KindGray64: {name: "Gray64", family: FamilyGray, bits: 64, parse: parser(gray.ParseGray64), raw: raw64(gray.Gray64FromGray)},
	KindGray96: {name: "Gray96", family: FamilyGray, bits: 96, parse: parser(gray.ParseGray96), raw: raw96(func(upper uint32, lower uint64) gray.Gray96 {
		return gray.Gray96FromGray(wide.New(upper, lower))
	})},

	KindZigZag8:  {name: "ZigZag8", family: FamilyZigZag, bits: 8, signed: true, parse: parser(zigzag.ParseZigZag8), raw: raw8(zigzag.ZigZag8FromEncoded)},
	KindZigZag16: {name: "ZigZag16", family: FamilyZigZag, bits: 16, signed: true, parse: parser(zigzag.ParseZigZag16), raw: raw16(zigzag.ZigZag16FromEncoded)},
	KindZigZag32: {name: "ZigZag32", family: FamilyZigZag, bits: 32, signed: true, parse: parser(zigzag.ParseZigZag32), raw: raw32(zigzag.ZigZag32FromEncoded)},
	KindZigZag64: {name: "ZigZag64", family: FamilyZigZag, bits: 64, signed: true, parse: parser(zigzag.ParseZigZag64), raw: raw64(zigzag.ZigZag64FromEncoded)},

	KindUnpackedBCD: {name: "UnpackedBCD", family: FamilyBCD, bits: 8, payload: payloadDecimal, parse: parser(bcd.ParseUnpackedBCD), value: checked(bcd.UnpackedBCDFromValue), raw: func(b []byte) (numerics.Value, error) {
		return checked(bcd.UnpackedBCDFromRaw)(b[0])
	}},
	KindPackedBCD8: {name: "PackedBCD8", family: FamilyBCD, bits: 8, payload: payloadDecimal, parse: parser(bcd.ParsePackedBCD8), value: checked(bcd.PackedBCD8FromValue), raw: func(b []byte) (numerics.Value, error) {
		return checked(bcd.PackedBCD8FromRaw)(b[0])
	}},
	KindPackedBCD16: {name: "PackedBCD16", family: FamilyBCD, bits: 16, payload: payloadDecimal, parse: parser(bcd.ParsePackedBCD16), value: checked(bcd.PackedBCD16FromValue), raw: func(b []byte) (numerics.Value, error) {
		return checked(bcd.PackedBCD16FromRaw)(binary.BigEndian.Uint16(b))
	}},
	KindPackedBCD32: {name: "PackedBCD32", family: FamilyBCD, bits: 32, payload: payloadDecimal, parse: parser(bcd.ParsePackedBCD32), value: checked(bcd.PackedBCD32FromValue), raw: func(b []byte) (numerics.Value, error) {
		return checked(bcd.PackedBCD32FromRaw)(binary.BigEndian.Uint32(b))
	}},
	KindPackedBCD64: {name: "PackedBCD64", family: FamilyBCD, bits: 64, payload: payloadDecimal, parse: parser(bcd.ParsePackedBCD64), value: checked(bcd.PackedBCD64FromValue), raw: func(b []byte) (numerics.Value, error) {
		return checked(bcd.PackedBCD64FromRaw)(binary.BigEndian.Uint64(b))
	}},

	KindQ3_4: {name: "Q3_4", family: FamilyFixed, bits: 8, signed: true, payload: payloadSigned, parse: parser(fixed.ParseQ3_4), raw: raw8(func(r uint8) fixed.Q3_4 {
		return fixed.Q3_4FromRaw(int8(r))
	})},
	KindQ7_8: {name: "Q7_8", family: FamilyFixed, bits: 16, signed: true, payload: payloadSigned, parse: parser(fixed.ParseQ7_8), raw: raw16(func(r uint16) fixed.Q7_8 {
		return fixed.Q7_8FromRaw(int16(r))
	})},
	KindQ15_16: {name: "Q15_16", family: FamilyFixed, bits: 32, signed: true, payload: payloadSigned, parse: parser(fixed.ParseQ15_16), raw: raw32(func(r uint32) fixed.Q15_16 {
		return fixed.Q15_16FromRaw(int32(r))
	})},
	KindQ31_32: {name: "Q31_32", family: FamilyFixed, bits: 64, signed: true, payload: payloadSigned, parse: parser(fixed.ParseQ31_32), raw: raw64(func(r uint64) fixed.Q31_32 {
		return fixed.Q31_32FromRaw(int64(r))
	})},
	KindUQ4_4:   {name: "UQ4_4", family: FamilyFixed, bits: 8, parse: parser(fixed.ParseUQ4_4), raw: raw8(fixed.UQ4_4FromRaw)},
	KindUQ8_8:   {name: "UQ8_8", family: FamilyFixed, bits: 16, parse: parser(fixed.ParseUQ8_8), raw: raw16(fixed.UQ8_8FromRaw)},
	KindUQ16_16: {name: "UQ16_16", family: FamilyFixed, bits: 32, parse: parser(fixed.ParseUQ16_16), raw: raw32(fixed.UQ16_16FromRaw)},
	KindUQ32_32: {name: "UQ32_32", family: FamilyFixed, bits: 64, parse: parser(fixed.ParseUQ32_32), raw: raw64(fixed.UQ32_32FromRaw)},

	KindUInt96: {name: "UInt96", family: FamilyWide, bits: 96, parse: parser(wide.Parse), raw: raw96(wide.New)},
	KindInt96:  {name: "Int96", family: FamilyWide, bits: 96, signed: true, payload: payloadSigned, parse: parser(wide.ParseInt96), raw: raw96(wide.NewInt96)},
}

// Kinds returns every kind in a stable order.
func Kinds() []Kind {
	ks := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		ks = append(ks, k)
	}

	return ks
}

// Lookup returns the kind with the given name. Names are case insensitive.
func Lookup(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if strings.EqualFold(infos[k].name, name) {
			return k, true
		}
	}

	return KindInvalid, false
}

func (k Kind) info() info {
	if k >= kindCount {
		return infos[KindInvalid]
	}

	return infos[k]
}

// Valid reports whether k names a numeric type.
func (k Kind) Valid() bool { return k > KindInvalid && k < kindCount }

func (k Kind) Name() string {
	if !k.Valid() {
		return "Invalid"
	}

	return k.info().name
}

func (k Kind) String() string { return k.Name() }

func (k Kind) Family() Family { return k.info().family }

// Bits returns the width of the raw bit pattern.
func (k Kind) Bits() int { return k.info().bits }

// Signed reports whether the kind represents negative values.
func (k Kind) Signed() bool { return k.info().signed }

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, Error.New("invalid kind %d", uint8(k))
	}

	return []byte(k.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, ok := Lookup(string(text))
	if !ok {
		return Error.New("unknown type %q", text)
	}

	*k = v

	return nil
}

// Parse parses the canonical text of a value of this kind.
func (k Kind) Parse(text string) (numerics.Value, error) {
	if !k.Valid() {
		return nil, Error.New("invalid kind %d", uint8(k))
	}

	return k.info().parse(text)
}

// FromRawBytes builds a value from its big-endian raw bit pattern, which must
// be exactly Bits()/8 bytes. Patterns the kind does not allow are
// ErrInvalidRaw.
func (k Kind) FromRawBytes(raw []byte) (numerics.Value, error) {
	if !k.Valid() {
		return nil, Error.New("invalid kind %d", uint8(k))
	}

	if len(raw) != k.Bits()/8 {
		return nil, numerics.Errorf(&Error, numerics.ErrInvalidRaw,
			"%s needs %d raw bytes, got %d", k, k.Bits()/8, len(raw))
	}

	return k.info().raw(raw)
}

// KindOf returns the kind of v.
func KindOf(v numerics.Value) (Kind, error) {
	switch v.(type) {
	case minifloat.Quarter:
		return KindQuarter, nil
	case minifloat.E5M2:
		return KindE5M2, nil
	case minifloat.E4M3:
		return KindE4M3, nil
	case minifloat.BFloat8:
		return KindBFloat8, nil
	case minifloat.BFloat16:
		return KindBFloat16, nil
	case minifloat.BFloat32:
		return KindBFloat32, nil
	case minifloat.BFloat64:
		return KindBFloat64, nil
	case gray.Gray8:
		return KindGray8, nil
	case gray.Gray16:
		return KindGray16, nil
	case gray.Gray32:
		return KindGray32, nil
	case gray.Gray64:
		return KindGray64, nil
	case gray.Gray96:
		return KindGray96, nil
	case zigzag.ZigZag8:
		return KindZigZag8, nil
	case zigzag.ZigZag16:
		return KindZigZag16, nil
	case zigzag.ZigZag32:
		return KindZigZag32, nil
	case zigzag.ZigZag64:
		return KindZigZag64, nil
	case bcd.UnpackedBCD:
		return KindUnpackedBCD, nil
	case bcd.PackedBCD8:
		return KindPackedBCD8, nil
	case bcd.PackedBCD16:
		return KindPackedBCD16, nil
	case bcd.PackedBCD32:
		return KindPackedBCD32, nil
	case bcd.PackedBCD64:
		return KindPackedBCD64, nil
	case fixed.Q3_4:
		return KindQ3_4, nil
	case fixed.Q7_8:
		return KindQ7_8, nil
	case fixed.Q15_16:
		return KindQ15_16, nil
	case fixed.Q31_32:
		return KindQ31_32, nil
	case fixed.UQ4_4:
		return KindUQ4_4, nil
	case fixed.UQ8_8:
		return KindUQ8_8, nil
	case fixed.UQ16_16:
		return KindUQ16_16, nil
	case fixed.UQ32_32:
		return KindUQ32_32, nil
	case wide.UInt96:
		return KindUInt96, nil
	case wide.Int96:
		return KindInt96, nil
	}

	return KindInvalid, numerics.Errorf(&Error, numerics.ErrTypeMismatch, "%T is not a numeric kind", v)
}
