package codec

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/control"
)

// Schema for a numeric field.
type Schema struct {
	Kind     Kind
	Nullable bool
}

// trim removes leading zero bytes, keeping at least one.
func trim(b []byte) []byte {
	for len(b) > 1 && b[0] == 0 {
		b = b[1:]
	}

	return b
}

// signedRaw interprets raw as a two's complement integer.
func signedRaw(raw []byte) *big.Int {
	i := new(big.Int).SetBytes(raw)
	if len(raw) > 0 && raw[0]&0x80 != 0 {
		i.Sub(i, new(big.Int).Lsh(big.NewInt(1), uint(len(raw)*8)))
	}

	return i
}

// Payload returns the block payload of v, which must be of kind k.
func (k Kind) Payload(v numerics.Value) (data []byte, err error) {
	defer Error.WrapP(&err)

	vk, err := KindOf(v)
	if err != nil {
		return nil, err
	}

	if vk != k {
		return nil, numerics.Errorf(&Error, numerics.ErrTypeMismatch, "%s value for %s field", vk, k)
	}

	switch k.info().payload {
	case payloadSigned:
		return blockFromInt(signedRaw(v.AppendRaw(nil))).MarshalBinary()
	case payloadDecimal:
		d, ok := v.(interface{ Value() uint64 })
		if !ok {
			return nil, numerics.Errorf(&Error, numerics.ErrTypeMismatch, "%s has no decimal value", k)
		}

		return trim(binary.BigEndian.AppendUint64(nil, d.Value())), nil
	}

	return trim(v.AppendRaw(nil)), nil
}

// maxPayload is the longest block payload k accepts: the raw width plus the
// sign bit of a signed block, or a whole uint64 for decimal kinds.
func (k Kind) maxPayload() int {
	if k.info().payload == payloadDecimal {
		return 8
	}

	return k.Bits()/8 + 1
}

// FromPayload builds a value of kind k from a block payload.
func (k Kind) FromPayload(data []byte) (v numerics.Value, err error) {
	defer Error.WrapP(&err)

	if !k.Valid() {
		return nil, Error.New("invalid kind %d", uint8(k))
	}

	if len(data) == 0 {
		return nil, numerics.Errorf(&Error, numerics.ErrInvalidRaw, "empty %s payload", k)
	}

	width := k.Bits() / 8

	switch k.info().payload {
	case payloadSigned:
		b := &Block{}

		err = b.UnmarshalBinary(data)
		if err != nil {
			return nil, err
		}

		i := b.Int()
		limit := new(big.Int).Lsh(big.NewInt(1), uint(k.Bits()-1))
		if i.Cmp(limit) >= 0 || i.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, numerics.Errorf(&Error, numerics.ErrInvalidRaw, "payload %x does not fit %s", data, k)
		}

		if i.Sign() < 0 {
			i.Add(i, limit.Lsh(limit, 1))
		}

		return k.FromRawBytes(i.FillBytes(make([]byte, width)))
	case payloadDecimal:
		data = trim(data)
		if len(data) > 8 {
			return nil, numerics.Errorf(&Error, numerics.ErrInvalidRaw, "payload %x does not fit %s", data, k)
		}

		buf := make([]byte, 8)
		copy(buf[8-len(data):], data)

		return k.info().value(binary.BigEndian.Uint64(buf))
	}

	data = trim(data)
	if len(data) > width {
		return nil, numerics.Errorf(&Error, numerics.ErrInvalidRaw, "payload %x does not fit %s", data, k)
	}

	raw := make([]byte, width)
	copy(raw[width-len(data):], data)

	return k.FromRawBytes(raw)
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes v as a Data block. A nil v is written as Null when the schema
// is nullable.
func (e *Encoder) Encode(v numerics.Value) (err error) {
	defer Error.WrapP(&err)

	if v == nil {
		if !e.schema.Nullable {
			return Error.New("null %s in a non-nullable field", e.schema.Kind)
		}

		return e.ce.Null()
	}

	data, err := e.schema.Kind.Payload(v)
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next value. A Null block decodes to a nil value when the
// schema is nullable. It returns io.EOF at the end of the stream.
func (d *Decoder) Decode() (v numerics.Value, err error) {
	if !d.cd.Next() {
		if err = d.cd.Err(); err != nil {
			return nil, Error.Wrap(err)
		}

		return nil, io.EOF
	}

	v, err = d.current()

	return v, Error.Wrap(err)
}

// current decodes the block the control decoder is positioned on.
func (d *Decoder) current() (v numerics.Value, err error) {
	switch d.cd.Type() {
	case control.Null:
		if !d.schema.Nullable {
			return nil, Error.New("null %s in a non-nullable field", d.schema.Kind)
		}

		return nil, nil
	case control.Data, control.DataSize, control.Data1, control.Data2, control.DataSizeSize:
		size, err := d.cd.Size()
		if err != nil {
			return nil, err
		}

		if limit := d.schema.Kind.maxPayload(); size > uint64(limit) {
			return nil, numerics.Errorf(&Error, numerics.ErrInvalidRaw,
				"%d byte payload exceeds %d for %s", size, limit, d.schema.Kind)
		}

		data, err := d.cd.Data()
		if err != nil {
			return nil, err
		}

		return d.schema.Kind.FromPayload(data)
	}

	return nil, numerics.Errorf(&Error, numerics.ErrInvalidRaw,
		"unexpected %s block for %s", d.cd.Type(), d.schema.Kind)
}

// EncodeAll writes values inside an unbounded container.
func EncodeAll(ce control.Encoder, schema Schema, values []numerics.Value) (err error) {
	return ce.Unbound(func(ce control.Encoder) error {
		e := NewEncoder(schema, ce)

		for _, v := range values {
			err := e.Encode(v)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// DecodeAll reads the values of an unbounded container written by EncodeAll.
func DecodeAll(cd control.Decoder, schema Schema) (values []numerics.Value, err error) {
	defer Error.WrapP(&err)

	if !cd.Next() {
		if err = cd.Err(); err != nil {
			return nil, err
		}

		return nil, io.ErrUnexpectedEOF
	}

	err = cd.Enter()
	if err != nil {
		return nil, err
	}

	depth := cd.Depth()
	d := NewDecoder(schema, cd)

	for cd.Next() {
		if cd.Type() == control.ContainerEnd && cd.Depth() == depth-1 {
			return values, nil
		}

		v, err := d.current()
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	if err = cd.Err(); err != nil {
		return nil, err
	}

	return nil, io.ErrUnexpectedEOF
}
