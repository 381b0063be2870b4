package control

import (
	"encoding/binary"
	"io"
	"math/bits"

	"github.com/calebcase/oops"
)

type Encoder interface {
	Data(data []byte) (err error)
	Unbound(fn func(Encoder) error) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

func (e *encoder) write(b ...byte) (err error) {
	_, err = e.w.Write(b)
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	return nil
}

// Data writes data in the smallest block that holds it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write(Data.Prefix | data[0])
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write(Data1.Prefix|data[0], data[1])
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write(Data2.Prefix|data[0], data[1], data[2])
	case size <= 64:
		return e.write(append([]byte{DataSize.Prefix | byte(size-1)}, data...)...)
	}

	s := uint64(size - 1)
	sb := binary.BigEndian.AppendUint64(nil, s)
	sb = sb[bits.LeadingZeros64(s)/8:]

	err = e.write(append([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb...)...)
	if err != nil {
		return err
	}

	return e.write(data...)
}

// Unbound writes the fields written by fn inside an unbounded container.
func (e *encoder) Unbound(fn func(Encoder) error) (err error) {
	err = e.write(ContainerUnbounded.Prefix)
	if err != nil {
		return err
	}

	err = fn(e)
	if err != nil {
		return err
	}

	return e.write(ContainerEnd.Prefix)
}

func (e *encoder) Empty() (err error) {
	return e.write(Empty.Prefix)
}

func (e *encoder) Null() (err error) {
	return e.write(Null.Prefix)
}
