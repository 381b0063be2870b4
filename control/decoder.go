package control

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

type Decoder interface {
	Seek() (err error)
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Fields() uint64
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
	Enter() (err error)
}

type decoder struct {
	r io.Reader
	s io.Seeker

	consumed uint64

	stack *Stack

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r:     r,
		stack: &Stack{},
	}

	d.s, _ = r.(io.Seeker)

	return d
}

func (d *decoder) read(p []byte) (err error) {
	_, err = io.ReadFull(d.r, p)
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	d.consumed += uint64(len(p))

	return nil
}

// seek moves the input stream's current position using an io.Seeker if
// available otherwise it falls back to a discarding copy.
func (d *decoder) seek(size uint64) (err error) {
	if size > math.MaxInt64 {
		return Error.New("unimplemented: seek >= 2^63")
	}

	if d.s != nil {
		_, err = d.s.Seek(int64(size), io.SeekCurrent)
		if err != nil {
			return Error.Wrap(oops.Trace(err))
		}

		d.consumed += size

		return nil
	}

	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	return nil
}

// Seek moves the reading position to the end of the current field.
func (d *decoder) Seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.consumed == 0 || d.finished {
		return nil
	}

	switch d.t {
	case DataSize, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.seek(size)
		if err != nil {
			return err
		}

		d.finished = true
	case Data1, Data2:
		// Small enough to just read directly.
		_, err := d.Data()
		if err != nil {
			return err
		}
	case ContainerUnbounded:
		// Read tokens until the matching ContainerEnd is found. Depth
		// will be one less than our current.
		target := d.Depth() - 1
		d.finished = true

		for d.Next() {
			if d.Type() == ContainerEnd && target == d.Depth() {
				return nil
			}
		}

		return d.Err()
	}

	return nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		d.err = d.Seek()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			if top := d.stack.Top(); top != nil {
				d.err = Error.New("unterminated container at %d: depth=%d", top.Offset, d.Depth())
			}

			return false
		}

		d.err = Error.Wrap(oops.Trace(err))

		return false
	}

	offset := d.consumed
	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte at %d: %08b", offset, d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
		d.stack.Count()
	case ContainerUnbounded:
		d.stack.Count()
		d.stack.Push(&Frame{Offset: offset})
	case ContainerEnd:
		top := d.stack.Top()
		if top == nil {
			d.err = Error.New("unexpected container end (not in a container) at %d", offset)

			return false
		}

		d.err = d.stack.Pop()
		if d.err != nil {
			return false
		}

		d.finished = true
	default:
		d.stack.Count()
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return len(*d.stack)
}

// Fields returns the number of fields read so far directly inside the
// innermost open container. Outside any container it returns 0.
func (d *decoder) Fields() uint64 {
	top := d.stack.Top()
	if top == nil {
		return 0
	}

	return top.Count
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current field. For fields
// that do not contain data it returns 0 and ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := int(d.value[0]&d.t.Mask) + 1

		sizeBytes := make([]byte, 8)
		err = d.read(sizeBytes[8-sizeSize:])
		if err != nil {
			return 0, err
		}

		size := binary.BigEndian.Uint64(sizeBytes)
		if size == math.MaxUint64 {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size + 1
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if d.t != Data && d.t != Data1 && d.t != Data2 && d.t != DataSize && d.t != DataSizeSize {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("data already skipped")
	}

	_, err = d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case DataSize, DataSizeSize:
		if d.size > math.MaxInt32 {
			return nil, Error.New("unimplemented: size=%d", d.size)
		}

		// The declared size is untrusted, so the buffer grows with what
		// the stream actually holds.
		buf := &bytes.Buffer{}

		n, err := io.CopyN(buf, d.r, int64(d.size))
		d.consumed += uint64(n)

		if err != nil {
			if errors.Is(err, io.EOF) && n > 0 {
				err = io.ErrUnexpectedEOF
			}

			return nil, Error.Wrap(oops.Trace(err))
		}

		d.data = buf.Bytes()
	case Data1, Data2:
		data := make([]byte, d.size)
		data[0] = d.value[0] & d.t.Mask

		err = d.read(data[1:])
		if err != nil {
			return nil, err
		}

		d.data = data
	}

	d.finished = true

	return d.data, nil
}

// Enter informs decoder that the ContainerUnbounded field should be entered.
// If the current field type is not ContainerUnbounded, then it returns
// ErrInvalidOperation.
func (d *decoder) Enter() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.t != ContainerUnbounded {
		return oops.Trace(ErrInvalidOperation)
	}

	d.finished = true

	return nil
}
