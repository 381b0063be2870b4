package control

import (
	"bytes"
	"fmt"
)

// Parse returns the control block type of the first byte b and the bits it
// carries inline.
func Parse(b byte) (t Type, value byte, err error) {
	t, ok := Types.Match(b)
	if !ok {
		return Unknown, 0, Error.New("invalid control byte: %08b", b)
	}

	return t, b & t.Mask, nil
}

// Describe returns a short human readable description of the stream, one
// block per space separated entry.
func Describe(stream []byte) (string, error) {
	d := NewDecoder(bytes.NewReader(stream))

	var out []byte

	for d.Next() {
		if len(out) > 0 {
			out = append(out, ' ')
		}

		switch d.Type() {
		case Data, DataSize, Data1, Data2, DataSizeSize:
			data, err := d.Data()
			if err != nil {
				return "", err
			}

			out = fmt.Appendf(out, "%s:%x", d.Type(), data)
		case ContainerUnbounded:
			err := d.Enter()
			if err != nil {
				return "", err
			}

			out = append(out, d.Type().String()...)
		default:
			out = append(out, d.Type().String()...)
		}
	}

	return string(out), d.Err()
}
