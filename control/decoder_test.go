package control_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numerics/control"
	"github.com/calebcase/oops"
)

// onlyReader hides any io.Seeker implementation so the decoder falls back to
// discarding copies.
type onlyReader struct {
	r *bytes.Reader
}

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

func TestDecoder(t *testing.T) {
	type TC struct {
		Input []byte
		Types []control.Type
		Data  []byte
		Mark  error
	}

	t.Run("read", func(t *testing.T) {
		tcs := []TC{
			{
				Input: []byte{0b_1000_0000},
				Types: []control.Type{control.Data},
				Data:  []byte{0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0100_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSize},
				Data:  []byte{0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0010_0000, 0b_0000_0000},
				Types: []control.Type{control.Data1},
				Data:  []byte{0b_0000_0000, 0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.Data2},
				Data:  []byte{0b_0000_0000, 0b_0000_0000, 0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSizeSize},
				Data:  []byte{0b_0000_0000},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0110, 0b_1000_0000, 0b_0000_0100},
				Types: []control.Type{
					control.ContainerUnbounded,
					control.Data,
					control.ContainerEnd,
				},
				Data: []byte{0b_0000_0000},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0001},
				Types: []control.Type{control.Empty},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0000},
				Types: []control.Type{control.Null},
				Mark:  oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			name := []string{}
			for _, field := range tc.Types {
				name = append(name, field.Abbr)
			}

			t.Run(strings.Join(name, ","), func(t *testing.T) {
				var err error

				d := control.NewDecoder(bytes.NewBuffer(tc.Input))

				types := []control.Type{}
				var data []byte

				for d.Next() {
					field := d.Type()
					types = append(types, field)

					t.Logf("Type: %s Depth: %d\n", field.Abbr, d.Depth())

					switch d.Type() {
					case control.Data,
						control.Data1,
						control.Data2,
						control.DataSize,
						control.DataSizeSize:

						tmp, err := d.Data()
						require.NoError(t, err, tc.Mark)

						t.Logf("Data: %0b\n", tmp)

						data = append(data, tmp...)
					case control.ContainerUnbounded:
						err = d.Enter()
						require.NoError(t, err, tc.Mark)
					case control.ContainerEnd:
					case control.Empty, control.Null:
					}
				}
				require.NoError(t, d.Err(), tc.Mark)

				require.Equal(t, tc.Types, types, tc.Mark)
				require.Equal(t, tc.Data, data, tc.Mark)
				require.Equal(t, 0, d.Depth(), tc.Mark)
				require.Equal(t, uint64(len(tc.Input)), d.Consumed(), tc.Mark)
			})
		}
	})

	t.Run("next", func(t *testing.T) {
		tcs := []TC{
			{
				Input: []byte{0b_1000_0000},
				Types: []control.Type{control.Data},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0100_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSize},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0010_0000, 0b_0000_0000},
				Types: []control.Type{control.Data1},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.Data2},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
				Types: []control.Type{control.DataSizeSize},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0110, 0b_1000_0000, 0b_0000_0100},
				Types: []control.Type{
					control.ContainerUnbounded,
				},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0001},
				Types: []control.Type{control.Empty},
				Mark:  oops.New("unexpected"),
			},
			{
				Input: []byte{0b_0000_0000},
				Types: []control.Type{control.Null},
				Mark:  oops.New("unexpected"),
			},

			// More nesting situations:
			{
				Input: []byte{
					0b_0000_0110, // cu
					0b_0000_0110, // cu
					0b_1000_0000, // d
					0b_0000_0100, // ce
					0b_0000_0100, // ce
				},
				Types: []control.Type{
					control.ContainerUnbounded,
				},
				Mark: oops.New("unexpected"),
			},
			{
				Input: []byte{
					0b_1000_0000, // d
					0b_0000_0110, // cu
					0b_0100_0001, // dz
					0b_0000_0000,
					0b_0000_0000,
					0b_0000_0100, // ce
					0b_1000_0000, // d
				},
				Types: []control.Type{
					control.Data,
					control.ContainerUnbounded,
					control.Data,
				},
				Mark: oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			name := []string{}
			for _, field := range tc.Types {
				name = append(name, field.Abbr)
			}

			for _, seekable := range []bool{true, false} {
				t.Run(strings.Join(name, ","), func(t *testing.T) {
					var d control.Decoder
					if seekable {
						d = control.NewDecoder(bytes.NewReader(tc.Input))
					} else {
						d = control.NewDecoder(onlyReader{bytes.NewReader(tc.Input)})
					}

					types := []control.Type{}

					for d.Next() {
						field := d.Type()
						types = append(types, field)

						t.Logf("Type: %s Depth: %d\n", field.Abbr, d.Depth())
					}
					err := d.Err()
					require.NoError(t, err, tc.Mark)

					require.Equal(t, tc.Types, types, tc.Mark)
					require.Equal(t, 0, d.Depth(), tc.Mark)
					require.Equal(t, uint64(len(tc.Input)), d.Consumed(), tc.Mark)
				})
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		tcs := []TC{
			{
				Input: []byte{0b_0000_0010},
				Mark:  oops.New("reserved control byte"),
			},
			{
				Input: []byte{0b_0000_0100},
				Mark:  oops.New("container end outside a container"),
			},
			{
				Input: []byte{0b_0000_0110, 0b_1000_0000},
				Types: []control.Type{control.ContainerUnbounded, control.Data},
				Mark:  oops.New("unterminated container"),
			},
			{
				Input: []byte{0b_0100_0011, 0b_0000_0000},
				Types: []control.Type{control.DataSize},
				Mark:  oops.New("truncated data"),
			},
			{
				Input: []byte{0b_0000_1001, 0b_0000_0011},
				Types: []control.Type{control.DataSizeSize},
				Mark:  oops.New("truncated size"),
			},
			{
				Input: []byte{0b_0010_0000},
				Types: []control.Type{control.Data1},
				Mark:  oops.New("truncated data+1"),
			},
		}

		for _, tc := range tcs {
			d := control.NewDecoder(onlyReader{bytes.NewReader(tc.Input)})

			types := []control.Type{}

			for d.Next() {
				types = append(types, d.Type())

				if d.Type() == control.ContainerUnbounded {
					require.NoError(t, d.Enter(), tc.Mark)
				}
			}

			require.Error(t, d.Err(), tc.Mark)
			require.True(t, control.Error.Has(d.Err()), spew.Sdump(d.Err()))

			if len(tc.Types) > 0 {
				require.Equal(t, tc.Types, types, tc.Mark)
			}
		}
	})

	t.Run("invalid operation", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewReader([]byte{0b_0000_0000, 0b_1000_0001, 0b_0100_0000, 0b_0000_0000}))

		require.True(t, d.Next())
		_, err := d.Data()
		require.Error(t, err)
		require.Error(t, d.Err())
		require.False(t, d.Next())

		d = control.NewDecoder(bytes.NewReader([]byte{0b_1000_0001}))
		require.True(t, d.Next())
		require.Error(t, d.Enter())

		d = control.NewDecoder(bytes.NewReader([]byte{0b_0000_0001}))
		require.True(t, d.Next())
		_, err = d.Size()
		require.Error(t, err)
	})

	t.Run("sizes", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewReader(append(
			[]byte{0b_0000_1001, 0b_0000_0011, 0b_1111_1111},
			make([]byte, 1024)...,
		)))

		require.True(t, d.Next())
		require.Equal(t, control.DataSizeSize, d.Type())

		size, err := d.Size()
		require.NoError(t, err)
		require.Equal(t, uint64(1024), size)
		require.Equal(t, uint64(3), d.Consumed())

		// Skipping the data without reading it.
		require.NoError(t, d.Seek())
		require.Equal(t, uint64(1027), d.Consumed())
		require.False(t, d.Next())
		require.NoError(t, d.Err())
	})

	t.Run("declared size beyond input", func(t *testing.T) {
		// Declares a 1 GiB payload followed by only two bytes.
		input := []byte{0b_0000_1011, 0x3F, 0xFF, 0xFF, 0xFF, 0x01, 0x02}

		for _, r := range []io.Reader{bytes.NewReader(input), onlyReader{bytes.NewReader(input)}} {
			d := control.NewDecoder(r)

			require.True(t, d.Next())

			size, err := d.Size()
			require.NoError(t, err)
			require.Equal(t, uint64(1<<30), size)

			data, err := d.Data()
			require.Nil(t, data)
			require.True(t, errors.Is(err, io.ErrUnexpectedEOF), spew.Sdump(err))
			require.True(t, control.Error.Has(err))
			require.Equal(t, uint64(len(input)), d.Consumed())
			require.False(t, d.Next())
		}
	})

	t.Run("fields", func(t *testing.T) {
		type Step struct {
			Type   control.Type
			Depth  int
			Fields uint64
		}

		d := control.NewDecoder(bytes.NewReader([]byte{
			0b_0000_0110,
			0b_1000_0000,
			0b_0000_0110,
			0b_1000_0001,
			0b_1000_0010,
			0b_0000_0100,
			0b_1000_0011,
			0b_0000_0100,
		}))

		expected := []Step{
			{Type: control.ContainerUnbounded, Depth: 1, Fields: 0},
			{Type: control.Data, Depth: 1, Fields: 1},
			{Type: control.ContainerUnbounded, Depth: 2, Fields: 0},
			{Type: control.Data, Depth: 2, Fields: 1},
			{Type: control.Data, Depth: 2, Fields: 2},
			{Type: control.ContainerEnd, Depth: 1, Fields: 2},
			{Type: control.Data, Depth: 1, Fields: 3},
			{Type: control.ContainerEnd, Depth: 0, Fields: 0},
		}

		steps := []Step{}

		for d.Next() {
			if d.Type() == control.ContainerUnbounded {
				require.NoError(t, d.Enter())
			}

			steps = append(steps, Step{Type: d.Type(), Depth: d.Depth(), Fields: d.Fields()})
		}

		require.NoError(t, d.Err())
		require.Equal(t, expected, steps, spew.Sdump(steps))
	})

	t.Run("unterminated offset", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewReader([]byte{0b_1000_0000, 0b_0000_0110, 0b_1000_0000}))

		for d.Next() {
			if d.Type() == control.ContainerUnbounded {
				require.NoError(t, d.Enter())
			}
		}

		require.Error(t, d.Err())
		require.Contains(t, d.Err().Error(), "unterminated container at 1")
	})
}
