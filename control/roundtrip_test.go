package control_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/numerics/control"
)

func TestRoundtrip(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		for i, tc := range dataCases() {
			t.Run(shortName(i, tc.Output), func(t *testing.T) {
				var err error

				output := &bytes.Buffer{}
				e := control.NewEncoder(output)

				err = e.Data(tc.Input)
				require.NoError(t, err, tc.Mark)

				d := control.NewDecoder(output)

				ok := d.Next()
				require.True(t, ok, tc.Mark)

				input, err := d.Data()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Input, input, tc.Mark)

				ok = d.Next()
				require.False(t, ok, tc.Mark)

				err = d.Err()
				require.NoError(t, err, tc.Mark)
			})
		}
	})

	t.Run("random", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))

		var fields [][]byte
		for i := 0; i < 200; i++ {
			field := make([]byte, 1+rng.Intn(80))
			rng.Read(field)

			// Bias toward the short inline forms.
			if rng.Intn(2) == 0 {
				field[0] &= 0b_0000_1111
				field = field[:1+rng.Intn(3)]
			}

			fields = append(fields, field)
		}

		output := &bytes.Buffer{}
		e := control.NewEncoder(output)

		err := e.Unbound(func(e control.Encoder) error {
			for _, field := range fields {
				err := e.Data(field)
				if err != nil {
					return err
				}
			}

			return nil
		})
		require.NoError(t, err)

		d := control.NewDecoder(bytes.NewReader(output.Bytes()))

		require.True(t, d.Next())
		require.Equal(t, control.ContainerUnbounded, d.Type())
		require.NoError(t, d.Enter())

		var got [][]byte
		for d.Next() && d.Type() != control.ContainerEnd {
			data, err := d.Data()
			require.NoError(t, err, len(got))

			got = append(got, data)
		}
		require.NoError(t, d.Err())
		require.Equal(t, fields, got)
		require.Equal(t, uint64(output.Len()), d.Consumed())
	})

	t.Run("nullable", func(t *testing.T) {
		output := &bytes.Buffer{}
		e := control.NewEncoder(output)

		require.NoError(t, e.Null())
		require.NoError(t, e.Data([]byte{42}))
		require.NoError(t, e.Empty())

		d := control.NewDecoder(output)

		want := []control.Type{control.Null, control.Data, control.Empty}
		for i, typ := range want {
			require.True(t, d.Next(), i)
			require.Equal(t, typ, d.Type())
		}

		require.False(t, d.Next())
		require.NoError(t, d.Err())
	})
}
