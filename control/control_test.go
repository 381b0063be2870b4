package control_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/numerics/control"
	"github.com/calebcase/oops"
)

func TestParse(t *testing.T) {
	type TC struct {
		b    byte
		t    control.Type
		v    byte
		err  bool
		Mark error
	}

	tcs := []TC{
		{b: 0b_1000_0000, t: control.Data, v: 0, Mark: oops.New("data zero")},
		{b: 0b_1111_1111, t: control.Data, v: 0b_0111_1111, Mark: oops.New("data max")},
		{b: 0b_0100_0000, t: control.DataSize, v: 0, Mark: oops.New("data size")},
		{b: 0b_0111_1111, t: control.DataSize, v: 0b_0011_1111, Mark: oops.New("data size max")},
		{b: 0b_0010_0101, t: control.Data1, v: 0b_0000_0101, Mark: oops.New("data+1")},
		{b: 0b_0001_1010, t: control.Data2, v: 0b_0000_1010, Mark: oops.New("data+2")},
		{b: 0b_0000_1111, t: control.DataSizeSize, v: 0b_0000_0111, Mark: oops.New("data size size")},
		{b: 0b_0000_0110, t: control.ContainerUnbounded, Mark: oops.New("container unbounded")},
		{b: 0b_0000_0100, t: control.ContainerEnd, Mark: oops.New("container end")},
		{b: 0b_0000_0001, t: control.Empty, Mark: oops.New("empty")},
		{b: 0b_0000_0000, t: control.Null, Mark: oops.New("null")},
		{b: 0b_0000_0010, t: control.Unknown, err: true, Mark: oops.New("reserved 2")},
		{b: 0b_0000_0011, t: control.Unknown, err: true, Mark: oops.New("reserved 3")},
		{b: 0b_0000_0101, t: control.Unknown, err: true, Mark: oops.New("reserved 5")},
		{b: 0b_0000_0111, t: control.Unknown, err: true, Mark: oops.New("reserved 7")},
	}

	for _, tc := range tcs {
		typ, v, err := control.Parse(tc.b)
		if tc.err {
			require.Error(t, err, tc.Mark)
			require.True(t, control.Error.Has(err), tc.Mark)
		} else {
			require.NoError(t, err, tc.Mark)
		}

		require.Equal(t, tc.t, typ, tc.Mark)
		require.Equal(t, tc.v, v, tc.Mark)
	}
}

func TestTypesArePrefixFree(t *testing.T) {
	for b := 0; b < 256; b++ {
		matches := 0
		for _, typ := range control.Types {
			if typ.Match(byte(b)) {
				matches++
			}
		}

		require.LessOrEqual(t, matches, 1, b)
	}
}

func TestDescribe(t *testing.T) {
	s, err := control.Describe([]byte{
		0b_0000_0110, // cu
		0b_1000_0101, // d
		0b_0010_0001, // d1
		0b_1111_1111,
		0b_0000_0000, // n
		0b_0000_0001, // e
		0b_0000_0100, // ce
	})
	require.NoError(t, err)
	require.Equal(t, "cu d:05 d1:01ff n e ce", s)

	_, err = control.Describe([]byte{0b_0000_0110, 0b_1000_0000})
	require.Error(t, err)

	_, err = control.Describe([]byte{0b_0000_0011})
	require.Error(t, err)
}
