package bcd_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/bcd"
)

func TestPackedBCD8(t *testing.T) {
	b, err := bcd.PackedBCD8FromValue(42)
	require.NoError(t, err)
	require.Equal(t, uint8(0x42), b.Raw())
	require.Equal(t, uint64(42), b.Value())

	ninetyNine, err := bcd.PackedBCD8FromValue(99)
	require.NoError(t, err)
	require.Equal(t, bcd.MaxPackedBCD8, ninetyNine)

	_, err = ninetyNine.Add(bcd.OnePackedBCD8)
	require.Error(t, err)
	require.True(t, errors.Is(err, numerics.ErrOverflow))
	require.True(t, bcd.Error.Has(err))

	_, err = ninetyNine.Inc()
	require.True(t, errors.Is(err, numerics.ErrOverflow))

	_, err = bcd.MinPackedBCD8.Dec()
	require.True(t, errors.Is(err, numerics.ErrOverflow))

	_, err = bcd.PackedBCD8FromValue(100)
	require.True(t, errors.Is(err, numerics.ErrOutOfRange))
}

func TestFromRaw(t *testing.T) {
	type TC struct {
		raw   uint64
		bits  int
		valid bool
		Mark  error
	}

	tcs := []TC{
		{0x00, 8, true, oops.New("zero")},
		{0x99, 8, true, oops.New("max 8")},
		{0x9A, 8, false, oops.New("low nibble")},
		{0xA0, 8, false, oops.New("high nibble")},
		{0x1234, 16, true, oops.New("16")},
		{0x12F4, 16, false, oops.New("16 middle")},
		{0x9999_9999, 32, true, oops.New("max 32")},
		{0x9999_999F, 32, false, oops.New("32 low")},
		{0x0000_0001_0000_0000, 64, true, oops.New("64 high digit")},
		{0xF000_0000_0000_0000, 64, false, oops.New("64 top nibble")},
	}

	for _, tc := range tcs {
		var err error

		switch tc.bits {
		case 8:
			_, err = bcd.PackedBCD8FromRaw(uint8(tc.raw))
		case 16:
			_, err = bcd.PackedBCD16FromRaw(uint16(tc.raw))
		case 32:
			_, err = bcd.PackedBCD32FromRaw(uint32(tc.raw))
		case 64:
			_, err = bcd.PackedBCD64FromRaw(tc.raw)
		}

		if tc.valid {
			require.NoError(t, err, tc.Mark)

			continue
		}

		require.Error(t, err, tc.Mark)
		require.True(t, errors.Is(err, numerics.ErrInvalidRaw), tc.Mark)
		require.Contains(t, err.Error(), fmt.Sprintf("%x", tc.raw), tc.Mark)
	}

	_, err := bcd.UnpackedBCDFromRaw(10)
	require.True(t, errors.Is(err, numerics.ErrInvalidRaw))
	require.Contains(t, err.Error(), "0x0a")

	require.Panics(t, func() { bcd.MustPackedBCD16FromRaw(0x00AB) })
	require.Equal(t, uint64(1234), bcd.MustPackedBCD16FromRaw(0x1234).Value())
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(10))

	for i := 0; i < 1000; i++ {
		v := rng.Uint64() % 10_000_000_000_000_000

		b, err := bcd.PackedBCD64FromValue(v)
		require.NoError(t, err, v)
		require.Equal(t, v, b.Value())

		r, err := bcd.PackedBCD64FromRaw(b.Raw())
		require.NoError(t, err, v)
		require.Equal(t, b, r)
		require.Equal(t, fmt.Sprintf("%x", b.Raw()), fmt.Sprint(v))
	}

	for v := uint64(0); v < 10_000; v++ {
		b, err := bcd.PackedBCD16FromValue(v)
		require.NoError(t, err)
		require.Equal(t, v, b.Value())
	}
}

func TestArithmetic(t *testing.T) {
	type TC struct {
		op   string
		a, b uint64
		want uint64
		err  error
		Mark error
	}

	tcs := []TC{
		{"+", 1234, 4321, 5555, nil, oops.New("add")},
		{"+", 9999, 1, 0, numerics.ErrOverflow, oops.New("add overflow")},
		{"-", 100, 1, 99, nil, oops.New("sub")},
		{"-", 1, 2, 0, numerics.ErrOverflow, oops.New("sub underflow")},
		{"*", 99, 101, 9999, nil, oops.New("mul")},
		{"*", 100, 100, 0, numerics.ErrOverflow, oops.New("mul overflow")},
		{"/", 9999, 100, 99, nil, oops.New("div")},
		{"/", 1, 0, 0, numerics.ErrDivideByZero, oops.New("div zero")},
		{"%", 9999, 100, 99, nil, oops.New("rem")},
		{"%", 1, 0, 0, numerics.ErrDivideByZero, oops.New("rem zero")},
	}

	for _, tc := range tcs {
		a, err := bcd.PackedBCD16FromValue(tc.a)
		require.NoError(t, err, tc.Mark)
		b, err := bcd.PackedBCD16FromValue(tc.b)
		require.NoError(t, err, tc.Mark)

		var got bcd.PackedBCD16

		switch tc.op {
		case "+":
			got, err = a.Add(b)
		case "-":
			got, err = a.Sub(b)
		case "*":
			got, err = a.Mul(b)
		case "/":
			got, err = a.Div(b)
		case "%":
			got, err = a.Rem(b)
		}

		if tc.err != nil {
			require.True(t, errors.Is(err, tc.err), tc.Mark, spew.Sdump(err))

			continue
		}

		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.want, got.Value(), tc.Mark)
	}

	// The product of the two largest 64 bit values overflows uint64 itself.
	_, err := bcd.MaxPackedBCD64.Mul(bcd.MaxPackedBCD64)
	require.True(t, errors.Is(err, numerics.ErrOverflow))

	nine, err := bcd.UnpackedBCDFromValue(9)
	require.NoError(t, err)
	require.Equal(t, bcd.MaxUnpackedBCD, nine)

	_, err = nine.Inc()
	require.True(t, errors.Is(err, numerics.ErrOverflow))

	eight, err := nine.Dec()
	require.NoError(t, err)
	require.Equal(t, uint8(8), eight.Raw())
}

func TestConversions(t *testing.T) {
	u, err := bcd.UnpackedBCDFromValue(7)
	require.NoError(t, err)

	wide := u.PackedBCD8().PackedBCD16().PackedBCD32().PackedBCD64()
	require.Equal(t, uint64(7), wide.Value())
	require.Equal(t, uint64(7), wide.Raw())

	b, err := bcd.PackedBCD32FromValue(12_345_678)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1234_5678), b.PackedBCD64().Raw())

	_, err = b.PackedBCD16()
	require.True(t, errors.Is(err, numerics.ErrOutOfRange))

	small, err := bcd.PackedBCD32FromValue(42)
	require.NoError(t, err)

	n, err := small.PackedBCD16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0042), n.Raw())

	p8, err := n.PackedBCD8()
	require.NoError(t, err)

	_, err = p8.UnpackedBCD()
	require.True(t, errors.Is(err, numerics.ErrOutOfRange))
}

func TestText(t *testing.T) {
	b, err := bcd.PackedBCD32FromValue(1234)
	require.NoError(t, err)

	require.Equal(t, "1234", b.String())
	require.Equal(t, "00001234", b.Digits())
	require.Equal(t, "1234", fmt.Sprint(b))
	require.Equal(t, "4d2", fmt.Sprintf("%x", b))
	require.Equal(t, []byte{0x00, 0x00, 0x12, 0x34}, b.AppendRaw(nil))
	require.Equal(t, 32, b.Bits())

	p, err := bcd.ParsePackedBCD32("1234")
	require.NoError(t, err)
	require.Equal(t, b, p)

	_, err = bcd.ParsePackedBCD8("100")
	require.True(t, errors.Is(err, numerics.ErrOutOfRange))

	_, err = bcd.ParsePackedBCD8("-1")
	require.True(t, errors.Is(err, numerics.ErrSyntax))

	_, ok := bcd.TryParsePackedBCD64("0x12")
	require.False(t, ok)

	p, err = bcd.ParsePackedBCD32Locale("12,345,678", language.English)
	require.NoError(t, err)
	require.Equal(t, uint32(0x1234_5678), p.Raw())

	c, err := b.CompareAny(p)
	require.NoError(t, err)
	require.Equal(t, -1, c)

	_, err = b.CompareAny(uint32(1234))
	require.True(t, errors.Is(err, numerics.ErrTypeMismatch))
}
