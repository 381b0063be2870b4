package zigzag_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/zigzag"
)

func TestZigZag8(t *testing.T) {
	type TC struct {
		decoded int8
		encoded uint8
		Mark    error
	}

	tcs := []TC{
		{0, 0, oops.New("zero")},
		{-1, 1, oops.New("minus one")},
		{1, 2, oops.New("one")},
		{-2, 3, oops.New("minus two")},
		{2, 4, oops.New("two")},
		{math.MaxInt8, 254, oops.New("max")},
		{math.MinInt8, 255, oops.New("min")},
	}

	for _, tc := range tcs {
		z := zigzag.ZigZag8FromDecoded(tc.decoded)
		require.Equal(t, tc.encoded, z.EncodedValue(), tc.Mark)
		require.Equal(t, tc.decoded, zigzag.ZigZag8FromEncoded(tc.encoded).DecodedValue(), tc.Mark)
	}

	require.Equal(t, uint8(254), zigzag.MaxZigZag8.EncodedValue())
	require.Equal(t, uint8(255), zigzag.MinZigZag8.EncodedValue())
}

func TestZigZagBijection(t *testing.T) {
	seen := map[uint16]bool{}

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		z := zigzag.ZigZag16FromDecoded(int16(v))
		require.False(t, seen[z.EncodedValue()], v)
		seen[z.EncodedValue()] = true

		require.Equal(t, int16(v), z.DecodedValue())
	}

	require.Len(t, seen, 1<<16)
}

func TestZigZagRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(32))

	for i := 0; i < 1000; i++ {
		v := int64(rng.Uint64())

		require.Equal(t, int32(v), zigzag.ZigZag32FromDecoded(int32(v)).DecodedValue())
		require.Equal(t, v, zigzag.ZigZag64FromDecoded(v).DecodedValue())

		e := rng.Uint64()
		require.Equal(t, e, zigzag.ZigZag64FromDecoded(zigzag.ZigZag64FromEncoded(e).DecodedValue()).EncodedValue())
	}

	require.Equal(t, uint64(math.MaxUint64-1), zigzag.MaxZigZag64.EncodedValue())
	require.Equal(t, uint64(math.MaxUint64), zigzag.MinZigZag64.EncodedValue())
	require.Equal(t, uint32(math.MaxUint32), zigzag.MinZigZag32.EncodedValue())
}

func TestZigZagArithmetic(t *testing.T) {
	type TC struct {
		a, b     int8
		sum, sub int8
		cmp      int
		Mark     error
	}

	tcs := []TC{
		{-1, 1, 0, -2, -1, oops.New("signs")},
		{127, 1, -128, 126, 1, oops.New("wrap up")},
		{-128, 1, -127, 127, -1, oops.New("wrap down")},
		{5, 5, 10, 0, 0, oops.New("equal")},
	}

	for _, tc := range tcs {
		a, b := zigzag.ZigZag8FromDecoded(tc.a), zigzag.ZigZag8FromDecoded(tc.b)

		require.Equal(t, tc.sum, a.Add(b).DecodedValue(), tc.Mark)
		require.Equal(t, tc.sub, a.Sub(b).DecodedValue(), tc.Mark)
		require.Equal(t, tc.cmp, a.Compare(b), tc.Mark)
	}

	// Encoded order differs from decoded order.
	neg, pos := zigzag.ZigZag8FromDecoded(-3), zigzag.ZigZag8FromDecoded(2)
	require.Greater(t, neg.EncodedValue(), pos.EncodedValue())
	require.Equal(t, -1, neg.Compare(pos))

	require.Equal(t, zigzag.ZigZag8FromDecoded(3), neg.Neg())
	require.Equal(t, zigzag.MinZigZag8, zigzag.MinZigZag8.Neg())
	require.Equal(t, zigzag.MinZigZag8, zigzag.MaxZigZag8.Inc())
	require.Equal(t, zigzag.MaxZigZag8, zigzag.MinZigZag8.Dec())

	_, err := neg.CompareAny(zigzag.ZigZag16FromDecoded(-3))
	require.True(t, errors.Is(err, numerics.ErrTypeMismatch))
}

func TestZigZagConversions(t *testing.T) {
	z := zigzag.ZigZag8FromDecoded(-100)

	require.Equal(t, int16(-100), z.ZigZag16().DecodedValue())
	require.Equal(t, int32(-100), z.ZigZag16().ZigZag32().DecodedValue())
	require.Equal(t, int64(-100), z.ZigZag16().ZigZag32().ZigZag64().DecodedValue())
	require.Equal(t, uint16(199), z.ZigZag16().EncodedValue())

	require.Equal(t, int8(-1), zigzag.ZigZag16FromDecoded(-1).ZigZag8().DecodedValue())
	require.Equal(t, int16(0x5678), zigzag.ZigZag32FromDecoded(0x1234_5678).ZigZag16().DecodedValue())
	require.Equal(t, int32(-1), zigzag.ZigZag64FromDecoded(math.MinInt64+math.MaxUint32).ZigZag32().DecodedValue())
}

func TestZigZagText(t *testing.T) {
	z, err := zigzag.ParseZigZag8("-128")
	require.NoError(t, err)
	require.Equal(t, zigzag.MinZigZag8, z)
	require.Equal(t, "-128", z.String())

	_, err = zigzag.ParseZigZag8("128")
	require.True(t, errors.Is(err, numerics.ErrOverflow))
	require.True(t, zigzag.Error.Has(err))

	_, err = zigzag.ParseZigZag16("twelve")
	require.True(t, errors.Is(err, numerics.ErrSyntax))

	_, ok := zigzag.TryParseZigZag32("1.5")
	require.False(t, ok)

	z64, ok := zigzag.TryParseZigZag64("-9223372036854775808")
	require.True(t, ok)
	require.Equal(t, zigzag.MinZigZag64, z64)

	z32, err := zigzag.ParseZigZag32Locale("-1 234 567", language.French)
	require.NoError(t, err)
	require.Equal(t, int32(-1234567), z32.DecodedValue())

	require.Equal(t, "-5", fmt.Sprint(zigzag.ZigZag16FromDecoded(-5)))
	require.Equal(t, "  -5", fmt.Sprintf("%4d", zigzag.ZigZag16FromDecoded(-5)))
	require.Equal(t, []byte{0x00, 0x09}, zigzag.ZigZag16FromDecoded(-5).AppendRaw(nil))
	require.Equal(t, 32, zigzag.ZigZag32{}.Bits())
}
