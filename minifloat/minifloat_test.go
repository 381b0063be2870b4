package minifloat_test

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/minifloat"
	"github.com/calebcase/numerics/wide"
)

// classes returns how many of the exclusive classes c belongs to.
func classes(c numerics.Classifier) int {
	n := 0
	for _, in := range []bool{c.IsNaN(), c.IsInf(), c.IsZero(), c.IsSubnormal(), c.IsNormal()} {
		if in {
			n++
		}
	}

	return n
}

func TestClassificationPartition(t *testing.T) {
	for i := 0; i < 256; i++ {
		raw := uint8(i)

		for _, c := range []numerics.Classifier{
			minifloat.QuarterFromRaw(raw),
			minifloat.E5M2FromRaw(raw),
			minifloat.E4M3FromRaw(raw),
			minifloat.BFloat8FromRaw(raw),
		} {
			require.Equal(t, 1, classes(c), spew.Sdump(c))
			require.Equal(t, c.IsFinite(), !c.IsNaN() && !c.IsInf(), spew.Sdump(c))
		}
	}

	for i := 0; i < 1<<16; i++ {
		c := minifloat.BFloat16FromRaw(uint16(i))
		require.Equal(t, 1, classes(c), spew.Sdump(c))
	}
}

func TestClassification(t *testing.T) {
	type TC struct {
		c         numerics.Classifier
		nan, inf  bool
		zero, sub bool
		normal    bool
		negative  bool
		Mark      error
	}

	tcs := []TC{
		{c: minifloat.InfE5M2, inf: true, Mark: oops.New("e5m2 inf")},
		{c: minifloat.NegInfE5M2, inf: true, negative: true, Mark: oops.New("e5m2 -inf")},
		{c: minifloat.NaNE5M2, nan: true, Mark: oops.New("e5m2 nan")},
		{c: minifloat.E5M2FromRaw(0xFF), nan: true, negative: true, Mark: oops.New("e5m2 -nan")},
		{c: minifloat.NegZeroE5M2, zero: true, negative: true, Mark: oops.New("e5m2 -0")},
		{c: minifloat.EpsilonE5M2, sub: true, Mark: oops.New("e5m2 epsilon")},
		{c: minifloat.MaxE5M2, normal: true, Mark: oops.New("e5m2 max")},
		{c: minifloat.E4M3FromRaw(0x78), normal: true, Mark: oops.New("e4m3 top exponent")},
		{c: minifloat.NaNE4M3, nan: true, Mark: oops.New("e4m3 nan")},
		{c: minifloat.E4M3FromRaw(0xFF), nan: true, Mark: oops.New("e4m3 -nan")},
		{c: minifloat.MinE4M3, normal: true, negative: true, Mark: oops.New("e4m3 min")},
		{c: minifloat.OneBFloat16, normal: true, Mark: oops.New("bfloat16 one")},
		{c: minifloat.BFloat64FromRaw(1), sub: true, Mark: oops.New("bfloat64 epsilon")},
		{c: minifloat.InfBFloat64, inf: true, Mark: oops.New("bfloat64 inf")},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.nan, tc.c.IsNaN(), tc.Mark)
		require.Equal(t, tc.inf, tc.c.IsInf(), tc.Mark)
		require.Equal(t, tc.zero, tc.c.IsZero(), tc.Mark)
		require.Equal(t, tc.sub, tc.c.IsSubnormal(), tc.Mark)
		require.Equal(t, tc.normal, tc.c.IsNormal(), tc.Mark)
		require.Equal(t, tc.negative, tc.c.IsNegative(), tc.Mark)
	}
}

func TestE4M3HasNoInfinity(t *testing.T) {
	for i := 0; i < 256; i++ {
		x := minifloat.E4M3FromRaw(uint8(i))
		require.False(t, x.IsInf(), i)
		require.Equal(t, i&0x7F == 0x7F, x.IsNaN(), i)
	}

	require.Equal(t, uint8(0x7E), minifloat.MaxE4M3.Raw())
	require.Equal(t, uint8(0x7F), minifloat.NaNE4M3.Raw())
	require.Equal(t, 448.0, minifloat.MaxE4M3.Float64())
	require.Equal(t, -448.0, minifloat.MinE4M3.Float64())

	// Out of range values saturate.
	require.Equal(t, minifloat.MaxE4M3, minifloat.E4M3FromFloat32(float32(math.Inf(1))))
	require.Equal(t, minifloat.MinE4M3, minifloat.E4M3FromFloat64(-1000))
	require.Equal(t, minifloat.MaxE4M3, minifloat.E4M3FromFloat64(480))
	require.Equal(t, minifloat.MaxE4M3, minifloat.E4M3FromFloat64(464))
	require.Equal(t, minifloat.MaxE4M3, minifloat.MaxE4M3.Add(minifloat.MaxE4M3))

	require.True(t, minifloat.E4M3FromFloat64(math.NaN()).IsNaN())
	require.True(t, minifloat.NaNE4M3.Neg().IsNaN())
	require.False(t, minifloat.NaNE4M3.Neg().IsNegative())
}

func TestEncodingConstants(t *testing.T) {
	require.Equal(t, uint8(0x3C), minifloat.OneE5M2.Raw())
	require.Equal(t, uint8(0x38), minifloat.OneE4M3.Raw())
	require.Equal(t, uint16(0x3F80), minifloat.OneBFloat16.Raw())
	require.Equal(t, uint32(0x3FF00000), minifloat.OneBFloat32.Raw())
	require.Equal(t, uint64(0x3FFF_0000_0000_0000), minifloat.OneBFloat64.Raw())

	require.Equal(t, 57344.0, minifloat.MaxE5M2.Float64())
	require.Equal(t, 57344.0, minifloat.MaxQuarter.Float64())
	require.Equal(t, math.Ldexp(1, -16), minifloat.EpsilonE5M2.Float64())
	require.Equal(t, math.Ldexp(1, -9), minifloat.EpsilonE4M3.Float64())
	require.Equal(t, -1.0, minifloat.NegOneE4M3.Float64())
	require.True(t, math.Signbit(minifloat.NegZeroE5M2.Float64()))

	x := minifloat.E5M2FromFloat64(-1.5)
	require.True(t, x.Signbit())
	require.Equal(t, uint64(15), x.Exponent())
	require.Equal(t, uint64(2), x.Mantissa())
}

func TestRounding(t *testing.T) {
	type TC struct {
		in   float64
		out  float64
		Mark error
	}

	tcs := []TC{
		{1.125, 1, oops.New("tie to even down")},
		{1.375, 1.5, oops.New("tie to even up")},
		{1.2, 1.25, oops.New("nearest")},
		{1.9, 2, oops.New("carry into exponent")},
		{math.Ldexp(1, -17), 0, oops.New("half the smallest subnormal")},
		{math.Ldexp(3, -17), math.Ldexp(1, -15), oops.New("subnormal tie to even")},
		{math.Ldexp(7, -17), math.Ldexp(1, -14), oops.New("subnormal into normal")},
		{61440, math.Inf(1), oops.New("overflow")},
		{-61440, math.Inf(-1), oops.New("negative overflow")},
		{59000, 57344, oops.New("below the overflow midpoint")},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.out, minifloat.E5M2FromFloat64(tc.in).Float64(), tc.Mark)
		require.Equal(t, tc.out, minifloat.QuarterFromFloat64(tc.in).Float64(), tc.Mark)
	}
}

func TestEightBitRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		raw := uint8(i)

		if x := minifloat.QuarterFromRaw(raw); !x.IsNaN() {
			require.Equal(t, x, minifloat.QuarterFromFloat64(x.Float64()), i)
		}

		if x := minifloat.E5M2FromRaw(raw); !x.IsNaN() {
			require.Equal(t, x, minifloat.E5M2FromFloat32(x.Float32()), i)
		}

		if x := minifloat.E4M3FromRaw(raw); !x.IsNaN() {
			require.Equal(t, x, minifloat.E4M3FromFloat64(x.Float64()), i)
		}

		if x := minifloat.BFloat8FromRaw(raw); !x.IsNaN() {
			require.Equal(t, x, minifloat.BFloat8FromFloat32(x.Float32()), i)
		}
	}
}

func TestNaNEquality(t *testing.T) {
	require.True(t, minifloat.E5M2FromFloat32(float32(math.Inf(1))).Equal(minifloat.InfE5M2))
	require.True(t, minifloat.E5M2FromFloat32(float32(math.NaN())).Equal(minifloat.NaNE5M2))
	require.True(t, minifloat.NaNE5M2.Equal(minifloat.E5M2FromRaw(0xFD)))
	require.False(t, minifloat.NegZeroE5M2.Equal(minifloat.E5M2{}))
	require.Equal(t, 0, minifloat.NegZeroE5M2.Compare(minifloat.E5M2{}))

	for i := 0; i < 1<<16; i++ {
		x := minifloat.BFloat16FromRaw(uint16(i))
		if !x.IsNaN() {
			continue
		}

		require.True(t, x.Equal(minifloat.NaNBFloat16), i)
		require.True(t, math.IsNaN(x.Float64()), i)
		require.Equal(t, 0, x.Compare(minifloat.NaNBFloat16), i)
		require.Equal(t, 1, x.Compare(minifloat.InfBFloat16), i)
	}
}

func TestCompare(t *testing.T) {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			a, b := minifloat.E5M2FromRaw(uint8(i)), minifloat.E5M2FromRaw(uint8(j))
			if !a.IsNaN() && !b.IsNaN() {
				require.Equal(t, cmp.Compare(a.Float64(), b.Float64()), a.Compare(b), spew.Sdump(a, b))
			}

			c, d := minifloat.E4M3FromRaw(uint8(i)), minifloat.E4M3FromRaw(uint8(j))
			if !c.IsNaN() && !d.IsNaN() {
				require.Equal(t, cmp.Compare(c.Float64(), d.Float64()), c.Compare(d), spew.Sdump(c, d))
			}
		}
	}

	require.Equal(t, 1, minifloat.NaNE4M3.Compare(minifloat.MaxE4M3))
	require.Equal(t, -1, minifloat.MinE4M3.Compare(minifloat.NaNE4M3))

	c, err := minifloat.OneE4M3.CompareAny(minifloat.MaxE4M3)
	require.NoError(t, err)
	require.Equal(t, -1, c)

	_, err = minifloat.OneE4M3.CompareAny(minifloat.OneE5M2)
	require.True(t, errors.Is(err, numerics.ErrTypeMismatch))
}

func TestArithmetic(t *testing.T) {
	one := minifloat.OneE4M3

	require.Equal(t, 2.0, one.Add(one).Float64())
	require.Equal(t, 0.0, one.Sub(one).Float64())
	require.Equal(t, 6.0, minifloat.E4M3FromFloat64(2).Mul(minifloat.E4M3FromFloat64(3)).Float64())
	require.Equal(t, 0.5, one.Div(minifloat.E4M3FromFloat64(2)).Float64())
	require.Equal(t, 1.0, minifloat.E4M3FromFloat64(7).Rem(minifloat.E4M3FromFloat64(3)).Float64())
	require.Equal(t, 2.0, one.Inc().Float64())
	require.Equal(t, 0.0, one.Dec().Float64())

	require.Equal(t, minifloat.InfE5M2, minifloat.MaxE5M2.Add(minifloat.MaxE5M2))
	require.Equal(t, minifloat.InfE5M2, minifloat.OneE5M2.Div(minifloat.E5M2{}))
	require.True(t, minifloat.E5M2{}.Div(minifloat.E5M2{}).IsNaN())

	require.Equal(t, minifloat.NegOneE5M2, minifloat.OneE5M2.Neg())
	require.Equal(t, minifloat.OneE5M2, minifloat.NegOneE5M2.Abs())
	require.Equal(t, minifloat.NegOneE5M2, minifloat.OneE5M2.CopySign(minifloat.NegZeroE5M2))

	require.Equal(t, 3.0, minifloat.BFloat16FromFloat32(1.5).Add(minifloat.BFloat16FromFloat32(1.5)).Float64())
}

func TestBFloatTruncation(t *testing.T) {
	// A mantissa just below the next BFloat16 is dropped, not rounded up.
	v := math.Float32frombits(0x3F80FFFF)
	require.Equal(t, minifloat.OneBFloat16, minifloat.BFloat16FromFloat32(v))
	require.Equal(t, uint16(0x4049), minifloat.BFloat16FromFloat32(3.14159).Raw())
	require.Equal(t, float32(3.140625), minifloat.BFloat16FromFloat32(3.14159).Float32())

	require.Equal(t, uint32(0x400921FB), minifloat.BFloat32FromFloat64(math.Pi).Raw())

	b := math.Float64frombits(0x3FF0_0000_0000_000F)
	require.Equal(t, minifloat.OneBFloat64, minifloat.BFloat64FromFloat64(b))

	require.Equal(t, uint8(0x3E), minifloat.BFloat8FromFloat32(1.5).Raw())
	require.Equal(t, float32(1.5), minifloat.BFloat8FromFloat32(1.5).Float32())

	for i := 0; i < 1<<16; i++ {
		x := minifloat.BFloat16FromRaw(uint16(i))
		if x.IsNaN() {
			continue
		}

		require.Equal(t, x, minifloat.BFloat16FromFloat32(x.Float32()), i)
	}
}

func TestBFloatConversions(t *testing.T) {
	x := minifloat.BFloat8FromFloat32(1.5).BFloat16().BFloat32().BFloat64()
	require.Equal(t, 1.5, x.Float64())
	require.Equal(t, float32(1.5), x.BFloat32().BFloat16().BFloat8().Float32())

	require.Equal(t, 448.0, minifloat.MaxE4M3.E5M2().Float64())
	require.Equal(t, minifloat.MaxE4M3, minifloat.MaxE5M2.E4M3())
	require.Equal(t, minifloat.OneQuarter, minifloat.OneE4M3.Quarter())
	require.Equal(t, minifloat.OneE5M2, minifloat.OneQuarter.E5M2())
	require.Equal(t, minifloat.InfQuarter, minifloat.InfE5M2.Quarter())
	require.Equal(t, minifloat.MaxE4M3, minifloat.InfQuarter.E4M3())
}

func TestBFloat64Rebias(t *testing.T) {
	type TC struct {
		in   float64
		raw  uint64
		Mark error
	}

	tcs := []TC{
		{1.5, 0x3FFF_8000_0000_0000, oops.New("normal")},
		{-2, 0xC000_0000_0000_0000, oops.New("negative")},
		{math.Ldexp(1, 1023), 0x43FE_0000_0000_0000, oops.New("largest power of two")},
		{math.Ldexp(1, -1022), 0x3C01_0000_0000_0000, oops.New("smallest normal")},
		{math.SmallestNonzeroFloat64, 0x3BCD_0000_0000_0000, oops.New("smallest subnormal")},
	}

	for _, tc := range tcs {
		x := minifloat.BFloat64FromFloat64(tc.in)
		require.Equal(t, tc.raw, x.Raw(), tc.Mark)
		require.True(t, x.IsNormal(), tc.Mark)
		require.Equal(t, tc.in, x.Float64(), tc.Mark)
	}

	sub := math.Float64frombits(0x0008_0000_0000_0010)
	require.Equal(t, sub, minifloat.BFloat64FromFloat64(sub).Float64())

	require.True(t, math.IsInf(minifloat.MaxBFloat64.Float64(), 1))
	require.True(t, math.IsInf(minifloat.MinBFloat64.Float64(), -1))
	require.Equal(t, 0.0, minifloat.EpsilonBFloat64.Float64())
	require.True(t, math.IsNaN(minifloat.NaNBFloat64.Float64()))
	require.True(t, minifloat.BFloat64FromFloat64(math.NaN()).IsNaN())
	require.Equal(t, minifloat.NegInfBFloat64, minifloat.BFloat64FromFloat64(math.Inf(-1)))
	require.Equal(t, minifloat.NegZeroBFloat64, minifloat.BFloat64FromFloat64(math.Copysign(0, -1)))

	rng := rand.New(rand.NewSource(64))
	for i := 0; i < 1000; i++ {
		// Float64 values whose low four mantissa bits are clear convert
		// exactly.
		v := math.Float64frombits(rng.Uint64() &^ 0xF)
		if math.IsNaN(v) {
			continue
		}

		require.Equal(t, v, minifloat.BFloat64FromFloat64(v).Float64(), v)
	}
}

func TestBFloat64Text(t *testing.T) {
	require.Equal(t, "1.5", minifloat.BFloat64FromFloat64(1.5).String())
	require.Equal(t, "NaN", minifloat.NaNBFloat64.String())
	require.Equal(t, "+Inf", minifloat.InfBFloat64.String())
	require.Equal(t, "-0", minifloat.NegZeroBFloat64.String())

	big, err := minifloat.ParseBFloat64("1e4000")
	require.NoError(t, err)
	require.True(t, big.IsNormal())
	require.True(t, math.IsInf(big.Float64(), 1))
	require.Equal(t, -1, big.Compare(minifloat.MaxBFloat64))

	back, err := minifloat.ParseBFloat64(big.String())
	require.NoError(t, err)
	require.Equal(t, big, back)

	for _, x := range []minifloat.BFloat64{
		minifloat.MaxBFloat64,
		minifloat.MinBFloat64,
		minifloat.EpsilonBFloat64,
		minifloat.OneBFloat64,
		minifloat.InfBFloat64,
		minifloat.NegInfBFloat64,
		minifloat.NegZeroBFloat64,
	} {
		y, err := minifloat.ParseBFloat64(x.String())
		require.NoError(t, err, x.String())
		require.Equal(t, x, y, x.String())
	}

	rng := rand.New(rand.NewSource(49))
	for i := 0; i < 500; i++ {
		x := minifloat.BFloat64FromRaw(rng.Uint64())
		if x.IsNaN() {
			continue
		}

		y, err := minifloat.ParseBFloat64(x.String())
		require.NoError(t, err, x.String())
		require.Equal(t, x, y, x.String())
	}

	x, err := minifloat.ParseBFloat64("nan")
	require.NoError(t, err)
	require.True(t, x.IsNaN())

	_, err = minifloat.ParseBFloat64("one")
	require.True(t, errors.Is(err, numerics.ErrSyntax))
	require.True(t, minifloat.Error.Has(err))

	_, ok := minifloat.TryParseBFloat64("")
	require.False(t, ok)

	x, err = minifloat.ParseBFloat64Locale("1,5", language.German)
	require.NoError(t, err)
	require.Equal(t, 1.5, x.Float64())
}

func TestBFloat64TextExtremeExponents(t *testing.T) {
	type TC struct {
		Text     string
		Expected string
	}

	tcs := []TC{
		{Text: "1.5e-4000", Expected: "1.5e-4000"},
		{Text: "-7e4500", Expected: "-7e+4500"},
		{Text: "2.5e1200", Expected: "2.5e+1200"},
		{Text: "1e300", Expected: "1e+300"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			x, err := minifloat.ParseBFloat64(tc.Text)
			require.NoError(t, err, spew.Sdump(tc))
			require.Equal(t, tc.Expected, x.String(), spew.Sdump(tc))
		})
	}

	for _, x := range []minifloat.BFloat64{
		minifloat.EpsilonBFloat64,
		minifloat.EpsilonBFloat64.Neg(),
		minifloat.BFloat64FromRaw(1 << 48),
		minifloat.BFloat64FromRaw(1<<48 - 1),
		minifloat.MaxBFloat64,
		minifloat.MinBFloat64,
	} {
		s := x.String()
		require.True(t, strings.Contains(s, "e"), s)
		require.LessOrEqual(t, len(s), 24, s)

		y, err := minifloat.ParseBFloat64(s)
		require.NoError(t, err, s)
		require.Equal(t, x, y, s)
	}

	rng := rand.New(rand.NewSource(4932))
	for i := 0; i < 2000; i++ {
		// Exponent fields near either end of the range.
		e := uint64(rng.Intn(300))
		if rng.Intn(2) == 0 {
			e = 0x7FFE - e
		}

		x := minifloat.BFloat64FromRaw(uint64(rng.Intn(2))<<63 | e<<48 | rng.Uint64()&(1<<48-1))

		y, err := minifloat.ParseBFloat64(x.String())
		require.NoError(t, err, x.String())
		require.Equal(t, x, y, x.String())
	}
}

func TestBFloat64UInt96(t *testing.T) {
	x := minifloat.BFloat64FromUInt96(wide.FromUint64(12345))
	require.Equal(t, 12345.0, x.Float64())

	u, err := x.UInt96()
	require.NoError(t, err)
	require.Equal(t, wide.FromUint64(12345), u)

	// Only the 49 most significant bits survive.
	u, err = minifloat.BFloat64FromUInt96(wide.MaxUInt96).UInt96()
	require.NoError(t, err)
	require.Equal(t, wide.New(0xFFFF_FFFF, 0xFFFF_8000_0000_0000), u)

	u, err = minifloat.BFloat64FromFloat64(0.75).UInt96()
	require.NoError(t, err)
	require.True(t, u.IsZero())

	u, err = minifloat.NegZeroBFloat64.UInt96()
	require.NoError(t, err)
	require.True(t, u.IsZero())

	require.True(t, minifloat.BFloat64FromUInt96(wide.UInt96{}).IsZero())

	for _, x := range []minifloat.BFloat64{
		minifloat.NaNBFloat64,
		minifloat.NegOneBFloat64,
		minifloat.BFloat64FromFloat64(math.Ldexp(1, 96)),
		minifloat.InfBFloat64,
	} {
		_, err := x.UInt96()
		require.True(t, errors.Is(err, numerics.ErrOutOfRange), x.String())
	}
}

func TestText(t *testing.T) {
	require.Equal(t, "1", minifloat.OneBFloat16.String())
	require.Equal(t, "NaN", minifloat.NaNE5M2.String())
	require.Equal(t, "+Inf", minifloat.InfE5M2.String())
	require.Equal(t, "448", minifloat.MaxE4M3.String())
	require.Equal(t, "1.000", fmt.Sprintf("%.3f", minifloat.OneE4M3))
	require.Equal(t, "1", fmt.Sprintf("%v", minifloat.OneE4M3))
	require.Equal(t, `"1.5"`, fmt.Sprintf("%q", minifloat.BFloat8FromFloat32(1.5)))

	x, err := minifloat.ParseE5M2("inf")
	require.NoError(t, err)
	require.Equal(t, minifloat.InfE5M2, x)

	e, err := minifloat.ParseE4M3("1e9")
	require.NoError(t, err)
	require.Equal(t, minifloat.MaxE4M3, e)

	_, err = minifloat.ParseQuarter("abc")
	require.True(t, errors.Is(err, numerics.ErrSyntax))

	_, ok := minifloat.TryParseBFloat32("1.5.5")
	require.False(t, ok)

	b, err := minifloat.ParseBFloat16Locale("1,5", language.German)
	require.NoError(t, err)
	require.Equal(t, float32(1.5), b.Float32())

	require.Equal(t, []byte{0x3F, 0x80}, minifloat.OneBFloat16.AppendRaw(nil))
	require.Equal(t, []byte{0x3F, 0xFF, 0, 0, 0, 0, 0, 0}, minifloat.OneBFloat64.AppendRaw(nil))
	require.Equal(t, 32, minifloat.BFloat32{}.Bits())
}
