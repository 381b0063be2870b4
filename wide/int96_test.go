package wide_test

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numerics"
	"github.com/calebcase/numerics/wide"
)

// signed96 reduces v into [-2^95, 2^95).
func signed96(v *big.Int) *big.Int {
	half := new(big.Int).Lsh(big.NewInt(1), 95)

	v = new(big.Int).Mod(v, mod96)
	if v.Cmp(half) >= 0 {
		v.Sub(v, mod96)
	}

	return v
}

func randomInt96(rng *rand.Rand) wide.Int96 {
	v := random96(rng)

	return wide.NewInt96(v.Upper(), v.Lower())
}

func TestInt96Arithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(95))

	for i := 0; i < 2000; i++ {
		a, b := randomInt96(rng), randomInt96(rng)
		ab, bb := a.Big(), b.Big()

		require.Equal(t, signed96(new(big.Int).Add(ab, bb)).String(), a.Add(b).String(), spew.Sdump(a, b))
		require.Equal(t, signed96(new(big.Int).Sub(ab, bb)).String(), a.Sub(b).String(), spew.Sdump(a, b))
		require.Equal(t, signed96(new(big.Int).Mul(ab, bb)).String(), a.Mul(b).String(), spew.Sdump(a, b))
		require.Equal(t, ab.Cmp(bb), a.Compare(b), spew.Sdump(a, b))

		if b.IsZero() || (a == wide.MinInt96 && b == wide.FromInt64(-1)) {
			continue
		}

		q, r, err := a.QuoRem(b)
		require.NoError(t, err)

		// big.Int.QuoRem truncates toward zero like Int96.
		wq, wr := new(big.Int).QuoRem(ab, bb, new(big.Int))
		require.Equal(t, wq.String(), q.String(), spew.Sdump(a, b))
		require.Equal(t, wr.String(), r.String(), spew.Sdump(a, b))
		require.Equal(t, a, q.Mul(b).Add(r))
	}
}

func TestInt96Signs(t *testing.T) {
	neg := wide.FromInt64(-5)

	require.Equal(t, -1, neg.Sign())
	require.Equal(t, 0, wide.Int96{}.Sign())
	require.Equal(t, 1, wide.FromInt64(5).Sign())
	require.Equal(t, wide.FromInt64(5), neg.Abs())
	require.Equal(t, wide.FromInt64(5), neg.Neg())
	require.Equal(t, "-5", neg.String())
	require.Equal(t, -5.0, neg.Float64())

	require.Equal(t, wide.MinInt96, wide.MinInt96.Neg())
	require.Equal(t, wide.MinInt96, wide.MaxInt96.Inc())
	require.Equal(t, wide.MaxInt96, wide.MinInt96.Dec())
	require.Equal(t, "-39614081257132168796771975168", wide.MinInt96.String())
	require.Equal(t, "39614081257132168796771975167", wide.MaxInt96.String())

	q, err := wide.MinInt96.Div(wide.FromInt64(-1))
	require.NoError(t, err)
	require.Equal(t, wide.MinInt96, q)

	_, err = neg.Rem(wide.Int96{})
	require.True(t, errors.Is(err, numerics.ErrDivideByZero))
}

func TestInt96Shifts(t *testing.T) {
	neg := wide.FromInt64(-8)

	require.Equal(t, wide.FromInt64(-4), neg.Rsh(1))
	require.Equal(t, wide.FromInt64(-1), neg.Rsh(95))
	require.Equal(t, wide.FromInt64(-16), neg.Lsh(1))
	require.Equal(t, wide.NewInt96(0x7FFF_FFFF, 0xFFFF_FFFF_FFFF_FFFC), neg.URsh(1))
	require.Equal(t, wide.FromInt64(2), wide.FromInt64(8).Rsh(2))

	require.Equal(t, wide.FromInt64(-1), wide.Int96{}.Not())
	require.Equal(t, wide.FromInt64(0), neg.And(wide.FromInt64(7)))
	require.Equal(t, wide.FromInt64(-1), neg.Or(wide.FromInt64(7)))
	require.Equal(t, wide.FromInt64(-1), neg.Xor(wide.FromInt64(7)))
}

func TestInt96Text(t *testing.T) {
	for _, s := range []string{"0", "-1", "1", wide.MinInt96.String(), wide.MaxInt96.String()} {
		v, err := wide.ParseInt96(s)
		require.NoError(t, err, s)
		require.Equal(t, s, v.String())
	}

	_, err := wide.ParseInt96("39614081257132168796771975168")
	require.True(t, errors.Is(err, numerics.ErrOverflow))

	_, err = wide.ParseInt96("-39614081257132168796771975169")
	require.True(t, errors.Is(err, numerics.ErrOverflow))

	_, err = wide.ParseInt96("1.5")
	require.True(t, errors.Is(err, numerics.ErrSyntax))

	_, ok := wide.TryParseInt96("")
	require.False(t, ok)
}

func TestInt96Conversions(t *testing.T) {
	_, err := wide.FromInt64(-1).UInt96()
	require.True(t, errors.Is(err, numerics.ErrOutOfRange))

	u, err := wide.FromInt64(9).UInt96()
	require.NoError(t, err)
	require.Equal(t, wide.FromUint64(9), u)

	_, err = wide.FromBigInt96(new(big.Int).Lsh(big.NewInt(1), 95))
	require.True(t, errors.Is(err, numerics.ErrOutOfRange))

	v, err := wide.FromBigInt96(big.NewInt(-3))
	require.NoError(t, err)
	require.Equal(t, wide.FromInt64(-3), v)
	require.Equal(t, uint32(0xFFFF_FFFF), v.Upper())
	require.Equal(t, uint64(0xFFFF_FFFF_FFFF_FFFD), v.Lower())

	c, err := v.CompareAny(wide.FromInt64(-4))
	require.NoError(t, err)
	require.Equal(t, 1, c)

	_, err = v.CompareAny(wide.FromUint64(1))
	require.True(t, errors.Is(err, numerics.ErrTypeMismatch))
}
