package fixed

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/calebcase/numerics"
)

func scale(frac uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), frac)
}

// formatRaw returns the exact decimal text of raw / 2^frac.
func formatRaw(raw *big.Int, frac uint) string {
	s := new(big.Rat).SetFrac(raw, scale(frac)).FloatString(int(frac))
	s = strings.TrimRight(s, "0")

	return strings.TrimSuffix(s, ".")
}

// parseRaw parses decimal text into a raw value with frac fraction bits,
// truncating toward zero. Raw values outside [lo, hi] overflow.
func parseRaw(typ, s string, frac uint, lo, hi *big.Int) (*big.Int, error) {
	if s == "" || strings.TrimLeft(s, "+-0123456789.eE") != "" {
		return nil, numerics.SyntaxError(&Error, typ, s)
	}

	if i := strings.IndexAny(s, "eE"); i >= 0 {
		order, zero, ok := leadingOrder(s[:i])

		exp, err := strconv.ParseInt(s[i+1:], 10, 64)
		if !ok || (err != nil && !errors.Is(err, strconv.ErrRange)) {
			return nil, numerics.SyntaxError(&Error, typ, s)
		}

		// Clamped so order+exp cannot wrap; anything this far out is
		// decided by its sign alone.
		exp = max(min(exp, 1<<40), -1<<40)

		switch {
		case zero || order+exp < -exponentLimit:
			return new(big.Int), nil
		case order+exp > exponentLimit:
			return nil, numerics.Errorf(&Error, numerics.ErrOverflow, "%q does not fit %s", s, typ)
		}
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, numerics.SyntaxError(&Error, typ, s)
	}

	r.Mul(r, new(big.Rat).SetInt(scale(frac)))
	v := new(big.Int).Quo(r.Num(), r.Denom())

	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return nil, numerics.Errorf(&Error, numerics.ErrOverflow, "%q does not fit %s", s, typ)
	}

	return v, nil
}

// exponentLimit bounds the decimal order of magnitude parseRaw hands to
// big.Rat. Every fixed point type overflows above 10^exponentLimit and
// truncates to zero below 10^-exponentLimit.
const exponentLimit = 40

// leadingOrder returns the decimal exponent of the leading nonzero digit of
// the mantissa m, or zero when m has no nonzero digit. ok is false when m is
// not an optionally signed decimal.
func leadingOrder(m string) (order int64, zero, ok bool) {
	if len(m) > 0 && (m[0] == '+' || m[0] == '-') {
		m = m[1:]
	}

	whole, part, _ := strings.Cut(m, ".")
	if whole+part == "" || strings.Trim(whole+part, "0123456789") != "" {
		return 0, false, false
	}

	if i := strings.IndexAny(whole, "123456789"); i >= 0 {
		return int64(len(whole) - 1 - i), false, true
	}

	if i := strings.IndexAny(part, "123456789"); i >= 0 {
		return int64(-1 - i), false, true
	}

	return 0, true, true
}
