package zigzag

import "golang.org/x/exp/constraints"

func encode[U constraints.Unsigned, S constraints.Signed](v S, bits uint) U {
	return U(v<<1) ^ U(v>>(bits-1))
}

func decode[S constraints.Signed, U constraints.Unsigned](e U) S {
	return S(e>>1) ^ -S(e&1)
}
