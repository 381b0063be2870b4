package gray

import "golang.org/x/exp/constraints"

func encode[T constraints.Unsigned](b T) T {
	return b ^ b>>1
}

func decode[T constraints.Unsigned](g T, width uint) T {
	for s := width / 2; s > 0; s /= 2 {
		g ^= g >> s
	}

	return g
}
