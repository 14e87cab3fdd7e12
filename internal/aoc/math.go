package aoc

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of all values; LCM() is 1.
func LCM[T constraints.Integer](values ...T) T {
	var out T = 1
	for _, v := range values {
		out = out / GCD(out, v) * v
	}
	return out
}
