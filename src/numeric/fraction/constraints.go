package fraction

import "golang.org/x/exp/constraints"

// Integer is any fixed-width integer type usable as numerator and denominator.
type Integer interface {
	constraints.Integer
}

// Float is any floating-point type that can be converted to a Fraction.
type Float interface {
	constraints.Float
}

func abs[T Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func negAbs[T Integer](v T) T {
	if v > 0 {
		return -v
	}
	return v
}
