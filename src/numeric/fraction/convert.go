package fraction

import (
	"math"
)

// FromFloat is ToFraction with the machine epsilon of F as tolerance.
func FromFloat[T Integer, F Float](value F) (Fraction[T], error) {
	return ToFraction[T](value, Epsilon[F]())
}

// ToFraction approximates value by the first continued fraction convergent
// h/k with |h/k - |value|| < |value|*tolerance. Values within tolerance of
// zero convert to 0/1. The sign is carried by the numerator; the denominator
// is always positive.
//
// ToFraction fails with ErrInvalidArgument if tolerance is not positive, if
// value is NaN or infinite, or if value is negative and T is unsigned. It
// fails with ErrNonConvergent if no convergent within MaxIterations[T]()
// terms meets the tolerance while still fitting in T.
func ToFraction[T Integer, F Float](value, tolerance F) (Fraction[T], error) {
	v, tol := float64(value), float64(tolerance)
	switch {
	case !(tol > 0):
		return Fraction[T]{}, newError("ToFraction", ErrInvalidArgument, "tolerance %g must be greater than zero", tol)
	case math.IsNaN(v) || math.IsInf(v, 0):
		return Fraction[T]{}, newError("ToFraction", ErrInvalidArgument, "cannot convert %g", v)
	case math.Abs(v) < tol:
		return Fraction[T]{}, nil
	case v < 0 && !isSigned[T]():
		return Fraction[T]{}, newError("ToFraction", ErrInvalidArgument, "%g does not fit an unsigned type", v)
	}

	negative := v < 0
	v = math.Abs(v)

	limit := magnitudeLimit[T]()
	h1, h2 := 1.0, 0.0
	k1, k2 := 0.0, 1.0
	x := v

	for i := 0; i < MaxIterations[T](); i++ {
		a := math.Floor(x)
		h1, h2 = a*h1+h2, h1
		k1, k2 = a*k1+k2, k1

		if k1 >= limit || h1 > limit || (h1 == limit && !negative) {
			return Fraction[T]{}, newError("ToFraction", ErrNonConvergent,
				"convergent for %g overflows a %d-bit integer after %d terms", v, bitSize[T](), i+1)
		}

		rest := x - a
		if math.Abs(h1/k1-v) < v*tol || rest == 0 {
			return Fraction[T]{numerator: signedNumerator[T](h1, negative), denm1: T(k1) - 1}, nil
		}

		x = 1 / rest
	}

	// Not reached: by MaxIterations[T]() terms the convergents have outgrown T
	// and the overflow check above has already returned.
	return Fraction[T]{}, newError("ToFraction", ErrNonConvergent,
		"no convergent for %g within %d terms", v, MaxIterations[T]())
}

// signedNumerator converts a convergent numerator h back to T. A negative
// value may reach the magnitude limit itself, which is MinInt and has no
// positive counterpart in T.
func signedNumerator[T Integer](h float64, negative bool) T {
	if !negative {
		return T(h)
	}
	if h == magnitudeLimit[T]() {
		return T(1) << (bitSize[T]() - 1)
	}
	return -T(h)
}
