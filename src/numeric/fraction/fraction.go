// Package fraction provides exact rational numbers over a fixed-width integer
// type, and a continued fraction approximation of floating-point values.
//
// A Fraction[T] holds a numerator and denominator of type T. Arithmetic never
// reduces implicitly; call Simplify to bring a value to lowest terms.
// Overflow of T is not detected.
//
// Equality is structural: 1/2 and 2/4 are different values under == and
// Equal, while Compare orders them as equal.
package fraction

import (
	"math/big"
)

// Fraction is a rational number numerator/denominator.
//
// The zero value is 0/1. Fractions are plain values and may be copied freely;
// the methods with pointer receivers mutate in place and are not safe for
// concurrent use on the same value.
type Fraction[T Integer] struct {
	numerator T

	// denominator - 1, so the zero value has denominator 1.
	denm1 T
}

// New returns numerator/denominator. Neither field is reduced or normalized.
// New fails with ErrInvalidArgument if the denominator is 0.
func New[T Integer](numerator, denominator T) (Fraction[T], error) {
	if denominator == 0 {
		return Fraction[T]{}, newError("New", ErrInvalidArgument, "denominator must not be zero")
	}
	return Fraction[T]{numerator: numerator, denm1: denominator - 1}, nil
}

// Int returns n/1.
func Int[T Integer](n T) Fraction[T] {
	return Fraction[T]{numerator: n}
}

// Zero returns 0/1.
func Zero[T Integer]() Fraction[T] {
	return Fraction[T]{}
}

func (f Fraction[T]) Num() T {
	return f.numerator
}

func (f Fraction[T]) Den() T {
	return f.denm1 + 1
}

func (f *Fraction[T]) SetNum(n T) {
	f.numerator = n
}

// SetDen replaces the denominator. It fails with ErrInvalidArgument, leaving f
// untouched, if d is 0.
func (f *Fraction[T]) SetDen(d T) error {
	if d == 0 {
		return newError("SetDen", ErrInvalidArgument, "denominator must not be zero")
	}
	f.denm1 = d - 1
	return nil
}

func (f Fraction[T]) Float64() float64 {
	return float64(f.numerator) / float64(f.Den())
}

func (f Fraction[T]) Float32() float32 {
	return float32(f.numerator) / float32(f.Den())
}

// BigFloat returns the quotient with a BigFloatPrec-bit mantissa. It panics
// with big.ErrNaN for 0/0, which only overflow can produce.
func (f Fraction[T]) BigFloat() *big.Float {
	n := new(big.Float).SetPrec(BigFloatPrec).SetInt(bigInt(f.numerator))
	d := new(big.Float).SetPrec(BigFloatPrec).SetInt(bigInt(f.Den()))
	return n.Quo(n, d)
}

// Rat returns the exact value of f. It panics if the denominator is 0.
func (f Fraction[T]) Rat() *big.Rat {
	return new(big.Rat).SetFrac(bigInt(f.numerator), bigInt(f.Den()))
}

// GCD returns the greatest common divisor of the numerator and denominator.
func (f Fraction[T]) GCD() T {
	return GCD(f.numerator, f.Den())
}

// LCM returns the least common multiple of the denominators of f and o.
func (f Fraction[T]) LCM(o Fraction[T]) T {
	return LCM(f.Den(), o.Den())
}

// Simplify reduces f to lowest terms in place and returns f. A zero numerator
// reduces to 0/1.
func (f *Fraction[T]) Simplify() *Fraction[T] {
	g := f.GCD()
	if g == 0 {
		// only 0/0, which New never builds
		return f
	}
	if f.numerator == 0 {
		f.denm1 = 0
		return f
	}
	f.numerator /= g
	f.denm1 = f.Den()/g - 1
	return f
}

// Simplified returns f reduced to lowest terms.
func (f Fraction[T]) Simplified() Fraction[T] {
	return *f.Simplify()
}

func (f Fraction[T]) Equal(o Fraction[T]) bool {
	return f == o
}

func (f Fraction[T]) IsZero() bool {
	return f.numerator == 0
}

// IsInt reports whether the denominator divides the numerator.
func (f Fraction[T]) IsInt() bool {
	d := f.Den()
	return d != 0 && f.numerator%d == 0
}

// Sign returns -1, 0 or +1 according to the sign of the value, taking the
// sign of the denominator into account.
func (f Fraction[T]) Sign() int {
	return sign(f.numerator) * sign(f.Den())
}

// Neg returns -f. The sign goes on the numerator. For unsigned T this wraps.
func (f Fraction[T]) Neg() Fraction[T] {
	f.numerator = -f.numerator
	return f
}

// Abs returns |f| with a non-negative numerator and denominator.
func (f Fraction[T]) Abs() Fraction[T] {
	return Fraction[T]{numerator: abs(f.numerator), denm1: abs(f.Den()) - 1}
}

// Inv returns 1/f. When T is signed the sign is moved to the numerator.
func (f Fraction[T]) Inv() (Fraction[T], error) {
	if f.numerator == 0 {
		return f, newError("Inv", ErrDivisionByZero, "")
	}
	n, d := f.Den(), f.numerator
	if d < 0 {
		n, d = -n, -d
	}
	return Fraction[T]{numerator: n, denm1: d - 1}, nil
}

func sign[T Integer](v T) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func bigInt[T Integer](v T) *big.Int {
	if isSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}
