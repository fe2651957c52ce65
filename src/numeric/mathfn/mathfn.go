// Package mathfn evaluates math library functions on fractions. Each function
// takes the float64 value of its operands, calls package math, and converts
// the result back with fraction.FromFloat, so results are approximations
// within float64 machine epsilon.
package mathfn

import (
	"math"

	"github.com/TamirPerek/Fraction-Lib/src/numeric/fraction"
)

func unary[T fraction.Integer](f fraction.Fraction[T], fn func(float64) float64) (fraction.Fraction[T], error) {
	return fraction.FromFloat[T](fn(f.Float64()))
}

func binary[T fraction.Integer](a, b fraction.Fraction[T], fn func(float64, float64) float64) (fraction.Fraction[T], error) {
	return fraction.FromFloat[T](fn(a.Float64(), b.Float64()))
}

func Sin[T fraction.Integer](f fraction.Fraction[T]) (fraction.Fraction[T], error) {
	return unary(f, math.Sin)
}

func Cos[T fraction.Integer](f fraction.Fraction[T]) (fraction.Fraction[T], error) {
	return unary(f, math.Cos)
}

func Tan[T fraction.Integer](f fraction.Fraction[T]) (fraction.Fraction[T], error) {
	return unary(f, math.Tan)
}

func Atan[T fraction.Integer](f fraction.Fraction[T]) (fraction.Fraction[T], error) {
	return unary(f, math.Atan)
}

// Sqrt fails with fraction.ErrInvalidArgument for negative f.
func Sqrt[T fraction.Integer](f fraction.Fraction[T]) (fraction.Fraction[T], error) {
	return unary(f, math.Sqrt)
}

// Atan2 returns the arc tangent of y/x, using the signs of both to pick the
// quadrant.
func Atan2[T fraction.Integer](y, x fraction.Fraction[T]) (fraction.Fraction[T], error) {
	return binary(y, x, math.Atan2)
}

// Hypot returns sqrt(p*p + q*q).
func Hypot[T fraction.Integer](p, q fraction.Fraction[T]) (fraction.Fraction[T], error) {
	return binary(p, q, math.Hypot)
}

// Pow returns x**y.
func Pow[T fraction.Integer](x, y fraction.Fraction[T]) (fraction.Fraction[T], error) {
	return binary(x, y, math.Pow)
}
