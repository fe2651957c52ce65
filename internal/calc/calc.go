// Package calc implements the fraction command: converting, reducing and
// evaluating fractions typed as text, for a chosen integer width.
package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TamirPerek/Fraction-Lib/src/numeric/fraction"
)

// Calculator evaluates textual input with fractions over one integer width.
type Calculator interface {
	// Bits is the width of the numerator and denominator.
	Bits() int

	// Convert approximates a floating-point literal. A zero tolerance selects
	// float64 machine epsilon.
	Convert(value string, tolerance float64) (string, error)

	// Simplify reduces a fraction to lowest terms.
	Simplify(value string) (string, error)

	// Eval evaluates a binary expression left to right.
	Eval(expr string) (string, error)

	// Evaluate runs one line of the interactive language: "convert X...",
	// "simplify X..." or an expression.
	Evaluate(line string) (string, error)
}

// New returns a Calculator for signed integers of the given width.
func New(bits int) (Calculator, error) {
	switch bits {
	case 8:
		return calculator[int8]{bits: bits}, nil
	case 16:
		return calculator[int16]{bits: bits}, nil
	case 32:
		return calculator[int32]{bits: bits}, nil
	case 64:
		return calculator[int64]{bits: bits}, nil
	}
	return nil, fmt.Errorf("calc: unsupported integer width %d (want 8, 16, 32 or 64)", bits)
}

type calculator[T fraction.Integer] struct {
	bits int
}

func (c calculator[T]) Bits() int {
	return c.bits
}

func (c calculator[T]) Convert(value string, tolerance float64) (string, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "", fmt.Errorf("calc: %q is not a floating-point number", value)
	}

	var f fraction.Fraction[T]
	if tolerance == 0 {
		f, err = fraction.FromFloat[T](v)
	} else {
		f, err = fraction.ToFraction[T](v, tolerance)
	}
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

func (c calculator[T]) Simplify(value string) (string, error) {
	f, err := fraction.Parse[T](value)
	if err != nil {
		return "", err
	}
	return f.Simplify().String(), nil
}

// Eval prints the unreduced result, followed by the reduced form when it
// differs.
func (c calculator[T]) Eval(expr string) (string, error) {
	f, err := Evaluate[T](expr)
	if err != nil {
		return "", err
	}
	if s := f.Simplified(); s != f {
		return f.String() + " = " + s.String(), nil
	}
	return f.String(), nil
}

func (c calculator[T]) Evaluate(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	var each func(string) (string, error)
	switch fields[0] {
	case "convert":
		each = func(s string) (string, error) { return c.Convert(s, 0) }
	case "simplify":
		each = c.Simplify
	default:
		return c.Eval(line)
	}

	if len(fields) == 1 {
		return "", fmt.Errorf("calc: %s needs at least one operand", fields[0])
	}
	out := make([]string, 0, len(fields)-1)
	for _, s := range fields[1:] {
		r, err := each(s)
		if err != nil {
			return "", err
		}
		out = append(out, r)
	}
	return strings.Join(out, " "), nil
}
