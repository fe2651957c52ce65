package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TamirPerek/Fraction-Lib/src/numeric/fraction"
)

type kind int

const (
	kindFraction kind = iota
	kindInt
	kindFloat
)

// operand keeps the form it was written in, so integers and floats take the
// mixed-operand paths instead of being turned into fractions up front.
type operand[T fraction.Integer] struct {
	kind kind
	f    fraction.Fraction[T]
	x    float64
}

func parseOperand[T fraction.Integer](tok string) (operand[T], error) {
	if strings.ContainsAny(tok, ".eEnN") {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return operand[T]{}, fmt.Errorf("calc: bad operand %q", tok)
		}
		return operand[T]{kind: kindFloat, x: x}, nil
	}

	f, err := fraction.Parse[T](tok)
	if err != nil {
		return operand[T]{}, err
	}
	if strings.Contains(tok, "/") {
		return operand[T]{kind: kindFraction, f: f}, nil
	}
	return operand[T]{kind: kindInt, f: f}, nil
}

func (o operand[T]) value() (fraction.Fraction[T], error) {
	if o.kind == kindFloat {
		return fraction.FromFloat[T](o.x)
	}
	return o.f, nil
}

// Evaluate computes "a op b op c ..." strictly left to right, without
// precedence. Operators are + - * / and must be separated from operands by
// whitespace. Results are not reduced.
func Evaluate[T fraction.Integer](expr string) (fraction.Fraction[T], error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 || len(tokens)%2 == 0 {
		return fraction.Fraction[T]{}, fmt.Errorf("calc: malformed expression %q", expr)
	}

	lhs, err := parseOperand[T](tokens[0])
	if err != nil {
		return fraction.Fraction[T]{}, err
	}
	if len(tokens) == 1 {
		return lhs.value()
	}

	rhs, err := parseOperand[T](tokens[2])
	if err != nil {
		return fraction.Fraction[T]{}, err
	}
	acc, err := applyFirst(lhs, tokens[1], rhs)
	if err != nil {
		return fraction.Fraction[T]{}, err
	}

	for i := 3; i < len(tokens); i += 2 {
		rhs, err := parseOperand[T](tokens[i+1])
		if err != nil {
			return fraction.Fraction[T]{}, err
		}
		if acc, err = apply(acc, tokens[i], rhs); err != nil {
			return fraction.Fraction[T]{}, err
		}
	}
	return acc, nil
}

// applyFirst handles a scalar on the left of the first operator.
func applyFirst[T fraction.Integer](lhs operand[T], op string, rhs operand[T]) (fraction.Fraction[T], error) {
	if lhs.kind == kindFraction {
		return apply(lhs.f, op, rhs)
	}

	r, err := rhs.value()
	if err != nil {
		return r, err
	}

	if lhs.kind == kindFloat {
		switch op {
		case "+":
			return fraction.FloatAdd(lhs.x, r)
		case "-":
			return fraction.FloatSub(lhs.x, r)
		case "*":
			return fraction.FloatMul(lhs.x, r)
		case "/":
			return fraction.FloatDiv(lhs.x, r)
		}
		return r, badOperator(op)
	}

	k := lhs.f.Num()
	switch op {
	case "+":
		return r.AddInt(k), nil
	case "-":
		return fraction.IntSub(k, r), nil
	case "*":
		return r.MulInt(k), nil
	case "/":
		return fraction.IntDiv(k, r)
	}
	return r, badOperator(op)
}

func apply[T fraction.Integer](acc fraction.Fraction[T], op string, rhs operand[T]) (fraction.Fraction[T], error) {
	switch rhs.kind {
	case kindInt:
		k := rhs.f.Num()
		switch op {
		case "+":
			return acc.AddInt(k), nil
		case "-":
			return acc.SubInt(k), nil
		case "*":
			return acc.MulInt(k), nil
		case "/":
			return acc.DivInt(k)
		}
	case kindFloat:
		switch op {
		case "+":
			return fraction.AddFloat(acc, rhs.x)
		case "-":
			return fraction.SubFloat(acc, rhs.x)
		case "*":
			return fraction.MulFloat(acc, rhs.x)
		case "/":
			return fraction.DivFloat(acc, rhs.x)
		}
	default:
		switch op {
		case "+":
			return acc.Add(rhs.f), nil
		case "-":
			return acc.Sub(rhs.f), nil
		case "*":
			return acc.Mul(rhs.f), nil
		case "/":
			return acc.Div(rhs.f)
		}
	}
	return acc, badOperator(op)
}

func badOperator(op string) error {
	return fmt.Errorf("calc: unknown operator %q", op)
}
