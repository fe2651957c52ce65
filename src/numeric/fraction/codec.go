package fraction

import (
	"strconv"
	"strings"
)

// String formats f as "numerator/denominator".
func (f Fraction[T]) String() string {
	return formatInt(f.numerator) + "/" + formatInt(f.Den())
}

// Parse reads "n/d", an integer "n", or a decimal floating-point literal. The
// latter is converted with FromFloat.
func Parse[T Integer](s string) (Fraction[T], error) {
	s = strings.TrimSpace(s)
	if n, d, ok := strings.Cut(s, "/"); ok {
		num, err := parseInt[T](n)
		if err != nil {
			return Fraction[T]{}, newError("Parse", ErrInvalidArgument, "numerator of %q: %v", s, err)
		}
		den, err := parseInt[T](d)
		if err != nil {
			return Fraction[T]{}, newError("Parse", ErrInvalidArgument, "denominator of %q: %v", s, err)
		}
		if den == 0 {
			return Fraction[T]{}, newError("Parse", ErrInvalidArgument, "zero denominator in %q", s)
		}
		return Fraction[T]{numerator: num, denm1: den - 1}, nil
	}

	if num, err := parseInt[T](s); err == nil {
		return Int(num), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Fraction[T]{}, newError("Parse", ErrInvalidArgument, "%q is not a number", s)
	}
	return FromFloat[T](v)
}

func (f Fraction[T]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fraction[T]) UnmarshalText(text []byte) error {
	v, err := Parse[T](string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalJSON encodes f as the JSON string "n/d".
func (f Fraction[T]) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

// UnmarshalJSON accepts a JSON string in any form Parse understands, or a bare
// JSON number.
func (f *Fraction[T]) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return newError("UnmarshalJSON", ErrInvalidArgument, "%v", err)
		}
	}
	return f.UnmarshalText([]byte(s))
}

func formatInt[T Integer](v T) string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func parseInt[T Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	if isSigned[T]() {
		v, err := strconv.ParseInt(s, 10, bitSize[T]())
		return T(v), err
	}
	v, err := strconv.ParseUint(s, 10, bitSize[T]())
	return T(v), err
}
