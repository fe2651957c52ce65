package fraction

import (
	"errors"
	"fmt"
)

// Errors returned by this package. Every error wraps exactly one of these;
// test with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNonConvergent   = errors.New("continued fraction did not converge")
)

func newError(op string, kind error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("fraction: %s: %w", op, kind)
	}
	return fmt.Errorf("fraction: %s: %w: %s", op, kind, fmt.Sprintf(format, args...))
}

// Must returns f, or panics if err is non-nil.
func Must[T Integer](f Fraction[T], err error) Fraction[T] {
	if err != nil {
		panic(err)
	}
	return f
}
