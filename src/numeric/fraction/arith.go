package fraction

// Add returns f + o. When the denominators differ both numerators are scaled
// to the LCM of the denominators; otherwise the numerators are summed over
// the shared denominator. The result is not reduced.
func (f Fraction[T]) Add(o Fraction[T]) Fraction[T] {
	fd, od := f.Den(), o.Den()
	if fd == od {
		return Fraction[T]{numerator: f.numerator + o.numerator, denm1: f.denm1}
	}

	l := LCM(fd, od)
	return Fraction[T]{
		numerator: f.numerator*(l/fd) + o.numerator*(l/od),
		denm1:     l - 1,
	}
}

// Sub returns f - o, aligning denominators the same way as Add.
func (f Fraction[T]) Sub(o Fraction[T]) Fraction[T] {
	fd, od := f.Den(), o.Den()
	if fd == od {
		return Fraction[T]{numerator: f.numerator - o.numerator, denm1: f.denm1}
	}

	l := LCM(fd, od)
	return Fraction[T]{
		numerator: f.numerator*(l/fd) - o.numerator*(l/od),
		denm1:     l - 1,
	}
}

// Mul returns f * o, multiplying numerators and denominators pairwise.
func (f Fraction[T]) Mul(o Fraction[T]) Fraction[T] {
	return Fraction[T]{
		numerator: f.numerator * o.numerator,
		denm1:     f.Den()*o.Den() - 1,
	}
}

// Div returns f * (1/o). It fails with ErrDivisionByZero if o is zero.
func (f Fraction[T]) Div(o Fraction[T]) (Fraction[T], error) {
	if o.numerator == 0 {
		return f, newError("Div", ErrDivisionByZero, "divisor %s has a zero numerator", o)
	}
	return Fraction[T]{
		numerator: f.numerator * o.Den(),
		denm1:     f.Den()*o.numerator - 1,
	}, nil
}

// AddAssign sets f to f + o and returns f.
func (f *Fraction[T]) AddAssign(o Fraction[T]) *Fraction[T] {
	*f = f.Add(o)
	return f
}

// SubAssign sets f to f - o and returns f.
func (f *Fraction[T]) SubAssign(o Fraction[T]) *Fraction[T] {
	*f = f.Sub(o)
	return f
}

// MulAssign sets f to f * o and returns f.
func (f *Fraction[T]) MulAssign(o Fraction[T]) *Fraction[T] {
	*f = f.Mul(o)
	return f
}

// DivAssign sets f to f / o. On error f is left unchanged.
func (f *Fraction[T]) DivAssign(o Fraction[T]) error {
	r, err := f.Div(o)
	if err != nil {
		return err
	}
	*f = r
	return nil
}
