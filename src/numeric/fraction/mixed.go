package fraction

// Plain integer operands. Addition and subtraction go through the general
// path as k/1; multiplication and division scale one field directly.

func (f Fraction[T]) AddInt(k T) Fraction[T] {
	return f.Add(Int(k))
}

func (f Fraction[T]) SubInt(k T) Fraction[T] {
	return f.Sub(Int(k))
}

// MulInt returns f with its numerator multiplied by k.
func (f Fraction[T]) MulInt(k T) Fraction[T] {
	f.numerator *= k
	return f
}

// DivInt returns f with its denominator multiplied by k. It fails with
// ErrDivisionByZero if k is 0.
func (f Fraction[T]) DivInt(k T) (Fraction[T], error) {
	if k == 0 {
		return f, newError("DivInt", ErrDivisionByZero, "")
	}
	f.denm1 = f.Den()*k - 1
	return f, nil
}

func (f *Fraction[T]) AddIntAssign(k T) *Fraction[T] {
	*f = f.AddInt(k)
	return f
}

func (f *Fraction[T]) SubIntAssign(k T) *Fraction[T] {
	*f = f.SubInt(k)
	return f
}

func (f *Fraction[T]) MulIntAssign(k T) *Fraction[T] {
	*f = f.MulInt(k)
	return f
}

func (f *Fraction[T]) DivIntAssign(k T) error {
	r, err := f.DivInt(k)
	if err != nil {
		return err
	}
	*f = r
	return nil
}

// IntSub returns k - f.
func IntSub[T Integer](k T, f Fraction[T]) Fraction[T] {
	return Int(k).Sub(f)
}

// IntDiv returns k / f.
func IntDiv[T Integer](k T, f Fraction[T]) (Fraction[T], error) {
	return Int(k).Div(f)
}

// Floating-point operands are first converted with FromFloat, using the
// machine epsilon of F as tolerance. Conversion errors are returned as is.
// Go methods cannot take type parameters, so these are package functions:
//
//	f, err = fraction.AddFloat(f, 0.4)

func AddFloat[T Integer, F Float](f Fraction[T], x F) (Fraction[T], error) {
	o, err := FromFloat[T](x)
	if err != nil {
		return f, err
	}
	return f.Add(o), nil
}

func SubFloat[T Integer, F Float](f Fraction[T], x F) (Fraction[T], error) {
	o, err := FromFloat[T](x)
	if err != nil {
		return f, err
	}
	return f.Sub(o), nil
}

func MulFloat[T Integer, F Float](f Fraction[T], x F) (Fraction[T], error) {
	o, err := FromFloat[T](x)
	if err != nil {
		return f, err
	}
	return f.Mul(o), nil
}

func DivFloat[T Integer, F Float](f Fraction[T], x F) (Fraction[T], error) {
	o, err := FromFloat[T](x)
	if err != nil {
		return f, err
	}
	return f.Div(o)
}

// FloatAdd returns x + f.
func FloatAdd[T Integer, F Float](x F, f Fraction[T]) (Fraction[T], error) {
	return AddFloat(f, x)
}

// FloatSub returns x - f.
func FloatSub[T Integer, F Float](x F, f Fraction[T]) (Fraction[T], error) {
	l, err := FromFloat[T](x)
	if err != nil {
		return f, err
	}
	return l.Sub(f), nil
}

// FloatMul returns x * f.
func FloatMul[T Integer, F Float](x F, f Fraction[T]) (Fraction[T], error) {
	return MulFloat(f, x)
}

// FloatDiv returns x / f.
func FloatDiv[T Integer, F Float](x F, f Fraction[T]) (Fraction[T], error) {
	l, err := FromFloat[T](x)
	if err != nil {
		return f, err
	}
	return l.Div(f)
}
