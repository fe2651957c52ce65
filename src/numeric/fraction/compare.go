package fraction

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "invalid"
}

// Compare orders f and o by value, exactly. Unlike Equal it ignores
// representation, so 1/2 and 2/4 compare Equal.
//
// A zero denominator can only come from overflow; Compare then reports Equal
// together with an ErrInvalidArgument error.
func (f Fraction[T]) Compare(o Fraction[T]) (Ordering, error) {
	if f.Den() == 0 || o.Den() == 0 {
		return Equal, newError("Compare", ErrInvalidArgument, "zero denominator in %s <=> %s", f, o)
	}
	return Ordering(f.Rat().Cmp(o.Rat())), nil
}

// Cmp is Compare as an int (-1, 0, +1), with 0 for operands Compare rejects.
func (f Fraction[T]) Cmp(o Fraction[T]) int {
	r, _ := f.Compare(o)
	return int(r)
}

func (f Fraction[T]) Less(o Fraction[T]) bool {
	return f.Cmp(o) < 0
}
