package fraction

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func fr(n, d int) Fraction[int] {
	return Must(New(n, d))
}

func TestNew(t *testing.T) {
	f, err := New(2, 4)
	require.NoError(t, err)
	require.Equal(t, 2, f.Num())
	require.Equal(t, 4, f.Den())

	f, err = New(3, -7)
	require.NoError(t, err)
	require.Equal(t, 3, f.Num())
	require.Equal(t, -7, f.Den())

	_, err = New(1, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	require.Panics(t, func() { Must(New(1, 0)) })
}

func TestZeroValue(t *testing.T) {
	var f Fraction[int]
	require.Equal(t, 0, f.Num())
	require.Equal(t, 1, f.Den())
	require.Equal(t, fr(0, 1), f)
	require.Equal(t, Zero[int](), f)

	var u Fraction[uint64]
	require.Equal(t, uint64(1), u.Den())
	require.Equal(t, "0/1", u.String())
}

func TestCopyIsIndependent(t *testing.T) {
	f := fr(2, 4)
	g := f
	g.SetNum(5)
	require.NoError(t, g.SetDen(6))

	require.Equal(t, fr(2, 4), f)
	require.Equal(t, fr(5, 6), g)

	h := f
	require.Equal(t, f, h)
}

func TestSetDen(t *testing.T) {
	f := fr(3, 4)
	err := f.SetDen(0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, fr(3, 4), f)

	require.NoError(t, f.SetDen(9))
	require.Equal(t, 9, f.Den())
}

func TestFloatConversions(t *testing.T) {
	f := fr(11, 8)
	require.Equal(t, 1.375, f.Float64())
	require.Equal(t, float32(1.375), f.Float32())

	bf, acc := f.BigFloat().Float64()
	require.Equal(t, 1.375, bf)
	require.Zero(t, acc)
	require.Equal(t, uint(BigFloatPrec), f.BigFloat().Prec())

	require.Equal(t, -0.5, fr(1, -2).Float64())
	require.Equal(t, "11/8", f.Rat().String())
}

func TestSimplify(t *testing.T) {
	for idx, tc := range []struct {
		in, out Fraction[int]
	}{
		{fr(11534336, 8388608), fr(11, 8)},
		{fr(7, 20), fr(7, 20)},
		{fr(6, 20), fr(3, 10)},
		{fr(12, 4), fr(3, 1)},
		{fr(0, 5), fr(0, 1)},
		{fr(0, -5), fr(0, 1)},
		{fr(-6, 8), fr(-3, 4)},
		{fr(6, -8), fr(3, -4)},
		{fr(1, 1), fr(1, 1)},
		{fr(math.MinInt, 2), fr(math.MinInt/2, 1)},
		{fr(math.MinInt, -4), fr(math.MinInt/4, -1)},
	} {
		t.Run(fmt.Sprintf("%d/%s=%s", idx, tc.in, tc.out), func(t *testing.T) {
			f := tc.in
			require.Equal(t, tc.out, *f.Simplify())
			require.Equal(t, tc.out, f)

			// idempotent
			require.Equal(t, tc.out, *f.Simplify())
			require.Equal(t, tc.out, tc.in.Simplified())
		})
	}
}

func TestSimplifyMinInt(t *testing.T) {
	require.Equal(t, Must(New[int8](-64, 1)), Must(New[int8](-128, 2)).Simplified())
	require.Equal(t, Must(New[int8](-16, 3)), Must(New[int8](-128, 24)).Simplified())
	require.Equal(t, Must(New[int8](-128, 127)), Must(New[int8](-128, 127)).Simplified())
	require.Equal(t, Must(New[int8](1, 1)), Must(New[int8](-128, -128)).Simplified())
}

func TestSimplifyChains(t *testing.T) {
	f := fr(6, 20)
	p := f.Simplify()
	require.Same(t, &f, p)
	require.Equal(t, 1.375, fr(11534336, 8388608).Simplified().Float64())
	require.Equal(t, fr(3, 10), *f.Simplify().Simplify())
}

func TestGCDAndLCMOfFraction(t *testing.T) {
	require.Equal(t, 2, fr(6, 20).GCD())
	require.Equal(t, 5, fr(0, 5).GCD())
	require.Equal(t, 20, fr(3, 4).LCM(fr(2, 5)))
	require.Equal(t, 4, fr(3, 4).LCM(fr(2, 4)))
}

func TestUnary(t *testing.T) {
	require.Equal(t, fr(-3, 4), fr(3, 4).Neg())
	require.Equal(t, fr(3, 4), fr(-3, -4).Abs())
	require.Equal(t, fr(3, 4), fr(3, -4).Abs())

	require.Equal(t, 1, fr(3, 4).Sign())
	require.Equal(t, -1, fr(3, -4).Sign())
	require.Equal(t, 1, fr(-3, -4).Sign())
	require.Equal(t, 0, fr(0, 4).Sign())

	require.True(t, fr(0, 3).IsZero())
	require.False(t, fr(1, 3).IsZero())
	require.True(t, fr(12, 4).IsInt())
	require.False(t, fr(3, 4).IsInt())

	inv, err := fr(3, 4).Inv()
	require.NoError(t, err)
	require.Equal(t, fr(4, 3), inv)

	inv, err = fr(-3, 4).Inv()
	require.NoError(t, err)
	require.Equal(t, fr(-4, 3), inv)

	_, err = fr(0, 4).Inv()
	require.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestStructuralEquality(t *testing.T) {
	require.False(t, fr(1, 2).Equal(fr(2, 4)))
	require.True(t, fr(1, 2) != fr(2, 4))
	require.True(t, fr(1, 2).Equal(fr(1, 2)))
	require.True(t, fr(2, 4).Simplified().Equal(fr(1, 2)))
}
