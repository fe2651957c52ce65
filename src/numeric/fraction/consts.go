package fraction

import (
	"math"
	"unsafe"
)

const (
	epsilon32 float64 = 0x1p-23 // float32 machine epsilon
	epsilon64 float64 = 0x1p-52 // float64 machine epsilon

	// BigFloatPrec is the mantissa width used by BigFloat, matching the x87
	// extended (long double) format.
	BigFloatPrec = 64
)

// Epsilon returns the machine epsilon of F: the distance from 1.0 to the next
// representable value.
func Epsilon[F Float]() F {
	var f F
	if unsafe.Sizeof(f) == 4 {
		return F(epsilon32)
	}
	return F(epsilon64)
}

func bitSize[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

func isSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// MaxIterations is the number of continued fraction terms ToFraction will
// expand before giving up. Convergent denominators grow at least as fast as
// the Fibonacci numbers, so 2*bits(T) terms always exceed the range of T.
func MaxIterations[T Integer]() int {
	return 2 * bitSize[T]()
}

// magnitudeLimit is the smallest float64 that no longer fits in T as a
// non-negative value. Convergents at or above it overflow.
func magnitudeLimit[T Integer]() float64 {
	if isSigned[T]() {
		return math.Ldexp(1, bitSize[T]()-1)
	}
	return math.Ldexp(1, bitSize[T]())
}
