package fraction

// GCD returns the greatest common divisor of a and b, which is never
// negative. GCD(0, n) is |n| and GCD(0, 0) is 0. The one exception is a
// divisor of 2^(bits-1) for signed T, such as GCD(0, MinInt8), which does not
// fit and comes back as the minimum value of T.
//
// The divisor is found by trial division downward from min(|a|, |b|), so the
// cost is O(min(|a|, |b|)). Keep that in mind on hot paths with large
// magnitudes: Simplify, LCM and every Add or Sub with unequal denominators
// pay it.
func GCD[T Integer](a, b T) T {
	if !isSigned[T]() {
		return gcdTrial(a, b)
	}

	// Signed magnitudes are handled as non-positive values: -MinInt does not
	// exist, MinInt does.
	a, b = negAbs(a), negAbs(b)
	if a == 0 {
		return -b
	}
	if b == 0 {
		return -a
	}

	for d := max(a, b); d+1 < 0; d++ {
		if a%d == 0 && b%d == 0 {
			return -d
		}
	}
	return 1
}

func gcdTrial[T Integer](a, b T) T {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	for d := min(a, b); d > 1; d-- {
		if a%d == 0 && b%d == 0 {
			return d
		}
	}
	return 1
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM[T Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	a, b = abs(a), abs(b)
	return a / GCD(a, b) * b
}
