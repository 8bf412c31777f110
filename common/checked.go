package common

import (
	"fmt"
	"math"
)

// CheckedAdd returns a + b, or an ErrOverflow error when the sum does not fit in int64.
func CheckedAdd(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

func CheckedSub(a, b int64) (int64, error) {
	if b < 0 && a > math.MaxInt64+b {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	if b > 0 && a < math.MinInt64+b {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return a - b, nil
}

// CheckedMul returns a * b, or an ErrOverflow error when the product does not fit in int64.
// The bounds are checked with divisions before multiplying, so no wrapped value is ever produced.
func CheckedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// -(1<<63) has no positive counterpart
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}

	var overflow bool
	switch {
	case a > 0 && b > 0:
		overflow = a > math.MaxInt64/b
	case a > 0 && b < 0:
		overflow = b < math.MinInt64/a
	case a < 0 && b > 0:
		overflow = a < math.MinInt64/b
	default:
		overflow = a < math.MaxInt64/b
	}
	if overflow {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return a * b, nil
}

func CheckedNeg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, fmt.Errorf("%w: -(%d)", ErrOverflow, a)
	}
	return -a, nil
}

// gcd works on magnitudes so that |math.MinInt64| is representable.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}
