package common

import "math"

// EqualityTolerance is the absolute margin under which two fractions compare equal.
// Comparisons run on the rounded Float64 approximations, so distinct but close
// fractions like 1/3 and 333/1000 are Equal.
const EqualityTolerance = 0.001

func (f Fraction) Equal(g Fraction) bool {
	x, y := f.Float64(), g.Float64()
	return x == y || math.Abs(x-y) < EqualityTolerance
}

func (f Fraction) NotEqual(g Fraction) bool {
	return !f.Equal(g)
}

// Cmp returns 0 when f and g are Equal, otherwise -1 if f < g and 1 if f > g.
func (f Fraction) Cmp(g Fraction) int {
	if f.Equal(g) {
		return 0
	}
	if f.Float64() < g.Float64() {
		return -1
	}
	return 1
}

// Less follows Cmp, so unlike raw float ordering it is false for fractions
// within EqualityTolerance of each other.
func (f Fraction) Less(g Fraction) bool {
	return f.Cmp(g) < 0
}

func (f Fraction) LessOrEqual(g Fraction) bool {
	return f.Cmp(g) <= 0
}

func (f Fraction) Greater(g Fraction) bool {
	return f.Cmp(g) > 0
}

func (f Fraction) GreaterOrEqual(g Fraction) bool {
	return f.Cmp(g) >= 0
}
