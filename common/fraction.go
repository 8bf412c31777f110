package common

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDenominator = errors.New("denominator can not be 0")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrOverflow           = errors.New("integer overflow")
	ErrFormatMismatch     = errors.New("invalid fraction format")
	ErrInvalidFloat       = errors.New("invalid float")
)

var (
	Zero = Fraction{}
	One  = NewFractionFromInt(1)
)

// Fraction is an exact rational number with int64 numerator and denominator.
//
// Every Fraction observed outside this package is canonical: the denominator
// is positive and shares no common factor with the numerator, and zero is 0/1.
// The denominator is stored minus one, so the zero value is the valid 0/1.
//
// Fraction is a plain value, assignment copies it. Two Fraction values compare
// equal with == exactly when they are the same rational number, while Equal
// implements the tolerant comparison on the float approximation.
type Fraction struct {
	n int64
	d int64
}

// NewFraction returns the canonical form of numerator/denominator.
func NewFraction(numerator, denominator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, fmt.Errorf("%w: %d/%d", ErrInvalidDenominator, numerator, denominator)
	}
	return canonical(numerator, denominator)
}

func MustFraction(numerator, denominator int64) Fraction {
	f, err := NewFraction(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return f
}

// NewFractionFromInt returns n/1, which is always canonical.
func NewFractionFromInt(n int64) Fraction {
	return Fraction{n: n}
}

func (f Fraction) Numerator() int64 {
	return f.n
}

func (f Fraction) Denominator() int64 {
	return f.d + 1
}

// canonical reduces n/d to lowest terms and moves the sign to the numerator.
// Arithmetic may hand it unreduced or negative denominators, but never d == 0.
func canonical(n, d int64) (Fraction, error) {
	if d == 0 {
		return Fraction{}, ErrInvalidDenominator
	}
	if n == 0 {
		return Fraction{}, nil
	}
	if n == d {
		return One, nil
	}

	// n == d is the only case where the gcd could be 1<<63
	if g := gcd(magnitude(n), magnitude(d)); g > 1 {
		n, d = n/int64(g), d/int64(g)
	}
	if d < 0 {
		var err error
		n, err = CheckedNeg(n)
		if err != nil {
			return Fraction{}, err
		}
		d, err = CheckedNeg(d)
		if err != nil {
			return Fraction{}, err
		}
	}
	return Fraction{n: n, d: d - 1}, nil
}
