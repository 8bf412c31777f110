package common

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	// FloatScale is the fixed denominator of float conversions, keeping 3 decimal digits.
	FloatScale = 1000
	// FloatPrecision is the number of decimal places kept by Float64 and Float32.
	FloatPrecision = 5
)

var (
	floatScale   = decimal.New(FloatScale, 0)
	maxNumerator = decimal.NewFromInt(math.MaxInt64)
	minNumerator = decimal.NewFromInt(math.MinInt64)
)

// NewFractionFromFloat64 truncates x toward negative infinity to a multiple of
// 1/FloatScale. It is not a best approximation, 1.0/3 becomes 333/1000.
func NewFractionFromFloat64(x float64) (Fraction, error) {
	if math.IsNaN(x) {
		return Fraction{}, fmt.Errorf("%w: %v", ErrInvalidFloat, x)
	}
	if math.IsInf(x, 0) {
		return Fraction{}, fmt.Errorf("%w: %v", ErrOverflow, x)
	}
	return NewFractionFromDecimal(decimal.NewFromFloat(x))
}

func NewFractionFromFloat32(x float32) (Fraction, error) {
	if math.IsNaN(float64(x)) {
		return Fraction{}, fmt.Errorf("%w: %v", ErrInvalidFloat, x)
	}
	if math.IsInf(float64(x), 0) {
		return Fraction{}, fmt.Errorf("%w: %v", ErrOverflow, x)
	}
	return NewFractionFromDecimal(decimal.NewFromFloat32(x))
}

// NewFractionFromDecimalString parses a decimal literal like "-0.4667" and
// converts it with the same truncation as NewFractionFromFloat64.
func NewFractionFromDecimalString(s string) (Fraction, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %s", ErrFormatMismatch, err.Error())
	}
	return NewFractionFromDecimal(d)
}

func NewFractionFromDecimal(x decimal.Decimal) (Fraction, error) {
	scaled := x.Mul(floatScale).Floor()
	if scaled.Cmp(maxNumerator) > 0 || scaled.Cmp(minNumerator) < 0 {
		return Fraction{}, fmt.Errorf("%w: %s", ErrOverflow, x.String())
	}
	return canonical(scaled.IntPart(), FloatScale)
}

// Decimal returns n/d rounded half away from zero to FloatPrecision places.
func (f Fraction) Decimal() decimal.Decimal {
	n, d := decimal.NewFromInt(f.n), decimal.NewFromInt(f.Denominator())
	return n.DivRound(d, FloatPrecision)
}

func (f Fraction) Float64() float64 {
	v, _ := f.Decimal().Float64()
	return v
}

func (f Fraction) Float32() float32 {
	return float32(f.Float64())
}
