package common

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFractionFromFloat(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		x float64
		s string
	}{
		{0, "0/1"},
		{0.5, "1/2"},
		{0.2, "1/5"},
		{0.29, "29/100"},
		{1.0 / 3, "333/1000"},
		{1.0 / 6, "83/500"},
		{2.8571, "2857/1000"},
		{-0.4667, "-467/1000"},
		{-0.0001, "-1/1000"},
		{0.0009, "0/1"},
		{-2.5, "-5/2"},
		{1e15, "1000000000000000/1"},
	} {
		f, err := NewFractionFromFloat64(tc.x)
		assert.Nil(err, "%v", tc.x)
		assert.Equal(tc.s, f.String(), "%v", tc.x)
	}

	f, err := NewFractionFromFloat32(float32(1.0 / 3))
	assert.Nil(err)
	assert.Equal("333/1000", f.String())
	f, err = NewFractionFromFloat32(-0.25)
	assert.Nil(err)
	assert.Equal("-1/4", f.String())

	_, err = NewFractionFromFloat64(math.NaN())
	assert.ErrorIs(err, ErrInvalidFloat)
	_, err = NewFractionFromFloat64(math.Inf(1))
	assert.ErrorIs(err, ErrOverflow)
	_, err = NewFractionFromFloat64(math.Inf(-1))
	assert.ErrorIs(err, ErrOverflow)
	_, err = NewFractionFromFloat64(1e16)
	assert.ErrorIs(err, ErrOverflow)
	_, err = NewFractionFromFloat32(float32(math.Inf(1)))
	assert.ErrorIs(err, ErrOverflow)

	f, err = NewFractionFromDecimalString("1.5")
	assert.Nil(err)
	assert.Equal("3/2", f.String())
	f, err = NewFractionFromDecimalString("-0.12345")
	assert.Nil(err)
	assert.Equal("-31/250", f.String())
	assert.Equal(MustFraction(-124, 1000), f)
	_, err = NewFractionFromDecimalString("abc")
	assert.ErrorIs(err, ErrFormatMismatch)
	_, err = NewFractionFromDecimal(decimal.New(1, 20))
	assert.ErrorIs(err, ErrOverflow)
}

func TestFractionToFloat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2.85714, MustFraction(20, 7).Float64())
	assert.Equal(0.33333, MustFraction(1, 3).Float64())
	assert.Equal(-0.66667, MustFraction(-2, 3).Float64())
	assert.Equal(0.125, MustFraction(1, 8).Float64())
	assert.Equal(0.00001, MustFraction(1, 200000).Float64())
	assert.Equal(-0.00001, MustFraction(-1, 200000).Float64())
	assert.Equal(0.0, MustFraction(1, 300000).Float64())
	assert.Equal(float64(math.MaxInt64), NewFractionFromInt(math.MaxInt64).Float64())
	assert.Equal(float32(0.25), MustFraction(1, 4).Float32())
	assert.InDelta(-1.85714, float64(MustFraction(-13, 7).Float32()), 1e-6)
	assert.Equal("0.33333", MustFraction(1, 3).Decimal().String())

	for _, s := range []string{"1/3", "-5/8", "22/7", "1/1000"} {
		f, err := ParseFraction(s)
		assert.Nil(err)
		g, err := NewFractionFromFloat64(f.Float64())
		assert.Nil(err)
		assert.True(f.Equal(g), s)
	}
}
