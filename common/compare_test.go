package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFractionBooleanOperations(t *testing.T) {
	assert := assert.New(t)

	var a Fraction
	b := MustFraction(2, 5)
	bb := MustFraction(2, 5)
	c := MustFraction(3, 10)
	d := MustFraction(-5, 8)
	dd := MustFraction(10, -16)

	assert.True(a.Not())
	assert.False(b.Not())
	assert.True(a.NotEqual(b))
	assert.True(c.NotEqual(d))
	assert.True(b.Equal(bb))
	assert.True(d.Equal(dd))
	assert.True(a.GreaterOrEqual(a))
	assert.True(bb.GreaterOrEqual(b))
	assert.True(c.GreaterOrEqual(c))
	assert.True(dd.GreaterOrEqual(d))
	assert.True(a.LessOrEqual(a))
	assert.True(b.LessOrEqual(bb))
	assert.True(c.LessOrEqual(c))
	assert.True(d.LessOrEqual(dd))
	assert.True(b.Greater(a))
	assert.True(d.Less(a))
	assert.True(b.Greater(d))
	assert.False(b.Less(d))
	assert.False(a.Greater(a))
}

func TestFractionTolerantEquality(t *testing.T) {
	assert := assert.New(t)

	third := MustFraction(1, 3)
	approx := MustFraction(333, 1000)
	assert.NotEqual(third, approx)
	assert.True(third.Equal(approx))
	assert.Equal(0, third.Cmp(approx))
	assert.False(approx.Less(third))
	assert.False(third.Greater(approx))
	assert.True(third.Float64() > approx.Float64())
	assert.True(approx.LessOrEqual(third))
	assert.True(third.GreaterOrEqual(approx))

	assert.True(MustFraction(1, 2000).Equal(Zero))
	assert.True(MustFraction(-1, 2000).Equal(Zero))
	assert.False(MustFraction(1, 500).Equal(Zero))
	assert.True(Zero.Less(MustFraction(1, 500)))
	assert.Equal(-1, Zero.Cmp(MustFraction(1, 500)))
	assert.Equal(1, MustFraction(1, 500).Cmp(Zero))

	big := MustFraction(1000000001, 1000000000)
	assert.True(big.Equal(One))
	assert.Equal(MustFraction(2, 3).Float64(), MustFraction(6666667, 10000000).Float64())
}
