package common

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFraction(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		in  string
		out string
		err error
	}{
		{"3/4", "3/4", nil},
		{"6/8", "3/4", nil},
		{" -6 / 8 ", "-3/4", nil},
		{"+3/9", "1/3", nil},
		{"3/-4", "-3/4", nil},
		{"0/5", "0/1", nil},
		{"\t12/\n4", "3/1", nil},
		{"9223372036854775807/1", "9223372036854775807/1", nil},
		{"3/0", "", ErrInvalidDenominator},
		{"3/-0", "", ErrInvalidDenominator},
		{"abc", "", ErrFormatMismatch},
		{"", "", ErrFormatMismatch},
		{"   ", "", ErrFormatMismatch},
		{"3", "", ErrFormatMismatch},
		{"3/", "", ErrFormatMismatch},
		{"3 4", "", ErrFormatMismatch},
		{"3/4x", "", ErrFormatMismatch},
		{"3/4/5", "", ErrFormatMismatch},
		{"- 3/4", "", ErrFormatMismatch},
		{"1.5/2", "", ErrFormatMismatch},
		{"9223372036854775808/1", "", ErrFormatMismatch},
		{"-9223372036854775808/-1", "", ErrOverflow},
	} {
		f, err := ParseFraction(tc.in)
		if tc.err != nil {
			assert.ErrorIs(err, tc.err, tc.in)
			continue
		}
		assert.Nil(err, tc.in)
		assert.Equal(tc.out, f.String(), tc.in)
	}
}

func TestFractionTextRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, f := range []Fraction{
		Zero,
		One,
		MustFraction(-5, 8),
		MustFraction(22, 7),
		NewFractionFromInt(math.MaxInt64),
		NewFractionFromInt(math.MinInt64),
		MustFraction(1, math.MaxInt64),
		MustFraction(-1, math.MaxInt64),
	} {
		p, err := ParseFraction(f.String())
		assert.Nil(err, f.String())
		assert.Equal(f, p)
		assert.True(f.Equal(p))
	}
}

func TestFractionJSON(t *testing.T) {
	assert := assert.New(t)

	var body struct {
		Price  Fraction   `json:"price"`
		Ratios []Fraction `json:"ratios"`
	}
	body.Price = MustFraction(-10, 16)
	body.Ratios = []Fraction{One, MustFraction(1, 3)}
	data, err := json.Marshal(body)
	assert.Nil(err)
	assert.Equal(`{"price":"-5/8","ratios":["1/1","1/3"]}`, string(data))

	body.Price = Zero
	body.Ratios = nil
	err = json.Unmarshal(data, &body)
	assert.Nil(err)
	assert.Equal("-5/8", body.Price.String())
	assert.Len(body.Ratios, 2)

	var f Fraction
	err = json.Unmarshal([]byte(`"3/0"`), &f)
	assert.ErrorIs(err, ErrInvalidDenominator)
	err = json.Unmarshal([]byte(`0.5`), &f)
	assert.ErrorIs(err, ErrFormatMismatch)
	assert.Equal(Zero, f)
}

func TestFractionFmtScan(t *testing.T) {
	assert := assert.New(t)

	var a, b Fraction
	n, err := fmt.Sscan("3/4  -10/16", &a, &b)
	assert.Nil(err)
	assert.Equal(2, n)
	assert.Equal("3/4", a.String())
	assert.Equal("-5/8", b.String())

	_, err = fmt.Sscan("3/0", &a)
	assert.ErrorIs(err, ErrInvalidDenominator)
	assert.Equal("3/4", a.String())

	_, err = fmt.Sscanf("1/2", "%d", &a)
	assert.ErrorIs(err, ErrFormatMismatch)
}

func TestFractionHash(t *testing.T) {
	assert := assert.New(t)

	assert.Len(One.Hash(), 64)
	assert.Equal(MustFraction(2, 4).Hash(), MustFraction(1, 2).Hash())
	assert.Equal(MustFraction(-5, 8).Hash(), MustFraction(10, -16).Hash())

	third, approx := MustFraction(1, 3), MustFraction(333, 1000)
	assert.True(third.Equal(approx))
	assert.NotEqual(third.Hash(), approx.Hash())
}
