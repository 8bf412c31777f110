package common

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgpack(t *testing.T) {
	assert := assert.New(t)

	f := MustFraction(3, 4)
	p := MsgpackMarshalPanic(f)
	assert.Equal("d5000608", hex.EncodeToString(p))
	f = Zero
	err := MsgpackUnmarshal(p, &f)
	assert.Nil(err)
	assert.Equal("3/4", f.String())

	f = MustFraction(-1, 2)
	p = MsgpackMarshalPanic(f)
	assert.Equal("d5000104", hex.EncodeToString(p))

	f = NewFractionFromInt(math.MinInt64)
	p = MsgpackMarshalPanic(f)
	err = MsgpackUnmarshal(p, &f)
	assert.Nil(err)
	assert.Equal(NewFractionFromInt(math.MinInt64), f)

	type record struct {
		Name  string
		Value Fraction
	}
	r := record{Name: "ratio", Value: MustFraction(22, 7)}
	var dec record
	err = MsgpackUnmarshal(MsgpackMarshalPanic(r), &dec)
	assert.Nil(err)
	assert.Equal(r, dec)

	compressed := CompressMsgpackMarshalPanic(r)
	assert.Equal(CompressionVersionZero, compressed[:4])
	dec = record{}
	err = DecompressMsgpackUnmarshal(compressed, &dec)
	assert.Nil(err)
	assert.Equal(r, dec)

	dec = record{}
	err = DecompressMsgpackUnmarshal(MsgpackMarshalPanic(r), &dec)
	assert.Nil(err)
	assert.Equal(r, dec)
}

func TestMsgpackInvalidFraction(t *testing.T) {
	assert := assert.New(t)

	var f Fraction
	assert.ErrorIs(f.UnmarshalMsgpack(nil), ErrFormatMismatch)
	assert.ErrorIs(f.UnmarshalMsgpack([]byte{0x02}), ErrFormatMismatch)
	assert.ErrorIs(f.UnmarshalMsgpack([]byte{0x02, 0x04, 0x06}), ErrFormatMismatch)
	assert.ErrorIs(f.UnmarshalMsgpack([]byte{0x02, 0x00}), ErrInvalidDenominator)
	assert.Nil(f.UnmarshalMsgpack([]byte{0x04, 0x08}))
	assert.Equal("1/2", f.String())
	assert.Nil(f.UnmarshalMsgpack([]byte{0x04, 0x07}))
	assert.Equal("-1/2", f.String())
}
