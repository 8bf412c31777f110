package common

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v4"
)

func init() {
	msgpack.RegisterExt(0, (*Fraction)(nil))

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(3))
	if err != nil {
		panic(err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}

	zstdEncoder, zstdDecoder = enc, dec
}

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder

	CompressionVersionZero   = []byte{0, 0, 0, 0}
	CompressionVersionLatest = CompressionVersionZero
)

// MarshalMsgpack encodes f as the zig-zag varints of its numerator and denominator.
func (f Fraction) MarshalMsgpack() ([]byte, error) {
	buf := make([]byte, binary.MaxVarintLen64*2)
	l := binary.PutVarint(buf, f.n)
	l += binary.PutVarint(buf[l:], f.Denominator())
	return buf[:l], nil
}

func (f *Fraction) UnmarshalMsgpack(data []byte) error {
	n, l := binary.Varint(data)
	if l <= 0 {
		return fmt.Errorf("%w: msgpack numerator %x", ErrFormatMismatch, data)
	}
	d, m := binary.Varint(data[l:])
	if m <= 0 || l+m != len(data) {
		return fmt.Errorf("%w: msgpack denominator %x", ErrFormatMismatch, data)
	}
	v, err := NewFraction(n, d)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func CompressMsgpackMarshalPanic(val interface{}) []byte {
	payload := MsgpackMarshalPanic(val)
	payload = zstdEncoder.EncodeAll(payload, nil)
	return append(CompressionVersionLatest, payload...)
}

func DecompressMsgpackUnmarshal(data []byte, val interface{}) error {
	header := len(CompressionVersionLatest)
	if len(data) < header*2 {
		return MsgpackUnmarshal(data, val)
	}

	version := data[:header]
	if bytes.Equal(version, CompressionVersionZero) {
		payload, err := zstdDecoder.DecodeAll(data[header:], nil)
		if err != nil {
			return err
		}
		return MsgpackUnmarshal(payload, val)
	}
	return MsgpackUnmarshal(data, val)
}

func MsgpackMarshalPanic(val interface{}) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("MsgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func MsgpackUnmarshal(data []byte, val interface{}) error {
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return err
	}
	return fmt.Errorf("MsgpackUnmarshal: %s %w", hex.EncodeToString(data), err)
}
