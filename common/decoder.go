package common

import (
	"bufio"
	"io"
)

// Decoder reads fractions from a seekable stream.
//
// A decode attempt that does not match the grammar leaves the stream at the
// position it had before the attempt and puts the decoder in the failed state,
// like the fail bit of a stream. While failed, Decode returns ErrFormatMismatch
// without reading, until Clear is called. A zero denominator or an overflow is
// not a format mismatch, those errors are returned after the tokens are consumed
// and do not set the failed state. Read errors of the underlying stream rewind
// it and are returned unchanged, also without setting the failed state.
type Decoder struct {
	r      io.ReadSeeker
	failed bool
}

func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{r: r}
}

func (dec *Decoder) Failed() bool {
	return dec.failed
}

func (dec *Decoder) Clear() {
	dec.failed = false
}

// Decode reads the next fraction into f. It returns io.EOF when only blanks
// remain, ErrFormatMismatch when the input does not match, and f is changed only
// when the returned error is nil.
func (dec *Decoder) Decode(f *Fraction) error {
	if dec.failed {
		return ErrFormatMismatch
	}
	start, err := dec.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	lex := &lexer{r: bufio.NewReader(dec.r)}
	v, err := lex.fraction()
	if lex.err != nil {
		return dec.rewind(start, lex.err)
	}
	switch err {
	case io.EOF:
		return dec.rewind(start, io.EOF)
	case ErrFormatMismatch:
		dec.failed = true
		return dec.rewind(start, ErrFormatMismatch)
	}

	_, serr := dec.r.Seek(start+lex.consumed, io.SeekStart)
	if serr != nil {
		return serr
	}
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Skip discards the next blank separated token and returns it, so a caller
// can step over input it could not decode. Skip does not clear the failed state.
func (dec *Decoder) Skip() (string, error) {
	start, err := dec.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", err
	}

	lex := &lexer{r: bufio.NewReader(dec.r)}
	lex.skipSpace()
	var tok []byte
	for {
		c, ok := lex.next()
		if !ok {
			break
		}
		if isSpace(rune(c)) {
			lex.back()
			break
		}
		tok = append(tok, c)
	}
	if lex.err != nil {
		return "", dec.rewind(start, lex.err)
	}

	_, err = dec.r.Seek(start+lex.consumed, io.SeekStart)
	if err != nil {
		return "", err
	}
	if len(tok) == 0 {
		return "", io.EOF
	}
	return string(tok), nil
}

func (dec *Decoder) rewind(pos int64, cause error) error {
	_, err := dec.r.Seek(pos, io.SeekStart)
	if err != nil {
		return err
	}
	return cause
}
