package common

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

const fractionSeparator = '/'

// String formats f as "<numerator>/<denominator>", the format ParseFraction reads.
func (f Fraction) String() string {
	return strconv.FormatInt(f.n, 10) + string(fractionSeparator) + strconv.FormatInt(f.Denominator(), 10)
}

// Hash is the hex SHA3-256 of the canonical text, identical for identical values only.
func (f Fraction) Hash() string {
	sum := sha3.Sum256([]byte(f.String()))
	return hex.EncodeToString(sum[:])
}

// ParseFraction parses "<int>/<int>" with optional blanks around both
// integers and the separator. The denominator must not be 0.
func ParseFraction(s string) (Fraction, error) {
	lex := &lexer{r: strings.NewReader(s)}
	f, err := lex.fraction()
	if err == io.EOF {
		err = ErrFormatMismatch
	}
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", err, s)
	}
	lex.skipSpace()
	if _, ok := lex.next(); ok {
		return Fraction{}, fmt.Errorf("%w: %q", ErrFormatMismatch, s)
	}
	return f, nil
}

func (f Fraction) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

func (f *Fraction) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFormatMismatch, string(b))
	}
	v, err := ParseFraction(unquoted)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Scan implements fmt.Scanner for the verbs %v and %s.
func (f *Fraction) Scan(state fmt.ScanState, verb rune) error {
	if verb != 'v' && verb != 's' {
		return fmt.Errorf("%w: bad verb %%%c", ErrFormatMismatch, verb)
	}
	state.SkipSpace()
	tok, err := state.Token(false, func(r rune) bool {
		return isDigit(r) || r == '+' || r == '-' || r == fractionSeparator
	})
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return ErrFormatMismatch
	}
	v, err := ParseFraction(string(tok))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// lexer reads the fraction grammar byte by byte and counts what it consumed,
// so callers holding a seekable source can put the cursor back exactly.
type lexer struct {
	r        io.ByteScanner
	consumed int64
	err      error
}

// next reports false at the end of input. A read error other than io.EOF also
// stops the lexer and is kept in err.
func (lex *lexer) next() (byte, bool) {
	c, err := lex.r.ReadByte()
	if err != nil {
		if err != io.EOF && lex.err == nil {
			lex.err = err
		}
		return 0, false
	}
	lex.consumed++
	return c, true
}

// back must only follow a successful next.
func (lex *lexer) back() {
	if lex.r.UnreadByte() == nil {
		lex.consumed--
	}
}

func (lex *lexer) skipSpace() {
	for {
		c, ok := lex.next()
		if !ok {
			return
		}
		if !isSpace(rune(c)) {
			lex.back()
			return
		}
	}
}

// integer reads [+-]digits after optional blanks. It returns io.EOF when the
// input ends before any character of the token.
func (lex *lexer) integer() (int64, error) {
	lex.skipSpace()
	c, ok := lex.next()
	if !ok {
		return 0, io.EOF
	}
	var buf []byte
	if c == '+' || c == '-' {
		buf = append(buf, c)
		c, ok = lex.next()
	}
	if !ok || !isDigit(rune(c)) {
		return 0, ErrFormatMismatch
	}
	for ok && isDigit(rune(c)) {
		buf = append(buf, c)
		c, ok = lex.next()
	}
	if ok {
		lex.back()
	}
	v, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return 0, ErrFormatMismatch
	}
	return v, nil
}

func (lex *lexer) separator() error {
	lex.skipSpace()
	c, ok := lex.next()
	if !ok || c != fractionSeparator {
		return ErrFormatMismatch
	}
	return nil
}

// fraction returns io.EOF only when nothing but blanks was left, and
// ErrFormatMismatch for every other grammar violation.
func (lex *lexer) fraction() (Fraction, error) {
	n, err := lex.integer()
	if err != nil {
		return Fraction{}, err
	}
	err = lex.separator()
	if err != nil {
		return Fraction{}, err
	}
	d, err := lex.integer()
	if err == io.EOF {
		return Fraction{}, ErrFormatMismatch
	} else if err != nil {
		return Fraction{}, err
	}
	if d == 0 {
		return Fraction{}, fmt.Errorf("%w: %d/%d", ErrInvalidDenominator, n, d)
	}
	return canonical(n, d)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
