package argh

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var ErrNotFound = errors.New("value not found")
var ErrExhausted = errors.New("no more words to read")
var ErrConversion = errors.New("conversion failed")

// Scalar lists the types a Value can be converted to with As.
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string
}

// Value wraps a parameter or positional argument for typed reads.
//
// Every read consumes the next white-space separated word, so "1 2" yields two
// ints. Failures are sticky: after the first failed read the Value stays failed
// and every later read returns the same error. Take a fresh Value from the Result
// to start over. String always returns the raw text whatever the state.
//
// A Value is not safe for concurrent use.
type Value struct {
	raw string
	pos int
	err error
}

// NewValue returns a valid Value reading from s.
func NewValue(s string) *Value {
	return &Value{raw: s}
}

// FailedValue returns the Value used for a missing parameter or positional argument.
func FailedValue() *Value {
	return &Value{err: ErrNotFound}
}

func (v *Value) String() string {
	return v.raw
}

// OK reports whether the value was found and no read has failed so far.
// A parameter given as `--name=` is found: OK is true and String is empty.
func (v *Value) OK() bool {
	return v.err == nil
}

// Err returns the sticky failure or nil.
func (v *Value) Err() error {
	return v.err
}

// Rune reads a single non-space character.
func (v *Value) Rune() (rune, error) {
	if v.err != nil {
		return 0, v.err
	}
	v.skipSpaces()
	if v.pos >= len(v.raw) {
		return 0, v.fail(ErrExhausted)
	}
	r, size := utf8.DecodeRuneInString(v.raw[v.pos:])
	v.pos += size
	return r, nil
}

// As reads the next word of v converted to T using the strconv rules for T.
// Integers are base 10 and must fit the width of T.
// The whole word must convert: "42abc" and "3.5" are not ints, a numeric
// prefix is never taken on its own.
func As[T Scalar](v *Value) (T, error) {
	var out T
	word, err := v.nextWord()
	if err != nil {
		return out, err
	}
	if err := convert(word, &out); err != nil {
		var zero T
		return zero, v.fail(fmt.Errorf("%w: %q as %T: %w", ErrConversion, word, zero, err))
	}
	return out, nil
}

// AsOr is like As but returns def on any failure.
func AsOr[T Scalar](v *Value, def T) T {
	out, err := As[T](v)
	if err != nil {
		return def
	}
	return out
}

func (v *Value) fail(err error) error {
	v.err = err
	return err
}

func (v *Value) skipSpaces() {
	for v.pos < len(v.raw) && isSpace(v.raw[v.pos]) {
		v.pos++
	}
}

func (v *Value) nextWord() (string, error) {
	if v.err != nil {
		return "", v.err
	}
	v.skipSpaces()
	start := v.pos
	for v.pos < len(v.raw) && !isSpace(v.raw[v.pos]) {
		v.pos++
	}
	if start == v.pos {
		return "", v.fail(ErrExhausted)
	}
	return v.raw[start:v.pos], nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func convert(word string, out any) (err error) {
	switch p := out.(type) {
	case *string:
		*p = word
	case *bool:
		*p, err = strconv.ParseBool(word)
	case *int:
		var n int64
		n, err = strconv.ParseInt(word, 10, strconv.IntSize)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(word, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(word, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(word, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(word, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(word, 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(word, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(word, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(word, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(word, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(word, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(word, 64)
	default:
		return fmt.Errorf("unsupported type %T", out)
	}
	return err
}
