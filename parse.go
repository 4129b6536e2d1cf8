package mandel

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// SyntaxError reports a malformed image size or complex point.
type SyntaxError struct {
	What  string // "size" or "point"
	Value string // the string which failed to parse
	Err   error  // the underlying error, may be nil
}

func (e *SyntaxError) Error() string {
	msg := "invalid " + e.What + " " + strconv.Quote(e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

var (
	errNoSeparator = errors.New("missing separator")
	errNotPositive = errors.New("dimensions must be positive")
	errTooLarge    = errors.New("image too large")
	errNotFinite   = errors.New("coordinates must be finite")
)

// ParsePair splits s at the first occurrence of sep.  It reports false if
// sep does not occur in s, or if either half is empty.
func ParsePair(s string, sep byte) (left, right string, ok bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return "", "", false
	}
	left, right = s[:i], s[i+1:]
	if left == "" || right == "" {
		return "", "", false
	}
	return left, right, true
}

// ParseSize parses an image size of the form "WIDTHxHEIGHT", for example
// "1000x750".  Both dimensions must be positive.
func ParseSize(s string) (width, height int, err error) {
	l, r, ok := ParsePair(s, 'x')
	if !ok {
		return 0, 0, &SyntaxError{What: "size", Value: s, Err: errNoSeparator}
	}
	width, err = strconv.Atoi(l)
	if err != nil {
		return 0, 0, &SyntaxError{What: "size", Value: s, Err: err}
	}
	height, err = strconv.Atoi(r)
	if err != nil {
		return 0, 0, &SyntaxError{What: "size", Value: s, Err: err}
	}
	if width <= 0 || height <= 0 {
		return 0, 0, &SyntaxError{What: "size", Value: s, Err: errNotPositive}
	}
	if width > math.MaxInt/height {
		return 0, 0, &SyntaxError{What: "size", Value: s, Err: errTooLarge}
	}
	return width, height, nil
}

// ParsePoint parses a point of the complex plane of the form
// "REAL,IMAGINARY", for example "-1.20,0.35".
func ParsePoint(s string) (complex128, error) {
	l, r, ok := ParsePair(s, ',')
	if !ok {
		return 0, &SyntaxError{What: "point", Value: s, Err: errNoSeparator}
	}
	re, err := strconv.ParseFloat(l, 64)
	if err != nil {
		return 0, &SyntaxError{What: "point", Value: s, Err: err}
	}
	im, err := strconv.ParseFloat(r, 64)
	if err != nil {
		return 0, &SyntaxError{What: "point", Value: s, Err: err}
	}
	if math.IsInf(re, 0) || math.IsNaN(re) || math.IsInf(im, 0) || math.IsNaN(im) {
		return 0, &SyntaxError{What: "point", Value: s, Err: errNotFinite}
	}
	return complex(re, im), nil
}
