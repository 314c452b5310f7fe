package cmdargs

import (
	"strconv"
	"strings"
)

// IsOption reports whether arg is an option marker: it starts with a dash
// and does not read as a number, so `-5` and `-.5e3` stay values.
func IsOption(arg string) bool {
	return strings.HasPrefix(arg, "-") && !IsNumber(arg)
}

// IsNumber reports whether a floating point number can be read from the
// beginning of s. Leading white space is skipped and anything after the
// number is ignored, so "-5abc" and "0x1f" are numbers while "-e5", "-."
// and "1e" are not. A number outside the float64 range is not accepted.
func IsNumber(s string) bool {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissaDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissaDigits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissaDigits++
		}
	}
	if mantissaDigits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	_, err := strconv.ParseFloat(s[start:i], 64)
	return err == nil
}

// TrimLeadingDashes strips every leading dash. A name made of dashes only
// becomes empty.
func TrimLeadingDashes(name string) string {
	return strings.TrimLeft(name, "-")
}

// DashCount returns the number of leading dashes of arg.
func DashCount(arg string) int {
	return len(arg) - len(TrimLeadingDashes(arg))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
