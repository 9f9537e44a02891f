package regulatory

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a digit-grouped figure such as "12,34,567.89" into a number.
// Commas and whitespace are removed before parsing; ok is false when the remainder
// is not a decimal number.
func ParseAmount(s string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Normalize is ParseAmount with a zero fallback. A zero result does not tell the
// caller whether the input was a genuine zero or unparseable.
func Normalize(s string) float64 {
	v, _ := ParseAmount(s)
	return v
}

// asCount converts a parsed figure to a whole-number count. ok is false for
// negative values and values outside the int64 range.
func asCount(v float64) (int64, bool) {
	if v < 0 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}
