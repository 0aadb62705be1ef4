package extract

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrNoAmount reports that a substring holds no parseable positive number.
// The scanner filters these matches out; it never reaches callers of the
// engine.
var ErrNoAmount = errors.New("no parseable amount")

// ParseAmount canonicalizes a numeric substring with ambiguous
// space/comma/dot separators into a decimal value.
//
// A comma followed by at most two digits is a decimal separator
// ("12,5" -> 12.5); otherwise commas separate thousands ("12,500" ->
// 12500). Of the remaining dots, all but the last separate thousands, and
// the last one too when more than two digits follow it ("1.000.000" ->
// 1000000).
func ParseAmount(raw string) (float64, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, ErrNoAmount
	}

	if i := strings.LastIndexByte(s, ','); i >= 0 && len(s)-i-1 <= 2 {
		// Decimal comma: dots and earlier commas separate thousands.
		intPart := strings.ReplaceAll(strings.ReplaceAll(s[:i], ".", ""), ",", "")
		s = intPart + "." + s[i+1:]
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	if strings.Count(s, ".") > 1 {
		last := strings.LastIndexByte(s, '.')
		s = strings.ReplaceAll(s[:last], ".", "") + s[last:]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > 2 {
		s = s[:i] + s[i+1:]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNoAmount
	}
	return v, nil
}
