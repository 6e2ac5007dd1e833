// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import (
	"math"
	"strconv"
	"strings"

	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// NumberMatchForString returns a synthetic number match when str denotes a
// number. Its concept ID is the configured prefix plus the canonical
// exponential form of the value, so "5", "5.0" and "5e0" share one ID.
func (d *Dictionary) NumberMatchForString(str string) (types.Match, bool) {
	if d.numberMatch.Disabled || str == "" {
		return types.Match{}, false
	}
	exp, ok := ToExponential(str)
	if !ok {
		return types.Match{}, false
	}
	return types.Match{
		ID:     d.numberMatch.ConceptIDPrefix + exp,
		DictID: d.numberMatch.DictID,
		Str:    str,
		Descr:  d.descrs.Number,
		Type:   types.MatchNumber,
	}, true
}

// ToExponential converts a decimal number string to normalized exponential
// notation: one non-zero leading digit, no trailing zeros in the mantissa,
// and a signed exponent ("10.5" gives "1.05e+1", "0" gives "0e+0").
//
// Accepted input is an optional sign, digits with at most one decimal
// point, and an optional e/E exponent. Conversion works on the digits, so
// precision is never lost.
func ToExponential(s string) (string, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[start:i]

	fracPart := ""
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracPart = s[start:i]
	}
	if intPart == "" && fracPart == "" {
		return "", false
	}

	exp := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		e, ok := parseExponent(s[i+1:])
		if !ok {
			return "", false
		}
		exp = e
		i = len(s)
	}
	if i != len(s) {
		return "", false
	}

	digits := intPart + fracPart
	lead := len(digits) - len(strings.TrimLeft(digits, "0"))
	digits = strings.TrimRight(digits[lead:], "0")
	if digits == "" {
		return "0e+0", true
	}

	// Exponent of the first significant digit.
	e10 := len(intPart) - 1 - lead + exp

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	if e10 < 0 {
		b.WriteByte('-')
		e10 = -e10
	} else {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(e10))
	return b.String(), true
}

func parseExponent(s string) (int, bool) {
	digits := s
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return 0, false
		}
	}
	e, err := strconv.Atoi(s)
	if err != nil || e > math.MaxInt32 || e < math.MinInt32 {
		return 0, false
	}
	return e, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
