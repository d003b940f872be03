package validator

import (
	"math/big"
	"regexp"
	"strings"
)

// Signed integer or decimal. No exponent, no thousands separators.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)$`)

// Numeric passes for signed integers and decimals such as "42", "-3.5", "+.25".
func Numeric(a Args) bool {
	return numericRegex.MatchString(a.Value)
}

// parseDecimal returns the exact value of a numeric string.
func parseDecimal(s string) (*big.Rat, bool) {
	if !numericRegex.MatchString(s) {
		return nil, false
	}

	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" || s[0] == '.' {
		s = "0" + s
	}

	r, ok := new(big.Rat).SetString(sign + s)
	return r, ok
}
