package validator

// Required passes when the value is not the empty string.
// Whitespace handling is an engine concern, see WithTrimSpace.
func Required(a Args) bool {
	return a.Value != ""
}

// EqualTo compares value and comparison case-sensitively.
// When both operands are numeric they are compared as exact decimals,
// so "007" equals "7" and "7.0" equals "7".
func EqualTo(a Args) bool {
	if x, ok := parseDecimal(a.Value); ok {
		if y, ok := parseDecimal(a.Comparison); ok {
			return x.Cmp(y) == 0
		}
	}
	return a.Value == a.Comparison
}
