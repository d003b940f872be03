package validator

// LowerThan passes when value < comparison.
func LowerThan(a Args) bool {
	return compareOperands(a.Value, a.Comparison) < 0
}

// GreaterThan passes when value > comparison.
func GreaterThan(a Args) bool {
	return compareOperands(a.Value, a.Comparison) > 0
}

// compareOperands orders numerically when both sides are numeric and
// lexicographically (byte order) otherwise.
func compareOperands(x, y string) int {
	if dx, ok := parseDecimal(x); ok {
		if dy, ok := parseDecimal(y); ok {
			return dx.Cmp(dy)
		}
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
