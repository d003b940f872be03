package validator

const vatNumberLength = 11

// VATNumber validates an 11 digit VAT number (partita IVA) and its check digit.
//
// Digits at even positions 0..8 are summed as is; digits at odd positions 1..9 are doubled,
// reduced by 9 when the result exceeds 9, and summed. The last digit must equal
// (10 - sum%10) % 10.
func VATNumber(a Args) bool {
	v := a.Value
	if len(v) != vatNumberLength {
		return false
	}
	for i := 0; i < vatNumberLength; i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}

	sum := 0
	for i := 0; i < vatNumberLength-1; i++ {
		d := int(v[i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	return (10-sum%10)%10 == int(v[vatNumberLength-1]-'0')
}
