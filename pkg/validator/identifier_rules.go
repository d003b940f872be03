package validator

import "regexp"

// Italian codice fiscale layout: 6 letters, 2 digits, letter, 2 digits, letter, 3 digits, letter.
var fiscalCodeRegex = regexp.MustCompile(`(?i)^[a-z]{6}[0-9]{2}[a-z][0-9]{2}[a-z][0-9]{3}[a-z]$`)

// FiscalCode checks the shape of a national tax identifier. It does not verify the check letter.
func FiscalCode(a Args) bool {
	return fiscalCodeRegex.MatchString(a.Value)
}
