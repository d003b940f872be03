package validator

import "regexp"

var (
	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	// Local part of two or more characters, dot separated domain labels of two or more
	// characters and a 2-4 letter top-level label.
	mailRegex = regexp.MustCompile(`(?i)^[a-z0-9][_.a-z0-9-]+@([a-z0-9][0-9a-z-]+\.)+[a-z]{2,4}$`)
)

// Alpha passes when the value is one or more ASCII letters.
func Alpha(a Args) bool {
	return alphaRegex.MatchString(a.Value)
}

// ValidMail passes for conservatively formed e-mail addresses.
func ValidMail(a Args) bool {
	return mailRegex.MatchString(a.Value)
}
