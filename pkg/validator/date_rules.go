package validator

import (
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the layout accepted by the date rules, in time.Format notation.
// Day and month may also be written with a single digit.
const DateLayout = "02/01/2006"

var dateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// ParseDate parses a DD/MM/YYYY calendar date, checking real month lengths
// and leap years. The result is midnight UTC of that day.
func ParseDate(s string) (time.Time, bool) {
	m := dateRegex.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31/02 -> 02/03), so a mismatch means the day does not exist.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// ValidDate passes when the value is an existing DD/MM/YYYY date.
func ValidDate(a Args) bool {
	_, ok := ParseDate(a.Value)
	return ok
}

// DatePast passes when the value is a valid date strictly before today.
func DatePast(a Args) bool {
	d, ok := ParseDate(a.Value)
	return ok && d.Before(civilDay(a.Today))
}

// DateFuture passes when the value is a valid date strictly after today.
func DateFuture(a Args) bool {
	d, ok := ParseDate(a.Value)
	return ok && d.After(civilDay(a.Today))
}

// DateLowerThan passes when both operands are valid dates and value is strictly earlier.
func DateLowerThan(a Args) bool {
	d, ok := ParseDate(a.Value)
	if !ok {
		return false
	}
	c, ok := ParseDate(a.Comparison)
	return ok && d.Before(c)
}

// DateGreaterThan passes when both operands are valid dates and value is strictly later.
func DateGreaterThan(a Args) bool {
	d, ok := ParseDate(a.Value)
	if !ok {
		return false
	}
	c, ok := ParseDate(a.Comparison)
	return ok && d.After(c)
}

// civilDay maps a wall-clock time to midnight UTC of the same calendar day,
// so it can be compared with ParseDate results. A zero time means now.
func civilDay(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
