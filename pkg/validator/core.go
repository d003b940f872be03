package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Failure names a single (field, rule) check that evaluated to false.
type Failure struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// TranslationKey returns the message key a renderer can use for this failure.
func (f Failure) TranslationKey() string {
	return "validation." + f.Rule
}

// FailureReport is the ordered list of failed checks.
// Order follows the declaration order of the rules spec.
type FailureReport []Failure

// IsEmpty reports whether every check passed.
func (r FailureReport) IsEmpty() bool {
	return len(r) == 0
}

// Has reports whether the field has at least one failed rule.
func (r FailureReport) Has(field string) bool {
	for _, f := range r {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Rules returns the failed rule names for a field in report order.
func (r FailureReport) Rules(field string) []string {
	var rules []string
	for _, f := range r {
		if f.Field == field {
			rules = append(rules, f.Rule)
		}
	}
	return rules
}

// Fields returns the distinct failing fields in first-seen order.
func (r FailureReport) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, f := range r {
		if !seen[f.Field] {
			fields = append(fields, f.Field)
			seen[f.Field] = true
		}
	}
	return fields
}

// Err returns the report as an error, or nil when it is empty.
func (r FailureReport) Err() error {
	if r.IsEmpty() {
		return nil
	}
	return ValidationErrors(r)
}

// ValidationErrors is a non-empty FailureReport used as an error value.
type ValidationErrors FailureReport

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, f := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Rule))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match any report error.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractFailures returns the report carried by err, if any.
func ExtractFailures(err error) FailureReport {
	if err == nil {
		return nil
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return FailureReport(ve)
	}
	return nil
}
