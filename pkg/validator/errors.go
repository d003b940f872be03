package validator

import "errors"

var (
	// ErrValidationFailed is matched by errors produced from a non-empty FailureReport.
	ErrValidationFailed = errors.New("validation failed")

	// ErrEmptyRuleName is returned when a catalog descriptor has no name.
	ErrEmptyRuleName = errors.New("rule name is empty")

	// ErrDuplicateRule is returned when two catalog descriptors share a name.
	ErrDuplicateRule = errors.New("rule is already registered")

	// ErrUnknownPredicate is returned when a descriptor points at a predicate that does not exist.
	ErrUnknownPredicate = errors.New("rule refers to an unknown predicate")

	// ErrInvalidRulesSpec is returned when a rules document has the wrong shape.
	ErrInvalidRulesSpec = errors.New("invalid rules spec")

	// ErrDuplicateKey is returned when a rules document declares the same field or rule twice.
	ErrDuplicateKey = errors.New("duplicate key in rules spec")

	// ErrInvalidLocation is returned when the configured timezone cannot be loaded.
	ErrInvalidLocation = errors.New("invalid timezone")
)
