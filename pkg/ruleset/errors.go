package ruleset

import "errors"

var (
	// ErrNotFound is returned when a rule set name is not registered.
	ErrNotFound = errors.New("rule set not found")

	// ErrDuplicateSet is returned when two sources define the same rule set name.
	ErrDuplicateSet = errors.New("rule set is defined more than once")

	// ErrEmptyName is returned for a rule set without a name.
	ErrEmptyName = errors.New("rule set name is empty")

	// ErrInvalidFile is returned when a rule set file cannot be decoded.
	ErrInvalidFile = errors.New("invalid rule set file")

	// ErrReadSource is returned when a source cannot be read.
	ErrReadSource = errors.New("failed to read rule sets")

	// ErrUnsupportedSource is returned for an unknown RULESET_SOURCE value.
	ErrUnsupportedSource = errors.New("unsupported rule set source")
)
