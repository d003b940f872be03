package ruleset

import (
	"context"
	"errors"
	"fmt"
)

// Source kinds accepted by Config.Source.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config selects where rule sets are loaded from.
type Config struct {
	Source string `env:"RULESET_SOURCE" envDefault:"file"`
	Path   string `env:"RULESET_PATH" envDefault:"rules"`
}

// NewSource returns the Source described by cfg. db is only used for the
// postgres source and may be nil otherwise.
func NewSource(cfg Config, db DB) (Source, error) {
	switch cfg.Source {
	case SourceFile, "":
		return NewFileSource(cfg.Path), nil
	case SourcePostgres:
		if db == nil {
			return nil, errors.Join(ErrUnsupportedSource, errors.New("postgres source needs a database pool"))
		}
		return NewPostgresSource(db), nil
	default:
		return nil, errors.Join(ErrUnsupportedSource, fmt.Errorf("source %q", cfg.Source))
	}
}

// Healthcheck returns a readiness check that fails while the registry is empty.
func Healthcheck(r *Registry) func(context.Context) error {
	return func(context.Context) error {
		if r == nil || r.Len() == 0 {
			return errors.New("no rule sets loaded")
		}
		return nil
	}
}
