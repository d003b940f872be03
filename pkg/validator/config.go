package validator

import (
	"errors"
	"time"
)

// Config holds engine settings loaded from the environment.
type Config struct {
	TrimSpace bool   `env:"VALIDATOR_TRIM_SPACE" envDefault:"false"` // TrimSpace treats whitespace-only values as empty.
	Timezone  string `env:"VALIDATOR_TIMEZONE" envDefault:"Local"`   // Timezone defines the current calendar day for date_past/date_future.
}

// NewFromConfig creates an Engine from cfg. Explicit options are applied after the config.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	configOpts := make([]Option, 0, 2+len(opts))

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, errors.Join(ErrInvalidLocation, err)
		}
		configOpts = append(configOpts, WithLocation(loc))
	}
	if cfg.TrimSpace {
		configOpts = append(configOpts, WithTrimSpace())
	}

	configOpts = append(configOpts, opts...)
	return New(configOpts...), nil
}
