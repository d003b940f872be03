package validator

import (
	"log/slog"
	"time"
)

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the default rule catalog. Nil is ignored.
func WithCatalog(c *Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithClock sets the source of the current time used by date_past and date_future.
// Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the timezone that defines "today". Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// WithLogger sets the logger for dropped-rule diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTrimSpace trims submitted values before checking them, so a
// whitespace-only value counts as empty and fails required.
func WithTrimSpace() Option {
	return func(e *Engine) {
		e.trimSpace = true
	}
}
