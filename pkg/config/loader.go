package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option tunes a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix     string
	files      []string
	environ    map[string]string
	skipDotEnv bool
}

// WithPrefix only reads variables starting with prefix, e.g. "FORMCHECK_".
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Missing files are an error,
// unlike the implicit ./.env which is optional. Values already set in the process win.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) { o.files = append(o.files, files...) }
}

// WithEnvironment parses from the given map instead of the process environment.
// The implicit ./.env is not loaded in that case.
func WithEnvironment(environ map[string]string) Option {
	return func(o *loadOptions) {
		o.environ = environ
		o.skipDotEnv = true
	}
}

// Load parses environment variables into v according to its `env` struct tags.
//
// The first call loads ./.env if it exists. Nested structs are parsed as well, so a
// service config can embed the configs of the packages it wires:
//
//	type Config struct {
//		Log       logger.Config
//		HTTP      httpserver.Config
//		Validator validator.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if !o.skipDotEnv {
		defaultEnvLoaded.Do(func() {
			// ./.env is optional.
			_ = godotenv.Load()
		})
	}
	if len(o.files) > 0 {
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environ,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
