// Package config loads service configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional ./.env and explicit env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each package that needs
// settings exposes a Config struct with `env` tags, and the binary composes them:
//
//	type Config struct {
//		Log       logger.Config
//		HTTP      httpserver.Config
//		Validator validator.Config
//		RuleSet   ruleset.Config
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors are sentinel values joined with the underlying parser error, so callers can
// test them with errors.Is.
package config
