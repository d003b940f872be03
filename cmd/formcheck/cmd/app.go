package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/httpserver"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/pg"
	"github.com/dmitrymomot/formrules/pkg/requestid"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// appConfig is everything formcheck reads from the environment except the
// database settings, which are only loaded when a command needs PostgreSQL.
type appConfig struct {
	Log       logger.Config
	HTTP      httpserver.Config
	Validator validator.Config
	RuleSet   ruleset.Config
}

// envOptions applies the --env-file flag to config.Load.
func envOptions(c *cobra.Command) []config.Option {
	if file, _ := c.Flags().GetString("env-file"); file != "" {
		return []config.Option{config.WithEnvFiles(file)}
	}
	return nil
}

func newLogger(cfg logger.Config, c *cobra.Command) *slog.Logger {
	return logger.NewFromConfig(cfg,
		logger.WithOutput(c.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}

// connectDB opens the pool and applies the rule_sets migration.
func connectDB(ctx context.Context, c *cobra.Command, log *slog.Logger) (*pgxpool.Pool, error) {
	var cfg pg.Config
	if err := config.Load(&cfg, envOptions(c)...); err != nil {
		return nil, err
	}
	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(ctx, pool, ruleset.Migrations, ruleset.MigrationsDir, cfg, log); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// loadRegistry reads the rule sets from the configured source. The returned
// pool is nil unless the source is PostgreSQL.
func loadRegistry(ctx context.Context, c *cobra.Command, cfg ruleset.Config, log *slog.Logger) (*ruleset.Registry, *pgxpool.Pool, error) {
	var (
		pool *pgxpool.Pool
		db   ruleset.DB
	)
	if cfg.Source == ruleset.SourcePostgres {
		var err error
		if pool, err = connectDB(ctx, c, log); err != nil {
			return nil, nil, err
		}
		db = pool
	}

	src, err := ruleset.NewSource(cfg, db)
	if err == nil {
		var registry *ruleset.Registry
		if registry, err = ruleset.Load(ctx, src); err == nil {
			log.InfoContext(ctx, "rule sets loaded",
				slog.String("source", cfg.Source),
				slog.Int("count", registry.Len()),
			)
			return registry, pool, nil
		}
	}

	if pool != nil {
		pool.Close()
	}
	return nil, nil, errors.Join(errors.New("load rule sets"), err)
}
