package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/formapi"
	"github.com/dmitrymomot/formrules/pkg/httpserver"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/pg"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func newServeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP validation API",
		RunE:  runServe,
	}
	c.Flags().String("addr", "", "listen address, overrides HTTP_ADDR")
	return c
}

func runServe(c *cobra.Command, _ []string) error {
	ctx := c.Context()

	var cfg appConfig
	if err := config.Load(&cfg, envOptions(c)...); err != nil {
		return err
	}
	if addr, _ := c.Flags().GetString("addr"); addr != "" {
		cfg.HTTP.Addr = addr
	}

	log := newLogger(cfg.Log, c)

	engine, err := validator.NewFromConfig(cfg.Validator, validator.WithLogger(log))
	if err != nil {
		return err
	}

	registry, pool, err := loadRegistry(ctx, c, cfg.RuleSet, log)
	if err != nil {
		log.ErrorContext(ctx, "startup failed", logger.Error(err))
		return err
	}

	checks := []httpserver.Check{ruleset.Healthcheck(registry)}
	serverOpts := []httpserver.Option{httpserver.WithLogger(log)}
	if pool != nil {
		checks = append(checks, pg.Healthcheck(pool))
		serverOpts = append(serverOpts, httpserver.WithOnShutdown(func(context.Context) error {
			pool.Close()
			return nil
		}))
	}

	router := formapi.NewRouter(engine, registry,
		formapi.WithLogger(log),
		formapi.WithReadinessChecks(checks...),
	)
	return httpserver.NewFromConfig(cfg.HTTP, serverOpts...).Run(ctx, router)
}
