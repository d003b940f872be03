package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/config"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the rule_sets table (PG_CONN_URL)",
		RunE: func(c *cobra.Command, _ []string) error {
			var cfg appConfig
			if err := config.Load(&cfg, envOptions(c)...); err != nil {
				return err
			}
			log := newLogger(cfg.Log, c)

			pool, err := connectDB(c.Context(), c, log)
			if err != nil {
				return err
			}
			pool.Close()
			log.InfoContext(c.Context(), "migrations applied")
			return nil
		},
	}
}
