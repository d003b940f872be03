package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
)

func newPushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "push NAME FILE",
		Short: "Store a rules spec document in PostgreSQL under NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			name, file := args[0], args[1]
			definition, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			var cfg appConfig
			if err := config.Load(&cfg, envOptions(c)...); err != nil {
				return err
			}
			log := newLogger(cfg.Log, c)

			pool, err := connectDB(c.Context(), c, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := ruleset.NewPostgresSource(pool).Save(c.Context(), name, definition); err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.OutOrStdout(), "rule set %q saved\n", name)
			return err
		},
	}
}
