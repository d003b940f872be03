package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			catalog := validator.DefaultCatalog()
			for _, name := range catalog.Names() {
				d, _ := catalog.Lookup(name)
				suffix := ""
				if d.NeedsComparisonValue {
					suffix = " <value>"
				}
				if _, err := fmt.Fprintf(c.OutOrStdout(), "%s%s\n", name, suffix); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
