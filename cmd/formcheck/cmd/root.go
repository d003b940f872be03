// Package cmd holds the formcheck command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "formcheck",
		Short:         "Declarative form validation service",
		Long:          "formcheck validates submitted form fields against named rule sets, over HTTP or from the command line.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("env-file", "", "extra .env file loaded before reading the environment")

	root.AddCommand(
		newServeCommand(),
		newCheckCommand(),
		newMigrateCommand(),
		newPushCommand(),
		newRulesCommand(),
	)
	return root
}
