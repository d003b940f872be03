package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// ErrCheckFailed is returned by check when at least one rule fails.
var ErrCheckFailed = errors.New("validation failed")

func newCheckCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "check SET field=value...",
		Short: "Validate field values against a rule set",
		Example: `  formcheck check signup email=john@example.com age=17
  formcheck check --rules ./rules --json signup "name=Mario Rossi"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	c.Flags().String("rules", "", "rule set file or directory, overrides RULESET_PATH and forces the file source")
	c.Flags().Bool("json", false, "print the report as JSON")
	return c
}

func runCheck(c *cobra.Command, args []string) error {
	var cfg appConfig
	if err := config.Load(&cfg, envOptions(c)...); err != nil {
		return err
	}
	if path, _ := c.Flags().GetString("rules"); path != "" {
		cfg.RuleSet = ruleset.Config{Source: ruleset.SourceFile, Path: path}
	}

	log := newLogger(cfg.Log, c)
	registry, pool, err := loadRegistry(c.Context(), c, cfg.RuleSet, log)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	spec, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	data, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}

	engine, err := validator.NewFromConfig(cfg.Validator, validator.WithLogger(log))
	if err != nil {
		return err
	}
	report := engine.ValidateContext(c.Context(), data, spec)

	if asJSON, _ := c.Flags().GetBool("json"); asJSON {
		if err := writeJSONReport(c, report); err != nil {
			return err
		}
	} else {
		writeTextReport(c, report)
	}

	if !report.IsEmpty() {
		return ErrCheckFailed
	}
	return nil
}

func parseAssignments(args []string) (validator.InputData, error) {
	values := url.Values{}
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("argument %q: expected field=value", arg)
		}
		values.Add(field, value)
	}
	return validator.FromValues(values), nil
}

func writeTextReport(c *cobra.Command, report validator.FailureReport) {
	out := c.OutOrStdout()
	if report.IsEmpty() {
		fmt.Fprintln(out, "valid")
		return
	}
	for _, f := range report {
		fmt.Fprintf(out, "%s\t%s\t%s\n", f.Field, f.Rule, f.TranslationKey())
	}
}

func writeJSONReport(c *cobra.Command, report validator.FailureReport) error {
	enc := json.NewEncoder(c.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Valid    bool                    `json:"valid"`
		Failures validator.FailureReport `json:"failures"`
	}{Valid: report.IsEmpty(), Failures: report})
}
