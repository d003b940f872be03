package validator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

// CheckInstance is one (field, rule, optional comparison value) evaluation unit.
type CheckInstance struct {
	Field         string
	Rule          string
	Value         string
	Comparison    string
	HasComparison bool
}

// Engine normalizes rules specs into checks and evaluates them against a Catalog.
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	catalog   *Catalog
	now       func() time.Time
	location  *time.Location
	trimSpace bool
	log       *slog.Logger
}

// New creates an Engine over the default catalog and the system clock.
func New(opts ...Option) *Engine {
	e := &Engine{
		catalog:  DefaultCatalog(),
		now:      time.Now,
		location: time.Local,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine dispatches to.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Validate checks data against spec and returns the failed checks in declaration order.
func (e *Engine) Validate(data InputData, spec RulesSpec) FailureReport {
	return e.ValidateContext(context.Background(), data, spec)
}

// ValidateContext is Validate with a context for log correlation.
func (e *Engine) ValidateContext(ctx context.Context, data InputData, spec RulesSpec) FailureReport {
	checks := e.normalize(ctx, data, spec)
	report := e.evaluate(ctx, checks)

	e.log.DebugContext(ctx, "validation completed",
		logger.Component("validator"),
		slog.Int("checks", len(checks)),
		logger.Failures(len(report)),
	)
	return report
}

// Normalize flattens spec into check instances.
//
// A field whose value is empty only yields its required checks, and nothing at all
// when it does not declare required. Rules missing from the catalog are dropped, as
// are rules that need a comparison value when none is declared.
func (e *Engine) Normalize(data InputData, spec RulesSpec) []CheckInstance {
	return e.normalize(context.Background(), data, spec)
}

// Evaluate runs each check through its predicate and collects the failures.
func (e *Engine) Evaluate(checks []CheckInstance) FailureReport {
	return e.evaluate(context.Background(), checks)
}

func (e *Engine) normalize(ctx context.Context, data InputData, spec RulesSpec) []CheckInstance {
	checks := make([]CheckInstance, 0, spec.Len())

	for _, fr := range spec {
		value := data.Value(fr.Field)
		if e.trimSpace {
			value = strings.TrimSpace(value)
		}

		empty := value == ""
		if empty && !fr.Declares(RuleRequired) {
			continue
		}

		for _, r := range fr.Rules {
			if empty && r.Name != RuleRequired {
				continue
			}

			d, ok := e.catalog.Lookup(r.Name)
			if !ok {
				e.log.DebugContext(ctx, "unknown rule dropped", logger.Field(fr.Field), logger.Rule(r.Name))
				continue
			}

			check := CheckInstance{Field: fr.Field, Rule: r.Name, Value: value}
			if d.NeedsComparisonValue {
				cmp := scalarString(r.Value)
				if cmp == "" {
					e.log.DebugContext(ctx, "rule without comparison value dropped", logger.Field(fr.Field), logger.Rule(r.Name))
					continue
				}
				check.Comparison = cmp
				check.HasComparison = true
			}
			checks = append(checks, check)
		}
	}

	return checks
}

func (e *Engine) evaluate(ctx context.Context, checks []CheckInstance) FailureReport {
	today := e.today()
	report := make(FailureReport, 0)

	for _, c := range checks {
		if c.Field == "" || c.Rule == "" {
			continue
		}

		d, ok := e.catalog.Lookup(c.Rule)
		if !ok {
			e.log.DebugContext(ctx, "check for unknown rule skipped", logger.Field(c.Field), logger.Rule(c.Rule))
			continue
		}
		check, _ := e.catalog.Predicate(c.Rule)

		args := Args{Value: c.Value, Today: today}
		if d.NeedsComparisonValue {
			args.Comparison = c.Comparison
		}

		if !check(args) {
			report = append(report, Failure{Field: c.Field, Rule: c.Rule})
		}
	}

	return report
}

// today returns midnight of the current day in the engine's location.
func (e *Engine) today() time.Time {
	now := e.now().In(e.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.location)
}

var defaultEngine = New()

// Validate checks data against spec with the default engine.
func Validate(data InputData, spec RulesSpec) FailureReport {
	return defaultEngine.Validate(data, spec)
}
