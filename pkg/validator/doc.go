// Package validator is a declarative field-validation engine. Callers submit flat
// key/value data together with an ordered set of per-field rules and get back the
// list of (field, rule) checks that failed.
//
// # Architecture
//
// Two pieces cooperate:
//
//   - Catalog: an immutable registry mapping a rule name (for example
//     "required" or "greater_than") to a Predicate and a flag telling whether the
//     rule needs a comparison value. DefaultCatalog is built once at package
//     initialization; NewCatalog rejects descriptors that point at missing
//     predicates so misconfiguration surfaces at startup.
//   - Engine: normalizes InputData and a RulesSpec into CheckInstance values,
//     dispatches each to its predicate and collects a FailureReport.
//
// Predicates are grouped by family in string_rules.go, numeric_rules.go,
// comparable_rules.go, date_rules.go, format_rules.go, identifier_rules.go and
// financial_rules.go. Every predicate is total: malformed input, such as an
// impossible date, makes it return false rather than fail.
//
// # Empty values
//
// A field whose value is empty or absent is skipped unless it declares
// "required". In that case only the required check runs, against the empty
// value, so optional fields never fail format rules just because they were left
// blank. By default only the empty string counts as empty; WithTrimSpace makes
// whitespace-only values empty as well.
//
// # Usage
//
//	spec := validator.Spec(
//	    validator.Field("age", validator.RuleWith("greater_than", 18)),
//	    validator.Field("email", validator.Rule("required"), validator.Rule("valid_mail")),
//	)
//	report := validator.Validate(validator.FromValues(r.PostForm), spec)
//	for _, f := range report {
//	    // f.Field, f.Rule, f.TranslationKey()
//	}
//
// Rules specs can also be decoded from YAML or JSON with ParseRulesSpec; the
// decoder keeps declaration order, which fixes the order of the report.
//
// # Concurrency
//
// Engine and Catalog hold no mutable state after construction and can be shared
// across goroutines. The only time dependency is the injectable clock used by
// date_past and date_future (WithClock, WithLocation).
package validator
