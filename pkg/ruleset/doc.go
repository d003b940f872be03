// Package ruleset keeps named rules specs so callers can validate against a set
// by name instead of shipping rules with every request.
//
// Sets come from a Source: FileSource reads YAML or JSON documents mapping set
// names to rules specs, PostgresSource reads the rule_sets table created by the
// embedded Migrations. Load builds a read-only Registry at startup; names must
// be unique across all documents.
package ruleset
