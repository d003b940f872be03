package ruleset

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Migrations holds the schema for the rule_sets table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that goose reads.
const MigrationsDir = "migrations"

const (
	selectRuleSets = `SELECT name, definition FROM rule_sets ORDER BY name`
	upsertRuleSet  = `INSERT INTO rule_sets (name, definition, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET definition = EXCLUDED.definition, updated_at = EXCLUDED.updated_at`
)

// DB is the subset of *pgxpool.Pool used by PostgresSource.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresSource reads rule sets from the rule_sets table. Each row stores one
// rules spec as a YAML or JSON document.
type PostgresSource struct {
	db DB
}

// NewPostgresSource creates a source backed by db.
func NewPostgresSource(db DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Load implements Source. Sets are returned ordered by name.
func (s *PostgresSource) Load(ctx context.Context) ([]Set, error) {
	rows, err := s.db.Query(ctx, selectRuleSets)
	if err != nil {
		return nil, errors.Join(ErrReadSource, err)
	}
	defer rows.Close()

	var sets []Set
	for rows.Next() {
		var name, definition string
		if err := rows.Scan(&name, &definition); err != nil {
			return nil, errors.Join(ErrReadSource, err)
		}
		spec, err := validator.ParseRulesSpec([]byte(definition))
		if err != nil {
			return nil, errors.Join(ErrInvalidFile, fmt.Errorf("rule set %q", name), err)
		}
		sets = append(sets, Set{Name: name, Spec: spec})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrReadSource, err)
	}
	return sets, nil
}

// Save stores definition under name, replacing any previous version.
// The definition is parsed first so broken documents never reach the table.
func (s *PostgresSource) Save(ctx context.Context, name string, definition []byte) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, err := validator.ParseRulesSpec(definition); err != nil {
		return errors.Join(ErrInvalidFile, fmt.Errorf("rule set %q", name), err)
	}
	if _, err := s.db.Exec(ctx, upsertRuleSet, name, string(definition)); err != nil {
		return fmt.Errorf("save rule set %q: %w", name, err)
	}
	return nil
}
