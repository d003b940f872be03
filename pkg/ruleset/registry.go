package ruleset

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Set is a named rules spec.
type Set struct {
	Name string
	Spec validator.RulesSpec
}

// Source loads rule sets from storage.
type Source interface {
	Load(ctx context.Context) ([]Set, error)
}

// Registry is a read-only collection of named rule sets.
// It is built once at startup and safe for concurrent reads.
type Registry struct {
	sets  map[string]validator.RulesSpec
	names []string
}

// NewRegistry indexes sets by name. Names must be unique and non-empty.
func NewRegistry(sets ...Set) (*Registry, error) {
	r := &Registry{
		sets:  make(map[string]validator.RulesSpec, len(sets)),
		names: make([]string, 0, len(sets)),
	}
	for _, s := range sets {
		if s.Name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := r.sets[s.Name]; exists {
			return nil, errors.Join(ErrDuplicateSet, fmt.Errorf("rule set %q", s.Name))
		}
		r.sets[s.Name] = s.Spec
		r.names = append(r.names, s.Name)
	}
	return r, nil
}

// Load reads every set from src and builds a Registry.
func Load(ctx context.Context, src Source) (*Registry, error) {
	sets, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewRegistry(sets...)
}

// Get returns the rules spec registered under name.
func (r *Registry) Get(name string) (validator.RulesSpec, error) {
	spec, ok := r.sets[name]
	if !ok {
		return nil, errors.Join(ErrNotFound, fmt.Errorf("rule set %q", name))
	}
	return spec, nil
}

// Names returns registered names in load order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered sets.
func (r *Registry) Len() int {
	return len(r.names)
}
