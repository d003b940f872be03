package validator

import (
	"errors"
	"fmt"
	"time"
)

// Args is what a predicate sees for a single check.
type Args struct {
	// Value is the submitted field value.
	Value string
	// Comparison is the declared comparison value. Empty unless the rule needs one.
	Comparison string
	// Today is midnight of the current calendar day in the engine's location.
	Today time.Time
}

// Predicate implements a rule. It must be total: malformed input yields false.
type Predicate func(Args) bool

// RuleDescriptor binds a rule name to the predicate implementing it.
type RuleDescriptor struct {
	Name                 string
	PredicateID          string
	NeedsComparisonValue bool
}

// Catalog is an immutable registry of rules. It is safe for concurrent use.
type Catalog struct {
	rules      map[string]RuleDescriptor
	predicates map[string]Predicate
	names      []string
}

// NewCatalog builds a catalog from a predicate table and rule descriptors.
// Every descriptor must name an existing predicate; rule names must be unique and non-empty.
func NewCatalog(predicates map[string]Predicate, descriptors ...RuleDescriptor) (*Catalog, error) {
	c := &Catalog{
		rules:      make(map[string]RuleDescriptor, len(descriptors)),
		predicates: make(map[string]Predicate, len(predicates)),
		names:      make([]string, 0, len(descriptors)),
	}

	for id, p := range predicates {
		if p != nil {
			c.predicates[id] = p
		}
	}

	for _, d := range descriptors {
		if d.Name == "" {
			return nil, ErrEmptyRuleName
		}
		if _, exists := c.rules[d.Name]; exists {
			return nil, errors.Join(ErrDuplicateRule, fmt.Errorf("rule %q", d.Name))
		}
		if _, ok := c.predicates[d.PredicateID]; !ok {
			return nil, errors.Join(ErrUnknownPredicate, fmt.Errorf("rule %q uses predicate %q", d.Name, d.PredicateID))
		}
		c.rules[d.Name] = d
		c.names = append(c.names, d.Name)
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on a misconfigured table.
func MustCatalog(predicates map[string]Predicate, descriptors ...RuleDescriptor) *Catalog {
	c, err := NewCatalog(predicates, descriptors...)
	if err != nil {
		panic(fmt.Sprintf("validator: invalid rule catalog: %v", err))
	}
	return c
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (RuleDescriptor, bool) {
	d, ok := c.rules[name]
	return d, ok
}

// Predicate returns the predicate implementing the named rule.
func (c *Catalog) Predicate(name string) (Predicate, bool) {
	d, ok := c.rules[name]
	if !ok {
		return nil, false
	}
	p, ok := c.predicates[d.PredicateID]
	return p, ok
}

// Names returns rule names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Rule names shipped with the default catalog.
const (
	RuleRequired        = "required"
	RuleEqualTo         = "equal_to"
	RulePassword        = "password"
	RuleDate            = "date"
	RuleDatePast        = "date_past"
	RuleDateFuture      = "date_future"
	RuleDateLowerThan   = "date_lower_than"
	RuleDateGreaterThan = "date_greater_than"
	RuleLowerThan       = "lower_than"
	RuleGreaterThan     = "greater_than"
	RuleAlpha           = "alpha"
	RuleNumeric         = "numeric"
	RuleValidMail       = "valid_mail"
	RuleFiscalCode      = "fiscal_code"
	RuleVATNumber       = "vat_number"
)

// BuiltinPredicates returns the predicate table backing the default catalog.
// Callers extending the catalog start from this table and add their own entries.
func BuiltinPredicates() map[string]Predicate {
	return map[string]Predicate{
		"nonempty":     Required,
		"equal":        EqualTo,
		"date":         ValidDate,
		"before_today": DatePast,
		"after_today":  DateFuture,
		"date_before":  DateLowerThan,
		"date_after":   DateGreaterThan,
		"less":         LowerThan,
		"greater":      GreaterThan,
		"alpha":        Alpha,
		"numeric":      Numeric,
		"email":        ValidMail,
		"fiscal_code":  FiscalCode,
		"vat_checksum": VATNumber,
	}
}

// BuiltinRules returns the descriptors of the default catalog.
func BuiltinRules() []RuleDescriptor {
	return []RuleDescriptor{
		{Name: RuleRequired, PredicateID: "nonempty"},
		{Name: RulePassword, PredicateID: "equal", NeedsComparisonValue: true},
		{Name: RuleEqualTo, PredicateID: "equal", NeedsComparisonValue: true},

		{Name: RuleDate, PredicateID: "date"},
		{Name: RuleDatePast, PredicateID: "before_today"},
		{Name: RuleDateFuture, PredicateID: "after_today"},
		{Name: RuleDateLowerThan, PredicateID: "date_before", NeedsComparisonValue: true},
		{Name: RuleDateGreaterThan, PredicateID: "date_after", NeedsComparisonValue: true},

		{Name: RuleLowerThan, PredicateID: "less", NeedsComparisonValue: true},
		{Name: RuleGreaterThan, PredicateID: "greater", NeedsComparisonValue: true},
		{Name: RuleAlpha, PredicateID: "alpha"},
		{Name: RuleNumeric, PredicateID: "numeric"},

		{Name: RuleValidMail, PredicateID: "email"},
		{Name: RuleFiscalCode, PredicateID: "fiscal_code"},
		{Name: RuleVATNumber, PredicateID: "vat_checksum"},
	}
}

var defaultCatalog = MustCatalog(BuiltinPredicates(), BuiltinRules()...)

// DefaultCatalog returns the process-wide catalog of built-in rules.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
