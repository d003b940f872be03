package validator

// RuleEntry is one rule declared for a field. Value is the optional comparison
// operand; nil means absent.
type RuleEntry struct {
	Name  string
	Value any
}

// FieldRules lists the rules declared for one field, in declaration order.
type FieldRules struct {
	Field string
	Rules []RuleEntry
}

// Declares reports whether the field declares the named rule.
func (fr FieldRules) Declares(rule string) bool {
	for _, r := range fr.Rules {
		if r.Name == rule {
			return true
		}
	}
	return false
}

// RulesSpec is an ordered field -> rules mapping. A field may appear more than
// once; its declarations are evaluated in the order they appear.
type RulesSpec []FieldRules

// Len returns the total number of declared rules.
func (s RulesSpec) Len() int {
	n := 0
	for _, fr := range s {
		n += len(fr.Rules)
	}
	return n
}

// Fields returns the distinct declared field names in declaration order.
func (s RulesSpec) Fields() []string {
	fields := make([]string, 0, len(s))
	seen := make(map[string]bool, len(s))
	for _, fr := range s {
		if !seen[fr.Field] {
			fields = append(fields, fr.Field)
			seen[fr.Field] = true
		}
	}
	return fields
}

// Spec assembles a RulesSpec from field declarations.
//
//	spec := validator.Spec(
//	    validator.Field("age", validator.RuleWith("greater_than", 18)),
//	    validator.Field("email", validator.Rule("required"), validator.Rule("valid_mail")),
//	)
func Spec(fields ...FieldRules) RulesSpec {
	return RulesSpec(fields)
}

// Field declares the rules for a single field.
func Field(name string, rules ...RuleEntry) FieldRules {
	return FieldRules{Field: name, Rules: rules}
}

// Rule declares a rule without a comparison value.
func Rule(name string) RuleEntry {
	return RuleEntry{Name: name}
}

// RuleWith declares a rule with a comparison value.
func RuleWith(name string, value any) RuleEntry {
	return RuleEntry{Name: name, Value: value}
}
