package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseRulesSpec decodes a YAML or JSON rules document, keeping declaration order.
//
//	age:   {greater_than: 18}
//	email: {required: ~, valid_mail: ~}
//	tags:  [alpha]
//
// Comparison values keep their literal text ("007" stays "007"); null or empty means absent.
func ParseRulesSpec(data []byte) (RulesSpec, error) {
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidRulesSpec, err)
	}

	var spec RulesSpec
	if err := spec.UnmarshalYAML(doc); err != nil {
		return nil, err
	}
	return spec, nil
}

// DecodeDocument parses YAML or JSON into a document node, keeping mapping order.
// Valid JSON is decoded with encoding/json, since yaml.v3 does not know every
// JSON escape ("\/" among them); anything else goes through the YAML parser.
func DecodeDocument(data []byte) (*yaml.Node, error) {
	if json.Valid(data) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		root, err := jsonNode(dec, data)
		if err != nil {
			return nil, err
		}
		return &yaml.Node{Kind: yaml.DocumentNode, Line: 1, Content: []*yaml.Node{root}}, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *RulesSpec) UnmarshalYAML(node *yaml.Node) error {
	node = resolveNode(node)
	if node == nil || isNull(node) {
		*s = RulesSpec{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Join(ErrInvalidRulesSpec, fmt.Errorf("line %d: expected a mapping of fields", node.Line))
	}

	spec := make(RulesSpec, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := resolveNode(node.Content[i]), node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return errors.Join(ErrInvalidRulesSpec, fmt.Errorf("line %d: field name must be a non-empty scalar", key.Line))
		}
		if seen[key.Value] {
			return errors.Join(ErrDuplicateKey, fmt.Errorf("line %d: field %q", key.Line, key.Value))
		}
		seen[key.Value] = true

		rules, err := decodeFieldRules(val)
		if err != nil {
			return errors.Join(err, fmt.Errorf("field %q", key.Value))
		}
		spec = append(spec, FieldRules{Field: key.Value, Rules: rules})
	}

	*s = spec
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Objects are walked token by token
// because decoding into a map would lose key order.
func (s *RulesSpec) UnmarshalJSON(data []byte) error {
	spec, err := ParseRulesSpec(data)
	if err != nil {
		return err
	}
	*s = spec
	return nil
}

// decodeFieldRules accepts a mapping (rule -> value), a sequence of rule names or
// single-entry mappings, a single rule name, or null.
func decodeFieldRules(node *yaml.Node) ([]RuleEntry, error) {
	node = resolveNode(node)
	switch {
	case node == nil || isNull(node):
		return []RuleEntry{}, nil

	case node.Kind == yaml.ScalarNode:
		if node.Value == "" {
			return []RuleEntry{}, nil
		}
		return []RuleEntry{Rule(node.Value)}, nil

	case node.Kind == yaml.MappingNode:
		return decodeRuleMapping(node, make(map[string]bool, len(node.Content)/2))

	case node.Kind == yaml.SequenceNode:
		rules := make([]RuleEntry, 0, len(node.Content))
		seen := make(map[string]bool, len(node.Content))
		for _, item := range node.Content {
			item = resolveNode(item)
			switch item.Kind {
			case yaml.ScalarNode:
				if item.Value == "" {
					return nil, errors.Join(ErrInvalidRulesSpec, fmt.Errorf("line %d: empty rule name", item.Line))
				}
				if seen[item.Value] {
					return nil, errors.Join(ErrDuplicateKey, fmt.Errorf("line %d: rule %q", item.Line, item.Value))
				}
				seen[item.Value] = true
				rules = append(rules, Rule(item.Value))
			case yaml.MappingNode:
				entries, err := decodeRuleMapping(item, seen)
				if err != nil {
					return nil, err
				}
				rules = append(rules, entries...)
			default:
				return nil, errors.Join(ErrInvalidRulesSpec, fmt.Errorf("line %d: unexpected rule list item", item.Line))
			}
		}
		return rules, nil
	}

	return nil, errors.Join(ErrInvalidRulesSpec, fmt.Errorf("line %d: unexpected rules node", node.Line))
}

func decodeRuleMapping(node *yaml.Node, seen map[string]bool) ([]RuleEntry, error) {
	rules := make([]RuleEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := resolveNode(node.Content[i]), resolveNode(node.Content[i+1])
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, errors.Join(ErrInvalidRulesSpec, fmt.Errorf("line %d: rule name must be a non-empty scalar", key.Line))
		}
		if seen[key.Value] {
			return nil, errors.Join(ErrDuplicateKey, fmt.Errorf("line %d: rule %q", key.Line, key.Value))
		}
		seen[key.Value] = true

		entry := RuleEntry{Name: key.Value}
		switch {
		case val == nil || isNull(val):
		case val.Kind == yaml.ScalarNode:
			entry.Value = val.Value
		default:
			return nil, errors.Join(ErrInvalidRulesSpec, fmt.Errorf("line %d: comparison value for %q must be a scalar", val.Line, key.Value))
		}
		rules = append(rules, entry)
	}
	return rules, nil
}

func resolveNode(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

// jsonNode reads the next JSON value from dec as a yaml.Node tree.
func jsonNode(dec *json.Decoder, data []byte) (*yaml.Node, error) {
	line := lineAt(data, dec.InputOffset())
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: line}
		if t == '[' {
			node.Kind, node.Tag = yaml.SequenceNode, "!!seq"
		}
		for dec.More() {
			if node.Kind == yaml.MappingNode {
				keyLine := lineAt(data, dec.InputOffset())
				key, err := dec.Token()
				if err != nil {
					return nil, err
				}
				name, _ := key.(string)
				node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name, Line: keyLine})
			}
			child, err := jsonNode(dec, data)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		// closing delimiter
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return node, nil

	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t, Line: line}, nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(t.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String(), Line: line}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t), Line: line}, nil
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null", Line: line}, nil
	}
}

// lineAt returns the 1-based line of the next token at or after offset.
func lineAt(data []byte, offset int64) int {
	i := int(offset)
	for i < len(data) && strings.IndexByte(" \t\r\n,:", data[i]) >= 0 {
		i++
	}
	return bytes.Count(data[:min(i, len(data))], []byte{'\n'}) + 1
}
