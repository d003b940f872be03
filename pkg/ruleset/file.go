package ruleset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Parse decodes a rule set document: a mapping from set name to rules spec.
//
//	signup:
//	  email: {required: ~, valid_mail: ~}
//	  age:   {required: ~, numeric: ~, greater_than: 17}
//	invoice:
//	  vat:   {vat_number: ~}
func Parse(data []byte) ([]Set, error) {
	doc, err := validator.DecodeDocument(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Join(ErrInvalidFile, fmt.Errorf("line %d: expected a mapping of rule sets", root.Line))
	}

	sets := make([]Set, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, errors.Join(ErrInvalidFile, ErrEmptyName, fmt.Errorf("line %d", key.Line))
		}

		var spec validator.RulesSpec
		if err := spec.UnmarshalYAML(val); err != nil {
			return nil, errors.Join(ErrInvalidFile, fmt.Errorf("rule set %q", key.Value), err)
		}
		sets = append(sets, Set{Name: key.Value, Spec: spec})
	}
	return sets, nil
}

// FileSource reads rule sets from a YAML/JSON file or from every such file in a directory.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) FileSource {
	return FileSource{Path: path}
}

// Load implements Source. Directory entries are read in lexical order.
func (s FileSource) Load(ctx context.Context) ([]Set, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return nil, errors.Join(ErrReadSource, err)
	}
	if !info.IsDir() {
		return parseFile(s.Path)
	}

	entries, err := os.ReadDir(s.Path)
	if err != nil {
		return nil, errors.Join(ErrReadSource, err)
	}

	var sets []Set
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !isRulesFile(e.Name()) {
			continue
		}
		fileSets, err := parseFile(filepath.Join(s.Path, e.Name()))
		if err != nil {
			return nil, err
		}
		sets = append(sets, fileSets...)
	}
	return sets, nil
}

func parseFile(path string) ([]Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSource, err)
	}
	sets, err := Parse(data)
	if err != nil {
		return nil, errors.Join(err, fmt.Errorf("file %s", path))
	}
	return sets, nil
}

func isRulesFile(name string) bool {
	return slices.Contains([]string{".yaml", ".yml", ".json"}, strings.ToLower(filepath.Ext(name)))
}
