// Package recipe loads pattern definitions from YAML.
//
// A recipe file describes patterns as fragment trees instead of pattern
// text, together with test cases:
//
//	fragments:
//	  octet:
//	    either: [{raw: '25[0-5]'}, {raw: '2[0-4]\d'}, {raw: '[01]?\d\d?'}]
//	recipes:
//	  - name: ipv4
//	    terms:
//	      - startOfLine
//	      - capture: [{ref: octet}]
//	      - text: "."
//	      - capture: [{ref: octet}]
//	      - endOfLine
//	    cases:
//	      - input: 192.168.0.1
//	        captures: {"1": "192", "2": "168"}
//
// Shared fragments are built once and reused by every node that refers to
// them. Unknown node kinds, keys and flags never fail loading; they surface
// as regexgen.Warning values when the recipe is turned into terms.
package recipe

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a parsed recipe document.
type File struct {
	Fragments map[string]Node `yaml:"fragments"`
	Recipes   []Recipe        `yaml:"recipes"`
}

// Recipe is one named pattern.
type Recipe struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Flags       []string `yaml:"flags"`
	Terms       []Node   `yaml:"terms"`
	Cases       []Case   `yaml:"cases"`

	file *File
}

// Case is an input the recipe's pattern is checked against.
type Case struct {
	Input string `yaml:"input"`

	// Match is the expected result of MatchString. Default: true.
	Match *bool `yaml:"match"`

	// Captures lists expected Extract entries. Only the listed labels are
	// compared.
	Captures map[string]string `yaml:"captures"`

	Replace *ReplaceCase `yaml:"replace"`
}

// ReplaceCase checks Pattern.Replace on the case input.
type ReplaceCase struct {
	Template string `yaml:"template"`
	Want     string `yaml:"want"`
}

// Common recipe errors
var (
	// ErrNoName indicates a recipe without a name.
	ErrNoName = errors.New("recipe has no name")

	// ErrDuplicateName indicates two recipes with the same name.
	ErrDuplicateName = errors.New("duplicate recipe name")
)

// Load reads and parses the recipe file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a recipe document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(f.Recipes))
	for i := range f.Recipes {
		r := &f.Recipes[i]
		if r.Name == "" {
			return nil, fmt.Errorf("recipe #%d: %w", i+1, ErrNoName)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("recipe %q: %w", r.Name, ErrDuplicateName)
		}
		seen[r.Name] = true
		r.file = &f
	}
	return &f, nil
}

// Lookup returns the recipe called name.
func (f *File) Lookup(name string) (*Recipe, bool) {
	for i := range f.Recipes {
		if f.Recipes[i].Name == name {
			return &f.Recipes[i], true
		}
	}
	return nil, false
}
