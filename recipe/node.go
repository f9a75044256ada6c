package recipe

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Node is one fragment of a recipe.
//
// A plain scalar is shorthand: a name such as "digital" or "startOfLine"
// stands for {use: name}, an integer for {number: n}. A mapping sets exactly
// one kind key plus any decorator keys.
type Node struct {
	// Kinds.
	Use         string   `yaml:"use"`
	Ref         string   `yaml:"ref"`
	Text        *string  `yaml:"text"`
	Raw         *string  `yaml:"raw"`
	Number      *int64   `yaml:"number"`
	AnyCharOf   []Member `yaml:"anyCharOf"`
	AnyCharBut  []Member `yaml:"anyCharBut"`
	Either      []Node   `yaml:"either"`
	Group       []Node   `yaml:"group"`
	Capture     []Node   `yaml:"capture"`
	SameAs      string   `yaml:"sameAs"`
	ASCII       []any    `yaml:"ascii"`
	Unicode     []any    `yaml:"unicode"`
	ControlChar string   `yaml:"controlChar"`

	// Label names the capture of a capture node.
	Label string `yaml:"label"`

	// Decorators.
	Quantifier    string  `yaml:"quantifier"`
	Repeat        *int    `yaml:"repeat"`
	Multiple      []int   `yaml:"multiple"`
	Lazy          bool    `yaml:"lazy"`
	Contains      []Node  `yaml:"contains"`
	NotContains   []Node  `yaml:"notContains"`
	FollowedBy    []Node  `yaml:"followedBy"`
	NotFollowedBy []Node  `yaml:"notFollowedBy"`
	Regex         *string `yaml:"regex"`

	unknown []string
}

var nodeKeys = map[string]bool{
	"use": true, "ref": true, "text": true, "raw": true, "number": true,
	"anyCharOf": true, "anyCharBut": true, "either": true, "group": true,
	"capture": true, "sameAs": true, "ascii": true, "unicode": true,
	"controlChar": true, "label": true, "quantifier": true, "repeat": true,
	"multiple": true, "lazy": true, "contains": true, "notContains": true,
	"followedBy": true, "notFollowedBy": true, "regex": true,
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if value.Tag == "!!int" {
			var v int64
			if err := value.Decode(&v); err != nil {
				return err
			}
			n.Number = &v
			return nil
		}
		n.Use = value.Value
		return nil
	}

	type plain Node
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if key := value.Content[i].Value; !nodeKeys[key] {
				n.unknown = append(n.unknown, key)
			}
		}
		sort.Strings(n.unknown)
	}
	return nil
}

// kinds returns the kind keys set on the node.
func (n *Node) kinds() []string {
	var ks []string
	add := func(set bool, key string) {
		if set {
			ks = append(ks, key)
		}
	}
	add(n.Use != "", "use")
	add(n.Ref != "", "ref")
	add(n.Text != nil, "text")
	add(n.Raw != nil, "raw")
	add(n.Number != nil, "number")
	add(n.AnyCharOf != nil, "anyCharOf")
	add(n.AnyCharBut != nil, "anyCharBut")
	add(n.Either != nil, "either")
	add(n.Group != nil, "group")
	add(n.Capture != nil, "capture")
	add(n.SameAs != "", "sameAs")
	add(n.ASCII != nil, "ascii")
	add(n.Unicode != nil, "unicode")
	add(n.ControlChar != "", "controlChar")
	return ks
}

// Member is one character class member: literal characters, a two-element
// range such as ['a', 'f'] or [0, 9], or a nested class node.
type Member struct {
	Chars string
	Range []any
	Node  *Node
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Member) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		return value.Decode(&m.Range)
	case yaml.MappingNode:
		m.Node = new(Node)
		return value.Decode(m.Node)
	}
	m.Chars = value.Value
	return nil
}
