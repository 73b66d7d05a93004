// Package template defines the declarative naming template model: the naming
// convention, directory layout, and per-rule filename match grammar.
//
// A Template is loaded once, validated, and shared read-only across all
// decompositions. Nothing in this package mutates a Template after Load.
package template

import (
	"fmt"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"

	oerrors "github.com/datafiler/cli/internal/errors"
)

// Template is the root of the declarative configuration.
type Template struct {
	// Version is the template schema version.
	Version string `yaml:"version,omitempty"`

	// NamingConvention composes canonical project names.
	NamingConvention NamingConvention `yaml:"naming_convention"`

	// Layout defines directory nesting and value aliasing.
	Layout Layout `yaml:"layout"`

	// File maps file rule selectors to their match specs, in declaration order.
	File FileRules `yaml:"file"`
}

// NamingConvention is the separator and ordered field names used to compose
// project-level names.
type NamingConvention struct {
	Sep       string   `yaml:"sep"`
	Structure []string `yaml:"structure"`
}

// Layout is the directory nesting specification: an ordered field list plus
// optional per-field value-alias tables (raw value to canonical label).
type Layout struct {
	Structure []string                     `yaml:"structure"`
	Mapping   map[string]map[string]string `yaml:"mapping,omitempty"`
}

// MatchSpec is the match grammar for one file rule: a separator, per-field
// defaults, and the ordered component tree.
type MatchSpec struct {
	Sep        string            `yaml:"sep"`
	Defaults   map[string]string `yaml:"defaults,omitempty"`
	Components []*ComponentNode  `yaml:"components"`
}

// FileRule pairs a selector with its match spec. The selector is a glob
// tested against the filename stem; "*" is the catch-all.
type FileRule struct {
	Selector string
	Spec     MatchSpec
}

// FileRules is an ordered list of file rules. YAML mapping order is the
// declaration order and is preserved, because rule selection is
// first-match-wins.
type FileRules []FileRule

// ComponentNode is one unit of the match grammar. It is a tagged union:
// a leaf carries Pattern, a group carries Sep and Components. Exactly one
// form is valid per node; the validator enforces this.
type ComponentNode struct {
	// Name is the field name for a leaf, or a label for a group.
	Name string `yaml:"name"`

	// Pattern is the leaf regular expression. The match is anchored against
	// a whole token.
	Pattern string `yaml:"pattern,omitempty"`

	// Sep is the group's own separator.
	Sep string `yaml:"sep,omitempty"`

	// Components are the group's children, matched in order.
	Components []*ComponentNode `yaml:"components,omitempty"`

	// Required controls whether a failed match aborts decomposition.
	// Defaults to true.
	Required bool `yaml:"required"`

	compileOnce sync.Once
	re          *regexp.Regexp
	reErr       error
}

// IsGroup reports whether the node is a group (nested, separator-delimited).
func (n *ComponentNode) IsGroup() bool {
	return len(n.Components) > 0
}

// Regexp returns the leaf pattern compiled and anchored to a whole token.
// Compilation happens once per node and is safe for concurrent callers;
// an uncompilable pattern surfaces as ErrInvalidPattern.
func (n *ComponentNode) Regexp() (*regexp.Regexp, error) {
	n.compileOnce.Do(func() {
		re, err := regexp.Compile("^(?:" + n.Pattern + ")$")
		if err != nil {
			n.reErr = oerrors.NewInvalidPatternError(n.Name, n.Pattern, err)
			return
		}
		n.re = re
	})
	return n.re, n.reErr
}

// Leaves appends the names of all leaf fields in the subtree, in match order.
func (n *ComponentNode) Leaves(names []string) []string {
	if !n.IsGroup() {
		return append(names, n.Name)
	}
	for _, child := range n.Components {
		names = child.Leaves(names)
	}
	return names
}

// FieldNames returns all leaf field names declared by the spec, in match
// order, followed by default-only fields.
func (s *MatchSpec) FieldNames() []string {
	var names []string
	for _, node := range s.Components {
		names = node.Leaves(names)
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for field := range s.Defaults {
		if !seen[field] {
			names = append(names, field)
		}
	}
	return names
}

// Rule returns the spec for the given selector.
func (r FileRules) Rule(selector string) (MatchSpec, bool) {
	for _, rule := range r {
		if rule.Selector == selector {
			return rule.Spec, true
		}
	}
	return MatchSpec{}, false
}

// UnmarshalYAML decodes a file rule mapping while preserving declaration
// order. A plain map decode would shuffle selectors and break
// first-match-wins selection.
func (r *FileRules) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("file rules: expected a mapping, got %s", value.Tag)
	}
	rules := make(FileRules, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var rule FileRule
		if err := value.Content[i].Decode(&rule.Selector); err != nil {
			return fmt.Errorf("file rules: decoding selector: %w", err)
		}
		if err := value.Content[i+1].Decode(&rule.Spec); err != nil {
			return fmt.Errorf("file rules: decoding rule %q: %w", rule.Selector, err)
		}
		rules = append(rules, rule)
	}
	*r = rules
	return nil
}

// MarshalYAML encodes the rules back to a mapping in declaration order.
func (r FileRules) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, rule := range r {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(rule.Selector); err != nil {
			return nil, err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(rule.Spec); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a component node. Two forms are accepted:
//
//	- name: date
//	  pattern: '\d{8}'
//
//	[date, '\d{8}']
//
// The pair shorthand is a required leaf.
func (n *ComponentNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var pair []string
		if err := value.Decode(&pair); err != nil {
			return fmt.Errorf("component: decoding pair shorthand: %w", err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("component: pair shorthand needs [name, pattern], got %d items", len(pair))
		}
		n.Name = pair[0]
		n.Pattern = pair[1]
		n.Required = true
		return nil
	}

	// Shadow type avoids recursing into this method.
	type plain struct {
		Name       string           `yaml:"name"`
		Pattern    string           `yaml:"pattern"`
		Sep        string           `yaml:"sep"`
		Components []*ComponentNode `yaml:"components"`
		Required   *bool            `yaml:"required"`
	}
	var p plain
	if err := value.Decode(&p); err != nil {
		return fmt.Errorf("component: %w", err)
	}
	n.Name = p.Name
	n.Pattern = p.Pattern
	n.Sep = p.Sep
	n.Components = p.Components
	n.Required = p.Required == nil || *p.Required
	return nil
}

// MarshalYAML encodes the node in the mapping form, omitting the required
// flag when it holds the default.
func (n *ComponentNode) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, v interface{}) error {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(v); err != nil {
			return err
		}
		node.Content = append(node.Content, keyNode, valueNode)
		return nil
	}

	if err := add("name", n.Name); err != nil {
		return nil, err
	}
	if n.Pattern != "" {
		if err := add("pattern", n.Pattern); err != nil {
			return nil, err
		}
	}
	if n.Sep != "" {
		if err := add("sep", n.Sep); err != nil {
			return nil, err
		}
	}
	if len(n.Components) > 0 {
		if err := add("components", n.Components); err != nil {
			return nil, err
		}
	}
	if !n.Required {
		if err := add("required", false); err != nil {
			return nil, err
		}
	}
	return node, nil
}
