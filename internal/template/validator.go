package template

import (
	"fmt"
	"path"

	oerrors "github.com/datafiler/cli/internal/errors"
)

// Validate checks the structural invariants the matching engine relies on.
// The engine trusts a validated template and does not re-check them.
func Validate(t *Template) error {
	if err := validateNaming(&t.NamingConvention); err != nil {
		return err
	}
	if err := validateLayout(&t.Layout); err != nil {
		return err
	}
	if len(t.File) == 0 {
		return oerrors.NewValidationError("template declares no file rules", "", "file", "Add at least one file rule, e.g. a \"*\" catch-all.")
	}

	seenSelectors := make(map[string]bool, len(t.File))
	for _, rule := range t.File {
		if seenSelectors[rule.Selector] {
			return oerrors.NewValidationError(
				fmt.Sprintf("duplicate file rule selector %q", rule.Selector), "", "file", "")
		}
		seenSelectors[rule.Selector] = true

		if _, err := path.Match(rule.Selector, "probe"); err != nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("file rule selector %q is not a valid glob: %v", rule.Selector, err), "", "file", "")
		}
		if err := validateSpec(rule.Selector, &rule.Spec, t.Layout.Structure); err != nil {
			return err
		}
	}
	return nil
}

func validateNaming(nc *NamingConvention) error {
	if nc.Sep == "" {
		return oerrors.NewValidationError("naming convention separator is empty", "", "naming_convention.sep", "")
	}
	if len(nc.Structure) == 0 {
		return oerrors.NewValidationError("naming convention structure is empty", "", "naming_convention.structure", "")
	}
	seen := make(map[string]bool, len(nc.Structure))
	for _, field := range nc.Structure {
		if seen[field] {
			return oerrors.NewValidationError(
				fmt.Sprintf("naming convention structure repeats field %q", field), "", "naming_convention.structure", "")
		}
		seen[field] = true
	}
	return nil
}

func validateLayout(l *Layout) error {
	if len(l.Structure) == 0 {
		return oerrors.NewValidationError("layout structure is empty", "", "layout.structure", "")
	}
	seen := make(map[string]bool, len(l.Structure))
	for _, field := range l.Structure {
		if seen[field] {
			return oerrors.NewValidationError(
				fmt.Sprintf("layout structure repeats field %q", field), "", "layout.structure", "")
		}
		seen[field] = true
	}
	return nil
}

func validateSpec(selector string, spec *MatchSpec, layout []string) error {
	field := fmt.Sprintf("file.%s", selector)

	if spec.Sep == "" {
		return oerrors.NewValidationError("file rule separator is empty", "", field+".sep", "")
	}
	if len(spec.Components) == 0 {
		return oerrors.NewValidationError("file rule declares no components", "", field+".components", "")
	}

	seen := make(map[string]bool)
	for _, node := range spec.Components {
		if err := validateNode(field, node, seen); err != nil {
			return err
		}
	}

	// Every layout field must be extractable from this rule, either by a
	// component or a default.
	declared := make(map[string]bool)
	for _, name := range spec.FieldNames() {
		declared[name] = true
	}
	for _, layoutField := range layout {
		if !declared[layoutField] {
			return oerrors.NewValidationError(
				fmt.Sprintf("layout field %q is not declared by rule %q", layoutField, selector),
				"", field,
				"Each file rule must declare every layout field as a component or default.")
		}
	}
	return nil
}

func validateNode(rule string, node *ComponentNode, seen map[string]bool) error {
	if node.Name == "" {
		return oerrors.NewValidationError("component has no name", "", rule, "")
	}
	hasPattern := node.Pattern != ""
	hasChildren := len(node.Components) > 0

	switch {
	case hasPattern && hasChildren:
		return oerrors.NewValidationError(
			fmt.Sprintf("component %q has both a pattern and children", node.Name), "", rule, "")
	case !hasPattern && !hasChildren:
		return oerrors.NewValidationError(
			fmt.Sprintf("component %q has neither a pattern nor children", node.Name), "", rule, "")
	case hasChildren && node.Sep == "":
		return oerrors.NewValidationError(
			fmt.Sprintf("group %q has no separator", node.Name), "", rule, "")
	}

	if hasPattern {
		if seen[node.Name] {
			return oerrors.NewValidationError(
				fmt.Sprintf("field %q is declared more than once", node.Name), "", rule,
				"Leaf field names must be unique within a file rule.")
		}
		seen[node.Name] = true
		if _, err := node.Regexp(); err != nil {
			return err
		}
		return nil
	}

	for _, child := range node.Components {
		if err := validateNode(rule, child, seen); err != nil {
			return err
		}
	}
	return nil
}
