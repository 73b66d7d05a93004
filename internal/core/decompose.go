// Package core implements the filename decomposition and path derivation
// engine: matching a filename against a template's component grammar,
// resolving defaults and value aliases, and deriving the destination
// directory path and filename.
//
// Every function here is a pure function over an immutable
// *template.Template and an input string. No I/O, no locks; concurrent
// decomposition against one shared template needs no synchronization.
package core

import (
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/template"
)

// Decompose matches filename against the template and extracts its field
// mapping. The extension is stripped first and retained on the mapping;
// unconsumed trailing tokens are tolerated and recorded as Rest.
func Decompose(tpl *template.Template, filename string) (*FieldMapping, error) {
	name := filepath.Base(filename)
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	spec, selector, err := selectRule(tpl.File, stem, name)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	rest, err := matchNodes(spec.Components, stem, spec.Sep, spec.Defaults, fields, name)
	if err != nil {
		return nil, err
	}

	for field, def := range spec.Defaults {
		if _, ok := fields[field]; !ok {
			fields[field] = def
		}
	}

	return &FieldMapping{
		Name:   name,
		Stem:   stem,
		Ext:    ext,
		Rule:   selector,
		Rest:   strings.TrimPrefix(rest, spec.Sep),
		Fields: fields,
	}, nil
}

// selectRule picks the first rule whose glob selector matches the stem,
// in declaration order. "*" is the fallback, used only when no specific
// selector matches.
func selectRule(rules template.FileRules, stem, name string) (template.MatchSpec, string, error) {
	var fallback *template.FileRule
	for i := range rules {
		rule := &rules[i]
		if rule.Selector == "*" {
			if fallback == nil {
				fallback = rule
			}
			continue
		}
		ok, err := path.Match(rule.Selector, stem)
		if err != nil {
			return template.MatchSpec{}, "", oerrors.NewInvalidPatternError("file."+rule.Selector, rule.Selector, err)
		}
		if ok {
			return rule.Spec, rule.Selector, nil
		}
	}
	if fallback != nil {
		return fallback.Spec, fallback.Selector, nil
	}
	return template.MatchSpec{}, "", oerrors.NewNoMatchingRuleError(name)
}
