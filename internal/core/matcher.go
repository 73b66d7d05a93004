package core

import (
	"strings"

	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/template"
)

// cutToken splits the next sep-delimited token off text. ok is false once
// text is exhausted.
func cutToken(text, sep string) (token, rest string, ok bool) {
	if text == "" {
		return "", "", false
	}
	if i := strings.Index(text, sep); i >= 0 {
		return text[:i], text[i+len(sep):], true
	}
	return text, "", true
}

// matchNodes runs the component list over text, consuming sep-delimited
// tokens strictly left to right, and records extracted values in fields.
// It returns the unconsumed remainder.
//
// There is no backtracking: a token accepted by a leaf is never reconsidered
// for a later leaf, so component order is part of the template contract.
func matchNodes(nodes []*template.ComponentNode, text, sep string, defaults map[string]string, fields map[string]string, filename string) (string, error) {
	for _, node := range nodes {
		var err error
		if node.IsGroup() {
			text, err = matchGroup(node, text, sep, defaults, fields, filename)
		} else {
			text, err = matchLeaf(node, text, sep, defaults, fields, filename)
		}
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// matchLeaf matches one leaf against the next token. A miss on a required
// leaf is fatal unless the spec carries a default for the field; otherwise
// the leaf is skipped and the token stays for the next sibling.
func matchLeaf(node *template.ComponentNode, text, sep string, defaults map[string]string, fields map[string]string, filename string) (string, error) {
	re, err := node.Regexp()
	if err != nil {
		return "", err
	}

	token, rest, ok := cutToken(text, sep)
	if ok && re.MatchString(token) {
		fields[node.Name] = token
		return rest, nil
	}

	if node.Required {
		if _, hasDefault := defaults[node.Name]; !hasDefault {
			return "", oerrors.NewRequiredFieldError(node.Name, filename)
		}
	}
	return text, nil
}

// matchGroup matches a group node. A group whose separator equals the
// enclosing one continues over the same token stream; otherwise it is handed
// exactly one parent token, splits it on its own separator, and its children
// must consume that sub-token exactly. Extraction is atomic: a group that
// does not accept its token records nothing.
func matchGroup(node *template.ComponentNode, text, sep string, defaults map[string]string, fields map[string]string, filename string) (string, error) {
	if node.Sep == sep {
		return matchNodes(node.Components, text, sep, defaults, fields, filename)
	}

	token, rest, ok := cutToken(text, sep)
	leftover := ""
	if ok {
		sub := make(map[string]string)
		var err error
		leftover, err = matchNodes(node.Components, token, node.Sep, defaults, sub, filename)
		if err != nil {
			// A required child failed (or a pattern is broken); the whole
			// group fails with it.
			return "", err
		}
		if leftover == "" {
			for k, v := range sub {
				fields[k] = v
			}
			return rest, nil
		}
	}

	// The group did not accept the token. Skippable only if every leaf
	// under it can be satisfied without input.
	if field, fatal := requiredWithoutDefault(node, defaults); fatal {
		if leftover != "" {
			// The children matched; the token had more sub-tokens than the
			// group declares. Naming the first required child here would
			// point at a field that actually matched.
			return "", oerrors.NewUnconsumedGroupError(node.Name, leftover, filename)
		}
		return "", oerrors.NewRequiredFieldError(field, filename)
	}
	return text, nil
}

// requiredWithoutDefault returns the first leaf under node that is required
// and has no default.
func requiredWithoutDefault(node *template.ComponentNode, defaults map[string]string) (string, bool) {
	if !node.IsGroup() {
		if !node.Required {
			return "", false
		}
		if _, ok := defaults[node.Name]; ok {
			return "", false
		}
		return node.Name, true
	}
	for _, child := range node.Components {
		if field, ok := requiredWithoutDefault(child, defaults); ok {
			return field, ok
		}
	}
	return "", false
}
