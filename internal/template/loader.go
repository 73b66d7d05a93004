package template

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	oerrors "github.com/datafiler/cli/internal/errors"
)

// DefaultVersion is the template schema version stamped on templates that
// omit one.
const DefaultVersion = "1.2.0"

// Parse decodes YAML template data, applies defaults, and validates it.
func Parse(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("parsing template: %v", err), "", "", "Check the template YAML syntax.")
	}
	applyDefaults(&t)
	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads and parses a template file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("template file not found: %s", path), path, "")
		}
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		var detail *oerrors.DetailError
		if errors.As(err, &detail) && detail.Location == "" {
			detail.Location = path
		}
		return nil, err
	}
	return t, nil
}

// applyDefaults fills the optional template fields the schema leaves open.
func applyDefaults(t *Template) {
	if t.Version == "" {
		t.Version = DefaultVersion
	}
	if t.NamingConvention.Sep == "" {
		t.NamingConvention.Sep = "_"
	}
	if len(t.NamingConvention.Structure) == 0 {
		t.NamingConvention.Structure = []string{
			"year", "summary", "internal", "researcherName", "organisationName",
		}
	}
	for i := range t.File {
		if t.File[i].Spec.Sep == "" {
			t.File[i].Spec.Sep = "_"
		}
	}
}
