// Package project provides project scaffolding and file placement on top of
// the decomposition engine: creating a project root named by the naming
// convention, persisting its template and metadata, and filing data files
// into the resolved layout.
package project

import (
	"fmt"
	"strconv"

	"github.com/datafiler/cli/internal/core"
	oerrors "github.com/datafiler/cli/internal/errors"
)

// Metadata is the general project information the naming convention draws
// its field values from.
type Metadata struct {
	Year    int    `yaml:"year" json:"year"`
	Summary string `yaml:"summary" json:"summary"`

	// Internal renders as "internal"/"external" in composed names.
	Internal bool `yaml:"internal" json:"internal"`

	ResearcherName   string `yaml:"researcherName,omitempty" json:"researcherName,omitempty"`
	OrganisationName string `yaml:"organisationName,omitempty" json:"organisationName,omitempty"`
}

// Validate checks the fields every project needs.
func (m Metadata) Validate() error {
	if m.Year <= 0 {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid project year: %d", m.Year), "", "meta.year", "")
	}
	if m.Summary == "" {
		return oerrors.NewValidationError("project summary is empty", "", "meta.summary", "")
	}
	return nil
}

// Fields returns the metadata as a field mapping for name composition.
// String values are slugified so separator characters cannot leak into the
// composed name; absent optionals are omitted.
func (m Metadata) Fields() map[string]string {
	fields := map[string]string{
		"year":    strconv.Itoa(m.Year),
		"summary": core.Slugify(m.Summary),
	}
	if m.Internal {
		fields["internal"] = "internal"
	} else {
		fields["internal"] = "external"
	}
	if m.ResearcherName != "" {
		fields["researcherName"] = core.Slugify(m.ResearcherName)
	}
	if m.OrganisationName != "" {
		fields["organisationName"] = core.Slugify(m.OrganisationName)
	}
	return fields
}
