package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/datafiler/cli/internal/core"
	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/fileops"
	"github.com/datafiler/cli/internal/template"
)

// MetadataName is the metadata file kept at every project root.
const MetadataName = "metadata.yaml"

// Manager owns one project: its parent directory, template, and metadata.
type Manager struct {
	// Root is the directory the project lives under.
	Root string

	// Template is the project's naming template, shared read-only.
	Template *template.Template

	// Meta is the project metadata the project name is composed from.
	Meta Metadata
}

// metadataFile is the on-disk shape of metadata.yaml: the full template
// with the project metadata inlined.
type metadataFile struct {
	template.Template `yaml:",inline"`
	Meta              Metadata `yaml:"meta"`
}

// New creates a manager for a project that may not exist on disk yet.
func New(root string, tpl *template.Template, meta Metadata) (*Manager, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if tpl == nil {
		tpl = template.Default()
	}
	return &Manager{Root: root, Template: tpl, Meta: meta}, nil
}

// Load reads a project back from its metadata file.
func Load(dir string) (*Manager, error) {
	path := filepath.Join(dir, MetadataName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("not a project directory: %s", dir), path,
				"Run `filer init` to create a project here.")
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var mf metadataFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("parsing project metadata: %v", err), path, "", "")
	}
	tpl := mf.Template
	if err := template.Validate(&tpl); err != nil {
		var detail *oerrors.DetailError
		if errors.As(err, &detail) && detail.Location == "" {
			detail.Location = path
		}
		return nil, err
	}
	if err := mf.Meta.Validate(); err != nil {
		return nil, err
	}

	return &Manager{
		Root:     filepath.Dir(dir),
		Template: &tpl,
		Meta:     mf.Meta,
	}, nil
}

// ProjectName composes the canonical project directory name from the
// naming convention and metadata.
func (m *Manager) ProjectName() string {
	return core.ComposeName(m.Template, m.Meta.Fields(), "", "")
}

// Location is the project directory: Root joined with the project name.
func (m *Manager) Location() string {
	return filepath.Join(m.Root, m.ProjectName())
}

// Init creates the project directory and writes its metadata file.
// Initialising an already-initialised project is an error.
func (m *Manager) Init() error {
	location := m.Location()
	metaPath := filepath.Join(location, MetadataName)
	if _, err := os.Stat(metaPath); err == nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("project already initialised: %s", location), metaPath,
			"", "Use `filer place` to add files to an existing project.")
	}

	if err := fileops.EnsureDir(location); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	data, err := yaml.Marshal(metadataFile{Template: *m.Template, Meta: m.Meta})
	if err != nil {
		return fmt.Errorf("encoding project metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", metaPath, err)
	}
	return nil
}

// Placement is one planned file destination inside a project.
type Placement struct {
	// Mapping is the decomposition result the destination derives from.
	Mapping *core.FieldMapping

	// Segments are the layout directory segments relative to the project root.
	Segments []string

	// Name is the destination filename.
	Name string
}

// Dir returns the absolute destination directory under location.
func (p *Placement) Dir(location string) string {
	return filepath.Join(append([]string{location}, p.Segments...)...)
}

// PlaceOptions controls destination naming and the file operation.
type PlaceOptions struct {
	// Suffix is appended to the destination filename stem.
	Suffix string

	// Ext overrides the destination extension; empty keeps the original.
	Ext string

	// Move removes the source after a successful copy.
	Move bool
}

// Plan decomposes a filename and derives its placement without touching
// the filesystem.
func (m *Manager) Plan(filename string, opts PlaceOptions) (*Placement, error) {
	fm, err := core.Decompose(m.Template, filename)
	if err != nil {
		return nil, err
	}
	segments, err := core.ResolvePath(m.Template, fm.Fields)
	if err != nil {
		return nil, err
	}

	sep := "_"
	if spec, ok := m.Template.File.Rule(fm.Rule); ok {
		sep = spec.Sep
	}
	return &Placement{
		Mapping:  fm,
		Segments: segments,
		Name:     fm.FileName(sep, opts.Suffix, opts.Ext),
	}, nil
}

// PlaceFile plans a placement for src and copies (or moves) it into the
// project.
func (m *Manager) PlaceFile(src string, opts PlaceOptions) (*Placement, error) {
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(fmt.Sprintf("source file not found: %s", src), src, "")
		}
		return nil, fmt.Errorf("checking %s: %w", src, err)
	}

	placement, err := m.Plan(filepath.Base(src), opts)
	if err != nil {
		return nil, err
	}

	dir := placement.Dir(m.Location())
	if err := fileops.EnsureDir(dir); err != nil {
		return nil, err
	}

	dst := filepath.Join(dir, placement.Name)
	if opts.Move {
		err = fileops.MoveFile(src, dst)
	} else {
		err = fileops.CopyFile(src, dst)
	}
	if err != nil {
		return nil, err
	}
	return placement, nil
}
