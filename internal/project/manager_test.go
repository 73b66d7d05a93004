package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/template"
	"github.com/datafiler/cli/internal/testutil"
)

func defaultMeta() Metadata {
	return Metadata{
		Year:             2024,
		Summary:          "test project",
		Internal:         true,
		ResearcherName:   "Hoang Son Le",
		OrganisationName: "APPN",
	}
}

func TestProjectName(t *testing.T) {
	cases := []struct {
		name   string
		change func(*Metadata)
		want   string
	}{
		{"default", func(*Metadata) {}, "2024_test-project_internal_hoang-son-le_appn"},
		{"year", func(m *Metadata) { m.Year = 2025 }, "2025_test-project_internal_hoang-son-le_appn"},
		{"external", func(m *Metadata) { m.Internal = false }, "2024_test-project_external_hoang-son-le_appn"},
		{"researcher", func(m *Metadata) { m.ResearcherName = "john doe" }, "2024_test-project_internal_john-doe_appn"},
		{"noResearcher", func(m *Metadata) { m.ResearcherName = "" }, "2024_test-project_internal_appn"},
		{"organisation", func(m *Metadata) { m.OrganisationName = "UOA" }, "2024_test-project_internal_hoang-son-le_uoa"},
		{"noOrganisation", func(m *Metadata) { m.OrganisationName = "" }, "2024_test-project_internal_hoang-son-le"},
		{"minimal", func(m *Metadata) {
			m.Year = 2020
			m.Summary = "demo project"
			m.Internal = false
			m.ResearcherName = ""
			m.OrganisationName = ""
		}, "2020_demo-project_external"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := defaultMeta()
			tc.change(&meta)

			m, err := New(t.TempDir(), nil, meta)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.ProjectName())
			assert.Equal(t, filepath.Join(m.Root, tc.want), m.Location())
		})
	}
}

func TestProjectNamePermutedStructure(t *testing.T) {
	tpl := template.Default()
	permuted := *tpl
	permuted.NamingConvention = template.NamingConvention{
		Sep:       "_",
		Structure: []string{"year", "researcherName", "organisationName"},
	}

	m, err := New(t.TempDir(), &permuted, defaultMeta())
	require.NoError(t, err)
	assert.Equal(t, "2024_hoang-son-le_appn", m.ProjectName())
}

func TestNewRejectsInvalidMetadata(t *testing.T) {
	_, err := New(t.TempDir(), nil, Metadata{Summary: "no year"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	_, err = New(t.TempDir(), nil, Metadata{Year: 2024})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestInitAndLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	m, err := New(root, nil, defaultMeta())
	require.NoError(t, err)
	require.NoError(t, m.Init())

	assert.DirExists(t, m.Location())
	assert.FileExists(t, filepath.Join(m.Location(), MetadataName))

	loaded, err := Load(m.Location())
	require.NoError(t, err)
	assert.Equal(t, m.Location(), loaded.Location())
	assert.Equal(t, m.Meta, loaded.Meta)
	assert.Equal(t, m.Template.Layout, loaded.Template.Layout)
	assert.Equal(t, m.Template.NamingConvention, loaded.Template.NamingConvention)
}

func TestInitTwiceFails(t *testing.T) {
	m, err := New(t.TempDir(), nil, defaultMeta())
	require.NoError(t, err)
	require.NoError(t, m.Init())

	err = m.Init()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestLoadNotAProject(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestLoadRejectsBrokenMetadata(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, MetadataName, "layout:\n  structure: []\nmeta:\n  year: 2024\n  summary: x\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestPlanDerivesPlacement(t *testing.T) {
	m, err := New(t.TempDir(), nil, defaultMeta())
	require.NoError(t, err)

	placement, err := m.Plan("2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin", PlaceOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"jai1", "2025-08-14", "test2", "T0-raw"}, placement.Segments)
	assert.Equal(t, "2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin", placement.Name)
	assert.Equal(t,
		filepath.Join(m.Location(), "jai1", "2025-08-14", "test2", "T0-raw"),
		placement.Dir(m.Location()))
}

func TestPlanWithSuffixAndExt(t *testing.T) {
	m, err := New(t.TempDir(), nil, defaultMeta())
	require.NoError(t, err)

	placement, err := m.Plan("2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin",
		PlaceOptions{Suffix: "preproc-0", Ext: ".jpeg"})
	require.NoError(t, err)
	assert.Equal(t, "2025-08-14_06-30-03_393242_0814_test2_jai1_0_preproc-0.jpeg", placement.Name)
}

func TestPlaceFileCopies(t *testing.T) {
	root := t.TempDir()
	m, err := New(root, nil, defaultMeta())
	require.NoError(t, err)
	require.NoError(t, m.Init())

	src := testutil.WriteFile(t, t.TempDir(), "2025-08-14_06-30-03_393242_0814_test2_jai1_proc.bin", "data")

	placement, err := m.PlaceFile(src, PlaceOptions{})
	require.NoError(t, err)

	dst := filepath.Join(placement.Dir(m.Location()), placement.Name)
	assert.FileExists(t, dst)
	assert.Equal(t, []string{"jai1", "2025-08-14", "test2", "T1-proc"}, placement.Segments)

	// Copy keeps the source.
	assert.FileExists(t, src)
}

func TestPlaceFileMoves(t *testing.T) {
	m, err := New(t.TempDir(), nil, defaultMeta())
	require.NoError(t, err)
	require.NoError(t, m.Init())

	src := testutil.WriteFile(t, t.TempDir(), "2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin", "data")

	placement, err := m.PlaceFile(src, PlaceOptions{Move: true})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(placement.Dir(m.Location()), placement.Name))
	_, statErr := os.Stat(src)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPlaceFileMissingSource(t *testing.T) {
	m, err := New(t.TempDir(), nil, defaultMeta())
	require.NoError(t, err)

	_, err = m.PlaceFile(filepath.Join(t.TempDir(), "nope.bin"), PlaceOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestPlaceFileUndecomposableName(t *testing.T) {
	m, err := New(t.TempDir(), nil, defaultMeta())
	require.NoError(t, err)
	require.NoError(t, m.Init())

	src := testutil.WriteFile(t, t.TempDir(), "notes.txt", "data")

	_, err = m.PlaceFile(src, PlaceOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrRequiredField))
}
