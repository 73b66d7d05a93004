package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/datafiler/cli/internal/errors"
)

func TestTemplateInit_WritesBuiltin(t *testing.T) {
	isolateConfig(t)
	dest := filepath.Join(t.TempDir(), "naming.yaml")

	cmd := NewTemplateInitCmd()
	cmd.SetArgs([]string{dest})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, dest)

	// The written template must vet clean
	vet := NewTemplateVetCmd()
	vet.SetArgs([]string{dest})
	vet.SetOut(&bytes.Buffer{})
	vet.SetErr(&bytes.Buffer{})
	require.NoError(t, vet.Execute())
}

func TestTemplateInit_RefusesOverwrite(t *testing.T) {
	isolateConfig(t)
	dest := filepath.Join(t.TempDir(), "naming.yaml")
	require.NoError(t, os.WriteFile(dest, []byte("existing"), 0o644))

	cmd := NewTemplateInitCmd()
	cmd.SetArgs([]string{dest})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// --force overwrites
	force := NewTemplateInitCmd()
	force.SetArgs([]string{dest, "--force"})
	force.SetOut(&bytes.Buffer{})
	force.SetErr(&bytes.Buffer{})
	require.NoError(t, force.Execute())
}

func TestTemplateVet_InvalidTemplate(t *testing.T) {
	isolateConfig(t)
	dest := filepath.Join(t.TempDir(), "broken.yaml")

	// Layout references a field no rule declares
	content := `
naming_convention:
  sep: "_"
  structure: [year, summary]
layout:
  structure: [nosuchfield]
file:
  "*":
    sep: "_"
    components:
      - [sensor, '\w+']
`
	require.NoError(t, os.WriteFile(dest, []byte(content), 0o644))

	cmd := NewTemplateVetCmd()
	cmd.SetArgs([]string{dest})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestTemplateVet_MissingFile(t *testing.T) {
	isolateConfig(t)

	cmd := NewTemplateVetCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}
