package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit_WritesDefaultConfig(t *testing.T) {
	// Point HOME at a temp dir so ~/.filer lands there
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv("FILER_CONFIG", "")

	cmd := NewConfigInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(tmpHome, ".filer", "config.yaml"))
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv("FILER_CONFIG", "")

	filerDir := filepath.Join(tmpHome, ".filer")
	require.NoError(t, os.MkdirAll(filerDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(filerDir, "config.yaml"), []byte("root: .\n"), 0o600))

	cmd := NewConfigInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	force := NewConfigInitCmd()
	force.SetArgs([]string{"--force"})
	force.SetOut(&bytes.Buffer{})
	force.SetErr(&bytes.Buffer{})
	require.NoError(t, force.Execute())
}

func TestConfigVet_ValidConfig(t *testing.T) {
	isolateConfig(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("root: /data\noutput: json\n"), 0o644))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"config", "vet", "--config", configFile})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
}

func TestConfigVet_MissingFile(t *testing.T) {
	isolateConfig(t)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"config", "vet", "--config", filepath.Join(t.TempDir(), "nope.yaml")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfigVet_InvalidOutputFormat(t *testing.T) {
	isolateConfig(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("output: xml\n"), 0o644))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"config", "vet", "--config", configFile})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
