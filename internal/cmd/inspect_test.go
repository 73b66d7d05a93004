package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/datafiler/cli/internal/errors"
)

func TestNewInspectCmd(t *testing.T) {
	cmd := NewInspectCmd()

	assert.Equal(t, "inspect <file>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("template"))
}

func TestInspect_JSON(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"inspect", "2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin", "-o", "json"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	var report struct {
		File   string            `json:"file"`
		Rule   string            `json:"rule"`
		Fields map[string]string `json:"fields"`
		Rest   string            `json:"rest"`
		Path   string            `json:"path"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, "2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin", report.File)
	assert.Equal(t, "*", report.Rule)
	assert.Equal(t, "2025-08-14", report.Fields["date"])
	assert.Equal(t, "06-30-03", report.Fields["time"])
	assert.Equal(t, "393242", report.Fields["ms"])
	assert.Equal(t, "test2", report.Fields["trial"])
	assert.Equal(t, "jai1", report.Fields["sensor"])
	assert.Equal(t, "raw", report.Fields["procLevel"])
	assert.Equal(t, "0", report.Rest)
	assert.Equal(t, "jai1/2025-08-14/test2/T0-raw", report.Path)
}

func TestInspect_Table(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"inspect", "2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin", "-o", "table"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
}

func TestInspect_UndecomposableName(t *testing.T) {
	isolateConfig(t)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"inspect", "undecomposable.bin"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitRequiredField, oerrors.ExitCodeFromError(err))
}

func TestInspect_StripsDirectory(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"inspect", "/data/incoming/2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin", "-o", "json"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"file": "2025-08-14_06-30-03_393242_0814_test2_jai1_0.bin"`)
}
