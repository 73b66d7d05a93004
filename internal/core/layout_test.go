package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/template"
)

func TestResolvePathAliasesValues(t *testing.T) {
	tpl := template.Default()
	fields := map[string]string{
		"sensor":    "jai1",
		"date":      "2025-08-14",
		"trial":     "test2",
		"procLevel": "raw",
	}

	segments, err := ResolvePath(tpl, fields)
	require.NoError(t, err)
	assert.Equal(t, []string{"jai1", "2025-08-14", "test2", "T0-raw"}, segments)
}

func TestResolvePathUnknownRawValuePassesThrough(t *testing.T) {
	tpl := template.Default()
	fields := map[string]string{
		"sensor":    "jai1",
		"date":      "2025-08-14",
		"trial":     "test2",
		"procLevel": "T3-experimental",
	}

	segments, err := ResolvePath(tpl, fields)
	require.NoError(t, err)
	assert.Equal(t, "T3-experimental", segments[3])
}

func TestResolvePathMissingField(t *testing.T) {
	tpl := template.Default()
	fields := map[string]string{
		"sensor": "jai1",
		"date":   "2025-08-14",
		// trial absent
		"procLevel": "raw",
	}

	_, err := ResolvePath(tpl, fields)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrMissingLayoutField))

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "trial", detail.Field)
}

func TestResolvePathFieldWithoutAliasTable(t *testing.T) {
	tpl := template.Default()
	fields := map[string]string{
		"sensor":    "jai1",
		"date":      "2025-08-14",
		"trial":     "test2",
		"procLevel": "raw",
	}

	segments, err := ResolvePath(tpl, fields)
	require.NoError(t, err)
	// sensor has no alias table; the raw value is the segment.
	assert.Equal(t, "jai1", segments[0])
}
