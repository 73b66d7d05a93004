package core

import (
	oerrors "github.com/datafiler/cli/internal/errors"
	"github.com/datafiler/cli/internal/template"
)

// ResolvePath maps a field mapping to destination directory segments, one
// per layout field in structure order. Fields with an alias table are
// replaced by their canonical label; a raw value absent from the table
// passes through unchanged so templates stay forward compatible with new
// raw labels.
func ResolvePath(tpl *template.Template, fields map[string]string) ([]string, error) {
	segments := make([]string, 0, len(tpl.Layout.Structure))
	for _, field := range tpl.Layout.Structure {
		value, ok := fields[field]
		if !ok {
			return nil, oerrors.NewMissingLayoutFieldError(field)
		}
		if table, ok := tpl.Layout.Mapping[field]; ok {
			if label, ok := table[value]; ok {
				value = label
			}
		}
		segments = append(segments, value)
	}
	return segments, nil
}
