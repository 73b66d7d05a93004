package core

import (
	"strings"

	"github.com/datafiler/cli/internal/template"
)

// ComposeName joins the naming-convention fields present in fields, in
// structure order, using the convention separator. Absent fields are
// omitted from the join. An optional suffix is appended with the same
// separator, then the extension. Pure: same inputs, byte-identical output.
func ComposeName(tpl *template.Template, fields map[string]string, suffix, ext string) string {
	parts := make([]string, 0, len(tpl.NamingConvention.Structure)+1)
	for _, field := range tpl.NamingConvention.Structure {
		if value, ok := fields[field]; ok && value != "" {
			parts = append(parts, value)
		}
	}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, tpl.NamingConvention.Sep) + normalizeExt(ext)
}
