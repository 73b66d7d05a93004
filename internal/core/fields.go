package core

import "strings"

// FieldMapping is the result of decomposing one filename: the extracted
// field values plus the original name, stem, and extension. A mapping is
// created by a single Decompose call and never mutated afterwards; it is
// safe to share across goroutines.
type FieldMapping struct {
	// Name is the original filename.
	Name string

	// Stem is the filename without its extension.
	Stem string

	// Ext is the matched extension, including the leading dot.
	Ext string

	// Rule is the selector of the file rule that matched.
	Rule string

	// Rest is the unconsumed trailing portion of the stem, if any.
	Rest string

	// Fields maps field names to extracted (or defaulted) values.
	Fields map[string]string
}

// Get returns the value for a field.
func (m *FieldMapping) Get(field string) (string, bool) {
	v, ok := m.Fields[field]
	return v, ok
}

// FileName composes the destination filename for the decomposed file: the
// original stem, an optional suffix joined with sep, and the extension.
// An empty ext keeps the original extension.
func (m *FieldMapping) FileName(sep, suffix, ext string) string {
	name := m.Stem
	if suffix != "" {
		name += sep + suffix
	}
	if ext == "" {
		ext = m.Ext
	}
	return name + normalizeExt(ext)
}

func normalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}
