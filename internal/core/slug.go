package core

import (
	"regexp"
	"strings"
)

var (
	nonSlugRunes = regexp.MustCompile(`[^\w\s-]`)
	slugRuns     = regexp.MustCompile(`[\s-]+`)
)

// Slugify turns free text into a lowercase hyphenated slug, e.g.
// "The Plant Accelerator" -> "the-plant-accelerator". Used when composing
// project names so separator characters cannot leak into field values.
func Slugify(text string) string {
	text = strings.ToLower(text)
	text = nonSlugRunes.ReplaceAllString(text, "")
	text = slugRuns.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}
