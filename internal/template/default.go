package template

import (
	_ "embed"
	"sync"
)

// defaultYAML is the built-in sensor-data template used when a project or
// command supplies none. It files captures under
// sensor/date/trial/procLevel and tolerates a trailing free-form token.
//
//go:embed default.yaml
var defaultYAML []byte

var (
	defaultOnce sync.Once
	defaultTpl  *Template
)

// Default returns the built-in template. The parse cannot fail; the default
// YAML is covered by tests.
func Default() *Template {
	defaultOnce.Do(func() {
		t, err := Parse(defaultYAML)
		if err != nil {
			panic("template: built-in default is invalid: " + err.Error())
		}
		defaultTpl = t
	})
	return defaultTpl
}

// DefaultYAML returns a copy of the built-in template source, for
// `filer template init`.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}
