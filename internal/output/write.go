package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// WriteObject writes obj to w in the given format. YAML output goes through
// the object's JSON tags, so a single set of tags drives both formats.
// FormatTable is not handled here; table output is shaped per command.
func WriteObject(w io.Writer, obj interface{}, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(obj)
	case FormatYAML, "":
		data, err := yaml.Marshal(obj)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
