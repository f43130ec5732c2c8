package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts json, yaml (or yml) and markdown (or md).
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected json|yaml|markdown)", value)
	}
}

// Export writes entries to w. JSON and YAML use the stored schema; Markdown
// groups entries under one heading per local day.
func Export(w io.Writer, entries []Entry, format Format) error {
	if format == FormatMarkdown {
		return writeMarkdown(w, entries)
	}

	records := make([]record, 0, len(entries))
	for _, e := range entries {
		records = append(records, toRecord(e))
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid format %q (expected json|yaml|markdown)", format)
	}
}
