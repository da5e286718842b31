package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format selects how output is written
type Format string

const (
	// FormatText writes one line per item, tab separated
	FormatText Format = "text"
	// FormatCSV writes comma separated values with a header row
	FormatCSV Format = "csv"
	// FormatJSON writes an indented JSON array
	FormatJSON Format = "json"
	// FormatYAML writes a YAML sequence
	FormatYAML Format = "yaml"
	// FormatTable draws a bordered table for terminals
	FormatTable Format = "table"
)

// ParseFormat validates a user-supplied format name. An empty name selects
// FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatCSV, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
