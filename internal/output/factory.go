package output

import (
	"fmt"
	"strings"
)

// GetFormatter returns the formatter registered under name (text, json, csv).
func GetFormatter(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or csv)", name)
	}
}

// Ensure interface implementation
var _ Formatter = (*TextFormatter)(nil)
var _ Formatter = (*JSONFormatter)(nil)
var _ Formatter = (*CSVFormatter)(nil)
