package models

import (
	"fmt"
	"strings"
)

// OutputFormat selects how the final summary is serialized at the API
// boundary. It never affects the orchestration itself.
type OutputFormat string

const (
	FormatJSON     OutputFormat = "json"
	FormatText     OutputFormat = "text"
	FormatMarkdown OutputFormat = "markdown"
	FormatPDF      OutputFormat = "pdf"
	FormatDOCX     OutputFormat = "docx"
)

// ParseOutputFormat parses a user-supplied format token. The empty string
// defaults to JSON.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if strings.TrimSpace(s) == "" {
		return FormatJSON, nil
	}
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSON, FormatText, FormatMarkdown, FormatPDF, FormatDOCX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}
