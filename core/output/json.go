// Package output - JSON renderer
package output

import (
	"encoding/json"
	"io"

	"shipops/core/invoice"
)

// JSONFormatter renders a report as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the full report, rows and totals, as one JSON document
func (f *JSONFormatter) Render(w io.Writer, report *invoice.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
