// Package output renders invoice reports for humans and machines.
package output

import (
	"fmt"
	"io"

	"shipops/core/invoice"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatCSV matches the spreadsheet-export column order
	FormatCSV Format = "csv"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report to w
	Render(w io.Writer, report *invoice.Report) error
}

// For returns the formatter for a format name
func For(name string) (Formatter, error) {
	switch Format(name) {
	case FormatCLI, "":
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatCSV:
		return &CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
}
