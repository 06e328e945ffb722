// Package output - CSV renderer
package output

import (
	"encoding/csv"
	"io"

	"shipops/core/invoice"
)

// CSVFormatter renders a report as CSV in the declared column order
type CSVFormatter struct{}

// Format returns the format type
func (f *CSVFormatter) Format() Format {
	return FormatCSV
}

// Render writes the header row followed by one record per shipment
func (f *CSVFormatter) Render(w io.Writer, report *invoice.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(invoice.Columns); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if err := cw.Write(row.Values()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
