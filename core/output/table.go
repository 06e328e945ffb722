// Package output - CLI table renderer
package output

import (
	"fmt"
	"io"
	"time"

	"shipops/core/invoice"
)

// TableFormatter renders a compact human-readable table with a summary
// footer. Intended for terminal use; spreadsheet exports use CSV.
type TableFormatter struct{}

// Format returns the format type
func (f *TableFormatter) Format() Format {
	return FormatCLI
}

// Render writes the table
func (f *TableFormatter) Render(w io.Writer, report *invoice.Report) error {
	const rowFormat = "%-18s %-10s %-9s %-12s %10s %10s %10s\n"

	fmt.Fprintf(w, rowFormat, "TRACKING", "CARRIER", "PAYMENT", "STATUS", "SUBTOTAL", "VAT", "TOTAL")
	for _, row := range report.Rows {
		fmt.Fprintf(w, rowFormat,
			truncate(row.TrackingID, 18),
			truncate(row.Carrier, 10),
			row.PaymentMethod,
			truncate(row.Status, 12),
			row.Subtotal.StringFixed(2),
			row.VAT.StringFixed(2),
			row.Total.StringFixed(2),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Shipments:  %d\n", report.Totals.Shipments)
	fmt.Fprintf(w, "Delivered:  %d\n", report.Totals.Delivered)
	fmt.Fprintf(w, "In transit: %d\n", report.Totals.InTransit)
	fmt.Fprintf(w, "Revenue:    %s\n", report.Totals.Revenue.StringFixed(2))
	fmt.Fprintf(w, "Generated:  %s\n", time.Now().Format(time.RFC3339))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
