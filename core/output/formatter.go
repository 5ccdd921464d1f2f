// Package output renders engine results for human and machine
// consumers.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"wedding-billing/core/quote"
	"wedding-billing/core/types"
	"wedding-billing/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// RenderQuote writes a booking quote in the requested format
func RenderQuote(w io.Writer, q *quote.BookingQuote, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, q)
	case FormatCLI, "":
		renderQuoteTable(w, q)
		return nil
	default:
		return errors.Newf(errors.TypeConfig, "unsupported output format %q", format)
	}
}

// RenderSettlement writes a cancellation outcome in the requested format
func RenderSettlement(w io.Writer, out *types.CancellationOutcome, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, out)
	case FormatCLI, "":
		renderSettlementTable(w, out)
		return nil
	default:
		return errors.Newf(errors.TypeConfig, "unsupported output format %q", format)
	}
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderQuoteTable(w io.Writer, q *quote.BookingQuote) {
	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                             BOOKING QUOTE                               │")
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")

	for _, line := range q.Lines {
		fmt.Fprintf(w, "│ %-50s %20s │\n",
			truncate(line.Label, 50),
			fmt.Sprintf("%s %s", q.Currency, line.Amount.StringFixed(2)))
		fmt.Fprintf(w, "│   └─ %-67s │\n", truncate(line.Formula, 67))
	}

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Fprintf(w, "│ %-50s %20s │\n",
		"TOTAL",
		fmt.Sprintf("%s %s", q.Currency, q.Total.StringFixed(2)))
	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")
}

func renderSettlementTable(w io.Writer, out *types.CancellationOutcome) {
	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                        CANCELLATION SETTLEMENT                          │")
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")

	row := func(label, value string) {
		fmt.Fprintf(w, "│ %-40s %30s │\n", label, value)
	}
	row("Days until wedding", fmt.Sprintf("%d", out.DaysUntilWedding))
	if out.Tier != "" {
		row("Fee band", out.Tier)
	}
	row("Total booking amount", out.TotalBookingAmount.StringFixed(2))
	row("Fee percentage", out.FeePercentage.Mul(hundred).StringFixed(0)+"%")
	row("Cancellation fee", out.FeeAmount.StringFixed(2))
	row("Amount already paid", out.AmountPaid.StringFixed(2))
	row("Outstanding settlement", out.FeeDifference.StringFixed(2))
	if out.RequiresPayment {
		row("Payment required", "YES")
	} else {
		row("Payment required", "no")
	}

	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")
	if out.Reason != "" {
		fmt.Fprintf(w, "\n%s\n", out.Reason)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
