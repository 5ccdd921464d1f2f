// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wedding-billing/core/output"
	"wedding-billing/core/quote"
	"wedding-billing/core/types"
	"wedding-billing/internal/config"
)

var quoteFormat string

// quoteRequest is the JSON input for the quote command: one or more
// service selections, each a listing plus its usage context.
type quoteRequest struct {
	Currency types.Currency           `json:"currency,omitempty"`
	Services []quote.ServiceSelection `json:"services"`
}

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <request.json>",
	Short: "Price selected services and print the aggregated quote",
	Long: `Price one or more service selections and print the booking quote.

The request file holds the selected listings and their usage contexts:

  {
    "currency": "USD",
    "services": [
      {
        "listing": {"id": "catering-1", "pricing_policy": "per_table", "price": "50.00"},
        "context": {"table_count": "10"}
      }
    ]
  }

Examples:
  wedding-billing quote booking.json
  wedding-billing quote --format json booking.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	req, err := loadQuoteRequest(args[0])
	if err != nil {
		return err
	}

	currency := req.Currency
	if currency == "" {
		currency = config.Get().Billing.DefaultCurrency
	}

	q, err := quote.QuoteBooking(req.Services, currency)
	if err != nil {
		return err
	}

	return output.RenderQuote(os.Stdout, q, resolveFormat(quoteFormat))
}

func loadQuoteRequest(path string) (*quoteRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}

	var req quoteRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	if len(req.Services) == 0 {
		return nil, fmt.Errorf("request has no services to price")
	}
	return &req, nil
}

func resolveFormat(flag string) output.Format {
	if flag != "" {
		return output.Format(flag)
	}
	return output.Format(config.Get().Output.DefaultFormat)
}
