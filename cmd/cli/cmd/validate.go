// Package cmd - validate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wedding-billing/core/pricing"
	"wedding-billing/core/types"
)

// validateRequest is the JSON input for the validate command
type validateRequest struct {
	PricingPolicy string                `json:"pricing_policy"`
	Context       *types.PricingContext `json:"context,omitempty"`
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <request.json>",
	Short: "Pre-validate a pricing context against a policy",
	Long: `Check whether a pricing context satisfies a pricing policy.

Reports field-level messages without failing, the way a booking form
pre-validates before committing to a price calculation.

Example:
  wedding-billing validate request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	var req validateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}

	result := pricing.ValidatePricingContext(req.PricingPolicy, req.Context)
	if result.IsValid {
		fmt.Println("context is valid")
		return nil
	}

	fmt.Println("context is invalid:")
	for _, msg := range result.Errors {
		fmt.Printf("  - %s\n", msg)
	}
	return nil
}
