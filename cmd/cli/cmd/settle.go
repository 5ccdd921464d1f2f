// Package cmd - settle command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wedding-billing/core/cancellation"
	"wedding-billing/core/output"
	"wedding-billing/core/types"
	"wedding-billing/internal/config"
)

var (
	settleFormat string
	settleAt     string
)

// settleRequest is the JSON input for the settle command: a booking
// snapshot plus the listing whose fee tier configuration applies.
type settleRequest struct {
	Booking *types.Booking        `json:"booking"`
	Listing *types.ServiceListing `json:"listing,omitempty"`
}

// settleCmd represents the settle command
var settleCmd = &cobra.Command{
	Use:   "settle <request.json>",
	Short: "Compute the cancellation fee and settlement for a booking",
	Long: `Compute the cancellation settlement from a booking snapshot.

The request file holds the booking (status, reserved date, selected
services, payments) and optionally the listing whose cancellation fee
tiers apply. Use --at to pin "now" for reproducible output.

Examples:
  wedding-billing settle cancellation.json
  wedding-billing settle --at 2026-06-01T00:00:00Z cancellation.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSettle,
}

func init() {
	settleCmd.Flags().StringVarP(&settleFormat, "format", "f", "", "output format (cli, json)")
	settleCmd.Flags().StringVar(&settleAt, "at", "", "compute the settlement as of this RFC3339 time")
}

func runSettle(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	var req settleRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}
	if req.Booking == nil {
		return fmt.Errorf("request has no booking")
	}

	opts, err := calculatorOptions()
	if err != nil {
		return err
	}

	calc := cancellation.NewCalculator(opts...)
	outcome, err := calc.Settle(req.Booking, req.Listing)
	if err != nil {
		return err
	}

	return output.RenderSettlement(os.Stdout, outcome, resolveFormat(settleFormat))
}

func calculatorOptions() ([]cancellation.Option, error) {
	var opts []cancellation.Option

	if path := config.Get().Billing.PolicyFile; path != "" {
		policy, err := cancellation.LoadPolicyFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cancellation.WithPolicy(policy))
	}

	if settleAt != "" {
		at, err := time.Parse(time.RFC3339, settleAt)
		if err != nil {
			return nil, fmt.Errorf("invalid --at value: %w", err)
		}
		opts = append(opts, cancellation.WithClock(func() time.Time { return at }))
	}

	return opts, nil
}
