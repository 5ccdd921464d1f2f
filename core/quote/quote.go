// Package quote aggregates per-service price quotes into a booking
// total. The orchestrator prices each selected listing through the
// price quoter and persists the sum as the booking total; this package
// makes that loop first-class so every line item carries its own
// lineage.
package quote

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wedding-billing/core/pricing"
	"wedding-billing/core/types"
)

// ServiceSelection pairs a listing with the usage context the couple
// chose for it.
type ServiceSelection struct {
	// Listing is the service listing being priced
	Listing *types.ServiceListing `json:"listing"`

	// Context carries the usage inputs for the listing's policy
	Context *types.PricingContext `json:"context,omitempty"`
}

// LineItem is one priced service on a booking quote
type LineItem struct {
	// ID uniquely identifies this line item
	ID string `json:"id"`

	// ListingID is the priced listing
	ListingID string `json:"listing_id"`

	// Label is a human-readable line label
	Label string `json:"label"`

	// Policy is the pricing policy that was applied
	Policy types.PricingPolicy `json:"policy"`

	// Amount is the quoted price for this line
	Amount decimal.Decimal `json:"amount"`

	// Formula describes how the amount was calculated
	Formula string `json:"formula"`
}

// BookingQuote is the aggregated price for a set of selected services
type BookingQuote struct {
	// Lines are the per-service line items, in selection order
	Lines []LineItem `json:"lines"`

	// Total is the sum of line amounts
	Total decimal.Decimal `json:"total"`

	// Currency is the quote currency
	Currency types.Currency `json:"currency"`
}

// QuoteBooking prices every selection and sums the results. Any
// pricing error aborts the whole quote: a partial total would misstate
// what the couple owes.
func QuoteBooking(selections []ServiceSelection, currency types.Currency) (*BookingQuote, error) {
	q := &BookingQuote{
		Total:    decimal.Zero,
		Currency: currency,
	}

	for _, sel := range selections {
		amount, err := pricing.CalculatePrice(sel.Listing, sel.Context)
		if err != nil {
			return nil, err
		}

		label := sel.Listing.Name
		if label == "" {
			label = sel.Listing.ID
		}

		q.Lines = append(q.Lines, LineItem{
			ID:        uuid.NewString(),
			ListingID: sel.Listing.ID,
			Label:     label,
			Policy:    sel.Listing.Policy(),
			Amount:    amount,
			Formula:   formula(sel.Listing, sel.Context, amount),
		})
		q.Total = q.Total.Add(amount)
	}

	return q, nil
}

// formula renders a human-readable account of the applied rule
func formula(listing *types.ServiceListing, ctx *types.PricingContext, amount decimal.Decimal) string {
	switch listing.Policy() {
	case types.PolicyPerUnit:
		return fmt.Sprintf("%s/unit * %s units", listing.Price, ctx.Quantity)
	case types.PolicyPerTable:
		return fmt.Sprintf("%s/table * %s tables", listing.Price, ctx.TableCount)
	case types.PolicyFixedPackage:
		return fmt.Sprintf("fixed package %s", listing.Price)
	case types.PolicyTieredPackage:
		return fmt.Sprintf("tier %d of %d", *ctx.SelectedTierIndex+1, len(listing.TieredPricing))
	case types.PolicyTimeBased:
		return fmt.Sprintf("%s/hour * %s hours", listing.HourlyRate, ctx.EventDuration)
	default:
		return fmt.Sprintf("base price %s (unrecognized policy %q)", amount, listing.PricingPolicy)
	}
}
