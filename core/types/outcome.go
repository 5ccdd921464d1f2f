// Package types - Cancellation settlement outcome
package types

import (
	"github.com/shopspring/decimal"
)

// CancellationOutcome is the settlement computed when a booking is
// cancelled. It is ephemeral: the orchestrator persists the relevant
// fields on a cancellation record and discards the rest. Surplus
// handling (refunding payments beyond the fee) is the external refund
// workflow's job; this outcome only states what the fee is and whether
// a top-up payment is still owed.
type CancellationOutcome struct {
	// FeeAmount is the cancellation fee, rounded to 2 decimal places
	FeeAmount decimal.Decimal `json:"fee_amount"`

	// FeePercentage is the applied fee fraction in [0, 1]
	FeePercentage decimal.Decimal `json:"fee_percentage"`

	// AmountPaid is the sum of payments recorded at snapshot time
	AmountPaid decimal.Decimal `json:"amount_paid"`

	// FeeDifference is max(0, FeeAmount - AmountPaid)
	FeeDifference decimal.Decimal `json:"fee_difference"`

	// RequiresPayment reports whether FeeDifference is positive
	RequiresPayment bool `json:"requires_payment"`

	// DaysUntilWedding is the ceiling day count from "now" to the event
	DaysUntilWedding int `json:"days_until_wedding"`

	// Tier is the band label the fee was drawn from
	Tier string `json:"tier"`

	// TotalBookingAmount is the sum of selected service prices
	TotalBookingAmount decimal.Decimal `json:"total_booking_amount"`

	// Reason explains zero-fee special cases, empty otherwise
	Reason string `json:"reason,omitempty"`
}
