// Package types - Pricing context
package types

import (
	"github.com/shopspring/decimal"
)

// PricingContext carries the usage inputs a pricing policy needs.
// Fields are pointers so that "absent" and "zero" stay distinguishable:
// a per_unit listing with quantity 0 prices to zero, while a per_unit
// listing with no quantity at all is a caller error.
type PricingContext struct {
	// Quantity is required for per_unit listings
	Quantity *decimal.Decimal `json:"quantity,omitempty"`

	// TableCount is required for per_table listings
	TableCount *decimal.Decimal `json:"table_count,omitempty"`

	// SelectedTierIndex is required for tiered_package listings
	SelectedTierIndex *int `json:"selected_tier_index,omitempty"`

	// EventDuration is the event length in hours, required for time_based listings
	EventDuration *decimal.Decimal `json:"event_duration,omitempty"`
}
