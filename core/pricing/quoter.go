// Package pricing implements the price quoter: the pure calculation of
// what a service listing costs under its pricing policy and a usage
// context. It never mutates its inputs and holds no state, so it is
// safe to call from any number of concurrent request handlers.
package pricing

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wedding-billing/core/types"
	"wedding-billing/internal/errors"
	"wedding-billing/internal/logging"
)

// CalculatePrice returns the amount owed for a listing given its
// pricing policy and the usage context. Missing or invalid context for
// the active policy is an error; silently defaulting here would
// misstate money owed. An unrecognized policy is the one deliberate
// exception: it falls back to the bare listing price with a structured
// warning, so catalog drift is observable without breaking an
// in-flight booking.
func CalculatePrice(listing *types.ServiceListing, ctx *types.PricingContext) (decimal.Decimal, error) {
	if listing == nil {
		return decimal.Zero, errors.MissingField("listing")
	}
	if ctx == nil {
		ctx = &types.PricingContext{}
	}

	switch listing.Policy() {
	case types.PolicyPerUnit:
		if ctx.Quantity == nil {
			return decimal.Zero, errors.MissingField("quantity")
		}
		if ctx.Quantity.IsNegative() {
			return decimal.Zero, errors.InvalidValue("quantity", "must not be negative")
		}
		return listing.Price.Mul(*ctx.Quantity), nil

	case types.PolicyPerTable:
		if ctx.TableCount == nil {
			return decimal.Zero, errors.MissingField("table_count")
		}
		if ctx.TableCount.IsNegative() {
			return decimal.Zero, errors.InvalidValue("table_count", "must not be negative")
		}
		return listing.Price.Mul(*ctx.TableCount), nil

	case types.PolicyFixedPackage:
		// Quantity-insensitive: whatever the context says, the package
		// costs its listed price.
		return listing.Price, nil

	case types.PolicyTieredPackage:
		if len(listing.TieredPricing) == 0 {
			return decimal.Zero, errors.MissingField("tiered_pricing")
		}
		if ctx.SelectedTierIndex == nil {
			return decimal.Zero, errors.MissingField("selected_tier_index")
		}
		idx := *ctx.SelectedTierIndex
		if idx < 0 || idx >= len(listing.TieredPricing) {
			return decimal.Zero, errors.InvalidValue("selected_tier_index", "out of range").
				WithContext("index", idx).
				WithContext("tiers", len(listing.TieredPricing))
		}
		return listing.TieredPricing[idx].Price, nil

	case types.PolicyTimeBased:
		if listing.HourlyRate == nil {
			return decimal.Zero, errors.MissingField("hourly_rate")
		}
		if ctx.EventDuration == nil {
			return decimal.Zero, errors.MissingField("event_duration")
		}
		if ctx.EventDuration.IsNegative() {
			return decimal.Zero, errors.InvalidValue("event_duration", "must not be negative")
		}
		return listing.HourlyRate.Mul(*ctx.EventDuration), nil

	default:
		logging.Named("pricing").Warn("unrecognized pricing policy, falling back to base price",
			zap.String("listing_id", listing.ID),
			zap.String("pricing_policy", listing.PricingPolicy))
		return listing.Price, nil
	}
}
