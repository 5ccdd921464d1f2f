// Package types - Service listing types
package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyPHP Currency = "PHP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// PricingPolicy is the rule by which a listing's price is computed
// from the base price and a usage context.
type PricingPolicy string

const (
	// PolicyPerUnit charges price * quantity
	PolicyPerUnit PricingPolicy = "per_unit"

	// PolicyPerTable charges price * tableCount
	PolicyPerTable PricingPolicy = "per_table"

	// PolicyFixedPackage charges the bare price regardless of context
	PolicyFixedPackage PricingPolicy = "fixed_package"

	// PolicyTieredPackage charges the price of the selected tier
	PolicyTieredPackage PricingPolicy = "tiered_package"

	// PolicyTimeBased charges hourlyRate * eventDuration
	PolicyTimeBased PricingPolicy = "time_based"

	// PolicyUnrecognized is the explicit fallback for policy drift.
	// It is never stored; Resolve maps unknown strings to it.
	PolicyUnrecognized PricingPolicy = "unrecognized"
)

// ResolvePolicy maps a raw policy string onto the closed policy set.
// Unknown values resolve to PolicyUnrecognized rather than failing,
// so an in-flight booking survives catalog drift.
func ResolvePolicy(raw string) PricingPolicy {
	switch PricingPolicy(raw) {
	case PolicyPerUnit, PolicyPerTable, PolicyFixedPackage, PolicyTieredPackage, PolicyTimeBased:
		return PricingPolicy(raw)
	default:
		return PolicyUnrecognized
	}
}

// TieredPrice is one entry of a listing's ordered tier ladder
type TieredPrice struct {
	// Label is an optional vendor-facing tier name
	Label string `json:"label,omitempty"`

	// Price is the amount charged when this tier is selected
	Price decimal.Decimal `json:"price"`
}

// ServiceListing is the engine's read-only view of a vendor listing.
// Only the fields that drive pricing and cancellation are modeled;
// catalog metadata stays in the persistence layer.
type ServiceListing struct {
	// ID identifies the listing
	ID string `json:"id"`

	// Name is a human-readable listing label
	Name string `json:"name,omitempty"`

	// PricingPolicy selects the pricing rule
	PricingPolicy string `json:"pricing_policy"`

	// Price is the base price. Required for per_unit, per_table and
	// fixed_package, and used as the fallback for unrecognized policies.
	Price decimal.Decimal `json:"price"`

	// HourlyRate is required for time_based listings
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`

	// TieredPricing is the ordered tier ladder for tiered_package listings
	TieredPricing []TieredPrice `json:"tiered_pricing,omitempty"`

	// CancellationFeeTiers is the vendor's band -> fee fraction override.
	// It may arrive as a JSON object or as a JSON-encoded string; parsing
	// is deferred to the cancellation calculator, which falls back to the
	// platform defaults when this blob is absent or malformed.
	CancellationFeeTiers *FeeTierConfig `json:"cancellation_fee_tiers,omitempty"`

	// Currency is the listing currency
	Currency Currency `json:"currency,omitempty"`
}

// Policy returns the listing's resolved pricing policy
func (l *ServiceListing) Policy() PricingPolicy {
	return ResolvePolicy(l.PricingPolicy)
}

// FeeTierConfig holds the raw cancellation fee tier configuration as it
// arrived from the catalog. Vendors set this once through the admin UI;
// historically it was stored either as a JSON object or as a doubly
// encoded JSON string, so the raw bytes are kept and decoded lazily.
type FeeTierConfig struct {
	raw json.RawMessage
}

// NewFeeTierConfig wraps raw configuration bytes
func NewFeeTierConfig(raw json.RawMessage) *FeeTierConfig {
	return &FeeTierConfig{raw: raw}
}

// Raw returns the underlying bytes
func (c *FeeTierConfig) Raw() json.RawMessage {
	return c.raw
}

// IsZero reports whether no configuration was supplied
func (c *FeeTierConfig) IsZero() bool {
	return c == nil || len(c.raw) == 0 || string(c.raw) == "null"
}

// UnmarshalJSON keeps the raw bytes for deferred decoding
func (c *FeeTierConfig) UnmarshalJSON(data []byte) error {
	c.raw = append(c.raw[:0], data...)
	return nil
}

// MarshalJSON writes the raw bytes back out unchanged
func (c *FeeTierConfig) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return c.raw, nil
}

// Fractions decodes the configuration into a band -> fee fraction map.
// It accepts either a JSON object or a JSON string containing an
// encoded object. The returned map uses raw band keys; validation
// against the known band set happens in the cancellation calculator.
func (c *FeeTierConfig) Fractions() (map[string]decimal.Decimal, error) {
	if c.IsZero() {
		return nil, nil
	}

	data := c.raw
	// A JSON string value carries a second layer of encoding.
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, err
		}
		data = []byte(inner)
	}

	var fractions map[string]decimal.Decimal
	if err := json.Unmarshal(data, &fractions); err != nil {
		return nil, err
	}
	return fractions, nil
}
