// Package cancellation implements the cancellation settlement
// calculator: the fee owed when a booking is cancelled, and the
// reconciliation of that fee against payments already made.
package cancellation

import (
	"go.uber.org/zap"

	"github.com/shopspring/decimal"

	"wedding-billing/internal/logging"
)

// Band is a contiguous interval of days-until-event mapped to a
// cancellation fee fraction. Bands are ordered from furthest from the
// event to nearest; together they partition [1, +inf). Days at or
// below zero (event already passed) are an explicit zero-fee case
// outside the band table.
type Band struct {
	// Key is the stable identifier vendors use in overrides
	Key string

	// Label is the human-readable band description
	Label string

	// MinDays is the inclusive lower bound in days until the event
	MinDays int

	// MaxDays is the inclusive upper bound; Unbounded for the furthest band
	MaxDays int
}

// Unbounded marks a band with no upper day limit
const Unbounded = -1

// Contains reports whether the band covers the given day count
func (b Band) Contains(days int) bool {
	if days < b.MinDays {
		return false
	}
	return b.MaxDays == Unbounded || days <= b.MaxDays
}

// TierEventPassed is the label returned when the event date has passed
const TierEventPassed = "event_passed"

// Bands is the canonical band table, ordered far to near. The set of
// keys is closed: vendor overrides may change fractions per band but
// never the band boundaries themselves.
var Bands = []Band{
	{Key: "over_90_days", Label: "more than 90 days before the event", MinDays: 91, MaxDays: Unbounded},
	{Key: "days_60_to_90", Label: "60 to 90 days before the event", MinDays: 60, MaxDays: 90},
	{Key: "days_30_to_59", Label: "30 to 59 days before the event", MinDays: 30, MaxDays: 59},
	{Key: "days_7_to_29", Label: "7 to 29 days before the event", MinDays: 7, MaxDays: 29},
	{Key: "under_7_days", Label: "fewer than 7 days before the event", MinDays: 1, MaxDays: 6},
}

// Policy is the platform cancellation fee policy: the default fee
// fraction per band plus the deposit-floor rule. Operators author it
// as a policy file (see LoadPolicyFile); DefaultPolicy returns the
// compiled-in table.
type Policy struct {
	// DepositFraction is the platform's standard deposit percentage
	DepositFraction decimal.Decimal

	// DepositFloorDays is the near-event window (in days) within which
	// no band may charge less than the deposit fraction. Zero disables
	// the floor.
	DepositFloorDays int

	// Fractions maps band key to the default fee fraction in [0, 1]
	Fractions map[string]decimal.Decimal
}

// DefaultPolicy returns the standard platform policy
func DefaultPolicy() *Policy {
	return &Policy{
		DepositFraction:  decimal.NewFromFloat(0.30),
		DepositFloorDays: 30,
		Fractions: map[string]decimal.Decimal{
			"over_90_days":  decimal.NewFromFloat(0.10),
			"days_60_to_90": decimal.NewFromFloat(0.25),
			"days_30_to_59": decimal.NewFromFloat(0.50),
			"days_7_to_29":  decimal.NewFromFloat(0.75),
			"under_7_days":  decimal.NewFromInt(1),
		},
	}
}

// effectiveFractions produces the per-band fee fractions actually used
// for a settlement: policy defaults overlaid with any valid vendor
// overrides, then normalized. Normalization applies the deposit floor
// first, then a monotonic pass so that cancelling closer to the event
// is never cheaper than cancelling further away.
func (p *Policy) effectiveFractions(overrides map[string]decimal.Decimal, log *zap.Logger) []decimal.Decimal {
	if log == nil {
		log = logging.Named("cancellation")
	}

	known := make(map[string]bool, len(Bands))
	for _, b := range Bands {
		known[b.Key] = true
	}
	one := decimal.NewFromInt(1)
	for key, frac := range overrides {
		if !known[key] {
			log.Warn("ignoring unknown cancellation fee band",
				zap.String("band", key))
			delete(overrides, key)
			continue
		}
		if frac.IsNegative() || frac.GreaterThan(one) {
			log.Warn("ignoring out-of-range cancellation fee fraction",
				zap.String("band", key),
				zap.String("fraction", frac.String()))
			delete(overrides, key)
		}
	}

	fractions := make([]decimal.Decimal, len(Bands))
	for i, band := range Bands {
		frac, ok := overrides[band.Key]
		if !ok {
			frac = p.Fractions[band.Key]
		}

		// Deposit floor: near-event bands may not undercut the deposit.
		if p.DepositFloorDays > 0 &&
			band.MaxDays != Unbounded && band.MaxDays < p.DepositFloorDays &&
			frac.LessThan(p.DepositFraction) {
			frac = p.DepositFraction
		}

		// Monotonic pass: never cheaper closer to the event.
		if i > 0 && frac.LessThan(fractions[i-1]) {
			frac = fractions[i-1]
		}

		fractions[i] = frac
	}
	return fractions
}
