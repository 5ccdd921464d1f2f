// Package cancellation - Settlement calculation
package cancellation

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wedding-billing/core/types"
	"wedding-billing/internal/errors"
	"wedding-billing/internal/logging"
)

// Calculator computes cancellation settlements. It is pure: it reads
// its arguments, applies the policy, and returns an outcome. The clock
// is injectable so tests and replays are deterministic.
type Calculator struct {
	policy *Policy
	clock  func() time.Time
	log    *zap.Logger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithPolicy uses a custom platform policy
func WithPolicy(p *Policy) Option {
	return func(c *Calculator) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithClock pins the calculator's notion of "now"
func WithClock(clock func() time.Time) Option {
	return func(c *Calculator) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewCalculator creates a calculator with the default policy and the
// system clock unless options say otherwise.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		policy: DefaultPolicy(),
		clock:  time.Now,
		log:    logging.Named("cancellation"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Settle computes the cancellation fee and the settlement against
// payments already made. The caller must supply a consistent snapshot
// of the booking and its payments; the outcome is only valid for that
// snapshot. Malformed per-listing fee tier configuration never aborts
// a cancellation (defaults apply instead); a missing reserved date or
// an empty service selection is a caller bug and fails loudly.
func (c *Calculator) Settle(booking *types.Booking, listing *types.ServiceListing) (*types.CancellationOutcome, error) {
	if booking == nil {
		return nil, errors.MissingField("booking")
	}
	if booking.ReservedDate.IsZero() {
		return nil, errors.MissingField("reserved_date")
	}

	amountPaid := booking.AmountPaid()
	daysUntil := c.daysUntilWedding(booking.ReservedDate)

	// No commitment has been made (or nothing collected) before these
	// milestones, so cancellation carries no cost.
	switch {
	case booking.Status == types.StatusPendingVendorConfirmation:
		return zeroFeeOutcome(amountPaid, daysUntil, "",
			"booking has not been confirmed by the vendor; no cancellation fee applies"), nil
	case booking.Status == types.StatusPendingDepositPayment && amountPaid.IsZero():
		return zeroFeeOutcome(amountPaid, daysUntil, "",
			"deposit has not been paid; no cancellation fee applies"), nil
	}

	if len(booking.SelectedServices) == 0 {
		return nil, errors.MissingField("selected_services")
	}
	totalAmount := booking.TotalAmount()

	// Defensive: a passed event date should not reach cancellation,
	// but if it does the fee is zero rather than garbage.
	if daysUntil <= 0 {
		out := zeroFeeOutcome(amountPaid, daysUntil, TierEventPassed,
			"event date has passed; no cancellation fee applies")
		out.TotalBookingAmount = totalAmount
		return out, nil
	}

	band, fraction := c.resolveBand(daysUntil, listing)

	feeAmount := totalAmount.Mul(fraction).Round(2)
	feeDifference := feeAmount.Sub(amountPaid)
	if feeDifference.IsNegative() {
		feeDifference = decimal.Zero
	}

	return &types.CancellationOutcome{
		FeeAmount:          feeAmount,
		FeePercentage:      fraction,
		AmountPaid:         amountPaid,
		FeeDifference:      feeDifference,
		RequiresPayment:    feeDifference.IsPositive(),
		DaysUntilWedding:   daysUntil,
		Tier:               band.Key,
		TotalBookingAmount: totalAmount,
	}, nil
}

// daysUntilWedding is the ceiling day count from now to the event
func (c *Calculator) daysUntilWedding(reserved time.Time) int {
	hours := reserved.Sub(c.clock()).Hours()
	return int(math.Ceil(hours / 24))
}

// resolveBand selects the band covering daysUntil and its normalized
// fee fraction, overlaying the listing's tier configuration when it
// parses cleanly.
func (c *Calculator) resolveBand(daysUntil int, listing *types.ServiceListing) (Band, decimal.Decimal) {
	var overrides map[string]decimal.Decimal
	if listing != nil && !listing.CancellationFeeTiers.IsZero() {
		parsed, err := listing.CancellationFeeTiers.Fractions()
		if err != nil {
			c.log.Warn("unparseable cancellation fee tiers, using platform defaults",
				zap.String("listing_id", listing.ID),
				zap.Error(err))
		} else {
			overrides = parsed
		}
	}

	fractions := c.policy.effectiveFractions(overrides, c.log)
	for i, band := range Bands {
		if band.Contains(daysUntil) {
			return band, fractions[i]
		}
	}

	// Unreachable: Bands partitions all positive day counts. Charge the
	// nearest band rather than zero if it ever happens.
	last := len(Bands) - 1
	return Bands[last], fractions[last]
}

func zeroFeeOutcome(amountPaid decimal.Decimal, daysUntil int, tier, reason string) *types.CancellationOutcome {
	return &types.CancellationOutcome{
		FeeAmount:          decimal.Zero,
		FeePercentage:      decimal.Zero,
		AmountPaid:         amountPaid,
		FeeDifference:      decimal.Zero,
		RequiresPayment:    false,
		DaysUntilWedding:   daysUntil,
		Tier:               tier,
		TotalBookingAmount: decimal.Zero,
		Reason:             reason,
	}
}

// CalculateFeeAndPayment computes a settlement with the default policy
// and the system clock. Callers that need a pinned clock or a custom
// policy construct their own Calculator.
func CalculateFeeAndPayment(booking *types.Booking, listing *types.ServiceListing) (*types.CancellationOutcome, error) {
	return NewCalculator().Settle(booking, listing)
}
