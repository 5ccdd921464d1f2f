// Package pricing - Context pre-validation
package pricing

import (
	"fmt"

	"wedding-billing/core/types"
)

// ValidationResult reports whether a pricing context satisfies a
// policy, with field-level messages suitable for a booking form.
type ValidationResult struct {
	// IsValid is true when no field errors were found
	IsValid bool `json:"is_valid"`

	// Errors lists human-readable field errors
	Errors []string `json:"errors,omitempty"`
}

// ValidatePricingContext checks a context against a policy without
// erroring. Callers use it to pre-validate a booking form before
// committing to CalculatePrice; the same conditions that would make
// CalculatePrice fail are reported here as messages instead.
func ValidatePricingContext(policy string, ctx *types.PricingContext) ValidationResult {
	if ctx == nil {
		ctx = &types.PricingContext{}
	}

	var errs []string
	switch types.ResolvePolicy(policy) {
	case types.PolicyPerUnit:
		if ctx.Quantity == nil {
			errs = append(errs, "quantity is required for per-unit pricing")
		} else if ctx.Quantity.IsNegative() {
			errs = append(errs, "quantity must not be negative")
		}

	case types.PolicyPerTable:
		if ctx.TableCount == nil {
			errs = append(errs, "table count is required for per-table pricing")
		} else if ctx.TableCount.IsNegative() {
			errs = append(errs, "table count must not be negative")
		}

	case types.PolicyFixedPackage:
		// No context required.

	case types.PolicyTieredPackage:
		if ctx.SelectedTierIndex == nil {
			errs = append(errs, "a package tier must be selected")
		} else if *ctx.SelectedTierIndex < 0 {
			errs = append(errs, "selected tier index must not be negative")
		}

	case types.PolicyTimeBased:
		if ctx.EventDuration == nil {
			errs = append(errs, "event duration is required for time-based pricing")
		} else if ctx.EventDuration.IsNegative() {
			errs = append(errs, "event duration must not be negative")
		}

	default:
		errs = append(errs, fmt.Sprintf("unrecognized pricing policy %q", policy))
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
