// Package pricing - Price quoter tests
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"wedding-billing/core/types"
	"wedding-billing/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int {
	return &i
}

func TestCalculatePricePerUnit(t *testing.T) {
	listing := &types.ServiceListing{
		ID:            "favors",
		PricingPolicy: "per_unit",
		Price:         dec("25.00"),
	}

	got, err := CalculatePrice(listing, &types.PricingContext{Quantity: decPtr("4")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(dec("100.00")) {
		t.Errorf("expected 100.00, got %s", got)
	}
}

func TestCalculatePricePerTable(t *testing.T) {
	listing := &types.ServiceListing{
		ID:            "catering",
		PricingPolicy: "per_table",
		Price:         dec("50.00"),
	}

	got, err := CalculatePrice(listing, &types.PricingContext{TableCount: decPtr("10")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(dec("500.00")) {
		t.Errorf("expected 500.00, got %s", got)
	}
}

func TestCalculatePriceFixedPackageIgnoresContext(t *testing.T) {
	listing := &types.ServiceListing{
		ID:            "photography",
		PricingPolicy: "fixed_package",
		Price:         dec("1200.00"),
	}

	contexts := []*types.PricingContext{
		nil,
		{},
		{Quantity: decPtr("99"), TableCount: decPtr("99"), EventDuration: decPtr("99")},
	}
	for _, ctx := range contexts {
		got, err := CalculatePrice(listing, ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(dec("1200.00")) {
			t.Errorf("expected 1200.00 regardless of context, got %s", got)
		}
	}
}

func TestCalculatePriceTieredPackage(t *testing.T) {
	listing := &types.ServiceListing{
		ID:            "venue",
		PricingPolicy: "tiered_package",
		Price:         dec("500"),
		TieredPricing: []types.TieredPrice{
			{Price: dec("500")},
			{Price: dec("800")},
			{Price: dec("1200")},
		},
	}

	got, err := CalculatePrice(listing, &types.PricingContext{SelectedTierIndex: intPtr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(dec("800")) {
		t.Errorf("expected 800, got %s", got)
	}
}

func TestCalculatePriceTieredPackageOutOfRange(t *testing.T) {
	listing := &types.ServiceListing{
		ID:            "venue",
		PricingPolicy: "tiered_package",
		TieredPricing: []types.TieredPrice{
			{Price: dec("500")},
			{Price: dec("800")},
			{Price: dec("1200")},
		},
	}

	// Out-of-range is an error, never a clamp
	for _, idx := range []int{5, 3, -1} {
		_, err := CalculatePrice(listing, &types.PricingContext{SelectedTierIndex: intPtr(idx)})
		if !errors.IsType(err, errors.TypeInvalidValue) {
			t.Errorf("index %d: expected INVALID_VALUE, got %v", idx, err)
		}
	}
}

func TestCalculatePriceTimeBased(t *testing.T) {
	listing := &types.ServiceListing{
		ID:            "band",
		PricingPolicy: "time_based",
		HourlyRate:    decPtr("120.00"),
	}

	got, err := CalculatePrice(listing, &types.PricingContext{EventDuration: decPtr("3.5")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(dec("420.00")) {
		t.Errorf("expected 420.00, got %s", got)
	}
}

func TestCalculatePriceMissingRequiredContext(t *testing.T) {
	cases := []struct {
		name    string
		listing *types.ServiceListing
		ctx     *types.PricingContext
	}{
		{"per_unit without quantity", &types.ServiceListing{PricingPolicy: "per_unit", Price: dec("25")}, &types.PricingContext{}},
		{"per_table without table count", &types.ServiceListing{PricingPolicy: "per_table", Price: dec("50")}, nil},
		{"tiered without selection", &types.ServiceListing{PricingPolicy: "tiered_package", TieredPricing: []types.TieredPrice{{Price: dec("500")}}}, &types.PricingContext{}},
		{"tiered without tiers", &types.ServiceListing{PricingPolicy: "tiered_package"}, &types.PricingContext{SelectedTierIndex: intPtr(0)}},
		{"time_based without duration", &types.ServiceListing{PricingPolicy: "time_based", HourlyRate: decPtr("120")}, &types.PricingContext{}},
		{"time_based without hourly rate", &types.ServiceListing{PricingPolicy: "time_based"}, &types.PricingContext{EventDuration: decPtr("3")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculatePrice(tc.listing, tc.ctx)
			if !errors.IsType(err, errors.TypeMissingField) {
				t.Errorf("expected MISSING_FIELD, got %v", err)
			}
		})
	}
}

func TestCalculatePriceRejectsNegativeInputs(t *testing.T) {
	cases := []struct {
		name    string
		listing *types.ServiceListing
		ctx     *types.PricingContext
	}{
		{"negative quantity", &types.ServiceListing{PricingPolicy: "per_unit", Price: dec("25")}, &types.PricingContext{Quantity: decPtr("-1")}},
		{"negative table count", &types.ServiceListing{PricingPolicy: "per_table", Price: dec("50")}, &types.PricingContext{TableCount: decPtr("-2")}},
		{"negative duration", &types.ServiceListing{PricingPolicy: "time_based", HourlyRate: decPtr("120")}, &types.PricingContext{EventDuration: decPtr("-0.5")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculatePrice(tc.listing, tc.ctx)
			if !errors.IsType(err, errors.TypeInvalidValue) {
				t.Errorf("expected INVALID_VALUE, got %v", err)
			}
		})
	}
}

func TestCalculatePriceZeroQuantityIsValid(t *testing.T) {
	listing := &types.ServiceListing{PricingPolicy: "per_unit", Price: dec("25")}

	got, err := CalculatePrice(listing, &types.PricingContext{Quantity: decPtr("0")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected 0, got %s", got)
	}
}

func TestCalculatePriceUnknownPolicyFallsBack(t *testing.T) {
	listing := &types.ServiceListing{
		ID:            "mystery",
		PricingPolicy: "per_guest",
		Price:         dec("75.00"),
	}

	got, err := CalculatePrice(listing, nil)
	if err != nil {
		t.Fatalf("unknown policy must not fail an in-flight booking: %v", err)
	}
	if !got.Equal(dec("75.00")) {
		t.Errorf("expected bare price 75.00, got %s", got)
	}
}

func TestCalculatePriceIsIdempotent(t *testing.T) {
	listing := &types.ServiceListing{PricingPolicy: "per_unit", Price: dec("19.99")}
	ctx := &types.PricingContext{Quantity: decPtr("7")}

	first, err := CalculatePrice(listing, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CalculatePrice(listing, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("identical inputs produced %s then %s", first, second)
	}
	if !ctx.Quantity.Equal(dec("7")) {
		t.Error("context was mutated by pricing")
	}
}

func TestCalculateEventDuration(t *testing.T) {
	got, err := CalculateEventDuration("2026-06-20T14:00:00Z", "2026-06-20T17:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(dec("3.5")) {
		t.Errorf("expected 3.5 hours, got %s", got)
	}
}

func TestCalculateEventDurationRoundsToTwoPlaces(t *testing.T) {
	// 100 minutes = 1.666... hours, rounds half-up to 1.67
	got, err := CalculateEventDuration("2026-06-20T14:00:00Z", "2026-06-20T15:40:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "1.67" {
		t.Errorf("expected 1.67, got %s", got)
	}
}

func TestCalculateEventDurationErrors(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		errType    errors.Type
	}{
		{"missing start", "", "2026-06-20T17:00:00Z", errors.TypeMissingField},
		{"missing end", "2026-06-20T14:00:00Z", "", errors.TypeMissingField},
		{"unparseable start", "not-a-time", "2026-06-20T17:00:00Z", errors.TypeInvalidValue},
		{"unparseable end", "2026-06-20T14:00:00Z", "garbage", errors.TypeInvalidValue},
		{"end equals start", "2026-06-20T14:00:00Z", "2026-06-20T14:00:00Z", errors.TypeInvalidValue},
		{"end before start", "2026-06-20T17:00:00Z", "2026-06-20T14:00:00Z", errors.TypeInvalidValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateEventDuration(tc.start, tc.end)
			if !errors.IsType(err, tc.errType) {
				t.Errorf("expected %s, got %v", tc.errType, err)
			}
		})
	}
}

func TestValidatePricingContext(t *testing.T) {
	cases := []struct {
		name   string
		policy string
		ctx    *types.PricingContext
		valid  bool
	}{
		{"per_unit complete", "per_unit", &types.PricingContext{Quantity: decPtr("3")}, true},
		{"per_unit missing quantity", "per_unit", &types.PricingContext{}, false},
		{"per_unit negative quantity", "per_unit", &types.PricingContext{Quantity: decPtr("-3")}, false},
		{"per_table complete", "per_table", &types.PricingContext{TableCount: decPtr("8")}, true},
		{"fixed_package needs nothing", "fixed_package", nil, true},
		{"tiered missing selection", "tiered_package", &types.PricingContext{}, false},
		{"tiered complete", "tiered_package", &types.PricingContext{SelectedTierIndex: intPtr(0)}, true},
		{"time_based missing duration", "time_based", &types.PricingContext{}, false},
		{"unknown policy", "per_guest", &types.PricingContext{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidatePricingContext(tc.policy, tc.ctx)
			if result.IsValid != tc.valid {
				t.Errorf("expected valid=%v, got %v (errors: %v)", tc.valid, result.IsValid, result.Errors)
			}
			if !result.IsValid && len(result.Errors) == 0 {
				t.Error("invalid result must carry field errors")
			}
		})
	}
}
