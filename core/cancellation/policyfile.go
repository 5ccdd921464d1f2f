// Package cancellation - Policy file loading
package cancellation

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"wedding-billing/internal/errors"
)

// policyFile is the HCL shape of an operator-authored policy:
//
//	deposit_fraction   = 0.30
//	deposit_floor_days = 30
//
//	band "days_30_to_59" {
//	  fee_fraction = 0.50
//	}
//
// Bands omitted from the file keep their compiled-in default fraction.
type policyFile struct {
	DepositFraction  float64     `hcl:"deposit_fraction"`
	DepositFloorDays *int        `hcl:"deposit_floor_days"`
	Bands            []bandBlock `hcl:"band,block"`
}

type bandBlock struct {
	Key         string  `hcl:"key,label"`
	FeeFraction float64 `hcl:"fee_fraction"`
}

// LoadPolicyFile reads a platform cancellation policy from an HCL
// file. Unlike vendor tier blobs, this is operator input: a malformed
// or invalid file is an error, not a silent fall-back.
func LoadPolicyFile(path string) (*Policy, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("reading policy file", err)
	}
	return parsePolicy(src, path)
}

func parsePolicy(src []byte, filename string) (*Policy, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Config("parsing policy file", diags)
	}

	var raw policyFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Config("decoding policy file", diags)
	}

	policy := DefaultPolicy()

	depositFraction := decimal.NewFromFloat(raw.DepositFraction)
	if depositFraction.IsNegative() || depositFraction.GreaterThan(decimal.NewFromInt(1)) {
		return nil, errors.New(errors.TypeConfig, "deposit_fraction must be within [0, 1]").
			WithContext("deposit_fraction", raw.DepositFraction)
	}
	policy.DepositFraction = depositFraction

	if raw.DepositFloorDays != nil {
		if *raw.DepositFloorDays < 0 {
			return nil, errors.New(errors.TypeConfig, "deposit_floor_days must not be negative").
				WithContext("deposit_floor_days", *raw.DepositFloorDays)
		}
		policy.DepositFloorDays = *raw.DepositFloorDays
	}

	known := make(map[string]bool, len(Bands))
	for _, b := range Bands {
		known[b.Key] = true
	}
	for _, block := range raw.Bands {
		if !known[block.Key] {
			return nil, errors.Newf(errors.TypeConfig, "unknown cancellation band %q", block.Key)
		}
		frac := decimal.NewFromFloat(block.FeeFraction)
		if frac.IsNegative() || frac.GreaterThan(decimal.NewFromInt(1)) {
			return nil, errors.Newf(errors.TypeConfig, "band %q fee_fraction must be within [0, 1]", block.Key).
				WithContext("fee_fraction", block.FeeFraction)
		}
		policy.Fractions[block.Key] = frac
	}

	return policy, nil
}
