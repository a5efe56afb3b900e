package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// FeeLine is one itemized additional fee on a breakdown.
type FeeLine struct {
	ID     string
	Name   string
	Amount decimal.Decimal
}

// Breakdown is the final priced quote. Total is always exactly
// Subtotal + Tax + the sum of fee amounts; nothing is rounded here,
// rounding happens only when formatting for display.
type Breakdown struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Fees     []FeeLine
	Total    decimal.Decimal
}

// ComposeBreakdown applies taxes and additional fees to a subtotal.
//
// When the dynamic fee set is non-empty it is authoritative and the
// legacy fuel/insurance/packaging fields are ignored regardless of
// their enabled flags. Dynamic fees are filtered by scope only when a
// context is supplied; a call without a context applies every enabled
// fee. Fees are ordered by their order field ascending, ties broken by
// id so the output is deterministic.
func ComposeBreakdown(subtotal decimal.Decimal, cfg TaxFeeConfig, scope ServiceScope, lang string) Breakdown {
	b := Breakdown{Subtotal: subtotal, Tax: computeTax(subtotal, cfg)}

	if len(cfg.DynamicFees) > 0 {
		b.Fees = dynamicFeeLines(subtotal, cfg.DynamicFees, scope, lang)
	} else {
		b.Fees = legacyFeeLines(subtotal, cfg, lang)
	}

	feesTotal := decimal.Zero
	for _, line := range b.Fees {
		feesTotal = feesTotal.Add(line.Amount)
	}
	b.Total = subtotal.Add(b.Tax).Add(feesTotal)
	return b
}

func computeTax(subtotal decimal.Decimal, cfg TaxFeeConfig) decimal.Decimal {
	tax := decimal.Zero
	if cfg.GSTEnabled {
		tax = tax.Add(subtotal.Mul(cfg.GSTRate).Div(oneHundred))
	}
	if cfg.PSTEnabled {
		tax = tax.Add(subtotal.Mul(cfg.PSTRate).Div(oneHundred))
	}
	return tax
}

func dynamicFeeLines(subtotal decimal.Decimal, fees map[string]DynamicFee, scope ServiceScope, lang string) []FeeLine {
	applicable := make([]DynamicFee, 0, len(fees))
	for _, fee := range fees {
		if !fee.Enabled {
			continue
		}
		if scope != ScopeNone && fee.Scope != "" && fee.Scope != ScopeAll && fee.Scope != scope {
			continue
		}
		applicable = append(applicable, fee)
	}

	sort.Slice(applicable, func(i, j int) bool {
		if applicable[i].Order != applicable[j].Order {
			return applicable[i].Order < applicable[j].Order
		}
		return applicable[i].ID < applicable[j].ID
	})

	lines := make([]FeeLine, 0, len(applicable))
	for _, fee := range applicable {
		lines = append(lines, FeeLine{
			ID:     fee.ID,
			Name:   fee.Name(lang),
			Amount: fee.Compute(subtotal),
		})
	}
	return lines
}

// legacyFeeLines applies the fixed fuel/insurance/packaging triple.
// Each line is emitted only when its amount is positive.
func legacyFeeLines(subtotal decimal.Decimal, cfg TaxFeeConfig, lang string) []FeeLine {
	var lines []FeeLine
	zh := lang == "zh"

	if cfg.FuelSurchargeEnabled {
		amount := subtotal.Mul(cfg.FuelSurchargeRate).Div(oneHundred)
		if amount.IsPositive() {
			name := "Fuel Surcharge"
			if zh {
				name = "燃油附加费"
			}
			lines = append(lines, FeeLine{ID: "legacy_fuel", Name: name, Amount: amount})
		}
	}
	if cfg.InsuranceEnabled {
		amount := subtotal.Mul(cfg.InsuranceRate).Div(oneHundred)
		if amount.IsPositive() {
			name := "Insurance"
			if zh {
				name = "保险费"
			}
			lines = append(lines, FeeLine{ID: "legacy_insurance", Name: name, Amount: amount})
		}
	}
	if cfg.PackagingEnabled && cfg.PackagingFee.IsPositive() {
		name := "Packaging"
		if zh {
			name = "包装费"
		}
		lines = append(lines, FeeLine{ID: "legacy_packaging", Name: name, Amount: cfg.PackagingFee})
	}
	return lines
}
