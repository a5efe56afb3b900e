package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movingco/internal/pricing"
)

func bothTaxes() pricing.TaxFeeConfig {
	return pricing.TaxFeeConfig{
		GSTRate:    decimal.NewFromInt(5),
		GSTEnabled: true,
		PSTRate:    decimal.NewFromInt(7),
		PSTEnabled: true,
	}
}

func TestComposeBreakdown_TaxComposition(t *testing.T) {
	b := pricing.ComposeBreakdown(decimal.NewFromInt(1000), bothTaxes(), pricing.ScopeNone, "en")
	assert.True(t, decimal.NewFromInt(120).Equal(b.Tax), "got %s", b.Tax)
	assert.True(t, decimal.NewFromInt(1120).Equal(b.Total))
	assert.Empty(t, b.Fees)
}

func TestComposeBreakdown_DisabledTaxes(t *testing.T) {
	cfg := bothTaxes()
	cfg.PSTEnabled = false
	b := pricing.ComposeBreakdown(decimal.NewFromInt(1000), cfg, pricing.ScopeNone, "en")
	assert.True(t, decimal.NewFromInt(50).Equal(b.Tax), "got %s", b.Tax)
}

func TestComposeBreakdown_FixedDynamicFee(t *testing.T) {
	cfg := bothTaxes()
	cfg.DynamicFees = map[string]pricing.DynamicFee{
		"handling": {
			ID:      "handling",
			NameEn:  "Handling",
			Mode:    pricing.FeeFixed,
			Amount:  decimal.NewFromInt(20),
			Enabled: true,
			Scope:   pricing.ScopeAll,
		},
	}
	b := pricing.ComposeBreakdown(decimal.NewFromInt(500), cfg, pricing.ScopeLocal, "en")
	require.Len(t, b.Fees, 1)
	assert.True(t, decimal.NewFromInt(20).Equal(b.Fees[0].Amount), "fixed fee ignores the subtotal")
}

func TestComposeBreakdown_PercentageDynamicFee(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		DynamicFees: map[string]pricing.DynamicFee{
			"fuel": {
				ID:      "fuel",
				NameEn:  "Fuel",
				Mode:    pricing.FeePercentage,
				Amount:  decimal.NewFromInt(3),
				Enabled: true,
			},
		},
	}
	b := pricing.ComposeBreakdown(decimal.NewFromInt(1000), cfg, pricing.ScopeLocal, "en")
	require.Len(t, b.Fees, 1)
	assert.True(t, decimal.NewFromInt(30).Equal(b.Fees[0].Amount), "got %s", b.Fees[0].Amount)
}

func TestComposeBreakdown_DynamicSupersedesLegacy(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		FuelSurchargeRate:    decimal.NewFromInt(3),
		FuelSurchargeEnabled: true,
		PackagingFee:         decimal.NewFromInt(20),
		PackagingEnabled:     true,
		DynamicFees: map[string]pricing.DynamicFee{
			"only": {ID: "only", NameEn: "Only Fee", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(5), Enabled: true},
		},
	}
	b := pricing.ComposeBreakdown(decimal.NewFromInt(1000), cfg, pricing.ScopeNone, "en")
	require.Len(t, b.Fees, 1)
	assert.Equal(t, "only", b.Fees[0].ID, "legacy fees are ignored when dynamic fees exist")
}

func TestComposeBreakdown_LegacyFees(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		FuelSurchargeRate:    decimal.NewFromInt(3),
		FuelSurchargeEnabled: true,
		InsuranceRate:        decimal.NewFromInt(1),
		InsuranceEnabled:     true,
		PackagingFee:         decimal.NewFromInt(20),
		PackagingEnabled:     true,
	}
	b := pricing.ComposeBreakdown(decimal.NewFromInt(1000), cfg, pricing.ScopeNone, "zh")
	require.Len(t, b.Fees, 3)
	assert.Equal(t, "legacy_fuel", b.Fees[0].ID)
	assert.Equal(t, "燃油附加费", b.Fees[0].Name)
	assert.True(t, decimal.NewFromInt(30).Equal(b.Fees[0].Amount))
	assert.True(t, decimal.NewFromInt(10).Equal(b.Fees[1].Amount))
	assert.True(t, decimal.NewFromInt(20).Equal(b.Fees[2].Amount))
	assert.True(t, decimal.NewFromInt(1060).Equal(b.Total))
}

func TestComposeBreakdown_LegacyZeroAmountsOmitted(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		FuelSurchargeRate:    decimal.NewFromInt(3),
		FuelSurchargeEnabled: true,
		PackagingEnabled:     true,
	}
	b := pricing.ComposeBreakdown(decimal.Zero, cfg, pricing.ScopeNone, "en")
	assert.Empty(t, b.Fees, "zero-amount legacy fees are not itemized")
}

func TestComposeBreakdown_ScopeFiltering(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		DynamicFees: map[string]pricing.DynamicFee{
			"local_only":   {ID: "local_only", NameEn: "Local", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(10), Enabled: true, Scope: pricing.ScopeLocal},
			"storage_only": {ID: "storage_only", NameEn: "Storage", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(10), Enabled: true, Scope: pricing.ScopeStorage},
			"everywhere":   {ID: "everywhere", NameEn: "All", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(10), Enabled: true, Scope: pricing.ScopeAll},
		},
	}

	b := pricing.ComposeBreakdown(decimal.NewFromInt(100), cfg, pricing.ScopeLocal, "en")
	ids := feeIDs(b)
	assert.ElementsMatch(t, []string{"local_only", "everywhere"}, ids)

	// Without a context every enabled fee applies.
	b = pricing.ComposeBreakdown(decimal.NewFromInt(100), cfg, pricing.ScopeNone, "en")
	assert.Len(t, b.Fees, 3)
}

func TestComposeBreakdown_EmptyScopeAppliesEverywhere(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		DynamicFees: map[string]pricing.DynamicFee{
			"unscoped": {ID: "unscoped", NameEn: "Unscoped", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(10), Enabled: true},
		},
	}
	b := pricing.ComposeBreakdown(decimal.NewFromInt(100), cfg, pricing.ScopeIntercity, "en")
	assert.Len(t, b.Fees, 1)
}

func TestComposeBreakdown_DisabledFeesSkipped(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		DynamicFees: map[string]pricing.DynamicFee{
			"off": {ID: "off", NameEn: "Off", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(10), Enabled: false},
		},
	}
	b := pricing.ComposeBreakdown(decimal.NewFromInt(100), cfg, pricing.ScopeNone, "en")
	assert.Empty(t, b.Fees)
}

func TestComposeBreakdown_DeterministicOrdering(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		DynamicFees: map[string]pricing.DynamicFee{
			"b_fee": {ID: "b_fee", NameEn: "B", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(1), Enabled: true, Order: 1},
			"a_fee": {ID: "a_fee", NameEn: "A", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(1), Enabled: true, Order: 1},
			"first": {ID: "first", NameEn: "First", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(1), Enabled: true, Order: 0},
		},
	}
	b := pricing.ComposeBreakdown(decimal.NewFromInt(100), cfg, pricing.ScopeNone, "en")
	assert.Equal(t, []string{"first", "a_fee", "b_fee"}, feeIDs(b), "order ascending, ties broken by id")
}

func TestComposeBreakdown_NegativeAmountClamped(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		DynamicFees: map[string]pricing.DynamicFee{
			"bad": {ID: "bad", NameEn: "Bad", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(-50), Enabled: true},
		},
	}
	b := pricing.ComposeBreakdown(decimal.NewFromInt(100), cfg, pricing.ScopeNone, "en")
	require.Len(t, b.Fees, 1)
	assert.True(t, b.Fees[0].Amount.IsZero(), "negative amounts never reduce the total")
}

func TestComposeBreakdown_LocalizedNames(t *testing.T) {
	cfg := pricing.TaxFeeConfig{
		DynamicFees: map[string]pricing.DynamicFee{
			"fee": {ID: "fee", NameZh: "服务费", NameEn: "Service Fee", Mode: pricing.FeeFixed, Amount: decimal.NewFromInt(5), Enabled: true},
		},
	}
	zh := pricing.ComposeBreakdown(decimal.NewFromInt(100), cfg, pricing.ScopeNone, "zh")
	en := pricing.ComposeBreakdown(decimal.NewFromInt(100), cfg, pricing.ScopeNone, "en")
	assert.Equal(t, "服务费", zh.Fees[0].Name)
	assert.Equal(t, "Service Fee", en.Fees[0].Name)
}

func TestComposeBreakdown_TotalAdditivity(t *testing.T) {
	cfg := bothTaxes()
	cfg.DynamicFees = map[string]pricing.DynamicFee{
		"pct": {ID: "pct", NameEn: "Pct", Mode: pricing.FeePercentage, Amount: decimal.NewFromFloat(2.5), Enabled: true},
		"fix": {ID: "fix", NameEn: "Fix", Mode: pricing.FeeFixed, Amount: decimal.NewFromFloat(19.99), Enabled: true},
	}
	subtotal := decimal.NewFromFloat(333.33)
	b := pricing.ComposeBreakdown(subtotal, cfg, pricing.ScopeNone, "en")

	sum := subtotal.Add(b.Tax)
	for _, line := range b.Fees {
		sum = sum.Add(line.Amount)
	}
	assert.True(t, sum.Equal(b.Total), "total must equal subtotal + tax + fees exactly")
}

func feeIDs(b pricing.Breakdown) []string {
	ids := make([]string, 0, len(b.Fees))
	for _, line := range b.Fees {
		ids = append(ids, line.ID)
	}
	return ids
}
