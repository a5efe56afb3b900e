package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movingco/internal/pricing"
)

func TestResolveIntercityRate(t *testing.T) {
	table := testRateTable()

	rate, ok := pricing.ResolveIntercityRate(table, "Vancouver", "Calgary")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(500).Equal(rate))

	_, ok = pricing.ResolveIntercityRate(table, "Vancouver", "Toronto")
	assert.False(t, ok)

	_, ok = pricing.ResolveIntercityRate(table, "Toronto", "Vancouver")
	assert.False(t, ok)

	_, ok = pricing.ResolveIntercityRate(table, "Vancouver", "Vancouver")
	assert.False(t, ok, "a city has no rate to itself")

	_, ok = pricing.ResolveIntercityRate(nil, "Vancouver", "Calgary")
	assert.False(t, ok)
}

func TestResolveLocalArea(t *testing.T) {
	rates := testLocalRates()

	area, err := pricing.ResolveLocalArea(rates, pricing.AreaPremium)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(area.WithVehicle.BaseRatePerHour))

	_, err = pricing.ResolveLocalArea(rates, "suburban")
	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrConfigMissing)
}

func TestResolveStorageItem_CatalogWins(t *testing.T) {
	catalog := pricing.StorageCatalog{
		"onlyBoxPickupNoStairs": {
			Name:    "Custom Pickup",
			Price:   decimal.NewFromInt(55),
			Billing: pricing.BillingOneTime,
		},
	}
	item, ok := pricing.ResolveStorageItem(catalog, "onlyBoxPickupNoStairs")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(55).Equal(item.Price), "stored catalog overrides the built-in default")
}

func TestResolveStorageItem_DefaultFallback(t *testing.T) {
	item, ok := pricing.ResolveStorageItem(pricing.StorageCatalog{}, "furniturePickupAssembly")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(260).Equal(item.Price))
	assert.Equal(t, pricing.BillingOneTime, item.Billing)

	builtin, ok := pricing.DefaultPickupItem("furniturePickupAssembly")
	require.True(t, ok)
	assert.Equal(t, builtin, item, "an empty catalog resolves to the built-in record")

	_, ok = pricing.DefaultPickupItem("queenBed")
	assert.False(t, ok, "only the four pickup service keys have built-ins")

	_, ok = pricing.ResolveStorageItem(pricing.StorageCatalog{}, "nonexistent")
	assert.False(t, ok)
}

func TestDepositRMBRelation(t *testing.T) {
	settings := pricing.LocalMovingSettings{DepositCAD: decimal.NewFromInt(60)}
	assert.True(t, decimal.NewFromInt(300).Equal(settings.DepositRMB()))
}
