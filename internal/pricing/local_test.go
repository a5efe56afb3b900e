package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movingco/internal/pricing"
)

func testLocalRates() pricing.LocalMovingRates {
	return pricing.LocalMovingRates{
		Areas: map[pricing.AreaTier]pricing.AreaRates{
			pricing.AreaStandard: {
				WithVehicle: pricing.VehicleRates{
					BaseRatePerHour:            decimal.NewFromInt(80),
					AdditionalPersonFeePerHour: decimal.NewFromInt(40),
				},
				WithoutVehicle: pricing.CrewRates{
					BaseRatePerPersonPerHour: decimal.NewFromInt(45),
				},
			},
			pricing.AreaPremium: {
				WithVehicle: pricing.VehicleRates{
					BaseRatePerHour:            decimal.NewFromInt(90),
					AdditionalPersonFeePerHour: decimal.NewFromInt(40),
				},
				WithoutVehicle: pricing.CrewRates{
					BaseRatePerPersonPerHour: decimal.NewFromInt(55),
				},
			},
		},
		Settings: pricing.LocalMovingSettings{
			MinimumHours:           2,
			DepositPersonThreshold: 3,
			DepositCAD:             decimal.NewFromInt(60),
		},
	}
}

func TestLocalQuote_WithVehicle(t *testing.T) {
	// 80*2 base + 2 extra movers * 40 * 2h = 320.
	result, err := pricing.LocalQuote(testLocalRates(), pricing.LocalSelection{
		Area:        pricing.AreaStandard,
		WithVehicle: true,
		Persons:     3,
		Hours:       2,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(320).Equal(result.Subtotal), "got %s", result.Subtotal)
}

func TestLocalQuote_WithoutVehicle(t *testing.T) {
	result, err := pricing.LocalQuote(testLocalRates(), pricing.LocalSelection{
		Area:    pricing.AreaPremium,
		Persons: 2,
		Hours:   3,
	})
	require.NoError(t, err)
	// 55 * 2 persons * 3h.
	assert.True(t, decimal.NewFromInt(330).Equal(result.Subtotal), "got %s", result.Subtotal)
}

func TestLocalQuote_SinglePersonWithVehicle(t *testing.T) {
	result, err := pricing.LocalQuote(testLocalRates(), pricing.LocalSelection{
		Area:        pricing.AreaStandard,
		WithVehicle: true,
		Persons:     1,
		Hours:       2,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(160).Equal(result.Subtotal), "got %s", result.Subtotal)
	assert.False(t, result.NeedsDeposit)
}

func TestLocalQuote_DepositAtThreshold(t *testing.T) {
	rates := testLocalRates()
	result, err := pricing.LocalQuote(rates, pricing.LocalSelection{
		Area:        pricing.AreaStandard,
		WithVehicle: true,
		Persons:     3,
		Hours:       2,
	})
	require.NoError(t, err)
	assert.True(t, result.NeedsDeposit)
	assert.True(t, decimal.NewFromInt(60).Equal(result.DepositCAD))
	assert.True(t, decimal.NewFromInt(300).Equal(result.DepositRMB), "RMB deposit is five times the CAD amount")
}

func TestLocalQuote_NoDepositBelowThreshold(t *testing.T) {
	result, err := pricing.LocalQuote(testLocalRates(), pricing.LocalSelection{
		Area:        pricing.AreaStandard,
		WithVehicle: true,
		Persons:     2,
		Hours:       2,
	})
	require.NoError(t, err)
	assert.False(t, result.NeedsDeposit)
	assert.True(t, result.DepositCAD.IsZero())
}

func TestLocalQuote_NoDepositWhenThresholdDisabled(t *testing.T) {
	rates := testLocalRates()
	rates.Settings.DepositPersonThreshold = 0
	result, err := pricing.LocalQuote(rates, pricing.LocalSelection{
		Area:        pricing.AreaStandard,
		WithVehicle: true,
		Persons:     5,
		Hours:       2,
	})
	require.NoError(t, err)
	assert.False(t, result.NeedsDeposit)
}

func TestLocalQuote_InvalidSelections(t *testing.T) {
	rates := testLocalRates()

	_, err := pricing.LocalQuote(rates, pricing.LocalSelection{Area: pricing.AreaStandard, Persons: 0, Hours: 2})
	assert.Error(t, err)

	_, err = pricing.LocalQuote(rates, pricing.LocalSelection{Area: pricing.AreaStandard, Persons: 1, Hours: -1})
	assert.Error(t, err)

	_, err = pricing.LocalQuote(rates, pricing.LocalSelection{Area: "downtown", Persons: 1, Hours: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrConfigMissing)
}
