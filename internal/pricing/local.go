package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LocalSelection is a validated local-moving service selection.
// Minimum-hours policy is enforced at the boundary, not here.
type LocalSelection struct {
	Area        AreaTier
	WithVehicle bool
	Persons     int
	Hours       int
}

// LocalQuoteResult is the pre-tax outcome of a local-moving quote.
// The deposit never changes the subtotal, it is collected out of band.
type LocalQuoteResult struct {
	Subtotal     decimal.Decimal
	NeedsDeposit bool
	DepositCAD   decimal.Decimal
	DepositRMB   decimal.Decimal
}

// LocalQuote computes the local-moving subtotal.
//
// withVehicle: baseRate*hours + max(0, persons-1)*extraPersonFee*hours.
// withoutVehicle: baseRatePerPerson*persons*hours.
func LocalQuote(rates LocalMovingRates, sel LocalSelection) (LocalQuoteResult, error) {
	if sel.Persons < 1 {
		return LocalQuoteResult{}, fmt.Errorf("person count must be at least 1, got %d", sel.Persons)
	}
	if sel.Hours < 0 {
		return LocalQuoteResult{}, fmt.Errorf("hours must not be negative, got %d", sel.Hours)
	}

	area, err := ResolveLocalArea(rates, sel.Area)
	if err != nil {
		return LocalQuoteResult{}, err
	}

	hours := decimal.NewFromInt(int64(sel.Hours))
	persons := decimal.NewFromInt(int64(sel.Persons))

	var subtotal decimal.Decimal
	if sel.WithVehicle {
		extraPersons := decimal.NewFromInt(int64(sel.Persons - 1))
		subtotal = area.WithVehicle.BaseRatePerHour.Mul(hours).
			Add(extraPersons.Mul(area.WithVehicle.AdditionalPersonFeePerHour).Mul(hours))
	} else {
		subtotal = area.WithoutVehicle.BaseRatePerPersonPerHour.Mul(persons).Mul(hours)
	}

	result := LocalQuoteResult{Subtotal: subtotal}
	if sel.Persons >= rates.Settings.DepositPersonThreshold && rates.Settings.DepositPersonThreshold > 0 {
		result.NeedsDeposit = true
		result.DepositCAD = rates.Settings.DepositCAD
		result.DepositRMB = rates.Settings.DepositRMB()
	}
	return result, nil
}
