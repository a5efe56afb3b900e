package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// One pallet holds two cubic meters of declared volume.
var palletVolumeM3 = decimal.NewFromInt(2)

// IntercitySelection is a validated intercity-moving selection.
// Pickup/delivery hours are only meaningful when the matching service
// flag is set; the 2-hour minimum is enforced at the boundary.
type IntercitySelection struct {
	Origin        string
	Destination   string
	VolumeM3      decimal.Decimal
	Pickup        bool
	PickupHours   int
	Delivery      bool
	DeliveryHours int
}

// IntercityQuoteResult is the pre-tax outcome of an intercity quote.
// RouteUnpriced is set when no rate exists for the ordered city pair;
// the fee is then zero and the caller must surface a warning instead
// of presenting the route as free.
type IntercityQuoteResult struct {
	Pallets         int64
	RatePerPallet   decimal.Decimal
	IntercityFee    decimal.Decimal
	LocalServiceFee decimal.Decimal
	Subtotal        decimal.Decimal
	RouteUnpriced   bool
}

// IntercityQuote computes the intercity subtotal: ceil(volume/2)
// pallets times the route rate, plus optional pickup/delivery hours at
// the local service rate.
func IntercityQuote(table RateTable, localServiceRate decimal.Decimal, sel IntercitySelection) (IntercityQuoteResult, error) {
	if sel.VolumeM3.IsNegative() {
		return IntercityQuoteResult{}, fmt.Errorf("volume must not be negative, got %s", sel.VolumeM3)
	}
	if sel.PickupHours < 0 || sel.DeliveryHours < 0 {
		return IntercityQuoteResult{}, fmt.Errorf("service hours must not be negative")
	}

	result := IntercityQuoteResult{
		Pallets: sel.VolumeM3.Div(palletVolumeM3).Ceil().IntPart(),
	}

	rate, ok := ResolveIntercityRate(table, sel.Origin, sel.Destination)
	if ok {
		result.RatePerPallet = rate
		result.IntercityFee = decimal.NewFromInt(result.Pallets).Mul(rate)
	} else {
		result.RouteUnpriced = true
	}

	serviceHours := 0
	if sel.Pickup {
		serviceHours += sel.PickupHours
	}
	if sel.Delivery {
		serviceHours += sel.DeliveryHours
	}
	result.LocalServiceFee = decimal.NewFromInt(int64(serviceHours)).Mul(localServiceRate)

	result.Subtotal = result.IntercityFee.Add(result.LocalServiceFee)
	return result, nil
}
