package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StorageSelection is a validated storage selection. Months may be
// zero, meaning the duration has not been chosen yet; recurring items
// then contribute nothing.
type StorageSelection struct {
	Quantities map[string]int
	Months     int
}

// StorageQuoteResult is the pre-tax outcome of a storage quote.
type StorageQuoteResult struct {
	MonthlyStorageFee decimal.Decimal
	StorageSubtotal   decimal.Decimal
	PickupFee         decimal.Decimal
	Subtotal          decimal.Decimal
}

// StorageQuote computes monthly storage fees times the duration plus
// one-time pickup/assembly fees.
func StorageQuote(catalog StorageCatalog, sel StorageSelection) (StorageQuoteResult, error) {
	if sel.Months < 0 {
		return StorageQuoteResult{}, fmt.Errorf("storage months must not be negative, got %d", sel.Months)
	}

	var result StorageQuoteResult
	for key, qty := range sel.Quantities {
		if qty < 0 {
			return StorageQuoteResult{}, fmt.Errorf("quantity for %q must not be negative, got %d", key, qty)
		}
		if qty == 0 {
			continue
		}
		item, ok := ResolveStorageItem(catalog, key)
		if !ok {
			return StorageQuoteResult{}, fmt.Errorf("storage item %q: %w", key, ErrConfigMissing)
		}
		line := item.Price.Mul(decimal.NewFromInt(int64(qty)))
		if item.Billing == BillingOneTime {
			result.PickupFee = result.PickupFee.Add(line)
		} else {
			result.MonthlyStorageFee = result.MonthlyStorageFee.Add(line)
		}
	}

	result.StorageSubtotal = result.MonthlyStorageFee.Mul(decimal.NewFromInt(int64(sel.Months)))
	result.Subtotal = result.StorageSubtotal.Add(result.PickupFee)
	return result, nil
}
