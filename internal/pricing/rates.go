package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrConfigMissing signals an incomplete rate configuration. Callers
// must not treat it as a free service.
var ErrConfigMissing = errors.New("pricing configuration missing")

// ResolveIntercityRate looks up the price per pallet for an ordered
// city pair. ok is false for a self-pair, an unknown city or a missing
// entry: the route is unpriceable, which is distinct from a $0 rate.
func ResolveIntercityRate(table RateTable, origin, destination string) (decimal.Decimal, bool) {
	if origin == "" || destination == "" || origin == destination {
		return decimal.Zero, false
	}
	routes, ok := table[origin]
	if !ok {
		return decimal.Zero, false
	}
	rate, ok := routes[destination]
	if !ok {
		return decimal.Zero, false
	}
	return rate, true
}

// ResolveLocalArea returns the rate record for an area tier. All four
// area/mode combinations must be present in a valid configuration, so
// a missing tier is a configuration error, never a zero rate.
func ResolveLocalArea(rates LocalMovingRates, area AreaTier) (AreaRates, error) {
	ar, ok := rates.Areas[area]
	if !ok {
		return AreaRates{}, fmt.Errorf("local moving area %q: %w", area, ErrConfigMissing)
	}
	return ar, nil
}

// The four pickup/assembly service items must always be priceable even
// when an older configuration snapshot omits them, so they carry
// built-in defaults.
var defaultPickupItems = map[string]StorageItem{
	"onlyBoxPickupNoStairs": {
		Name:        "Only Box Pickup Service (Every 10 pieces) - No Stairs",
		Price:       decimal.NewFromInt(40),
		Icon:        "LocalShipping",
		Description: "One-time fee for box pickup service without stairs",
		Billing:     BillingOneTime,
	},
	"onlyBoxPickupWithStairs": {
		Name:        "Only Box Pickup Service (Every 10 pieces) - With Stairs",
		Price:       decimal.NewFromInt(80),
		Icon:        "LocalShipping",
		Description: "One-time fee for box pickup service with stairs",
		Billing:     BillingOneTime,
	},
	"furniturePickupNoStairs": {
		Name:        "Furniture Pickup Service - No Stairs",
		Price:       decimal.NewFromInt(160),
		Icon:        "LocalShipping",
		Description: "One-time fee for furniture pickup service without stairs",
		Billing:     BillingOneTime,
	},
	"furniturePickupAssembly": {
		Name:        "Furniture Pickup Service - With Assembly",
		Price:       decimal.NewFromInt(260),
		Icon:        "LocalShipping",
		Description: "One-time fee for furniture pickup service with disassembly/assembly",
		Billing:     BillingOneTime,
	},
}

// ResolveStorageItem looks up a catalog item. The four guaranteed
// pickup service keys fall back to their built-in defaults when the
// fetched catalog does not carry them; any other unknown key is not
// priceable.
func ResolveStorageItem(catalog StorageCatalog, key string) (StorageItem, bool) {
	if item, ok := catalog[key]; ok {
		return item, true
	}
	if item, ok := defaultPickupItems[key]; ok {
		return item, true
	}
	return StorageItem{}, false
}

// DefaultPickupItem exposes the built-in record for one of the four
// guaranteed pickup keys.
func DefaultPickupItem(key string) (StorageItem, bool) {
	item, ok := defaultPickupItems[key]
	return item, ok
}
