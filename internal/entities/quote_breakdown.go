package entities

import (
	"github.com/shopspring/decimal"

	"movingco/internal/pricing"
)

// FeeLineResponse is one itemized additional fee as presented to the
// caller, rounded to cents.
type FeeLineResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// QuoteBreakdownResponse is the priced quote. All amounts are rounded
// to two decimals here, at the presentation boundary only.
type QuoteBreakdownResponse struct {
	ServiceType string            `json:"service_type"`
	Subtotal    float64           `json:"subtotal"`
	Tax         float64           `json:"tax"`
	Fees        []FeeLineResponse `json:"fees"`
	Total       float64           `json:"total"`

	// Local moving only.
	NeedsDeposit bool    `json:"needs_deposit,omitempty"`
	DepositCAD   float64 `json:"deposit_cad,omitempty"`
	DepositRMB   float64 `json:"deposit_rmb,omitempty"`

	// Intercity only.
	Pallets         int64   `json:"pallets,omitempty"`
	RatePerPallet   float64 `json:"rate_per_pallet,omitempty"`
	IntercityFee    float64 `json:"intercity_fee,omitempty"`
	LocalServiceFee float64 `json:"local_service_fee,omitempty"`
	Warning         string  `json:"warning,omitempty"`

	// Storage only.
	MonthlyStorageFee float64 `json:"monthly_storage_fee,omitempty"`
	StorageSubtotal   float64 `json:"storage_subtotal,omitempty"`
	PickupFee         float64 `json:"pickup_fee,omitempty"`
}

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// NewQuoteBreakdown maps an engine breakdown onto the wire format.
func NewQuoteBreakdown(serviceType string, b pricing.Breakdown) *QuoteBreakdownResponse {
	resp := &QuoteBreakdownResponse{
		ServiceType: serviceType,
		Subtotal:    cents(b.Subtotal),
		Tax:         cents(b.Tax),
		Total:       cents(b.Total),
		Fees:        make([]FeeLineResponse, 0, len(b.Fees)),
	}
	for _, line := range b.Fees {
		resp.Fees = append(resp.Fees, FeeLineResponse{
			ID:     line.ID,
			Name:   line.Name,
			Amount: cents(line.Amount),
		})
	}
	return resp
}

// QuoteLeadResponse acknowledges a stored quote request.
type QuoteLeadResponse struct {
	Code      string                  `json:"code"`
	Message   string                  `json:"message"`
	Breakdown *QuoteBreakdownResponse `json:"breakdown"`
}
