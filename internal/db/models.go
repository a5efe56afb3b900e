package db

import (
	"time"

	"github.com/shopspring/decimal"
)

type City struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type QuoteLead struct {
	ID              int             `json:"id"`
	Code            string          `json:"code"`
	ServiceType     string          `json:"service_type"`
	UserName        string          `json:"user_name"`
	UserEmail       string          `json:"user_email"`
	UserPhone       string          `json:"user_phone"`
	Language        string          `json:"language"`
	RequestJSON     string          `json:"request_json"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	NeedsDeposit    bool            `json:"needs_deposit"`
	DepositStatus   string          `json:"deposit_status"`
	StripeSessionID string          `json:"stripe_session_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
