package service

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"movingco/internal/db"
	apperrors "movingco/internal/errors"
)

const (
	depositStatusPaid     = "paid"
	depositStatusRefunded = "refunded"
)

var oneHundredMinorUnits = decimal.NewFromInt(100)

// depositLeadStore is the slice of the lead repository the deposit
// flow touches. Satisfied by repository.QuoteLeadRepository.
type depositLeadStore interface {
	GetByCode(code string) (*db.QuoteLead, error)
	SetStripeSession(code, sessionID, depositStatus string) error
	UpdateDepositStatusBySessionID(sessionID, depositStatus string) error
}

// DepositService turns a stored quote that requires a deposit into a
// Stripe checkout session and tracks its payment status.
type DepositService struct {
	stripeService *StripeService
	config        ConfigProvider
	leads         depositLeadStore
}

func NewDepositService(stripeService *StripeService, config ConfigProvider, leads depositLeadStore) *DepositService {
	return &DepositService{stripeService: stripeService, config: config, leads: leads}
}

// CreateSession creates a checkout session for the deposit of the lead
// with the given quote code and returns the hosted payment URL.
func (s *DepositService) CreateSession(code string) (string, error) {
	lead, err := s.leads.GetByCode(code)
	if err != nil {
		return "", apperrors.ErrNotFound(fmt.Sprintf("quote %q not found", code))
	}
	if !lead.NeedsDeposit {
		return "", apperrors.ErrBadRequest(fmt.Sprintf("quote %q does not require a deposit", code))
	}
	if lead.DepositStatus == depositStatusPaid {
		return "", apperrors.ErrBadRequest(fmt.Sprintf("deposit for quote %q is already paid", code))
	}

	cfg, err := s.config.EngineConfig()
	if err != nil {
		return "", fmt.Errorf("loading pricing configuration: %w", err)
	}
	depositCAD := cfg.Local.Settings.DepositCAD
	if !depositCAD.IsPositive() {
		return "", apperrors.ErrBadRequest("no deposit amount is configured")
	}

	description := fmt.Sprintf("Moving deposit for quote %s", code)
	amountMinorUnits := depositCAD.Mul(oneHundredMinorUnits).IntPart()

	url, sessionID, err := s.stripeService.CreateCheckoutSession(amountMinorUnits, "cad", description, lead.UserEmail)
	if err != nil {
		log.Printf("Error creating Stripe checkout session for quote %s: %v", code, err)
		return "", fmt.Errorf("creating checkout session: %w", err)
	}

	if err := s.leads.SetStripeSession(code, sessionID, depositStatusPending); err != nil {
		return "", fmt.Errorf("attaching checkout session to quote: %w", err)
	}
	return url, nil
}

// MarkPaid records a completed checkout for the given session.
func (s *DepositService) MarkPaid(sessionID string) error {
	return s.leads.UpdateDepositStatusBySessionID(sessionID, depositStatusPaid)
}

// MarkRefunded records a refunded deposit for the given session.
func (s *DepositService) MarkRefunded(sessionID string) error {
	return s.leads.UpdateDepositStatusBySessionID(sessionID, depositStatusRefunded)
}

// MarkRefundedByPaymentIntent resolves the checkout session behind a
// refunded payment intent and records the refund.
func (s *DepositService) MarkRefundedByPaymentIntent(paymentIntentID string) error {
	sessionID, err := s.stripeService.SessionIDByPaymentIntent(paymentIntentID)
	if err != nil {
		return err
	}
	return s.leads.UpdateDepositStatusBySessionID(sessionID, depositStatusRefunded)
}

// Refund refunds the deposit of the lead with the given quote code.
func (s *DepositService) Refund(code string) error {
	lead, err := s.leads.GetByCode(code)
	if err != nil {
		return apperrors.ErrNotFound(fmt.Sprintf("quote %q not found", code))
	}
	if lead.StripeSessionID == "" || lead.DepositStatus != depositStatusPaid {
		return apperrors.ErrBadRequest(fmt.Sprintf("quote %q has no paid deposit to refund", code))
	}
	if err := s.stripeService.RefundPaymentBySessionID(lead.StripeSessionID); err != nil {
		return err
	}
	return s.leads.UpdateDepositStatusBySessionID(lead.StripeSessionID, depositStatusRefunded)
}
