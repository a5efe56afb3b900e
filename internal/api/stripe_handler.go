package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	apperrors "movingco/internal/errors"
	"movingco/internal/service"
)

type StripeWebhookHandler struct {
	StripeSecret   string
	depositService *service.DepositService
}

func NewStripeWebhookHandler(stripeSecret string, depositService *service.DepositService) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		StripeSecret:   stripeSecret,
		depositService: depositService,
	}
}

// CreateDepositSession starts a Stripe checkout for a quote deposit.
func (h *StripeWebhookHandler) CreateDepositSession(w http.ResponseWriter, r *http.Request) {
	var req DepositSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Code == "" {
		http.Error(w, "code required", http.StatusBadRequest)
		return
	}
	url, err := h.depositService.CreateSession(req.Code)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusOf(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DepositSessionResponse{URL: url})
}

// RefundDeposit refunds the paid deposit of a quote, admin only.
func (h *StripeWebhookHandler) RefundDeposit(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if err := h.depositService.Refund(code); err != nil {
		http.Error(w, err.Error(), apperrors.StatusOf(err))
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Deposit refunded"})
}

func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading body: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, h.StripeSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("Error parsing checkout.session: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if sess.ID == "" {
			log.Printf("No session ID in checkout.session.completed")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := h.depositService.MarkPaid(sess.ID); err != nil {
			log.Printf("DB error: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			log.Printf("Error parsing charge: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if charge.PaymentIntent != nil && charge.PaymentIntent.ID != "" {
			if err := h.depositService.MarkRefundedByPaymentIntent(charge.PaymentIntent.ID); err != nil {
				log.Printf("Error recording refund for PaymentIntent %s: %v", charge.PaymentIntent.ID, err)
				return
			}
		}

	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}
