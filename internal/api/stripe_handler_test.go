package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"movingco/internal/api"
	"movingco/internal/db"
	"movingco/internal/service"
)

type stubLeadStore struct {
	leads map[string]*db.QuoteLead
}

func (s *stubLeadStore) GetByCode(code string) (*db.QuoteLead, error) {
	lead, ok := s.leads[code]
	if !ok {
		return nil, errors.New("not found")
	}
	return lead, nil
}

func (s *stubLeadStore) SetStripeSession(code, sessionID, depositStatus string) error {
	return nil
}

func (s *stubLeadStore) UpdateDepositStatusBySessionID(sessionID, depositStatus string) error {
	return nil
}

func newRefundRouter(store *stubLeadStore) *mux.Router {
	depositService := service.NewDepositService(service.NewStripeService(), fixtureConfig{}, store)
	handler := api.NewStripeWebhookHandler("", depositService)
	r := mux.NewRouter()
	r.HandleFunc("/admin/quotes/{code}/refund", handler.RefundDeposit).Methods("POST")
	return r
}

func TestRefundDepositEndpoint_UnknownCode(t *testing.T) {
	router := newRefundRouter(&stubLeadStore{leads: map[string]*db.QuoteLead{}})
	req := httptest.NewRequest(http.MethodPost, "/admin/quotes/NOPE/refund", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRefundDepositEndpoint_NoPaidDeposit(t *testing.T) {
	router := newRefundRouter(&stubLeadStore{leads: map[string]*db.QuoteLead{
		"AAAA0001": {Code: "AAAA0001", NeedsDeposit: true, DepositStatus: "pending", StripeSessionID: "cs_1"},
	}})
	req := httptest.NewRequest(http.MethodPost, "/admin/quotes/AAAA0001/refund", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
