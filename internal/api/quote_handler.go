package api

import (
	"encoding/json"
	"net/http"

	"movingco/internal/entities"
	apperrors "movingco/internal/errors"
	"movingco/internal/service"
)

type QuoteHandler struct {
	Service *service.QuoteService
}

func NewQuoteHandler(svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{Service: svc}
}

// Quote prices a request without storing anything.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	breakdown, err := h.Service.Quote(req)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusOf(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(breakdown)
}

// SubmitLead prices and stores a quote request with contact details.
func (h *QuoteHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.SubmitLead(req)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusOf(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// ListLeads returns stored quote requests, admin only.
func (h *QuoteHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	serviceType := r.URL.Query().Get("service_type")
	date := r.URL.Query().Get("date")
	leads, err := h.Service.ListLeads(serviceType, date)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(leads)
}
