package api

import (
	"encoding/json"
	"net/http"

	"movingco/internal/service"
)

// ConfigHandler serves the public configuration the pricing forms
// need: rate tables, bookable cities and site settings.
type ConfigHandler struct {
	Service *service.ConfigService
}

func NewConfigHandler(svc *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{Service: svc}
}

func (h *ConfigHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	values, err := h.Service.PricingValues()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(values)
}

func (h *ConfigHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.Service.Cities()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cities)
}

func (h *ConfigHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.SettingsTree()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}
