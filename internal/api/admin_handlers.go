package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"movingco/internal/db"
	"movingco/internal/service"
)

// AdminHandler exposes the configuration edits behind admin auth.
type AdminHandler struct {
	Service *service.ConfigService
}

func NewAdminHandler(svc *service.ConfigService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	var req map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if len(req) == 0 {
		http.Error(w, "No config values provided", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdatePricing(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Pricing config updated"})
}

func (h *AdminHandler) ResetPricing(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ResetPricing(); err != nil {
		http.Error(w, "Could not reset pricing config", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Pricing config reset to defaults"})
}

func (h *AdminHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req CityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.CreateCity(req.Name, req.Icon, req.IsActive); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "City created"})
}

func (h *AdminHandler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var req CityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateCity(name, req.Name, req.Icon, req.IsActive); err != nil {
		http.Error(w, "Could not update city", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "City updated"})
}

// UpdateCities flips active flags for several cities at once.
func (h *AdminHandler) UpdateCities(w http.ResponseWriter, r *http.Request) {
	var req []db.City
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateCityStatuses(req); err != nil {
		http.Error(w, "Could not update cities", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Cities updated"})
}

func (h *AdminHandler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if err := h.Service.DeleteCity(name); err != nil {
		http.Error(w, "Could not delete city", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "City deleted"})
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if len(req) == 0 {
		http.Error(w, "No settings provided", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateSettings(req); err != nil {
		http.Error(w, "Could not update settings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Settings updated"})
}

func (h *AdminHandler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ResetSettings(); err != nil {
		http.Error(w, "Could not reset settings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Settings reset to defaults"})
}
