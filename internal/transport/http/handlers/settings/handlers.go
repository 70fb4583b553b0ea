package settingshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/settings"
	"hrportal/internal/transport/http/api"
)

type Handler struct {
	Settings *settings.Store
}

func NewHandler(settingsStore *settings.Store) *Handler {
	return &Handler{Settings: settingsStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/config", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Post("/", h.handleSave)
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	setting, err := h.Settings.Get(r.Context(), settings.KeyTravelRate, settings.DefaultTravelRate)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"travel_rate_per_km": setting.Value,
		"version":            setting.Version,
	})
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TravelRatePerKM *float64 `json:"travel_rate_per_km"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.TravelRatePerKM == nil {
		api.Message(w, http.StatusBadRequest, "travel_rate_per_km is required")
		return
	}
	if *payload.TravelRatePerKM <= 0 {
		api.Message(w, http.StatusBadRequest, "Travel rate must be greater than zero")
		return
	}

	if _, err := h.Settings.Set(r.Context(), settings.KeyTravelRate, *payload.TravelRatePerKM); err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.Message(w, http.StatusOK, "Settings saved successfully!")
}
