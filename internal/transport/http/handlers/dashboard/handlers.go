package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/attendance"
	"hrportal/internal/domain/dashboard"
	"hrportal/internal/domain/roster"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Attendance *attendance.Store
	Roster     *roster.Store
}

func NewHandler(attendanceStore *attendance.Store, rosterStore *roster.Store) *Handler {
	return &Handler{Attendance: attendanceStore, Roster: rosterStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.handleSummary)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	total, err := h.Roster.Count(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	records, err := h.Attendance.ListByDate(r.Context(), shared.Today())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, dashboard.Summarize(total, records))
}
