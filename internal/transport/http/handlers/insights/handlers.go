package insightshandler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/insights"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Insights *insights.Store
}

func NewHandler(insightsStore *insights.Store) *Handler {
	return &Handler{Insights: insightsStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/insights", func(r chi.Router) {
		r.Post("/scan-expenses", h.handleScanExpenses)
		r.Post("/attrition", h.handleAttrition)
	})
}

func (h *Handler) handleScanExpenses(w http.ResponseWriter, r *http.Request) {
	mean, err := h.Insights.MeanGeneralExpense(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	records, err := h.Insights.TopGeneralExpenses(r.Context(), insights.ScanLimit)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	anomalies := insights.Anomalies(mean, records)
	message := "No anomalies detected"
	if len(anomalies) > 0 {
		message = fmt.Sprintf("%d anomalous expenses found", len(anomalies))
	}
	if anomalies == nil {
		anomalies = []string{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message":   message,
		"anomalies": anomalies,
	})
}

func (h *Handler) handleAttrition(w http.ResponseWriter, r *http.Request) {
	since := shared.Today().AddDate(0, 0, -30)
	tallies, err := h.Insights.AttendanceTallies(r.Context(), since)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	risks := insights.AttritionRisks(tallies)
	message := "No attrition risks detected"
	if len(risks) > 0 {
		message = fmt.Sprintf("%d employees flagged", len(risks))
	}
	if risks == nil {
		risks = []string{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"risks":   risks,
	})
}
