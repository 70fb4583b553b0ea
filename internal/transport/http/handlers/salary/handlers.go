package salaryhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"hrportal/internal/domain/roster"
	"hrportal/internal/domain/salary"
	"hrportal/internal/transport/http/api"
)

type Handler struct {
	Roster      *roster.Store
	BasicSalary float64
}

func NewHandler(rosterStore *roster.Store, basicSalary float64) *Handler {
	return &Handler{Roster: rosterStore, BasicSalary: basicSalary}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/salary/pdf", h.handleSlip)
}

func (h *Handler) handleSlip(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64  `json:"employee_id"`
		Period     string `json:"period"`
		Action     string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.EmployeeID == 0 {
		api.Message(w, http.StatusBadRequest, "Employee is required")
		return
	}
	if payload.Period == "" {
		payload.Period = "monthly"
	}

	emp, err := h.Roster.Get(r.Context(), payload.EmployeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	data, filename, err := salary.BuildSlipPDF(salary.SlipData{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Period:       payload.Period,
		Breakdown:    salary.Compute(h.BasicSalary),
		GeneratedAt:  time.Now(),
	})
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	api.WritePDF(w, filename, payload.Action, data)
}
