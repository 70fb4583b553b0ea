package expenseshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"hrportal/internal/domain/expenses"
	"hrportal/internal/domain/roster"
	"hrportal/internal/domain/settings"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Expenses *expenses.Store
	Roster   *roster.Store
	Settings *settings.Store
}

func NewHandler(expensesStore *expenses.Store, rosterStore *roster.Store, settingsStore *settings.Store) *Handler {
	return &Handler{Expenses: expensesStore, Roster: rosterStore, Settings: settingsStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/expenses", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Route("/travel", func(r chi.Router) {
			r.Post("/", h.handleLogTravel)
			r.Get("/view", h.handleViewTravel)
			r.Get("/load", h.handleLoadTravel)
			r.Delete("/last", h.handleDeleteLastTravel)
		})
		r.Route("/general", func(r chi.Router) {
			r.Post("/", h.handleSaveGeneral)
			r.Get("/view", h.handleViewGeneral)
			r.Get("/load", h.handleLoadGeneral)
			r.Delete("/last", h.handleDeleteLastGeneral)
		})
	})
}

func (h *Handler) lookupEmployee(w http.ResponseWriter, r *http.Request, employeeID int64) (*roster.Employee, bool) {
	emp, err := h.Roster.Get(r.Context(), employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return nil, false
	}
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return nil, false
	}
	return emp, true
}

func (h *Handler) handleLogTravel(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID   int64    `json:"employee_id"`
		Date         string   `json:"date"`
		StartReading *float64 `json:"start_reading"`
		EndReading   *float64 `json:"end_reading"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.EmployeeID == 0 || payload.Date == "" || payload.StartReading == nil || payload.EndReading == nil {
		api.Message(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	emp, ok := h.lookupEmployee(w, r, payload.EmployeeID)
	if !ok {
		return
	}

	date, err := shared.ParseDate(payload.Date)
	if err != nil || date.IsZero() {
		api.Message(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	rate, err := h.Settings.TravelRate(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	distance, amount, err := expenses.ComputeTravel(*payload.StartReading, *payload.EndReading, rate)
	if err != nil {
		api.Message(w, http.StatusBadRequest, "End reading must be greater than start reading")
		return
	}

	_, err = h.Expenses.InsertTravel(r.Context(), expenses.TravelExpense{
		EmployeeID:   emp.ID,
		Date:         date,
		StartReading: *payload.StartReading,
		EndReading:   *payload.EndReading,
		Distance:     distance,
		Rate:         rate,
		Amount:       amount,
	})
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.Message(w, http.StatusOK, "Travel expense logged successfully")
}

func (h *Handler) handleViewTravel(w http.ResponseWriter, r *http.Request) {
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || date.IsZero() {
		api.Message(w, http.StatusBadRequest, "Date parameter is required")
		return
	}

	rows, err := h.Expenses.TravelByDate(r.Context(), date)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	table := api.Table{
		Columns: api.Columns("Employee", "Start (km)", "End (km)", "Distance", "Rate/km", "Amount"),
		Records: make([][]any, 0, len(rows)),
	}
	for _, exp := range rows {
		table.Records = append(table.Records, []any{
			exp.EmployeeName, exp.StartReading, exp.EndReading, exp.Distance, exp.Rate, exp.Amount,
		})
	}
	api.WriteJSON(w, http.StatusOK, table)
}

func (h *Handler) handleLoadTravel(w http.ResponseWriter, r *http.Request) {
	employeeID, date, ok := h.parseLoadQuery(w, r)
	if !ok {
		return
	}
	if _, ok := h.lookupEmployee(w, r, employeeID); !ok {
		return
	}

	start, end, err := h.Expenses.TravelReadings(r.Context(), employeeID, date)
	if errors.Is(err, pgx.ErrNoRows) {
		api.Message(w, http.StatusNotFound, "No travel expense found")
		return
	}
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]float64{
		"start_reading": start,
		"end_reading":   end,
	})
}

func (h *Handler) handleDeleteLastTravel(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.parseEmployeeBody(w, r)
	if !ok {
		return
	}
	if _, ok := h.lookupEmployee(w, r, employeeID); !ok {
		return
	}

	deleted, err := h.Expenses.DeleteLastTravel(r.Context(), employeeID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	if deleted == 0 {
		api.Message(w, http.StatusNotFound, "No travel expense found")
		return
	}
	api.Message(w, http.StatusOK, "Last travel expense deleted successfully")
}

func (h *Handler) handleSaveGeneral(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64           `json:"employee_id"`
		Date       string          `json:"date"`
		Items      []expenses.Line `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.EmployeeID == 0 || payload.Date == "" || len(payload.Items) == 0 {
		api.Message(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	emp, ok := h.lookupEmployee(w, r, payload.EmployeeID)
	if !ok {
		return
	}

	date, err := shared.ParseDate(payload.Date)
	if err != nil || date.IsZero() {
		api.Message(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	// Lines without a description or amount are skipped, not rejected.
	lines := make([]expenses.Line, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.Description == "" || item.Amount == 0 {
			continue
		}
		lines = append(lines, item)
	}

	if err := h.Expenses.InsertGeneral(r.Context(), emp.ID, date, lines); err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.Message(w, http.StatusOK, "General expenses saved successfully")
}

func (h *Handler) handleViewGeneral(w http.ResponseWriter, r *http.Request) {
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || date.IsZero() {
		api.Message(w, http.StatusBadRequest, "Date parameter is required")
		return
	}

	rows, err := h.Expenses.GeneralByDate(r.Context(), date)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	table := api.Table{
		Columns: api.Columns("Employee", "Description", "Amount"),
		Records: make([][]any, 0, len(rows)),
	}
	for _, exp := range rows {
		table.Records = append(table.Records, []any{exp.EmployeeName, exp.Description, exp.Amount})
	}
	api.WriteJSON(w, http.StatusOK, table)
}

func (h *Handler) handleLoadGeneral(w http.ResponseWriter, r *http.Request) {
	employeeID, date, ok := h.parseLoadQuery(w, r)
	if !ok {
		return
	}
	if _, ok := h.lookupEmployee(w, r, employeeID); !ok {
		return
	}

	lines, err := h.Expenses.GeneralLines(r.Context(), employeeID, date)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": lines})
}

func (h *Handler) handleDeleteLastGeneral(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.parseEmployeeBody(w, r)
	if !ok {
		return
	}
	if _, ok := h.lookupEmployee(w, r, employeeID); !ok {
		return
	}

	deleted, err := h.Expenses.DeleteLastGeneral(r.Context(), employeeID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	if deleted == 0 {
		api.Message(w, http.StatusNotFound, "No general expense found")
		return
	}
	api.Message(w, http.StatusOK, "Last general expense deleted successfully")
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Expenses.Totals(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) parseLoadQuery(w http.ResponseWriter, r *http.Request) (int64, time.Time, bool) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil {
		api.Message(w, http.StatusBadRequest, "Employee and date required")
		return 0, time.Time{}, false
	}
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || date.IsZero() {
		api.Message(w, http.StatusBadRequest, "Employee and date required")
		return 0, time.Time{}, false
	}
	return employeeID, date, true
}

func (h *Handler) parseEmployeeBody(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var payload struct {
		EmployeeID int64 `json:"employee_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.EmployeeID == 0 {
		api.Message(w, http.StatusBadRequest, "Employee required")
		return 0, false
	}
	return payload.EmployeeID, true
}
