package advanceshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"hrportal/internal/domain/advances"
	"hrportal/internal/domain/roster"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Advances *advances.Store
	Roster   *roster.Store
}

func NewHandler(advancesStore *advances.Store, rosterStore *roster.Store) *Handler {
	return &Handler{Advances: advancesStore, Roster: rosterStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/advances", func(r chi.Router) {
		r.Post("/", h.handleAdd)
		r.Get("/view", h.handleView)
		r.Delete("/last", h.handleDeleteLast)
	})
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64    `json:"employee_id"`
		Date       string   `json:"date"`
		Amount     *float64 `json:"amount"`
		Notes      string   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.EmployeeID == 0 || payload.Date == "" || payload.Amount == nil {
		api.Message(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if *payload.Amount <= 0 {
		api.Message(w, http.StatusBadRequest, "Amount must be greater than zero")
		return
	}

	if _, err := h.Roster.Get(r.Context(), payload.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Message(w, http.StatusNotFound, "Employee not found")
			return
		}
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	date, err := shared.ParseDate(payload.Date)
	if err != nil || date.IsZero() {
		api.Message(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	if _, err := h.Advances.Insert(r.Context(), payload.EmployeeID, date, *payload.Amount, payload.Notes); err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.Message(w, http.StatusOK, "Advance recorded successfully")
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	var filter advances.Filter
	query := r.URL.Query()
	switch {
	case query.Get("date") != "":
		date, err := shared.ParseDate(query.Get("date"))
		if err != nil || date.IsZero() {
			api.Message(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		filter.Date = &date
	case query.Get("month") != "":
		start, end, err := shared.ParseMonth(query.Get("month"))
		if err != nil {
			api.Message(w, http.StatusBadRequest, "Invalid month format")
			return
		}
		filter.MonthStart = &start
		filter.MonthEnd = &end
	}

	rows, err := h.Advances.List(r.Context(), filter)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	table := api.Table{
		Columns: api.Columns("Employee", "Date", "Amount", "Notes"),
		Records: make([][]any, 0, len(rows)),
	}
	for _, adv := range rows {
		table.Records = append(table.Records, []any{
			adv.EmployeeName, adv.Date.Format("2006-01-02"), adv.Amount, adv.Notes,
		})
	}
	api.WriteJSON(w, http.StatusOK, table)
}

func (h *Handler) handleDeleteLast(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64 `json:"employee_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.EmployeeID == 0 {
		api.Message(w, http.StatusBadRequest, "Employee required")
		return
	}

	if _, err := h.Roster.Get(r.Context(), payload.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Message(w, http.StatusNotFound, "Employee not found")
			return
		}
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	deleted, err := h.Advances.DeleteLast(r.Context(), payload.EmployeeID)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	if deleted == 0 {
		api.Message(w, http.StatusNotFound, "No advance found")
		return
	}
	api.Message(w, http.StatusOK, "Last advance deleted successfully")
}
