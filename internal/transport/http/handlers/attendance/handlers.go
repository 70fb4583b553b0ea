package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"hrportal/internal/domain/attendance"
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
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/", h.handleUpsert)
		r.Delete("/", h.handleDelete)
		r.Get("/view", h.handleView)
		r.Get("/today", h.handleToday)
		r.Delete("/delete-all", h.handleDeleteAll)
	})
}

// upsertPayload accepts both naming conventions the frontends use for shift
// times.
type upsertPayload struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	CheckIn1   string `json:"check_in_1"`
	CheckOut1  string `json:"check_out_1"`
	CheckIn2   string `json:"check_in_2"`
	CheckOut2  string `json:"check_out_2"`
	Shift1In   string `json:"shift1_in"`
	Shift1Out  string `json:"shift1_out"`
	Shift2In   string `json:"shift2_in"`
	Shift2Out  string `json:"shift2_out"`
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	var payload upsertPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.EmployeeID == 0 || payload.Date == "" {
		api.Message(w, http.StatusBadRequest, "Employee ID and date are required")
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

	var shifts attendance.Shifts
	fields := []struct {
		raw  string
		dest **attendance.TimeOfDay
	}{
		{firstNonEmpty(payload.CheckIn1, payload.Shift1In), &shifts.Shift1In},
		{firstNonEmpty(payload.CheckOut1, payload.Shift1Out), &shifts.Shift1Out},
		{firstNonEmpty(payload.CheckIn2, payload.Shift2In), &shifts.Shift2In},
		{firstNonEmpty(payload.CheckOut2, payload.Shift2Out), &shifts.Shift2Out},
	}
	for _, field := range fields {
		parsed, err := attendance.ParseClock(field.raw)
		if err != nil {
			api.Message(w, http.StatusBadRequest, err.Error())
			return
		}
		*field.dest = parsed
	}

	created, err := h.Attendance.Upsert(r.Context(), payload.EmployeeID, date, shifts)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	if created {
		api.Message(w, http.StatusOK, "Attendance added successfully.")
		return
	}
	api.Message(w, http.StatusOK, "Attendance updated successfully.")
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || date.IsZero() {
		api.Message(w, http.StatusBadRequest, "Date parameter is required")
		return
	}

	records, err := h.Attendance.ListByDate(r.Context(), date)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	table := api.Table{
		Columns: api.Columns("Employee", "Shift 1 In", "Shift 1 Out", "Shift 2 In", "Shift 2 Out", "Status"),
		Records: make([][]any, 0, len(records)),
	}
	for _, rec := range records {
		table.Records = append(table.Records, []any{
			rec.EmployeeName,
			clockOrBlank(rec.Shift1In),
			clockOrBlank(rec.Shift1Out),
			clockOrBlank(rec.Shift2In),
			clockOrBlank(rec.Shift2Out),
			attendance.Status(rec.Shift1In),
		})
	}
	api.WriteJSON(w, http.StatusOK, table)
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Roster.List(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	records, err := h.Attendance.ListByDate(r.Context(), shared.Today())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	rows, absent := todayView(employees, records)
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"records":          rows,
		"absent_employees": absent,
	})
}

// todayView assembles one row per roster member plus the list of employees
// with no check-in yet. A record without a first-shift check-in still counts
// as absent.
func todayView(employees []roster.Employee, records []attendance.Record) (rows, absent []map[string]string) {
	checkedIn := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		if rec.Shift1In != nil {
			checkedIn[rec.EmployeeName] = rec
		}
	}

	rows = make([]map[string]string, 0, len(employees))
	absent = make([]map[string]string, 0)
	for _, emp := range employees {
		status := attendance.StatusAbsent
		checkIn := "-"
		checkOut := "-"
		if rec, ok := checkedIn[emp.Name]; ok {
			status = attendance.Status(rec.Shift1In)
			checkIn = rec.Shift1In.Clock12()
			if rec.Shift1Out != nil {
				checkOut = rec.Shift1Out.Clock12()
			}
		} else {
			absent = append(absent, map[string]string{"name": emp.Name})
		}
		rows = append(rows, map[string]string{
			"employee_name": emp.Name,
			"status":        status,
			"check_in":      checkIn,
			"check_out":     checkOut,
		})
	}
	return rows, absent
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64  `json:"employee_id"`
		Date       string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.EmployeeID == 0 || payload.Date == "" {
		api.Message(w, http.StatusBadRequest, "Employee and Date are required")
		return
	}

	date, err := shared.ParseDate(payload.Date)
	if err != nil || date.IsZero() {
		api.Message(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	if err := h.Attendance.Delete(r.Context(), payload.EmployeeID, date); err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.Message(w, http.StatusOK, "Attendance entry deleted.")
}

func (h *Handler) handleDeleteAll(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Date == "" {
		api.Message(w, http.StatusBadRequest, "Date is required")
		return
	}

	date, err := shared.ParseDate(payload.Date)
	if err != nil || date.IsZero() {
		api.Message(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	if err := h.Attendance.DeleteAllForDate(r.Context(), date); err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.Message(w, http.StatusOK, "All attendance for the selected date has been deleted.")
}

func clockOrBlank(t *attendance.TimeOfDay) string {
	if t == nil {
		return ""
	}
	return t.Clock12()
}
