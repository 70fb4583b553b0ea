package reportshandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/reports"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Reports *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Reports: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Post("/pdf", h.handlePDF)
		r.Get("/generate", h.handleGenerate)
		r.Post("/generate", h.handleGenerate)
	})
}

type reportPayload struct {
	Type      string `json:"report_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Action    string `json:"action"`
}

// parseRequest reads report parameters from the JSON body on POST and from
// the query string on GET.
func parseRequest(r *http.Request) (reports.Request, error) {
	var payload reportPayload
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return reports.Request{}, err
		}
	} else {
		query := r.URL.Query()
		payload = reportPayload{
			Type:      query.Get("report_type"),
			StartDate: query.Get("start_date"),
			EndDate:   query.Get("end_date"),
			Action:    query.Get("action"),
		}
	}

	req := reports.Request{
		Type:   strings.ToLower(strings.TrimSpace(payload.Type)),
		Action: payload.Action,
	}
	var err error
	if req.StartDate, err = optionalDate(payload.StartDate); err != nil {
		return reports.Request{}, err
	}
	if req.EndDate, err = optionalDate(payload.EndDate); err != nil {
		return reports.Request{}, err
	}
	return req, nil
}

func optionalDate(value string) (*time.Time, error) {
	parsed, err := shared.ParseDate(value)
	if err != nil {
		return nil, err
	}
	if parsed.IsZero() {
		return nil, nil
	}
	return &parsed, nil
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Type == "" {
		api.Message(w, http.StatusBadRequest, "Report type is required")
		return
	}

	data, filename, err := h.Reports.BuildPDF(r.Context(), req)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.WritePDF(w, filename, req.Action, data)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Type == "" {
		api.Message(w, http.StatusBadRequest, "Report type is required")
		return
	}

	titles, records, err := h.Reports.Preview(r.Context(), req)
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.WriteJSON(w, http.StatusOK, api.Table{
		Columns: api.Columns(titles...),
		Records: records,
	})
}
