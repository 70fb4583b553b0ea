package rosterhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrportal/internal/domain/roster"
	"hrportal/internal/transport/http/api"
)

type Handler struct {
	Store *roster.Store
}

func NewHandler(store *roster.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Delete("/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.List(r.Context())
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"employees": employees})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Message(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		api.Message(w, http.StatusBadRequest, "Employee name is required")
		return
	}

	if _, err := h.Store.Create(r.Context(), name); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			api.Message(w, http.StatusConflict, fmt.Sprintf("Employee %q already exists", name))
			return
		}
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	api.Message(w, http.StatusCreated, fmt.Sprintf("Employee %q added successfully", name))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Message(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	name, err := h.Store.Delete(r.Context(), employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		api.Message(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		api.Message(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	api.Message(w, http.StatusOK, fmt.Sprintf("Employee %q and all data removed.", name))
}
