package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("error interno del servidor", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "error interno del servidor", http.StatusInternalServerError)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Paginacion es el sobre de paginación que espera la tabla del frontend.
type Paginacion struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

type PaginatedResponse struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Paginacion `json:"pagination"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.errorResponse(w, r, validationErrors[0].Translate(h.translator))
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "error interno del servidor",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func (h *Handler) paginatedResponse(w http.ResponseWriter, r *http.Request, data any, pagina int, porPagina int, total int64) {
	ultimaPagina := int((total + int64(porPagina) - 1) / int64(porPagina))
	if ultimaPagina < 1 {
		ultimaPagina = 1
	}

	h.writeJSON(w, r, http.StatusOK, PaginatedResponse{
		Success: true,
		Data:    data,
		Pagination: Paginacion{
			CurrentPage: pagina,
			LastPage:    ultimaPagina,
			PerPage:     porPagina,
			Total:       total,
		},
	})
}

// paginacionParams lee page, perPage y search con los valores por defecto de
// las tablas del frontend.
func paginacionParams(r *http.Request) (pagina int, porPagina int, buscar string) {
	pagina, porPagina = 1, 10

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		pagina = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("perPage")); err == nil && v > 0 && v <= 100 {
		porPagina = v
	}
	buscar = strings.TrimSpace(r.URL.Query().Get("search"))

	return pagina, porPagina, buscar
}
