package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (h *Handler) ListarCiudades(w http.ResponseWriter, r *http.Request) {
	ciudades, err := h.repository.ListarCiudades()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ciudades obtenidas", ciudades)
}

func (h *Handler) CrearCiudad(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nombre string `json:"nombre" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ciudad := &domain.Ciudad{Nombre: req.Nombre}

	if err := h.repository.CrearCiudad(ciudad); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "ciudades_nombre_key":
				h.badRequest(w, r, errors.New("la ciudad ya existe"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "ciudad creada", ciudad)
}

func (h *Handler) ActualizarCiudad(w http.ResponseWriter, r *http.Request) {
	ciudadID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "el ID de la ciudad es inválido")
		return
	}

	var req struct {
		Nombre string `json:"nombre" validate:"required"`
		Activo *bool  `json:"activo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ciudad, err := h.repository.ObtenerCiudadPorID(ciudadID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "la ciudad no existe")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	ciudad.Nombre = req.Nombre
	if req.Activo != nil {
		ciudad.Activo = *req.Activo
	}

	if err := h.repository.ActualizarCiudad(ciudad); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "ciudades_nombre_key":
				h.badRequest(w, r, errors.New("la ciudad ya existe"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no fue posible actualizar la ciudad, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "ciudad actualizada", ciudad)
}

func (h *Handler) EliminarCiudad(w http.ResponseWriter, r *http.Request) {
	ciudadID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "el ID de la ciudad es inválido")
		return
	}

	if err := h.repository.DesactivarCiudad(ciudadID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ciudad eliminada", nil)
}
