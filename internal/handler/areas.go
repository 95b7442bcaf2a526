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

func (h *Handler) ListarAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.repository.ListarAreas()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "áreas obtenidas", areas)
}

func (h *Handler) CrearArea(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nombre string `json:"nombre" validate:"required"`
		SedeID int64  `json:"sede_id" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	area := &domain.Area{
		Nombre: req.Nombre,
		SedeID: req.SedeID,
	}

	if err := h.repository.CrearArea(area); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "areas_sede_id_fkey":
				h.badRequest(w, r, errors.New("la sede no existe"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "área creada", area)
}

func (h *Handler) ActualizarArea(w http.ResponseWriter, r *http.Request) {
	areaID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "el ID del área es inválido")
		return
	}

	var req struct {
		Nombre string `json:"nombre" validate:"required"`
		SedeID int64  `json:"sede_id" validate:"required"`
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

	area, err := h.repository.ObtenerAreaPorID(areaID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "el área no existe")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	area.Nombre = req.Nombre
	area.SedeID = req.SedeID
	if req.Activo != nil {
		area.Activo = *req.Activo
	}

	if err := h.repository.ActualizarArea(area); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "areas_sede_id_fkey":
				h.badRequest(w, r, errors.New("la sede no existe"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no fue posible actualizar el área, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "área actualizada", area)
}

func (h *Handler) EliminarArea(w http.ResponseWriter, r *http.Request) {
	areaID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "el ID del área es inválido")
		return
	}

	if err := h.repository.DesactivarArea(areaID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "área eliminada", nil)
}
