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

func (h *Handler) ListarSedes(w http.ResponseWriter, r *http.Request) {
	sedes, err := h.repository.ListarSedes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "sedes obtenidas", sedes)
}

func (h *Handler) CrearSede(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nombre    string `json:"nombre" validate:"required"`
		Direccion string `json:"direccion" validate:"required"`
		EmpresaID int64  `json:"empresa_id" validate:"required"`
		CiudadID  int64  `json:"ciudad_id" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	sede := &domain.Sede{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		EmpresaID: req.EmpresaID,
		CiudadID:  req.CiudadID,
	}

	if err := h.repository.CrearSede(sede); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "sedes_empresa_id_fkey":
				h.badRequest(w, r, errors.New("la empresa no existe"))
			case pgErr.ConstraintName == "sedes_ciudad_id_fkey":
				h.badRequest(w, r, errors.New("la ciudad no existe"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "sede creada", sede)
}

func (h *Handler) ActualizarSede(w http.ResponseWriter, r *http.Request) {
	sedeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "el ID de la sede es inválido")
		return
	}

	var req struct {
		Nombre    string `json:"nombre" validate:"required"`
		Direccion string `json:"direccion" validate:"required"`
		EmpresaID int64  `json:"empresa_id" validate:"required"`
		CiudadID  int64  `json:"ciudad_id" validate:"required"`
		Activo    *bool  `json:"activo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	sede, err := h.repository.ObtenerSedePorID(sedeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "la sede no existe")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	sede.Nombre = req.Nombre
	sede.Direccion = req.Direccion
	sede.EmpresaID = req.EmpresaID
	sede.CiudadID = req.CiudadID
	if req.Activo != nil {
		sede.Activo = *req.Activo
	}

	if err := h.repository.ActualizarSede(sede); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "sedes_empresa_id_fkey":
				h.badRequest(w, r, errors.New("la empresa no existe"))
			case pgErr.ConstraintName == "sedes_ciudad_id_fkey":
				h.badRequest(w, r, errors.New("la ciudad no existe"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no fue posible actualizar la sede, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "sede actualizada", sede)
}

func (h *Handler) EliminarSede(w http.ResponseWriter, r *http.Request) {
	sedeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "el ID de la sede es inválido")
		return
	}

	if err := h.repository.DesactivarSede(sedeID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "sede eliminada", nil)
}
