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

func (h *Handler) ListarEmpresas(w http.ResponseWriter, r *http.Request) {
	empresas, err := h.repository.ListarEmpresas()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "empresas obtenidas", empresas)
}

func (h *Handler) CrearEmpresa(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nombre string `json:"nombre" validate:"required"`
		NIT    string `json:"nit" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	empresa := &domain.Empresa{
		Nombre: req.Nombre,
		NIT:    req.NIT,
	}

	if err := h.repository.CrearEmpresa(empresa); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "empresas_nit_key":
				h.badRequest(w, r, errors.New("ya existe una empresa con ese NIT"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "empresa creada", empresa)
}

func (h *Handler) ActualizarEmpresa(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "el ID de la empresa es inválido")
		return
	}

	var req struct {
		Nombre string `json:"nombre" validate:"required"`
		NIT    string `json:"nit" validate:"required"`
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

	empresa, err := h.repository.ObtenerEmpresaPorID(empresaID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "la empresa no existe")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	empresa.Nombre = req.Nombre
	empresa.NIT = req.NIT
	if req.Activo != nil {
		empresa.Activo = *req.Activo
	}

	if err := h.repository.ActualizarEmpresa(empresa); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "empresas_nit_key":
				h.badRequest(w, r, errors.New("ya existe una empresa con ese NIT"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no fue posible actualizar la empresa, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "empresa actualizada", empresa)
}

func (h *Handler) EliminarEmpresa(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "el ID de la empresa es inválido")
		return
	}

	if err := h.repository.DesactivarEmpresa(empresaID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "empresa eliminada", nil)
}
