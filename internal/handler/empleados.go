package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (h *Handler) ListarEmpleados(w http.ResponseWriter, r *http.Request) {
	pagina, porPagina, buscar := paginacionParams(r)

	empleados, total, err := h.repository.ListarEmpleados(pagina, porPagina, buscar)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.paginatedResponse(w, r, empleados, pagina, porPagina, total)
}

func (h *Handler) CrearEmpleado(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Documento    string `json:"documento" validate:"required"`
		Nombres      string `json:"nombres" validate:"required"`
		Apellidos    string `json:"apellidos" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
		TipoEmpleado string `json:"tipo_empleado" validate:"required,oneof=administrativo comercial operativo temporal"`
		EmpresaID    int64  `json:"empresa_id" validate:"required"`
		SedeID       int64  `json:"sede_id" validate:"required"`
		AreaID       int64  `json:"area_id" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	empleado := &domain.Empleado{
		Documento:    req.Documento,
		Nombres:      req.Nombres,
		Apellidos:    req.Apellidos,
		Email:        req.Email,
		TipoEmpleado: domain.TipoEmpleado(req.TipoEmpleado),
		EmpresaID:    req.EmpresaID,
		SedeID:       req.SedeID,
		AreaID:       req.AreaID,
	}

	if err := h.repository.CrearEmpleado(empleado); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "empleados_documento_key":
				h.badRequest(w, r, errors.New("ya existe un empleado con ese documento"))
			case pgErr.ConstraintName == "empleados_email_key":
				h.badRequest(w, r, errors.New("el correo ya está registrado"))
			case pgErr.ConstraintName == "empleados_empresa_id_fkey":
				h.badRequest(w, r, errors.New("la empresa no existe"))
			case pgErr.ConstraintName == "empleados_sede_id_fkey":
				h.badRequest(w, r, errors.New("la sede no existe"))
			case pgErr.ConstraintName == "empleados_area_id_fkey":
				h.badRequest(w, r, errors.New("el área no existe"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "empleado creado", empleado)
}

func (h *Handler) ActualizarEmpleado(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nombres      *string `json:"nombres"`
		Apellidos    *string `json:"apellidos"`
		Email        *string `json:"email" validate:"omitempty,email"`
		TipoEmpleado *string `json:"tipo_empleado" validate:"omitempty,oneof=administrativo comercial operativo temporal"`
		EmpresaID    *int64  `json:"empresa_id"`
		SedeID       *int64  `json:"sede_id"`
		AreaID       *int64  `json:"area_id"`
		Activo       *bool   `json:"activo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	empleado := r.Context().Value(EmpleadoCtx).(*domain.Empleado)

	if req.Nombres != nil {
		empleado.Nombres = *req.Nombres
	}
	if req.Apellidos != nil {
		empleado.Apellidos = *req.Apellidos
	}
	if req.Email != nil {
		empleado.Email = *req.Email
	}
	if req.TipoEmpleado != nil {
		empleado.TipoEmpleado = domain.TipoEmpleado(*req.TipoEmpleado)
	}
	if req.EmpresaID != nil {
		empleado.EmpresaID = *req.EmpresaID
	}
	if req.SedeID != nil {
		empleado.SedeID = *req.SedeID
	}
	if req.AreaID != nil {
		empleado.AreaID = *req.AreaID
	}
	if req.Activo != nil {
		empleado.Activo = *req.Activo
	}

	if err := h.repository.ActualizarEmpleado(empleado); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "empleados_email_key":
				h.badRequest(w, r, errors.New("el correo ya está registrado"))
			case pgErr.ConstraintName == "empleados_empresa_id_fkey":
				h.badRequest(w, r, errors.New("la empresa no existe"))
			case pgErr.ConstraintName == "empleados_sede_id_fkey":
				h.badRequest(w, r, errors.New("la sede no existe"))
			case pgErr.ConstraintName == "empleados_area_id_fkey":
				h.badRequest(w, r, errors.New("el área no existe"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no fue posible actualizar el empleado, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "empleado actualizado", empleado)
}

func (h *Handler) EliminarEmpleado(w http.ResponseWriter, r *http.Request) {
	empleado := r.Context().Value(EmpleadoCtx).(*domain.Empleado)

	if err := h.repository.DesactivarEmpleado(empleado.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "empleado eliminado", nil)
}
