package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) ListarUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.repository.ListarUsuarios()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "usuarios obtenidos", usuarios)
}

func (h *Handler) CrearUsuario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username       string `json:"username" validate:"required"`
		NombreCompleto string `json:"nombre_completo" validate:"required"`
		Email          string `json:"email" validate:"required,email"`
		Rol            string `json:"rol" validate:"required,oneof=administrador gestor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// la contraseña inicial se genera y se envía por correo, nunca la elige quien crea la cuenta
	password := utils.GenerarPasswordAleatoria(h.config.NuevoUsuario.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	usuario := &domain.Usuario{
		Username:       req.Username,
		PasswordHash:   string(hashedPassword),
		NombreCompleto: req.NombreCompleto,
		Email:          req.Email,
		Rol:            domain.Rol(req.Rol),
	}

	if err := h.repository.CrearUsuario(usuario); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "usuarios_username_key":
				h.badRequest(w, r, errors.New("el nombre de usuario ya existe"))
			case pgErr.ConstraintName == "usuarios_email_key":
				h.badRequest(w, r, errors.New("el correo ya está registrado"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.publicarMail(domain.MailMessage{
		Type: "nueva_cuenta",
		To:   usuario.Email,
		Data: domain.NuevaCuentaMailData{
			NombreCompleto: req.NombreCompleto,
			Username:       req.Username,
			Password:       password,
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "usuario creado", usuario)
}

func (h *Handler) ActualizarUsuario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    *string `json:"email" validate:"omitempty,email"`
		Rol      *string `json:"rol" validate:"omitempty,oneof=administrador gestor"`
		Activo   *bool   `json:"activo"`
		Password *string `json:"password" validate:"omitempty,min=8"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	usuario := r.Context().Value(UsuarioInfoCtx).(*domain.Usuario)

	if req.Email != nil {
		usuario.Email = *req.Email
	}
	if req.Rol != nil {
		usuario.Rol = domain.Rol(*req.Rol)
	}
	if req.Activo != nil {
		usuario.Activo = *req.Activo
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		usuario.PasswordHash = string(hashedPassword)
	}

	if err := h.repository.ActualizarUsuario(usuario); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "usuarios_email_key":
				h.badRequest(w, r, errors.New("el correo ya está registrado"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no fue posible actualizar el usuario, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "usuario actualizado", usuario)
}

func (h *Handler) EliminarUsuario(w http.ResponseWriter, r *http.Request) {
	usuario := r.Context().Value(UsuarioInfoCtx).(*domain.Usuario)

	if err := h.repository.EliminarUsuario(usuario.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "usuario eliminado", nil)
}
