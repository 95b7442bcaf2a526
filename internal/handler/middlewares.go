package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("petición atendida", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // con slog la traza queda ilegible
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("__sigrh_rrhh_token")
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.errorResponse(w, r, "no ha iniciado sesión")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		tokenString := cookie.Value
		claims := &AuthClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			h.errorResponse(w, r, "token inválido")
			return
		}

		// rol y sub del token quedan en el contexto para el resto de la cadena
		ctx := r.Context()
		ctx = context.WithValue(ctx, RolCtxKey, claims.Rol)
		ctx = context.WithValue(ctx, SubCtxKey, claims.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) miInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subString := r.Context().Value(SubCtxKey).(string)

		sub, err := strconv.ParseInt(subString, 10, 64)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		miInfo, err := h.repository.ObtenerUsuarioPorID(sub)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "la cuenta no existe")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), MiInfoCtx, miInfo)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) RequiredRol(roles []domain.Rol) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rolCtx := r.Context().Value(RolCtxKey).(string)
			rol := domain.Rol(rolCtx)
			if !slices.Contains(roles, rol) {
				h.errorResponse(w, r, "permisos insuficientes")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) usuarioInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuarioIDParam := chi.URLParam(r, "id")
		usuarioID, err := strconv.ParseInt(usuarioIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "el ID del usuario es inválido")
			return
		}

		usuario, err := h.repository.ObtenerUsuarioPorID(usuarioID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "el usuario no existe")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), UsuarioInfoCtx, usuario)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) protegerAdminInicial(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuario := r.Context().Value(UsuarioInfoCtx).(*domain.Usuario)
		if usuario.Username == h.config.AdminInicial.Username {
			h.errorResponse(w, r, "no se puede modificar el administrador inicial")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) empleadoInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		empleadoIDParam := chi.URLParam(r, "id")
		empleadoID, err := strconv.ParseInt(empleadoIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "el ID del empleado es inválido")
			return
		}

		empleado, err := h.repository.ObtenerEmpleadoPorID(empleadoID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "el empleado no existe")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), EmpleadoCtx, empleado)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) asignacionInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		asignacionIDParam := chi.URLParam(r, "id")
		asignacionID, err := strconv.ParseInt(asignacionIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "el ID de la asignación es inválido")
			return
		}

		asignacion, err := h.repository.ObtenerAsignacionPorID(asignacionID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "la asignación no existe")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), AsignacionCtx, asignacion)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
