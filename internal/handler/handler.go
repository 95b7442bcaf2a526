package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/config"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// autenticación
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// todo lo demás exige sesión iniciada
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/dashboard", h.ObtenerDashboard)

		// la gestión de cuentas es exclusiva del administrador
		r.Route("/usuarios", func(r chi.Router) {
			r.Use(h.RequiredRol([]domain.Rol{domain.RolAdministrador}))
			r.Post("/", h.CrearUsuario)
			r.Get("/", h.ListarUsuarios)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.usuarioInfo)
				r.Use(h.protegerAdminInicial)
				r.Patch("/", h.ActualizarUsuario)
				r.Delete("/", h.EliminarUsuario)
			})
		})

		r.Route("/ciudades", func(r chi.Router) {
			r.Get("/", h.ListarCiudades)
			r.Post("/", h.CrearCiudad)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", h.ActualizarCiudad)
				r.Delete("/", h.EliminarCiudad)
			})
		})

		r.Route("/empresas", func(r chi.Router) {
			r.Get("/", h.ListarEmpresas)
			r.Post("/", h.CrearEmpresa)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", h.ActualizarEmpresa)
				r.Delete("/", h.EliminarEmpresa)
			})
		})

		r.Route("/sedes", func(r chi.Router) {
			r.Get("/", h.ListarSedes)
			r.Post("/", h.CrearSede)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", h.ActualizarSede)
				r.Delete("/", h.EliminarSede)
			})
		})

		r.Route("/areas", func(r chi.Router) {
			r.Get("/", h.ListarAreas)
			r.Post("/", h.CrearArea)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", h.ActualizarArea)
				r.Delete("/", h.EliminarArea)
			})
		})

		r.Route("/empleados", func(r chi.Router) {
			r.Get("/", h.ListarEmpleados)
			r.Post("/", h.CrearEmpleado)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.empleadoInfo)
				r.Put("/", h.ActualizarEmpleado)
				r.Delete("/", h.EliminarEmpleado)
			})
		})

		r.Route("/asignacion-horarios", func(r chi.Router) {
			r.Get("/", h.ListarAsignaciones)
			r.Post("/", h.CrearAsignacion)
			r.With(h.miInfo).Post("/carga-masiva", h.CargaMasiva)
			r.Get("/template", h.DescargarPlantilla)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.asignacionInfo)
				r.Put("/", h.ActualizarAsignacion)
				r.Delete("/", h.EliminarAsignacion)
			})
		})
	})
}
