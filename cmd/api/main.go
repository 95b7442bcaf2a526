package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/config"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/handler"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/repository"
	"github.com/sigrh-dev/rrhh-admin/backend/migrator/postgres"
	"golang.org/x/crypto/bcrypt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * crear el logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * cargar la configuración
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no fue posible cargar la configuración", "error", err)
		return
	}

	/**********************************************
	 * conectar a la base de datos
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("no fue posible crear el pool de conexiones", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open no abre conexiones, hay que hacer ping explícito
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("no fue posible conectar a la base de datos", "error", err)
		return
	}

	/**********************************************
	 * aplicar las migraciones
	 **********************************************/
	if err := postgres.Migrate(dbpool); err != nil {
		logger.Error("no fue posible aplicar las migraciones", "error", err)
		return
	}

	/**********************************************
	 * crear el repository
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * asegurar el administrador inicial
	 **********************************************/
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminInicial.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("no fue posible generar el hash del administrador inicial", "error", err)
		return
	}
	adminInicial := &domain.Usuario{
		Username:       cfg.AdminInicial.Username,
		PasswordHash:   string(passwordHash),
		NombreCompleto: cfg.AdminInicial.NombreCompleto,
		Email:          cfg.AdminInicial.Email,
		Rol:            domain.RolAdministrador,
	}
	if err := repo.CrearUsuario(adminInicial); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "usuarios_username_key":
				// el administrador inicial ya existe, no hay nada que hacer
			default:
				logger.Error("no fue posible crear el administrador inicial", "error", err)
				return
			}
		default:
			logger.Error("no fue posible crear el administrador inicial", "error", err)
			return
		}
	}

	/**********************************************
	 * conectar a rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("no fue posible conectar a rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("no fue posible abrir el canal", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		"cola_correos",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("no fue posible declarar la cola", "error", err)
		return
	}

	/**********************************************
	 * conectar a redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * crear el handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, ch, rdb)
	if err != nil {
		logger.Error("no fue posible crear el handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * arrancar el servidor HTTP
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("arrancando el servidor...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("no fue posible arrancar el servidor", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("apagando el servidor...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falló el apagado del servidor", slog.String("error", err.Error()))
	}
	logger.Info("servidor apagado correctamente")
}
