package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/config"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/repository"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/seed"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operación a ejecutar (1: insertar datos base, 2: insertar empleados aleatorios)")
	flag.IntVar(&n, "n", 5, "cantidad de registros a insertar")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// cargar la configuración
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no fue posible cargar la configuración", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// crear el pool de conexiones
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

	// crear el repository
	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no se indicó ninguna operación")
	case 1:
		seed.SeedDatosBase(repo)
	case 2:
		if n <= 0 {
			slog.Error("indique una cantidad válida de empleados")
			return
		}

		// los empleados se reparten entre las áreas existentes
		areas, err := repo.ListarAreas()
		if err != nil {
			slog.Error("no fue posible listar las áreas", slog.String("error", err.Error()))
			return
		}
		if len(areas) == 0 {
			slog.Error("no hay áreas, ejecute primero la operación 1")
			return
		}

		sedes, err := repo.ListarSedes()
		if err != nil {
			slog.Error("no fue posible listar las sedes", slog.String("error", err.Error()))
			return
		}
		sedesPorID := make(map[int64]int64, len(sedes))
		for _, sede := range sedes {
			sedesPorID[sede.ID] = sede.EmpresaID
		}

		cnt := n
		for i := 0; i < n; i++ {
			area := areas[rand.Intn(len(areas))]
			empleado := utils.GenerarEmpleadoAleatorio(sedesPorID[area.SedeID], area.SedeID, area.ID)
			if err := repo.CrearEmpleado(empleado); err != nil {
				slog.Error("no fue posible insertar el empleado", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("empleados insertados", slog.Int("count", n-cnt))
	default:
		slog.Error("la operación indicada no existe")
	}
}
