package repository

import (
	"context"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (r *Repository) ObtenerEstadisticasDashboard() (*domain.EstadisticasDashboard, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM ciudades WHERE activo = TRUE),
			(SELECT COUNT(*) FROM empresas WHERE activo = TRUE),
			(SELECT COUNT(*) FROM sedes WHERE activo = TRUE),
			(SELECT COUNT(*) FROM areas WHERE activo = TRUE),
			(SELECT COUNT(*) FROM empleados WHERE activo = TRUE),
			(SELECT COUNT(*) FROM asignaciones_horario WHERE activo = TRUE),
			(SELECT COUNT(*) FROM empleados e
				WHERE e.activo = TRUE
					AND NOT EXISTS (
						SELECT 1 FROM asignaciones_horario a
						WHERE a.empleado_id = e.id AND a.activo = TRUE
					))
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	stats := &domain.EstadisticasDashboard{}
	dst := []any{
		&stats.Ciudades,
		&stats.Empresas,
		&stats.Sedes,
		&stats.Areas,
		&stats.EmpleadosActivos,
		&stats.AsignacionesActivas,
		&stats.EmpleadosSinHorario,
	}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	return stats, nil
}
