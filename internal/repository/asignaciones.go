package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (r *Repository) ListarAsignaciones(pagina int, porPagina int, buscar string) ([]*domain.AsignacionHorario, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	filtro := `($1 = '' OR e.documento ILIKE '%' || $1 || '%' OR (e.nombres || ' ' || e.apellidos) ILIKE '%' || $1 || '%')`

	var total int64
	queryTotal := `
		SELECT COUNT(*)
		FROM asignaciones_horario a
		JOIN empleados e ON e.id = a.empleado_id
		WHERE ` + filtro
	if err := r.dbpool.QueryRowContext(ctx, queryTotal, buscar).Scan(&total); err != nil {
		return nil, 0, err
	}

	// se pagina sobre las cabeceras y luego se traen sus detalles en la misma
	// consulta, armando las estructuras con un mapa
	query := `
		SELECT
			a.id,
			a.empleado_id,
			a.tipo_horario,
			a.fecha_inicio,
			a.fecha_fin,
			a.activo,
			a.created_at,
			a.version,
			e.documento,
			e.nombres || ' ' || e.apellidos,
			d.id,
			d.dia_semana,
			d.hora_inicio,
			d.hora_fin
		FROM (
			SELECT a.id
			FROM asignaciones_horario a
			JOIN empleados e ON e.id = a.empleado_id
			WHERE ` + filtro + `
			ORDER BY a.id
			LIMIT $2 OFFSET $3
		) pagina
		JOIN asignaciones_horario a ON a.id = pagina.id
		JOIN empleados e ON e.id = a.empleado_id
		LEFT JOIN asignacion_horario_detalles d ON d.asignacion_id = a.id
		ORDER BY a.id, d.dia_semana
	`

	rows, err := r.dbpool.QueryContext(ctx, query, buscar, porPagina, (pagina-1)*porPagina)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	asignacionesMap := make(map[int64]*domain.AsignacionHorario)
	orden := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID          int64
			EmpleadoID  int64
			TipoHorario string
			FechaInicio time.Time
			FechaFin    time.Time
			Activo      bool
			CreatedAt   time.Time
			Version     int32
			Documento   string
			Nombre      string

			DetalleID  sql.NullInt64
			DiaSemana  sql.NullInt32
			HoraInicio sql.NullString
			HoraFin    sql.NullString
		}

		dst := []any{
			&row.ID,
			&row.EmpleadoID,
			&row.TipoHorario,
			&row.FechaInicio,
			&row.FechaFin,
			&row.Activo,
			&row.CreatedAt,
			&row.Version,
			&row.Documento,
			&row.Nombre,
			&row.DetalleID,
			&row.DiaSemana,
			&row.HoraInicio,
			&row.HoraFin,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, 0, err
		}

		asignacion, existe := asignacionesMap[row.ID]
		if !existe {
			asignacion = &domain.AsignacionHorario{
				ID:                row.ID,
				EmpleadoID:        row.EmpleadoID,
				TipoHorario:       domain.TipoHorario(row.TipoHorario),
				FechaInicio:       row.FechaInicio,
				FechaFin:          row.FechaFin,
				Activo:            row.Activo,
				CreatedAt:         row.CreatedAt,
				Version:           row.Version,
				EmpleadoDocumento: row.Documento,
				EmpleadoNombre:    row.Nombre,
				Detalles:          make([]domain.DetalleHorario, 0),
			}
			asignacionesMap[row.ID] = asignacion
			orden = append(orden, row.ID)
		}

		// si no hay detalle la asignación quedó vacía, no hay nada más que armar
		if !row.DetalleID.Valid {
			continue
		}

		asignacion.Detalles = append(asignacion.Detalles, domain.DetalleHorario{
			ID:         row.DetalleID.Int64,
			DiaSemana:  domain.DiaSemana(row.DiaSemana.Int32),
			HoraInicio: row.HoraInicio.String,
			HoraFin:    row.HoraFin.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	asignaciones := make([]*domain.AsignacionHorario, 0, len(orden))
	for _, id := range orden {
		asignaciones = append(asignaciones, asignacionesMap[id])
	}

	return asignaciones, total, nil
}

func (r *Repository) ObtenerAsignacionPorID(id int64) (*domain.AsignacionHorario, error) {
	query := `
		SELECT
			a.empleado_id,
			a.tipo_horario,
			a.fecha_inicio,
			a.fecha_fin,
			a.activo,
			a.created_at,
			a.version,
			e.documento,
			e.nombres || ' ' || e.apellidos,
			d.id,
			d.dia_semana,
			d.hora_inicio,
			d.hora_fin
		FROM asignaciones_horario a
		JOIN empleados e ON e.id = a.empleado_id
		LEFT JOIN asignacion_horario_detalles d ON d.asignacion_id = a.id
		WHERE a.id = $1
		ORDER BY d.dia_semana
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var asignacion *domain.AsignacionHorario

	for rows.Next() {
		var row struct {
			EmpleadoID  int64
			TipoHorario string
			FechaInicio time.Time
			FechaFin    time.Time
			Activo      bool
			CreatedAt   time.Time
			Version     int32
			Documento   string
			Nombre      string

			DetalleID  sql.NullInt64
			DiaSemana  sql.NullInt32
			HoraInicio sql.NullString
			HoraFin    sql.NullString
		}

		dst := []any{
			&row.EmpleadoID,
			&row.TipoHorario,
			&row.FechaInicio,
			&row.FechaFin,
			&row.Activo,
			&row.CreatedAt,
			&row.Version,
			&row.Documento,
			&row.Nombre,
			&row.DetalleID,
			&row.DiaSemana,
			&row.HoraInicio,
			&row.HoraFin,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if asignacion == nil {
			asignacion = &domain.AsignacionHorario{
				ID:                id,
				EmpleadoID:        row.EmpleadoID,
				TipoHorario:       domain.TipoHorario(row.TipoHorario),
				FechaInicio:       row.FechaInicio,
				FechaFin:          row.FechaFin,
				Activo:            row.Activo,
				CreatedAt:         row.CreatedAt,
				Version:           row.Version,
				EmpleadoDocumento: row.Documento,
				EmpleadoNombre:    row.Nombre,
				Detalles:          make([]domain.DetalleHorario, 0),
			}
		}

		if !row.DetalleID.Valid {
			continue
		}

		asignacion.Detalles = append(asignacion.Detalles, domain.DetalleHorario{
			ID:         row.DetalleID.Int64,
			DiaSemana:  domain.DiaSemana(row.DiaSemana.Int32),
			HoraInicio: row.HoraInicio.String,
			HoraFin:    row.HoraFin.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if asignacion == nil {
		return nil, sql.ErrNoRows
	}

	return asignacion, nil
}

func (r *Repository) CrearAsignacion(a *domain.AsignacionHorario) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO asignaciones_horario (empleado_id, tipo_horario, fecha_inicio, fecha_fin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, activo, created_at, version
	`
	args := []any{a.EmpleadoID, a.TipoHorario, a.FechaInicio, a.FechaFin}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Activo, &a.CreatedAt, &a.Version); err != nil {
		return err
	}

	if err := insertarDetalles(ctx, tx, a); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// ActualizarAsignacion actualiza la cabecera y reemplaza la lista de
// detalles completa, tal como la reconstruye el formulario de edición.
func (r *Repository) ActualizarAsignacion(a *domain.AsignacionHorario) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE asignaciones_horario
		SET
			fecha_inicio = $1,
			fecha_fin = $2,
			activo = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`
	args := []any{a.FechaInicio, a.FechaFin, a.Activo, a.ID, a.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&a.Version); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM asignacion_horario_detalles WHERE asignacion_id = $1`, a.ID); err != nil {
		return err
	}

	if err := insertarDetalles(ctx, tx, a); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DesactivarAsignacion(id int64) error {
	query := `
		UPDATE asignaciones_horario SET activo = FALSE, version = version + 1 WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// GuardarAsignacionImportada es la regla única de upsert de la carga masiva
// y de cualquier reimportación: dentro de una transacción se bloquea la fila
// del empleado (lo que serializa cargas concurrentes del mismo empleado), se
// busca una asignación activa cuya ventana se solape con la importada y, si
// existe, se actualiza en el lugar reemplazando su detalle completo; si no,
// se crea una nueva. Reimportar el mismo archivo es por lo tanto idempotente.
func (r *Repository) GuardarAsignacionImportada(a *domain.AsignacionHorario) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var empleadoID int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM empleados WHERE id = $1 FOR UPDATE`, a.EmpleadoID).Scan(&empleadoID); err != nil {
		return err
	}

	query := `
		SELECT id, version
		FROM asignaciones_horario
		WHERE empleado_id = $1
			AND activo = TRUE
			AND fecha_inicio <= $3
			AND fecha_fin >= $2
		ORDER BY id
		LIMIT 1
	`

	var existenteID int64
	var existenteVersion int32
	err = tx.QueryRowContext(ctx, query, a.EmpleadoID, a.FechaInicio, a.FechaFin).Scan(&existenteID, &existenteVersion)
	switch {
	case err == nil:
		query = `
			UPDATE asignaciones_horario
			SET
				tipo_horario = $1,
				fecha_inicio = $2,
				fecha_fin = $3,
				version = version + 1
			WHERE id = $4
			RETURNING activo, created_at, version
		`
		args := []any{a.TipoHorario, a.FechaInicio, a.FechaFin, existenteID}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&a.Activo, &a.CreatedAt, &a.Version); err != nil {
			return err
		}
		a.ID = existenteID

		if _, err := tx.ExecContext(ctx, `DELETE FROM asignacion_horario_detalles WHERE asignacion_id = $1`, a.ID); err != nil {
			return err
		}
	case errors.Is(err, sql.ErrNoRows):
		query = `
			INSERT INTO asignaciones_horario (empleado_id, tipo_horario, fecha_inicio, fecha_fin)
			VALUES ($1, $2, $3, $4)
			RETURNING id, activo, created_at, version
		`
		args := []any{a.EmpleadoID, a.TipoHorario, a.FechaInicio, a.FechaFin}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Activo, &a.CreatedAt, &a.Version); err != nil {
			return err
		}
	default:
		return err
	}

	if err := insertarDetalles(ctx, tx, a); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func insertarDetalles(ctx context.Context, tx *sql.Tx, a *domain.AsignacionHorario) error {
	query := `
		INSERT INTO asignacion_horario_detalles (asignacion_id, dia_semana, hora_inicio, hora_fin)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for i := range a.Detalles {
		params := []any{a.ID, a.Detalles[i].DiaSemana, a.Detalles[i].HoraInicio, a.Detalles[i].HoraFin}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&a.Detalles[i].ID); err != nil {
			return err
		}
	}

	return nil
}
