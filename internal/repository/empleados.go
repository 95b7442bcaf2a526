package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (r *Repository) CrearEmpleado(empleado *domain.Empleado) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO empleados (documento, nombres, apellidos, email, tipo_empleado, empresa_id, sede_id, area_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, activo, created_at, version
	`

	args := []any{empleado.Documento, empleado.Nombres, empleado.Apellidos, empleado.Email, empleado.TipoEmpleado, empleado.EmpresaID, empleado.SedeID, empleado.AreaID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&empleado.ID, &empleado.Activo, &empleado.CreatedAt, &empleado.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) ObtenerEmpleadoPorID(id int64) (*domain.Empleado, error) {
	query := `
		SELECT documento, nombres, apellidos, email, tipo_empleado, empresa_id, sede_id, area_id, activo, created_at, version
		FROM empleados WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	empleado := &domain.Empleado{
		ID: id,
	}

	dst := []any{&empleado.Documento, &empleado.Nombres, &empleado.Apellidos, &empleado.Email, &empleado.TipoEmpleado, &empleado.EmpresaID, &empleado.SedeID, &empleado.AreaID, &empleado.Activo, &empleado.CreatedAt, &empleado.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return empleado, nil
}

// BuscarEmpleadoPorDocumento resuelve un documento contra los empleados
// activos; es el directorio que usa la carga masiva. ok es false cuando el
// documento no existe o el empleado está inactivo.
func (r *Repository) BuscarEmpleadoPorDocumento(documento string) (*domain.Empleado, bool, error) {
	query := `
		SELECT id, nombres, apellidos, email, tipo_empleado, empresa_id, sede_id, area_id, activo, created_at, version
		FROM empleados WHERE documento = $1 AND activo = TRUE
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	empleado := &domain.Empleado{
		Documento: documento,
	}

	dst := []any{&empleado.ID, &empleado.Nombres, &empleado.Apellidos, &empleado.Email, &empleado.TipoEmpleado, &empleado.EmpresaID, &empleado.SedeID, &empleado.AreaID, &empleado.Activo, &empleado.CreatedAt, &empleado.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, documento).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return empleado, true, nil
}

func (r *Repository) ListarEmpleados(pagina int, porPagina int, buscar string) ([]*domain.Empleado, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	filtro := `($1 = '' OR documento ILIKE '%' || $1 || '%' OR (nombres || ' ' || apellidos) ILIKE '%' || $1 || '%')`

	var total int64
	if err := r.dbpool.QueryRowContext(ctx, `SELECT COUNT(*) FROM empleados WHERE `+filtro, buscar).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, documento, nombres, apellidos, email, tipo_empleado, empresa_id, sede_id, area_id, activo, created_at, version
		FROM empleados
		WHERE ` + filtro + `
		ORDER BY apellidos, nombres
		LIMIT $2 OFFSET $3
	`

	rows, err := r.dbpool.QueryContext(ctx, query, buscar, porPagina, (pagina-1)*porPagina)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	empleados := make([]*domain.Empleado, 0)
	for rows.Next() {
		empleado := &domain.Empleado{}
		dst := []any{&empleado.ID, &empleado.Documento, &empleado.Nombres, &empleado.Apellidos, &empleado.Email, &empleado.TipoEmpleado, &empleado.EmpresaID, &empleado.SedeID, &empleado.AreaID, &empleado.Activo, &empleado.CreatedAt, &empleado.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, 0, err
		}
		empleados = append(empleados, empleado)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return empleados, total, nil
}

func (r *Repository) ActualizarEmpleado(empleado *domain.Empleado) error {
	query := `
		UPDATE empleados
		SET
			nombres = $1,
			apellidos = $2,
			email = $3,
			tipo_empleado = $4,
			empresa_id = $5,
			sede_id = $6,
			area_id = $7,
			activo = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{empleado.Nombres, empleado.Apellidos, empleado.Email, empleado.TipoEmpleado, empleado.EmpresaID, empleado.SedeID, empleado.AreaID, empleado.Activo, empleado.ID, empleado.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&empleado.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DesactivarEmpleado(id int64) error {
	query := `
		UPDATE empleados SET activo = FALSE, version = version + 1 WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
