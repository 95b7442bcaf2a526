package repository

import (
	"context"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (r *Repository) CrearSede(sede *domain.Sede) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO sedes (nombre, direccion, empresa_id, ciudad_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, activo, created_at, version
	`

	args := []any{sede.Nombre, sede.Direccion, sede.EmpresaID, sede.CiudadID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&sede.ID, &sede.Activo, &sede.CreatedAt, &sede.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) ObtenerSedePorID(id int64) (*domain.Sede, error) {
	query := `
		SELECT nombre, direccion, empresa_id, ciudad_id, activo, created_at, version
		FROM sedes WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	sede := &domain.Sede{
		ID: id,
	}

	dst := []any{&sede.Nombre, &sede.Direccion, &sede.EmpresaID, &sede.CiudadID, &sede.Activo, &sede.CreatedAt, &sede.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return sede, nil
}

func (r *Repository) ListarSedes() ([]*domain.Sede, error) {
	query := `
		SELECT id, nombre, direccion, empresa_id, ciudad_id, activo, created_at, version
		FROM sedes ORDER BY nombre
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sedes := make([]*domain.Sede, 0)
	for rows.Next() {
		sede := &domain.Sede{}
		dst := []any{&sede.ID, &sede.Nombre, &sede.Direccion, &sede.EmpresaID, &sede.CiudadID, &sede.Activo, &sede.CreatedAt, &sede.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		sedes = append(sedes, sede)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sedes, nil
}

func (r *Repository) ActualizarSede(sede *domain.Sede) error {
	query := `
		UPDATE sedes
		SET
			nombre = $1,
			direccion = $2,
			empresa_id = $3,
			ciudad_id = $4,
			activo = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{sede.Nombre, sede.Direccion, sede.EmpresaID, sede.CiudadID, sede.Activo, sede.ID, sede.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&sede.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DesactivarSede(id int64) error {
	query := `
		UPDATE sedes SET activo = FALSE, version = version + 1 WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
