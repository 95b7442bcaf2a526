package repository

import (
	"context"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (r *Repository) CrearArea(area *domain.Area) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO areas (nombre, sede_id)
		VALUES ($1, $2)
		RETURNING id, activo, created_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, area.Nombre, area.SedeID).Scan(&area.ID, &area.Activo, &area.CreatedAt, &area.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) ObtenerAreaPorID(id int64) (*domain.Area, error) {
	query := `
		SELECT nombre, sede_id, activo, created_at, version
		FROM areas WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	area := &domain.Area{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&area.Nombre, &area.SedeID, &area.Activo, &area.CreatedAt, &area.Version); err != nil {
		return nil, err
	}

	return area, nil
}

func (r *Repository) ListarAreas() ([]*domain.Area, error) {
	query := `
		SELECT id, nombre, sede_id, activo, created_at, version
		FROM areas ORDER BY nombre
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := make([]*domain.Area, 0)
	for rows.Next() {
		area := &domain.Area{}
		if err := rows.Scan(&area.ID, &area.Nombre, &area.SedeID, &area.Activo, &area.CreatedAt, &area.Version); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}

func (r *Repository) ActualizarArea(area *domain.Area) error {
	query := `
		UPDATE areas
		SET
			nombre = $1,
			sede_id = $2,
			activo = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{area.Nombre, area.SedeID, area.Activo, area.ID, area.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&area.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DesactivarArea(id int64) error {
	query := `
		UPDATE areas SET activo = FALSE, version = version + 1 WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
