package repository

import (
	"context"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (r *Repository) CrearCiudad(ciudad *domain.Ciudad) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO ciudades (nombre)
		VALUES ($1)
		RETURNING id, activo, created_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, ciudad.Nombre).Scan(&ciudad.ID, &ciudad.Activo, &ciudad.CreatedAt, &ciudad.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) ObtenerCiudadPorID(id int64) (*domain.Ciudad, error) {
	query := `
		SELECT nombre, activo, created_at, version
		FROM ciudades WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	ciudad := &domain.Ciudad{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&ciudad.Nombre, &ciudad.Activo, &ciudad.CreatedAt, &ciudad.Version); err != nil {
		return nil, err
	}

	return ciudad, nil
}

func (r *Repository) ListarCiudades() ([]*domain.Ciudad, error) {
	query := `
		SELECT id, nombre, activo, created_at, version
		FROM ciudades ORDER BY nombre
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ciudades := make([]*domain.Ciudad, 0)
	for rows.Next() {
		ciudad := &domain.Ciudad{}
		if err := rows.Scan(&ciudad.ID, &ciudad.Nombre, &ciudad.Activo, &ciudad.CreatedAt, &ciudad.Version); err != nil {
			return nil, err
		}
		ciudades = append(ciudades, ciudad)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ciudades, nil
}

func (r *Repository) ActualizarCiudad(ciudad *domain.Ciudad) error {
	query := `
		UPDATE ciudades
		SET
			nombre = $1,
			activo = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{ciudad.Nombre, ciudad.Activo, ciudad.ID, ciudad.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&ciudad.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DesactivarCiudad(id int64) error {
	query := `
		UPDATE ciudades SET activo = FALSE, version = version + 1 WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
