package repository

import (
	"context"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (r *Repository) CrearEmpresa(empresa *domain.Empresa) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO empresas (nombre, nit)
		VALUES ($1, $2)
		RETURNING id, activo, created_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, empresa.Nombre, empresa.NIT).Scan(&empresa.ID, &empresa.Activo, &empresa.CreatedAt, &empresa.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) ObtenerEmpresaPorID(id int64) (*domain.Empresa, error) {
	query := `
		SELECT nombre, nit, activo, created_at, version
		FROM empresas WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	empresa := &domain.Empresa{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&empresa.Nombre, &empresa.NIT, &empresa.Activo, &empresa.CreatedAt, &empresa.Version); err != nil {
		return nil, err
	}

	return empresa, nil
}

func (r *Repository) ListarEmpresas() ([]*domain.Empresa, error) {
	query := `
		SELECT id, nombre, nit, activo, created_at, version
		FROM empresas ORDER BY nombre
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	empresas := make([]*domain.Empresa, 0)
	for rows.Next() {
		empresa := &domain.Empresa{}
		if err := rows.Scan(&empresa.ID, &empresa.Nombre, &empresa.NIT, &empresa.Activo, &empresa.CreatedAt, &empresa.Version); err != nil {
			return nil, err
		}
		empresas = append(empresas, empresa)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return empresas, nil
}

func (r *Repository) ActualizarEmpresa(empresa *domain.Empresa) error {
	query := `
		UPDATE empresas
		SET
			nombre = $1,
			nit = $2,
			activo = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{empresa.Nombre, empresa.NIT, empresa.Activo, empresa.ID, empresa.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&empresa.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DesactivarEmpresa(id int64) error {
	query := `
		UPDATE empresas SET activo = FALSE, version = version + 1 WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
