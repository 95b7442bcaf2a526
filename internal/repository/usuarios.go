package repository

import (
	"context"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

func (r *Repository) CrearUsuario(usuario *domain.Usuario) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO usuarios (username, password_hash, nombre_completo, email, rol)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, activo, created_at, version
	`

	args := []any{usuario.Username, usuario.PasswordHash, usuario.NombreCompleto, usuario.Email, usuario.Rol}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&usuario.ID, &usuario.Activo, &usuario.CreatedAt, &usuario.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) ObtenerUsuarioPorID(id int64) (*domain.Usuario, error) {
	query := `
		SELECT username, password_hash, nombre_completo, email, rol, activo, created_at, version
		FROM usuarios WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	usuario := &domain.Usuario{
		ID: id,
	}

	dst := []any{&usuario.Username, &usuario.PasswordHash, &usuario.NombreCompleto, &usuario.Email, &usuario.Rol, &usuario.Activo, &usuario.CreatedAt, &usuario.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return usuario, nil
}

func (r *Repository) ObtenerUsuarioPorUsername(username string) (*domain.Usuario, error) {
	query := `
		SELECT id, password_hash, nombre_completo, email, rol, activo, created_at, version
		FROM usuarios WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	usuario := &domain.Usuario{
		Username: username,
	}

	dst := []any{&usuario.ID, &usuario.PasswordHash, &usuario.NombreCompleto, &usuario.Email, &usuario.Rol, &usuario.Activo, &usuario.CreatedAt, &usuario.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return usuario, nil
}

func (r *Repository) ListarUsuarios() ([]*domain.Usuario, error) {
	query := `
		SELECT id, username, password_hash, nombre_completo, email, rol, activo, created_at, version
		FROM usuarios ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usuarios := make([]*domain.Usuario, 0)
	for rows.Next() {
		usuario := &domain.Usuario{}
		dst := []any{&usuario.ID, &usuario.Username, &usuario.PasswordHash, &usuario.NombreCompleto, &usuario.Email, &usuario.Rol, &usuario.Activo, &usuario.CreatedAt, &usuario.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		usuarios = append(usuarios, usuario)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return usuarios, nil
}

func (r *Repository) ActualizarUsuario(usuario *domain.Usuario) error {
	query := `
		UPDATE usuarios
		SET
			password_hash = $1,
			email = $2,
			rol = $3,
			activo = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING username, nombre_completo, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{usuario.PasswordHash, usuario.Email, usuario.Rol, usuario.Activo, usuario.ID, usuario.Version}
	dst := []any{&usuario.Username, &usuario.NombreCompleto, &usuario.CreatedAt, &usuario.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) EliminarUsuario(id int64) error {
	query := `
		DELETE FROM usuarios WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
