package domain

import (
	"time"
)

type Rol string

const (
	RolAdministrador Rol = "administrador"
	RolGestor        Rol = "gestor"
)

type Usuario struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	NombreCompleto string    `json:"nombre_completo"`
	Email          string    `json:"email"`
	Rol            Rol       `json:"rol"`
	Activo         bool      `json:"activo"`
	CreatedAt      time.Time `json:"created_at"`
	Version        int32     `json:"-"`
}
