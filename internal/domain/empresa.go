package domain

import "time"

type Empresa struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	NIT       string    `json:"nit"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	Version   int32     `json:"-"`
}
