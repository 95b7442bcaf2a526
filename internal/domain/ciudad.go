package domain

import "time"

type Ciudad struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	Version   int32     `json:"-"`
}
