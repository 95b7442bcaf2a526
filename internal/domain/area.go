package domain

import "time"

type Area struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	SedeID    int64     `json:"sede_id"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	Version   int32     `json:"-"`
}
