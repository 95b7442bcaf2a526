package domain

import "time"

type Sede struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion"`
	EmpresaID int64     `json:"empresa_id"`
	CiudadID  int64     `json:"ciudad_id"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	Version   int32     `json:"-"`
}
