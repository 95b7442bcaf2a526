package domain

import "time"

type TipoEmpleado string

const (
	TipoEmpleadoAdministrativo TipoEmpleado = "administrativo"
	TipoEmpleadoComercial      TipoEmpleado = "comercial"
	TipoEmpleadoOperativo      TipoEmpleado = "operativo"
	TipoEmpleadoTemporal       TipoEmpleado = "temporal"
)

type Empleado struct {
	ID           int64        `json:"id"`
	Documento    string       `json:"documento"`
	Nombres      string       `json:"nombres"`
	Apellidos    string       `json:"apellidos"`
	Email        string       `json:"email"`
	TipoEmpleado TipoEmpleado `json:"tipo_empleado"`
	EmpresaID    int64        `json:"empresa_id"`
	SedeID       int64        `json:"sede_id"`
	AreaID       int64        `json:"area_id"`
	Activo       bool         `json:"activo"`
	CreatedAt    time.Time    `json:"created_at"`
	Version      int32        `json:"-"`
}
