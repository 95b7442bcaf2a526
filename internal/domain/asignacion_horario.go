package domain

import "time"

type TipoHorario string

const (
	TipoHorarioFijo     TipoHorario = "fijo"
	TipoHorarioRotativo TipoHorario = "rotativo"
)

// tiposHorarioPorEmpleado determina el tipo de horario a partir del tipo de
// empleado. El tipo de horario nunca lo elige el usuario.
var tiposHorarioPorEmpleado = map[TipoEmpleado]TipoHorario{
	TipoEmpleadoAdministrativo: TipoHorarioFijo,
	TipoEmpleadoComercial:      TipoHorarioFijo,
	TipoEmpleadoOperativo:      TipoHorarioRotativo,
	TipoEmpleadoTemporal:       TipoHorarioRotativo,
}

// TipoHorarioParaEmpleado devuelve "fijo" para los tipos de empleado no
// reconocidos. Esa política viene del sistema anterior y se conserva a
// propósito; si se cambia hay que avisar a nómina.
func TipoHorarioParaEmpleado(t TipoEmpleado) TipoHorario {
	if tipo, ok := tiposHorarioPorEmpleado[t]; ok {
		return tipo
	}
	return TipoHorarioFijo
}

// AsignacionHorario es la cabecera del horario de un empleado: la ventana de
// vigencia más un detalle por cada día de la semana con jornada.
type AsignacionHorario struct {
	ID          int64            `json:"id"`
	EmpleadoID  int64            `json:"empleado_id"`
	TipoHorario TipoHorario      `json:"tipo_horario"`
	FechaInicio time.Time        `json:"fecha_inicio"`
	FechaFin    time.Time        `json:"fecha_fin"`
	Detalles    []DetalleHorario `json:"detalles"`
	Activo      bool             `json:"activo"`
	CreatedAt   time.Time        `json:"created_at"`
	Version     int32            `json:"-"`

	// Datos del empleado que el listado muestra junto a la asignación.
	// Se llenan solo en las consultas, nunca se persisten aquí.
	EmpleadoDocumento string `json:"empleado_documento,omitempty"`
	EmpleadoNombre    string `json:"empleado_nombre,omitempty"`
}

// DetalleHorario es la jornada de un día de la semana dentro de una
// asignación. Hay a lo sumo un detalle por día y toda asignación tiene al
// menos uno. Las horas se guardan como "HH:MM".
type DetalleHorario struct {
	ID         int64     `json:"id"`
	DiaSemana  DiaSemana `json:"dia_semana"`
	HoraInicio string    `json:"hora_inicio"`
	HoraFin    string    `json:"hora_fin"`
}
