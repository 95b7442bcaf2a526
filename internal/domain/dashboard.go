package domain

type EstadisticasDashboard struct {
	Ciudades            int64 `json:"ciudades"`
	Empresas            int64 `json:"empresas"`
	Sedes               int64 `json:"sedes"`
	Areas               int64 `json:"areas"`
	EmpleadosActivos    int64 `json:"empleados_activos"`
	AsignacionesActivas int64 `json:"asignaciones_activas"`
	EmpleadosSinHorario int64 `json:"empleados_sin_horario"`
}
