// Package importer implementa la carga masiva de horarios: la validación fila
// a fila del CSV, la reconciliación por empleado y el reporte de errores por
// documento.
package importer

import (
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

const (
	FormatoHora  = "15:04"
	FormatoFecha = "2006-01-02"
)

// Columnas es el orden fijo de columnas del archivo de carga masiva y de la
// plantilla que descarga el frontend.
var Columnas = []string{"documento", "dia_semana", "hora_inicio", "hora_fin", "fecha_inicio", "fecha_fin"}

// Fila es una fila del archivo que pasó todas las validaciones, con el
// empleado ya resuelto.
type Fila struct {
	Linea       int
	Documento   string
	Empleado    *domain.Empleado
	DiaSemana   domain.DiaSemana
	HoraInicio  string
	HoraFin     string
	FechaInicio time.Time
	FechaFin    time.Time
}

// Falla es una fila rechazada: el documento al que pertenece, la línea del
// archivo y los mensajes de las validaciones que no pasó.
type Falla struct {
	Documento string
	Linea     int
	Errores   []string
}

// Resultado es el desenlace de una fila: exactamente uno de los dos campos
// es no nulo.
type Resultado struct {
	Fila  *Fila
	Falla *Falla
}

// DirectorioEmpleados resuelve un documento contra el directorio de
// empleados activos. ok es false cuando el documento no existe.
type DirectorioEmpleados interface {
	BuscarEmpleadoPorDocumento(documento string) (empleado *domain.Empleado, ok bool, err error)
}

// AlmacenAsignaciones persiste la asignación reconciliada de un empleado.
type AlmacenAsignaciones interface {
	GuardarAsignacionImportada(a *domain.AsignacionHorario) error
}
