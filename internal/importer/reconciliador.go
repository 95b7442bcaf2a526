package importer

import (
	"slices"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

// AsignacionImportada es el resultado de reconciliar las filas válidas de un
// empleado: una cabecera con un detalle por cada día de la semana referido.
type AsignacionImportada struct {
	Empleado     *domain.Empleado
	Asignacion   *domain.AsignacionHorario
	PrimeraLinea int
}

// Reconciliar agrupa las filas válidas por empleado, en el orden en que
// aparecen en el archivo, y construye una asignación por empleado.
//
// Reglas deterministas cuando varias filas del mismo empleado discrepan:
//   - la ventana de vigencia es la más amplia: mínima fecha de inicio y
//     máxima fecha de fin entre todas las filas;
//   - si dos filas traen el mismo día de la semana, gana la última del
//     archivo;
//   - el tipo de horario sale del tipo de empleado, nunca del archivo.
func Reconciliar(filas []*Fila) []*AsignacionImportada {
	porDocumento := make(map[string]*AsignacionImportada)
	detallesPorDocumento := make(map[string]map[domain.DiaSemana]domain.DetalleHorario)
	orden := make([]string, 0)

	for _, fila := range filas {
		imp, existe := porDocumento[fila.Documento]
		if !existe {
			imp = &AsignacionImportada{
				Empleado:     fila.Empleado,
				PrimeraLinea: fila.Linea,
				Asignacion: &domain.AsignacionHorario{
					EmpleadoID:  fila.Empleado.ID,
					TipoHorario: domain.TipoHorarioParaEmpleado(fila.Empleado.TipoEmpleado),
					FechaInicio: fila.FechaInicio,
					FechaFin:    fila.FechaFin,
					Activo:      true,
				},
			}
			porDocumento[fila.Documento] = imp
			detallesPorDocumento[fila.Documento] = make(map[domain.DiaSemana]domain.DetalleHorario)
			orden = append(orden, fila.Documento)
		}

		if fila.FechaInicio.Before(imp.Asignacion.FechaInicio) {
			imp.Asignacion.FechaInicio = fila.FechaInicio
		}
		if fila.FechaFin.After(imp.Asignacion.FechaFin) {
			imp.Asignacion.FechaFin = fila.FechaFin
		}

		detallesPorDocumento[fila.Documento][fila.DiaSemana] = domain.DetalleHorario{
			DiaSemana:  fila.DiaSemana,
			HoraInicio: fila.HoraInicio,
			HoraFin:    fila.HoraFin,
		}
	}

	importadas := make([]*AsignacionImportada, 0, len(orden))
	for _, documento := range orden {
		imp := porDocumento[documento]
		detalles := detallesPorDocumento[documento]

		dias := make([]domain.DiaSemana, 0, len(detalles))
		for dia := range detalles {
			dias = append(dias, dia)
		}
		slices.Sort(dias)

		imp.Asignacion.Detalles = make([]domain.DetalleHorario, 0, len(dias))
		for _, dia := range dias {
			imp.Asignacion.Detalles = append(imp.Asignacion.Detalles, detalles[dia])
		}

		importadas = append(importadas, imp)
	}

	return importadas
}
