package importer

import (
	"io"
	"log/slog"
)

// CargaMasiva orquesta una importación completa: escanear, reconciliar,
// persistir por empleado y armar el reporte.
type CargaMasiva struct {
	directorio DirectorioEmpleados
	almacen    AlmacenAsignaciones
}

func NuevaCargaMasiva(directorio DirectorioEmpleados, almacen AlmacenAsignaciones) *CargaMasiva {
	return &CargaMasiva{
		directorio: directorio,
		almacen:    almacen,
	}
}

type ResultadoCarga struct {
	EmpleadosProcesados int
	Reporte             *Reporte
}

// Procesar ejecuta la carga sobre el archivo. Devuelve error únicamente si
// el archivo no se puede leer como CSV; las filas inválidas y las fallas de
// persistencia por empleado quedan registradas en el reporte y no abortan el
// resto de la carga.
func (c *CargaMasiva) Procesar(archivo io.Reader) (*ResultadoCarga, error) {
	escaner := NuevoEscaner(archivo, c.directorio)
	reporte := NuevoReporte()
	filas := make([]*Fila, 0)

	for escaner.Escanear() {
		resultado := escaner.Resultado()
		if resultado.Falla != nil {
			reporte.AgregarFalla(resultado.Falla)
			continue
		}
		filas = append(filas, resultado.Fila)
	}
	if err := escaner.Err(); err != nil {
		return nil, err
	}

	procesados := 0
	for _, imp := range Reconciliar(filas) {
		if err := c.almacen.GuardarAsignacionImportada(imp.Asignacion); err != nil {
			// la falla de un empleado no impide confirmar a los demás
			slog.Error("no fue posible guardar la asignación importada", "documento", imp.Empleado.Documento, "error", err)
			reporte.Agregar(imp.Empleado.Documento, imp.PrimeraLinea, "no fue posible guardar el horario del empleado, intente de nuevo")
			continue
		}
		procesados++
	}

	return &ResultadoCarga{
		EmpleadosProcesados: procesados,
		Reporte:             reporte,
	}, nil
}
