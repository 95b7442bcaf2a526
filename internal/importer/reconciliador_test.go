package importer

import (
	"testing"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(s string) time.Time {
	t, err := time.Parse(FormatoFecha, s)
	if err != nil {
		panic(err)
	}
	return t
}

func filaDePrueba(linea int, empleado *domain.Empleado, dia domain.DiaSemana, inicio, fin, fechaInicio, fechaFin string) *Fila {
	return &Fila{
		Linea:       linea,
		Documento:   empleado.Documento,
		Empleado:    empleado,
		DiaSemana:   dia,
		HoraInicio:  inicio,
		HoraFin:     fin,
		FechaInicio: fecha(fechaInicio),
		FechaFin:    fecha(fechaFin),
	}
}

func TestReconciliar_UnaAsignacionPorEmpleado(t *testing.T) {
	ana := &domain.Empleado{ID: 1, Documento: "111", TipoEmpleado: domain.TipoEmpleadoAdministrativo}
	luis := &domain.Empleado{ID: 2, Documento: "222", TipoEmpleado: domain.TipoEmpleadoOperativo}

	filas := []*Fila{
		filaDePrueba(1, ana, domain.Lunes, "08:00", "17:00", "2025-01-01", "2025-12-31"),
		filaDePrueba(2, luis, domain.Martes, "06:00", "14:00", "2025-01-01", "2025-06-30"),
		filaDePrueba(3, ana, domain.Martes, "08:00", "17:00", "2025-01-01", "2025-12-31"),
	}

	importadas := Reconciliar(filas)
	require.Len(t, importadas, 2)

	// el orden es el de primera aparición en el archivo
	assert.Equal(t, "111", importadas[0].Empleado.Documento)
	assert.Equal(t, "222", importadas[1].Empleado.Documento)

	assert.Equal(t, 1, importadas[0].PrimeraLinea)
	assert.Equal(t, 2, importadas[1].PrimeraLinea)

	require.Len(t, importadas[0].Asignacion.Detalles, 2)
	require.Len(t, importadas[1].Asignacion.Detalles, 1)
}

func TestReconciliar_TipoHorarioSegunTipoEmpleado(t *testing.T) {
	administrativo := &domain.Empleado{ID: 1, Documento: "111", TipoEmpleado: domain.TipoEmpleadoAdministrativo}
	operativo := &domain.Empleado{ID: 2, Documento: "222", TipoEmpleado: domain.TipoEmpleadoOperativo}

	filas := []*Fila{
		filaDePrueba(1, administrativo, domain.Lunes, "08:00", "17:00", "2025-01-01", "2025-12-31"),
		filaDePrueba(2, operativo, domain.Lunes, "06:00", "14:00", "2025-01-01", "2025-12-31"),
	}

	importadas := Reconciliar(filas)
	require.Len(t, importadas, 2)
	assert.Equal(t, domain.TipoHorarioFijo, importadas[0].Asignacion.TipoHorario)
	assert.Equal(t, domain.TipoHorarioRotativo, importadas[1].Asignacion.TipoHorario)
}

func TestReconciliar_VentanaMasAmplia(t *testing.T) {
	ana := &domain.Empleado{ID: 1, Documento: "111", TipoEmpleado: domain.TipoEmpleadoAdministrativo}

	filas := []*Fila{
		filaDePrueba(1, ana, domain.Lunes, "08:00", "17:00", "2025-03-01", "2025-06-30"),
		filaDePrueba(2, ana, domain.Martes, "08:00", "17:00", "2025-01-15", "2025-05-31"),
		filaDePrueba(3, ana, domain.Viernes, "08:00", "17:00", "2025-02-01", "2025-12-31"),
	}

	importadas := Reconciliar(filas)
	require.Len(t, importadas, 1)

	asignacion := importadas[0].Asignacion
	assert.Equal(t, fecha("2025-01-15"), asignacion.FechaInicio)
	assert.Equal(t, fecha("2025-12-31"), asignacion.FechaFin)
}

func TestReconciliar_DiaRepetidoGanaLaUltimaFila(t *testing.T) {
	ana := &domain.Empleado{ID: 1, Documento: "111", TipoEmpleado: domain.TipoEmpleadoAdministrativo}

	filas := []*Fila{
		filaDePrueba(1, ana, domain.Lunes, "08:00", "17:00", "2025-01-01", "2025-12-31"),
		filaDePrueba(2, ana, domain.Lunes, "10:00", "19:00", "2025-01-01", "2025-12-31"),
	}

	importadas := Reconciliar(filas)
	require.Len(t, importadas, 1)
	require.Len(t, importadas[0].Asignacion.Detalles, 1)

	detalle := importadas[0].Asignacion.Detalles[0]
	assert.Equal(t, "10:00", detalle.HoraInicio)
	assert.Equal(t, "19:00", detalle.HoraFin)
}

func TestReconciliar_DetallesOrdenadosPorDia(t *testing.T) {
	ana := &domain.Empleado{ID: 1, Documento: "111", TipoEmpleado: domain.TipoEmpleadoAdministrativo}

	filas := []*Fila{
		filaDePrueba(1, ana, domain.Viernes, "08:00", "17:00", "2025-01-01", "2025-12-31"),
		filaDePrueba(2, ana, domain.Lunes, "08:00", "17:00", "2025-01-01", "2025-12-31"),
		filaDePrueba(3, ana, domain.Miercoles, "08:00", "17:00", "2025-01-01", "2025-12-31"),
	}

	importadas := Reconciliar(filas)
	require.Len(t, importadas, 1)

	dias := make([]domain.DiaSemana, 0)
	for _, detalle := range importadas[0].Asignacion.Detalles {
		dias = append(dias, detalle.DiaSemana)
	}
	assert.Equal(t, []domain.DiaSemana{domain.Lunes, domain.Miercoles, domain.Viernes}, dias)
}

func TestReconciliar_SinFilas(t *testing.T) {
	assert.Empty(t, Reconciliar(nil))
}
