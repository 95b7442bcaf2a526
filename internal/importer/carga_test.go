package importer

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// almacenFijo guarda las asignaciones en memoria y puede fallar para
// documentos concretos.
type almacenFijo struct {
	guardadas []*domain.AsignacionHorario
	fallaPara map[int64]error
}

func (a *almacenFijo) GuardarAsignacionImportada(asignacion *domain.AsignacionHorario) error {
	if err, ok := a.fallaPara[asignacion.EmpleadoID]; ok {
		return err
	}
	a.guardadas = append(a.guardadas, asignacion)
	return nil
}

func TestCargaMasiva_ArchivoCompleto(t *testing.T) {
	directorio := nuevoDirectorioFijo("111", "222")
	almacen := &almacenFijo{}

	contenido := "documento,dia_semana,hora_inicio,hora_fin,fecha_inicio,fecha_fin\n" +
		"111,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"111,2,08:00,17:00,2025-01-01,2025-12-31\n" +
		"222,1,06:00,14:00,2025-01-01,2025-06-30\n"

	resultado, err := NuevaCargaMasiva(directorio, almacen).Procesar(strings.NewReader(contenido))
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.EmpleadosProcesados)
	assert.False(t, resultado.Reporte.TieneErrores())
	require.Len(t, almacen.guardadas, 2)
	assert.Len(t, almacen.guardadas[0].Detalles, 2)
}

func TestCargaMasiva_FilasInvalidasNoImpidenElResto(t *testing.T) {
	// diez filas: siete de empleados conocidos y tres de documentos que no
	// existen; los siete válidos se procesan y los tres quedan en el reporte
	directorio := nuevoDirectorioFijo("111", "222", "333", "444", "555", "666", "777")
	almacen := &almacenFijo{}

	contenido := "111,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"222,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"881,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"333,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"444,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"882,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"555,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"666,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"883,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"777,1,08:00,17:00,2025-01-01,2025-12-31\n"

	resultado, err := NuevaCargaMasiva(directorio, almacen).Procesar(strings.NewReader(contenido))
	require.NoError(t, err)

	assert.Equal(t, 7, resultado.EmpleadosProcesados)
	assert.Equal(t, 3, resultado.Reporte.DocumentosConError())
	assert.Len(t, almacen.guardadas, 7)

	porDocumento := resultado.Reporte.PorDocumento()
	for _, documento := range []string{"881", "882", "883"} {
		require.Contains(t, porDocumento, documento)
	}
}

func TestCargaMasiva_FallaDePersistenciaQuedaEnElReporte(t *testing.T) {
	directorio := nuevoDirectorioFijo("111", "222")
	almacen := &almacenFijo{
		fallaPara: map[int64]error{1: errors.New("deadlock")},
	}

	contenido := "111,1,08:00,17:00,2025-01-01,2025-12-31\n" +
		"222,1,06:00,14:00,2025-01-01,2025-06-30\n"

	resultado, err := NuevaCargaMasiva(directorio, almacen).Procesar(strings.NewReader(contenido))
	require.NoError(t, err)

	// el otro empleado se guarda de todos modos
	assert.Equal(t, 1, resultado.EmpleadosProcesados)
	assert.Equal(t, 1, resultado.Reporte.DocumentosConError())

	entrada := resultado.Reporte.PorDocumento()["111"]
	require.NotNil(t, entrada)
	assert.Equal(t, 1, entrada.Linea)
	assert.Contains(t, entrada.Errores[0], "intente de nuevo")
}

type lectorRoto struct{}

func (lectorRoto) Read([]byte) (int, error) {
	return 0, errors.New("disco dañado")
}

func TestCargaMasiva_ArchivoIlegible(t *testing.T) {
	directorio := nuevoDirectorioFijo("111")
	almacen := &almacenFijo{}

	_, err := NuevaCargaMasiva(directorio, almacen).Procesar(io.Reader(lectorRoto{}))
	assert.Error(t, err)
	assert.Empty(t, almacen.guardadas)
}

func TestCargaMasiva_ArchivoVacio(t *testing.T) {
	directorio := nuevoDirectorioFijo()
	almacen := &almacenFijo{}

	resultado, err := NuevaCargaMasiva(directorio, almacen).Procesar(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, resultado.EmpleadosProcesados)
	assert.False(t, resultado.Reporte.TieneErrores())
}
