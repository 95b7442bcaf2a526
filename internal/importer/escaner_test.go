package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// directorioFijo es un directorio de empleados en memoria para las pruebas.
type directorioFijo struct {
	empleados map[string]*domain.Empleado
	err       error
}

func (d *directorioFijo) BuscarEmpleadoPorDocumento(documento string) (*domain.Empleado, bool, error) {
	if d.err != nil {
		return nil, false, d.err
	}
	empleado, ok := d.empleados[documento]
	return empleado, ok, nil
}

func nuevoDirectorioFijo(documentos ...string) *directorioFijo {
	d := &directorioFijo{empleados: make(map[string]*domain.Empleado)}
	for i, documento := range documentos {
		d.empleados[documento] = &domain.Empleado{
			ID:           int64(i + 1),
			Documento:    documento,
			TipoEmpleado: domain.TipoEmpleadoAdministrativo,
		}
	}
	return d
}

func escanearTodo(t *testing.T, contenido string, directorio DirectorioEmpleados) []Resultado {
	t.Helper()

	escaner := NuevoEscaner(strings.NewReader(contenido), directorio)
	resultados := make([]Resultado, 0)
	for escaner.Escanear() {
		resultados = append(resultados, escaner.Resultado())
	}
	require.NoError(t, escaner.Err())

	return resultados
}

func TestEscaner_FilaValida(t *testing.T) {
	contenido := "111,1,08:00,17:00,2025-01-01,2025-12-31\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	require.NotNil(t, resultados[0].Fila)

	fila := resultados[0].Fila
	assert.Equal(t, "111", fila.Documento)
	assert.Equal(t, domain.Lunes, fila.DiaSemana)
	assert.Equal(t, "08:00", fila.HoraInicio)
	assert.Equal(t, "17:00", fila.HoraFin)
	assert.Equal(t, 1, fila.Linea)
	require.NotNil(t, fila.Empleado)
	assert.Equal(t, int64(1), fila.Empleado.ID)
}

func TestEscaner_SaltaEncabezado(t *testing.T) {
	contenido := "documento,dia_semana,hora_inicio,hora_fin,fecha_inicio,fecha_fin\n" +
		"111,1,08:00,17:00,2025-01-01,2025-12-31\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	require.NotNil(t, resultados[0].Fila)
	assert.Equal(t, 2, resultados[0].Fila.Linea)
}

func TestEscaner_EmpleadoNoExiste(t *testing.T) {
	contenido := "999,1,08:00,17:00,2025-01-01,2025-12-31\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	require.NotNil(t, resultados[0].Falla)

	falla := resultados[0].Falla
	assert.Equal(t, "999", falla.Documento)
	require.Len(t, falla.Errores, 1)
	assert.Contains(t, falla.Errores[0], "no corresponde a ningún empleado activo")
}

func TestEscaner_DiaSemanaInvalido(t *testing.T) {
	contenido := "111,9,08:00,17:00,2025-01-01,2025-12-31\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	require.NotNil(t, resultados[0].Falla)
	require.Len(t, resultados[0].Falla.Errores, 1)
	assert.Contains(t, resultados[0].Falla.Errores[0], "fuera del rango 1-7")
}

func TestEscaner_HorasInvertidas(t *testing.T) {
	contenido := "111,1,17:00,08:00,2025-01-01,2025-12-31\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	require.NotNil(t, resultados[0].Falla)
	require.Len(t, resultados[0].Falla.Errores, 1)
	assert.Contains(t, resultados[0].Falla.Errores[0], "anterior a la hora de fin")
}

func TestEscaner_FechasInvertidas(t *testing.T) {
	contenido := "111,1,08:00,17:00,2025-12-31,2025-01-01\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	require.NotNil(t, resultados[0].Falla)
	require.Len(t, resultados[0].Falla.Errores, 1)
	assert.Contains(t, resultados[0].Falla.Errores[0], "no puede ser posterior")
}

func TestEscaner_VentanaDeUnDia(t *testing.T) {
	// inicio igual a fin es válido
	contenido := "111,1,08:00,17:00,2025-06-01,2025-06-01\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	assert.NotNil(t, resultados[0].Fila)
}

func TestEscaner_ColumnasDeMenos(t *testing.T) {
	contenido := "111,1,08:00\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	require.NotNil(t, resultados[0].Falla)
	assert.Equal(t, "111", resultados[0].Falla.Documento)
	assert.Contains(t, resultados[0].Falla.Errores[0], "se esperaban 6")
}

func TestEscaner_AcumulaTodosLosErroresDeLaFila(t *testing.T) {
	// documento desconocido, día inválido, horas mal formadas y fechas mal
	// formadas deben reportarse juntos
	contenido := "999,abc,8am,5pm,ayer,hoy\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	require.NotNil(t, resultados[0].Falla)
	assert.Len(t, resultados[0].Falla.Errores, 4)
}

func TestEscaner_DocumentoVacio(t *testing.T) {
	contenido := ",1,08:00,17:00,2025-01-01,2025-12-31\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111"))
	require.Len(t, resultados, 1)
	require.NotNil(t, resultados[0].Falla)
	assert.Equal(t, "linea_1", resultados[0].Falla.Documento)
	assert.Contains(t, resultados[0].Falla.Errores[0], "obligatorio")
}

func TestEscaner_ErrorDelDirectorio(t *testing.T) {
	directorio := &directorioFijo{err: errors.New("sin conexión")}
	contenido := "111,1,08:00,17:00,2025-01-01,2025-12-31\n"

	escaner := NuevoEscaner(strings.NewReader(contenido), directorio)
	require.True(t, escaner.Escanear())
	require.NotNil(t, escaner.Resultado().Falla)
	assert.Contains(t, escaner.Resultado().Falla.Errores[0], "intente de nuevo")
	require.NoError(t, escaner.Err())
}

func TestEscaner_FilaMalFormadaNoDetieneElResto(t *testing.T) {
	// la comilla suelta produce un csv.ParseError en la fila 1; la fila 2
	// se debe seguir procesando
	contenido := "111,1,08\"00,17:00,2025-01-01,2025-12-31\n" +
		"222,2,09:00,18:00,2025-01-01,2025-12-31\n"

	resultados := escanearTodo(t, contenido, nuevoDirectorioFijo("111", "222"))
	require.Len(t, resultados, 2)
	require.NotNil(t, resultados[0].Falla)
	assert.Contains(t, resultados[0].Falla.Documento, "linea_")
	assert.NotNil(t, resultados[1].Fila)
}

func TestEscaner_ArchivoVacio(t *testing.T) {
	resultados := escanearTodo(t, "", nuevoDirectorioFijo())
	assert.Empty(t, resultados)
}
