package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporte_AgrupaPorDocumento(t *testing.T) {
	reporte := NuevoReporte()

	reporte.Agregar("111", 3, "primer error")
	reporte.Agregar("111", 7, "segundo error")
	reporte.Agregar("222", 5, "otro error")

	assert.True(t, reporte.TieneErrores())
	assert.Equal(t, 2, reporte.DocumentosConError())

	entrada := reporte.PorDocumento()["111"]
	require.NotNil(t, entrada)
	assert.Equal(t, "111", entrada.Documento)
	assert.Equal(t, 3, entrada.Linea, "se conserva la primera línea que falló")
	assert.Equal(t, []string{"primer error", "segundo error"}, entrada.Errores)
}

func TestReporte_AgregarFalla(t *testing.T) {
	reporte := NuevoReporte()

	reporte.AgregarFalla(&Falla{
		Documento: "111",
		Linea:     2,
		Errores:   []string{"error a", "error b"},
	})

	entrada := reporte.PorDocumento()["111"]
	require.NotNil(t, entrada)
	assert.Equal(t, []string{"error a", "error b"}, entrada.Errores)
}

func TestReporte_Vacio(t *testing.T) {
	reporte := NuevoReporte()

	assert.False(t, reporte.TieneErrores())
	assert.Zero(t, reporte.DocumentosConError())
	assert.Empty(t, reporte.PorDocumento())
}
