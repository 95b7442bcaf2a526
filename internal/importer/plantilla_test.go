package importer

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantillaCSV(t *testing.T) {
	registros, err := csv.NewReader(bytes.NewReader(PlantillaCSV())).ReadAll()
	require.NoError(t, err)
	require.Len(t, registros, 2)

	assert.Equal(t, Columnas, registros[0])
	assert.Len(t, registros[1], len(Columnas))

	// la fila de ejemplo debe pasar el propio escáner
	directorio := nuevoDirectorioFijo(registros[1][0])
	escaner := NuevoEscaner(bytes.NewReader(PlantillaCSV()), directorio)
	require.True(t, escaner.Escanear())
	assert.NotNil(t, escaner.Resultado().Fila)
	require.False(t, escaner.Escanear())
	require.NoError(t, escaner.Err())
}
