package importer

import (
	"bytes"
	"encoding/csv"
)

// PlantillaCSV genera la plantilla de carga masiva que descarga el frontend,
// con el encabezado en el orden fijo de Columnas y una fila de ejemplo.
func PlantillaCSV() []byte {
	var buf bytes.Buffer

	escritor := csv.NewWriter(&buf)
	_ = escritor.Write(Columnas)
	_ = escritor.Write([]string{"123456789", "1", "08:00", "17:00", "2025-01-01", "2025-12-31"})
	escritor.Flush()

	return buf.Bytes()
}
