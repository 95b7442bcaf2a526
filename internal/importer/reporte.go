package importer

// EntradaReporte agrupa los errores de un documento: la primera línea que
// falló y los mensajes en el orden en que se encontraron.
type EntradaReporte struct {
	Documento string   `json:"documento"`
	Linea     int      `json:"linea"`
	Errores   []string `json:"errores"`
}

// Reporte acumula las fallas de una carga masiva con una entrada por
// documento, no por fila. El orden entre documentos no está garantizado.
type Reporte struct {
	porDocumento map[string]*EntradaReporte
}

func NuevoReporte() *Reporte {
	return &Reporte{
		porDocumento: make(map[string]*EntradaReporte),
	}
}

func (r *Reporte) Agregar(documento string, linea int, errores ...string) {
	entrada, existe := r.porDocumento[documento]
	if !existe {
		// se conserva la primera línea que falló para ese documento
		entrada = &EntradaReporte{Documento: documento, Linea: linea}
		r.porDocumento[documento] = entrada
	}
	entrada.Errores = append(entrada.Errores, errores...)
}

func (r *Reporte) AgregarFalla(f *Falla) {
	r.Agregar(f.Documento, f.Linea, f.Errores...)
}

func (r *Reporte) TieneErrores() bool {
	return len(r.porDocumento) > 0
}

// DocumentosConError es la cantidad de documentos con al menos una falla.
func (r *Reporte) DocumentosConError() int {
	return len(r.porDocumento)
}

// PorDocumento expone el mapa que el endpoint serializa como
// errores_por_documento.
func (r *Reporte) PorDocumento() map[string]*EntradaReporte {
	return r.porDocumento
}
