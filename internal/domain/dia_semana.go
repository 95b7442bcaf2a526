package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DiaSemana es el identificador canónico de un día de la semana.
//
// El sistema anterior mezclaba dos convenciones de numeración:
//
//	canónica (ISO 8601): lunes=1, martes=2, ..., domingo=7
//	legada (reportes):   domingo=1, lunes=2, ..., sábado=7
//
// Toda la aplicación (validación, persistencia y API) usa únicamente la
// convención canónica. Cualquier integración con datos del sistema legado
// debe convertir antes de entrar aquí.
type DiaSemana int32

const (
	Lunes DiaSemana = iota + 1
	Martes
	Miercoles
	Jueves
	Viernes
	Sabado
	Domingo
)

var nombresDias = map[DiaSemana]string{
	Lunes:     "lunes",
	Martes:    "martes",
	Miercoles: "miércoles",
	Jueves:    "jueves",
	Viernes:   "viernes",
	Sabado:    "sábado",
	Domingo:   "domingo",
}

func (d DiaSemana) Valido() bool {
	return d >= Lunes && d <= Domingo
}

func (d DiaSemana) Nombre() string {
	return nombresDias[d]
}

// ParseDiaSemana acepta el identificador numérico canónico ("1".."7") o el
// nombre del día en español, sin distinguir mayúsculas ni tildes en la i/e
// más comunes de los archivos cargados.
func ParseDiaSemana(s string) (DiaSemana, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		d := DiaSemana(n)
		if !d.Valido() {
			return 0, fmt.Errorf("el día de la semana %d está fuera del rango 1-7", n)
		}
		return d, nil
	}

	for d, nombre := range nombresDias {
		if s == nombre || s == sinTildes(nombre) {
			return d, nil
		}
	}

	return 0, fmt.Errorf("día de la semana desconocido: %q", s)
}

var reemplazadorTildes = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

func sinTildes(s string) string {
	return reemplazadorTildes.Replace(s)
}
