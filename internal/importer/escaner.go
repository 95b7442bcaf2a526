package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

// Escaner recorre el archivo de carga masiva fila a fila, al estilo de
// bufio.Scanner: es perezoso, finito y no se puede reiniciar. Cada fila
// produce un Resultado con la fila validada o con la falla correspondiente.
type Escaner struct {
	lector     *csv.Reader
	directorio DirectorioEmpleados
	linea      int
	actual     Resultado
	err        error
}

func NuevoEscaner(r io.Reader, directorio DirectorioEmpleados) *Escaner {
	lector := csv.NewReader(r)
	lector.FieldsPerRecord = -1 // el número de columnas se valida fila a fila
	lector.TrimLeadingSpace = true

	return &Escaner{
		lector:     lector,
		directorio: directorio,
	}
}

// Escanear avanza a la siguiente fila. Devuelve false al terminar el archivo
// o ante un error de lectura irrecuperable; en ese caso Err lo distingue.
func (e *Escaner) Escanear() bool {
	for {
		registro, err := e.lector.Read()
		e.linea++

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return false
		default:
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// una fila mal formada se reporta y se sigue con la siguiente
				e.actual = Resultado{Falla: &Falla{
					Documento: claveSinDocumento(parseErr.Line),
					Linea:     parseErr.Line,
					Errores:   []string{fmt.Sprintf("la fila %d está mal formada: %v", parseErr.Line, parseErr.Err)},
				}}
				return true
			}
			// cualquier otro error significa que el archivo no se puede leer
			e.err = err
			return false
		}

		// la primera fila puede ser el encabezado de la plantilla
		if e.linea == 1 && len(registro) > 0 && strings.EqualFold(strings.TrimSpace(registro[0]), Columnas[0]) {
			continue
		}

		e.actual = e.validarRegistro(registro, e.linea)
		return true
	}
}

// Resultado devuelve el desenlace de la última fila escaneada.
func (e *Escaner) Resultado() Resultado {
	return e.actual
}

// Err devuelve el error que interrumpió el escaneo, si lo hubo. Un archivo
// con filas inválidas no es un error: esas filas quedan como fallas.
func (e *Escaner) Err() error {
	return e.err
}

// validarRegistro aplica las validaciones en orden y acumula todos los
// mensajes de la fila, de modo que el usuario corrija el archivo en una sola
// pasada.
func (e *Escaner) validarRegistro(registro []string, linea int) Resultado {
	if len(registro) != len(Columnas) {
		documento := claveSinDocumento(linea)
		if len(registro) > 0 && strings.TrimSpace(registro[0]) != "" {
			documento = strings.TrimSpace(registro[0])
		}
		return Resultado{Falla: &Falla{
			Documento: documento,
			Linea:     linea,
			Errores:   []string{fmt.Sprintf("la fila tiene %d columnas y se esperaban %d", len(registro), len(Columnas))},
		}}
	}

	documento := strings.TrimSpace(registro[0])
	falla := &Falla{Documento: documento, Linea: linea}
	fila := &Fila{Linea: linea, Documento: documento}

	if documento == "" {
		falla.Documento = claveSinDocumento(linea)
		falla.Errores = append(falla.Errores, "el documento del empleado es obligatorio")
	} else {
		empleado, ok, err := e.directorio.BuscarEmpleadoPorDocumento(documento)
		switch {
		case err != nil:
			falla.Errores = append(falla.Errores, "no fue posible consultar el directorio de empleados, intente de nuevo")
		case !ok:
			falla.Errores = append(falla.Errores, fmt.Sprintf("el documento %s no corresponde a ningún empleado activo", documento))
		default:
			fila.Empleado = empleado
		}
	}

	dia, err := domain.ParseDiaSemana(registro[1])
	if err != nil {
		falla.Errores = append(falla.Errores, err.Error())
	} else {
		fila.DiaSemana = dia
	}

	horaInicio, errInicio := time.Parse(FormatoHora, strings.TrimSpace(registro[2]))
	horaFin, errFin := time.Parse(FormatoHora, strings.TrimSpace(registro[3]))
	switch {
	case errInicio != nil || errFin != nil:
		falla.Errores = append(falla.Errores, "las horas deben tener el formato HH:MM")
	case !horaInicio.Before(horaFin):
		falla.Errores = append(falla.Errores, fmt.Sprintf("la hora de inicio %s debe ser anterior a la hora de fin %s", strings.TrimSpace(registro[2]), strings.TrimSpace(registro[3])))
	default:
		fila.HoraInicio = horaInicio.Format(FormatoHora)
		fila.HoraFin = horaFin.Format(FormatoHora)
	}

	fechaInicio, errInicio := time.Parse(FormatoFecha, strings.TrimSpace(registro[4]))
	fechaFin, errFin := time.Parse(FormatoFecha, strings.TrimSpace(registro[5]))
	switch {
	case errInicio != nil || errFin != nil:
		falla.Errores = append(falla.Errores, "las fechas deben tener el formato AAAA-MM-DD")
	case fechaInicio.After(fechaFin):
		falla.Errores = append(falla.Errores, fmt.Sprintf("la fecha de inicio %s no puede ser posterior a la fecha de fin %s", strings.TrimSpace(registro[4]), strings.TrimSpace(registro[5])))
	default:
		fila.FechaInicio = fechaInicio
		fila.FechaFin = fechaFin
	}

	if len(falla.Errores) > 0 {
		return Resultado{Falla: falla}
	}

	return Resultado{Fila: fila}
}

// claveSinDocumento agrupa en el reporte las filas de las que no se pudo
// extraer un documento.
func claveSinDocumento(linea int) string {
	return fmt.Sprintf("linea_%d", linea)
}
