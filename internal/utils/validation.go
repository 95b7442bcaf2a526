package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

const formatoHora = "15:04"

// ValidarDetallesHorario comprueba la lista de jornadas que arma el
// formulario de edición antes de reemplazar el detalle completo: al menos un
// día, sin días repetidos y con horas bien formadas.
func ValidarDetallesHorario(detalles []domain.DetalleHorario) error {
	if len(detalles) == 0 {
		return errors.New("la asignación debe tener al menos un día con jornada")
	}

	vistos := make(map[domain.DiaSemana]bool)
	for _, detalle := range detalles {
		if !detalle.DiaSemana.Valido() {
			return fmt.Errorf("el día de la semana %d está fuera del rango 1-7", detalle.DiaSemana)
		}
		if vistos[detalle.DiaSemana] {
			return fmt.Errorf("el día %s aparece más de una vez", detalle.DiaSemana.Nombre())
		}
		vistos[detalle.DiaSemana] = true

		inicio, err := time.Parse(formatoHora, detalle.HoraInicio)
		if err != nil {
			return fmt.Errorf("la hora de inicio del %s tiene un formato inválido", detalle.DiaSemana.Nombre())
		}
		fin, err := time.Parse(formatoHora, detalle.HoraFin)
		if err != nil {
			return fmt.Errorf("la hora de fin del %s tiene un formato inválido", detalle.DiaSemana.Nombre())
		}
		if !inicio.Before(fin) {
			return fmt.Errorf("la hora de inicio del %s debe ser anterior a la hora de fin", detalle.DiaSemana.Nombre())
		}
	}

	return nil
}

func ValidarVentanaAsignacion(fechaInicio time.Time, fechaFin time.Time) error {
	if fechaInicio.After(fechaFin) {
		return errors.New("la fecha de inicio no puede ser posterior a la fecha de fin")
	}

	return nil
}
