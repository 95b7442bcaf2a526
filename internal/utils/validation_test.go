package utils

import (
	"testing"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidarDetallesHorario(t *testing.T) {
	detalles := []domain.DetalleHorario{
		{DiaSemana: domain.Lunes, HoraInicio: "08:00", HoraFin: "17:00"},
		{DiaSemana: domain.Martes, HoraInicio: "08:00", HoraFin: "12:00"},
	}

	require.NoError(t, ValidarDetallesHorario(detalles))
}

func TestValidarDetallesHorario_Vacio(t *testing.T) {
	err := ValidarDetallesHorario(nil)
	assert.ErrorContains(t, err, "al menos un día")
}

func TestValidarDetallesHorario_DiaFueraDeRango(t *testing.T) {
	detalles := []domain.DetalleHorario{
		{DiaSemana: domain.DiaSemana(8), HoraInicio: "08:00", HoraFin: "17:00"},
	}

	err := ValidarDetallesHorario(detalles)
	assert.ErrorContains(t, err, "fuera del rango")
}

func TestValidarDetallesHorario_DiaRepetido(t *testing.T) {
	detalles := []domain.DetalleHorario{
		{DiaSemana: domain.Lunes, HoraInicio: "08:00", HoraFin: "17:00"},
		{DiaSemana: domain.Lunes, HoraInicio: "09:00", HoraFin: "18:00"},
	}

	err := ValidarDetallesHorario(detalles)
	assert.ErrorContains(t, err, "más de una vez")
}

func TestValidarDetallesHorario_HorasInvalidas(t *testing.T) {
	casos := []struct {
		nombre   string
		detalle  domain.DetalleHorario
		contiene string
	}{
		{
			nombre:   "hora de inicio mal formada",
			detalle:  domain.DetalleHorario{DiaSemana: domain.Lunes, HoraInicio: "8am", HoraFin: "17:00"},
			contiene: "hora de inicio",
		},
		{
			nombre:   "hora de fin mal formada",
			detalle:  domain.DetalleHorario{DiaSemana: domain.Lunes, HoraInicio: "08:00", HoraFin: "25:00"},
			contiene: "hora de fin",
		},
		{
			nombre:   "inicio igual al fin",
			detalle:  domain.DetalleHorario{DiaSemana: domain.Lunes, HoraInicio: "08:00", HoraFin: "08:00"},
			contiene: "anterior",
		},
		{
			nombre:   "inicio después del fin",
			detalle:  domain.DetalleHorario{DiaSemana: domain.Lunes, HoraInicio: "18:00", HoraFin: "08:00"},
			contiene: "anterior",
		},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			err := ValidarDetallesHorario([]domain.DetalleHorario{caso.detalle})
			assert.ErrorContains(t, err, caso.contiene)
		})
	}
}

func TestValidarVentanaAsignacion(t *testing.T) {
	inicio := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidarVentanaAsignacion(inicio, fin))
	assert.NoError(t, ValidarVentanaAsignacion(inicio, inicio), "una ventana de un solo día es válida")
	assert.Error(t, ValidarVentanaAsignacion(fin, inicio))
}
