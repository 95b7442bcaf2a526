package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiaSemana_Numerico(t *testing.T) {
	for n, esperado := range map[string]DiaSemana{
		"1": Lunes,
		"2": Martes,
		"3": Miercoles,
		"4": Jueves,
		"5": Viernes,
		"6": Sabado,
		"7": Domingo,
	} {
		dia, err := ParseDiaSemana(n)
		require.NoError(t, err)
		assert.Equal(t, esperado, dia)
	}
}

func TestParseDiaSemana_Nombres(t *testing.T) {
	casos := map[string]DiaSemana{
		"lunes":     Lunes,
		"Lunes":     Lunes,
		"MIÉRCOLES": Miercoles,
		"miercoles": Miercoles,
		"sábado":    Sabado,
		"sabado":    Sabado,
		" domingo ": Domingo,
	}

	for entrada, esperado := range casos {
		dia, err := ParseDiaSemana(entrada)
		require.NoError(t, err, "entrada %q", entrada)
		assert.Equal(t, esperado, dia, "entrada %q", entrada)
	}
}

func TestParseDiaSemana_Invalidos(t *testing.T) {
	for _, entrada := range []string{"0", "8", "-1", "feriado", ""} {
		_, err := ParseDiaSemana(entrada)
		assert.Error(t, err, "entrada %q", entrada)
	}
}

func TestDiaSemana_Valido(t *testing.T) {
	assert.True(t, Lunes.Valido())
	assert.True(t, Domingo.Valido())
	assert.False(t, DiaSemana(0).Valido())
	assert.False(t, DiaSemana(8).Valido())
}

func TestDiaSemana_Nombre(t *testing.T) {
	assert.Equal(t, "miércoles", Miercoles.Nombre())
	assert.Equal(t, "domingo", Domingo.Nombre())
}

func TestTipoHorarioParaEmpleado(t *testing.T) {
	assert.Equal(t, TipoHorarioFijo, TipoHorarioParaEmpleado(TipoEmpleadoAdministrativo))
	assert.Equal(t, TipoHorarioFijo, TipoHorarioParaEmpleado(TipoEmpleadoComercial))
	assert.Equal(t, TipoHorarioRotativo, TipoHorarioParaEmpleado(TipoEmpleadoOperativo))
	assert.Equal(t, TipoHorarioRotativo, TipoHorarioParaEmpleado(TipoEmpleadoTemporal))

	// un tipo desconocido cae al valor por defecto
	assert.Equal(t, TipoHorarioFijo, TipoHorarioParaEmpleado(TipoEmpleado("practicante")))
}
