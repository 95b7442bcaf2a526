package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

var letras = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerarPasswordAleatoria(longitud int) string {
	password := make([]rune, longitud)
	for i := range password {
		password[i] = letras[rand.Intn(len(letras))]
	}
	return string(password)
}

var nombresComunes = []string{
	"María", "José", "Luis", "Carmen", "Juan", "Ana", "Carlos", "Laura",
	"Andrés", "Diana", "Jorge", "Paula", "Camilo", "Sofía", "Felipe",
	"Valentina", "Diego", "Daniela", "Santiago", "Lucía",
}

var apellidosComunes = []string{
	"García", "Rodríguez", "Martínez", "López", "González", "Hernández",
	"Pérez", "Sánchez", "Ramírez", "Torres", "Flórez", "Castro", "Rojas",
	"Vargas", "Moreno", "Jiménez", "Gutiérrez", "Ortiz", "Mendoza", "Silva",
}

var tiposEmpleado = []domain.TipoEmpleado{
	domain.TipoEmpleadoAdministrativo,
	domain.TipoEmpleadoComercial,
	domain.TipoEmpleadoOperativo,
	domain.TipoEmpleadoTemporal,
}

func GenerarDocumentoAleatorio() string {
	// cédulas de 8 a 10 dígitos, sin ceros a la izquierda
	documento := fmt.Sprintf("%d", rand.Intn(9)+1)
	longitud := rand.Intn(3) + 7
	for i := 0; i < longitud; i++ {
		documento += fmt.Sprintf("%d", rand.Intn(10))
	}
	return documento
}

func GenerarEmpleadoAleatorio(empresaID int64, sedeID int64, areaID int64) *domain.Empleado {
	nombres := nombresComunes[rand.Intn(len(nombresComunes))]
	apellidos := apellidosComunes[rand.Intn(len(apellidosComunes))] + " " + apellidosComunes[rand.Intn(len(apellidosComunes))]

	usuario := strings.ToLower(quitarTildes(nombres)) + "." + strings.ToLower(quitarTildes(strings.Fields(apellidos)[0]))

	return &domain.Empleado{
		Documento:    GenerarDocumentoAleatorio(),
		Nombres:      nombres,
		Apellidos:    apellidos,
		Email:        fmt.Sprintf("%s%d@ejemplo.com", usuario, rand.Intn(100)),
		TipoEmpleado: tiposEmpleado[rand.Intn(len(tiposEmpleado))],
		EmpresaID:    empresaID,
		SedeID:       sedeID,
		AreaID:       areaID,
	}
}

var reemplazadorTildes = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "ñ", "n", "Ñ", "N",
)

func quitarTildes(s string) string {
	return reemplazadorTildes.Replace(s)
}
