package seed

import (
	"log/slog"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/repository"
)

var ciudadesBase = []string{"Bogotá", "Medellín", "Cali", "Barranquilla"}

var empresasBase = []domain.Empresa{
	{Nombre: "Logística Andina S.A.S.", NIT: "900123456-1"},
	{Nombre: "Comercial del Caribe Ltda.", NIT: "900654321-7"},
}

var areasBase = []string{"Recursos Humanos", "Operaciones", "Ventas", "Contabilidad"}

// SeedDatosBase inserta el catálogo mínimo para un ambiente de desarrollo:
// ciudades, empresas, una sede por empresa en cada ciudad y las áreas de cada
// sede. Los errores por duplicado se registran y no detienen el resto.
func SeedDatosBase(r *repository.Repository) {
	ciudades := make([]*domain.Ciudad, 0, len(ciudadesBase))
	for _, nombre := range ciudadesBase {
		ciudad := &domain.Ciudad{Nombre: nombre}
		if err := r.CrearCiudad(ciudad); err != nil {
			slog.Error("no fue posible insertar la ciudad", "nombre", nombre, "error", err)
			continue
		}
		ciudades = append(ciudades, ciudad)
	}

	for _, base := range empresasBase {
		empresa := &domain.Empresa{Nombre: base.Nombre, NIT: base.NIT}
		if err := r.CrearEmpresa(empresa); err != nil {
			slog.Error("no fue posible insertar la empresa", "nombre", base.Nombre, "error", err)
			continue
		}

		for _, ciudad := range ciudades {
			sede := &domain.Sede{
				Nombre:    "Sede " + ciudad.Nombre,
				Direccion: "Calle 1 # 2-34, " + ciudad.Nombre,
				EmpresaID: empresa.ID,
				CiudadID:  ciudad.ID,
			}
			if err := r.CrearSede(sede); err != nil {
				slog.Error("no fue posible insertar la sede", "nombre", sede.Nombre, "error", err)
				continue
			}

			for _, nombreArea := range areasBase {
				area := &domain.Area{Nombre: nombreArea, SedeID: sede.ID}
				if err := r.CrearArea(area); err != nil {
					slog.Error("no fue posible insertar el área", "nombre", nombreArea, "error", err)
				}
			}
		}
	}

	slog.Info("datos base insertados")
}
