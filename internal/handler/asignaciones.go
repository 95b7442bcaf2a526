package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/importer"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/utils"
)

func (h *Handler) ListarAsignaciones(w http.ResponseWriter, r *http.Request) {
	pagina, porPagina, buscar := paginacionParams(r)

	asignaciones, total, err := h.repository.ListarAsignaciones(pagina, porPagina, buscar)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.paginatedResponse(w, r, asignaciones, pagina, porPagina, total)
}

func (h *Handler) CrearAsignacion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmpleadoID  int64                   `json:"empleado_id" validate:"required"`
		FechaInicio string                  `json:"fecha_inicio" validate:"required"`
		FechaFin    string                  `json:"fecha_fin" validate:"required"`
		Detalles    []domain.DetalleHorario `json:"detalles" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	fechaInicio, err := time.Parse(importer.FormatoFecha, req.FechaInicio)
	if err != nil {
		h.badRequest(w, r, errors.New("la fecha de inicio tiene un formato inválido"))
		return
	}
	fechaFin, err := time.Parse(importer.FormatoFecha, req.FechaFin)
	if err != nil {
		h.badRequest(w, r, errors.New("la fecha de fin tiene un formato inválido"))
		return
	}

	if err := utils.ValidarVentanaAsignacion(fechaInicio, fechaFin); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidarDetallesHorario(req.Detalles); err != nil {
		h.badRequest(w, r, err)
		return
	}

	empleado, err := h.repository.ObtenerEmpleadoPorID(req.EmpleadoID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "el empleado no existe")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	asignacion := &domain.AsignacionHorario{
		EmpleadoID:  empleado.ID,
		TipoHorario: domain.TipoHorarioParaEmpleado(empleado.TipoEmpleado),
		FechaInicio: fechaInicio,
		FechaFin:    fechaFin,
		Detalles:    req.Detalles,
	}

	// el formulario y la carga masiva pasan por la misma regla de guardado
	if err := h.repository.GuardarAsignacionImportada(asignacion); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "asignación creada", asignacion)
}

func (h *Handler) ActualizarAsignacion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FechaInicio string                  `json:"fecha_inicio" validate:"required"`
		FechaFin    string                  `json:"fecha_fin" validate:"required"`
		Detalles    []domain.DetalleHorario `json:"detalles" validate:"required"`
		Activo      *bool                   `json:"activo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	fechaInicio, err := time.Parse(importer.FormatoFecha, req.FechaInicio)
	if err != nil {
		h.badRequest(w, r, errors.New("la fecha de inicio tiene un formato inválido"))
		return
	}
	fechaFin, err := time.Parse(importer.FormatoFecha, req.FechaFin)
	if err != nil {
		h.badRequest(w, r, errors.New("la fecha de fin tiene un formato inválido"))
		return
	}

	if err := utils.ValidarVentanaAsignacion(fechaInicio, fechaFin); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidarDetallesHorario(req.Detalles); err != nil {
		h.badRequest(w, r, err)
		return
	}

	asignacion := r.Context().Value(AsignacionCtx).(*domain.AsignacionHorario)

	asignacion.FechaInicio = fechaInicio
	asignacion.FechaFin = fechaFin
	asignacion.Detalles = req.Detalles
	if req.Activo != nil {
		asignacion.Activo = *req.Activo
	}

	if err := h.repository.ActualizarAsignacion(asignacion); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no fue posible actualizar la asignación, intente de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "asignación actualizada", asignacion)
}

func (h *Handler) EliminarAsignacion(w http.ResponseWriter, r *http.Request) {
	asignacion := r.Context().Value(AsignacionCtx).(*domain.AsignacionHorario)

	if err := h.repository.DesactivarAsignacion(asignacion.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "asignación eliminada", nil)
}

type erroresCarga struct {
	Exitosos            int                                 `json:"exitosos"`
	Fallidos            int                                 `json:"fallidos"`
	ErroresPorDocumento map[string]*importer.EntradaReporte `json:"errores_por_documento"`
}

type respuestaCargaMasiva struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Errores *erroresCarga `json:"errores,omitempty"`
}

func (h *Handler) CargaMasiva(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.CargaMasiva.MaxFileSize)

	if err := r.ParseMultipartForm(h.config.CargaMasiva.MaxFileSize); err != nil {
		h.errorResponse(w, r, "el archivo supera el tamaño máximo permitido")
		return
	}

	// el frontend envía el campo archivo; file queda por compatibilidad con
	// el cargador del sistema anterior
	archivo, cabecera, err := r.FormFile("archivo")
	if err != nil {
		archivo, cabecera, err = r.FormFile("file")
	}
	if err != nil {
		h.errorResponse(w, r, "debe adjuntar un archivo CSV en el campo archivo")
		return
	}
	defer archivo.Close()

	carga := importer.NuevaCargaMasiva(h.repository, h.repository)
	resultado, err := carga.Procesar(archivo)
	if err != nil {
		h.errorResponse(w, r, "el archivo no se puede leer como CSV")
		return
	}

	miInfo := r.Context().Value(MiInfoCtx).(*domain.Usuario)
	if err := h.publicarMail(domain.MailMessage{
		Type: "carga_masiva",
		To:   miInfo.Email,
		Data: domain.ResumenCargaMailData{
			NombreCompleto:      miInfo.NombreCompleto,
			NombreArchivo:       cabecera.Filename,
			EmpleadosProcesados: resultado.EmpleadosProcesados,
			DocumentosConError:  resultado.Reporte.DocumentosConError(),
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if !resultado.Reporte.TieneErrores() {
		h.writeJSON(w, r, http.StatusOK, respuestaCargaMasiva{
			Success: true,
			Message: fmt.Sprintf("carga completada, %d empleados procesados", resultado.EmpleadosProcesados),
		})
		return
	}

	h.writeJSON(w, r, http.StatusOK, respuestaCargaMasiva{
		Success: false,
		Message: "la carga terminó con errores, revise el detalle por documento",
		Errores: &erroresCarga{
			Exitosos:            resultado.EmpleadosProcesados,
			Fallidos:            resultado.Reporte.DocumentosConError(),
			ErroresPorDocumento: resultado.Reporte.PorDocumento(),
		},
	})
}

func (h *Handler) DescargarPlantilla(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="plantilla_horarios.csv"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(importer.PlantillaCSV()); err != nil {
		h.logInternalServerError(r, err)
	}
}
