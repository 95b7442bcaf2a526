package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type NuevaCuentaMailData struct {
	NombreCompleto string `json:"nombre_completo"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

type ResumenCargaMailData struct {
	NombreCompleto      string `json:"nombre_completo"`
	NombreArchivo       string `json:"nombre_archivo"`
	EmpleadosProcesados int    `json:"empleados_procesados"`
	DocumentosConError  int    `json:"documentos_con_error"`
}
