package handler

type ContextKey string

var (
	RolCtxKey      ContextKey = "rol"
	SubCtxKey      ContextKey = "sub"
	MiInfoCtx      ContextKey = "miInfo"
	UsuarioInfoCtx ContextKey = "usuarioInfo"
	EmpleadoCtx    ContextKey = "empleado"
	AsignacionCtx  ContextKey = "asignacion"
)
