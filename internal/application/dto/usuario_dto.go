package dto

// LoginRequest credenciales de la aplicación de escritorio.
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Clave   string `json:"clave"`
}

// LoginResponse token emitido más la matriz de permisos del usuario.
type LoginResponse struct {
	Token    string          `json:"token"`
	Usuario  string          `json:"usuario"`
	Nombre   string          `json:"nombre"`
	Permisos map[string]bool `json:"permisos"`
}

// PermisosResponse matriz de permisos del usuario autenticado.
type PermisosResponse struct {
	Usuario  string          `json:"usuario"`
	Permisos map[string]bool `json:"permisos"`
}
