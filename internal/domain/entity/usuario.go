package entity

// UsuarioApp es un usuario de la aplicación de escritorio, normalizado desde
// el registro crudo de la tabla de usuarios.
type UsuarioApp struct {
	Usuario string
	Nombre  string
	Clave   string // hash bcrypt, o texto plano en filas legadas
}
