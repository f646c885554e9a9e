package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los fallos del servicio de
// consultas upstream NO se traducen a estos errores: se propagan envueltos
// con %w y sin reinterpretar.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUsuarioNoExiste = errors.New("usuario no encontrado")
	ErrCredenciales    = errors.New("usuario o clave incorrectos")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
)
