package ports

import (
	"context"

	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
)

// RecordSource es el servicio de consultas externo: devuelve lotes de filas
// crudas sin tipar, sin garantía de casing ni de presencia de columnas. Cada
// llamada es un snapshot fresco; este núcleo no cachea ni reintenta. Sus
// errores se propagan al llamador sin reinterpretar.
type RecordSource interface {
	ComprobantesVencidos(ctx context.Context) ([]registro.Registro, error)
	ClientesIgnorados(ctx context.Context) ([]registro.Registro, error)
	MovimientosPrestamo(ctx context.Context, codCliente int) ([]registro.Registro, error)
	UsuariosApp(ctx context.Context) ([]registro.Registro, error)
}
