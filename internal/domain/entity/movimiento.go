package entity

import (
	"github.com/shopspring/decimal"

	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
)

// MovimientoPrestamo es un movimiento de préstamo/devolución de artículos
// (envases, equipos) normalizado desde el remito crudo. Cantidad es con
// signo: positiva presta, negativa devuelve.
type MovimientoPrestamo struct {
	ID              string
	Fecha           registro.Fecha
	NroRemito       string
	Prefijo         string
	TipoComp        string
	CodArticulo     int
	Articulo        string // etiqueta resuelta por tabla fija código→nombre
	Cantidad        decimal.Decimal
	CantidadDisplay string // "prestado x devuelto = saldo", solo cuando un colapso mezcló ambos signos
	Estado          string // texto libre de info extra; clasifica el tono en la UI y frena el colapso
}
