package dto

import (
	"github.com/shopspring/decimal"

	"github.com/L34N07/PATnav-sub000/internal/domain/entity"
)

// MovimientoDTO un movimiento de préstamo ya colapsado.
type MovimientoDTO struct {
	ID              string          `json:"id"`
	Fecha           string          `json:"fecha"`
	NroRemito       string          `json:"nro_remito"`
	Prefijo         string          `json:"prefijo"`
	TipoComp        string          `json:"tipo_comp"`
	CodArticulo     int             `json:"cod_articulo"`
	Articulo        string          `json:"articulo"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	CantidadDisplay string          `json:"cantidad_display,omitempty"`
	Estado          string          `json:"estado,omitempty"`
}

// MovimientosResponse el ledger de préstamos de un cliente.
type MovimientosResponse struct {
	Lote        string          `json:"lote"`
	CodCliente  int             `json:"cod_cliente"`
	Movimientos []MovimientoDTO `json:"movimientos"`
}

// DesdeMovimiento convierte la entidad a DTO.
func DesdeMovimiento(m entity.MovimientoPrestamo) MovimientoDTO {
	return MovimientoDTO{
		ID:              m.ID,
		Fecha:           m.Fecha.Display,
		NroRemito:       m.NroRemito,
		Prefijo:         m.Prefijo,
		TipoComp:        m.TipoComp,
		CodArticulo:     m.CodArticulo,
		Articulo:        m.Articulo,
		Cantidad:        m.Cantidad,
		CantidadDisplay: m.CantidadDisplay,
		Estado:          m.Estado,
	}
}
