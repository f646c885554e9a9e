package dto

import (
	"github.com/shopspring/decimal"

	"github.com/L34N07/PATnav-sub000/internal/domain/entity"
)

// ComprobanteDTO una línea de comprobante vencido en la respuesta.
type ComprobanteDTO struct {
	ID          string          `json:"id"`
	TipoComp    string          `json:"tipo_comp"`
	Prefijo     string          `json:"prefijo"`
	Numero      string          `json:"numero"`
	Vencimiento string          `json:"vencimiento"` // DD/MM/YYYY, o el crudo si no parseó
	CodCliente  int             `json:"cod_cliente"`
	Domicilio   string          `json:"domicilio"`
	Importe     decimal.Decimal `json:"importe"`
	Cobrado     decimal.Decimal `json:"cobrado"`
	Saldo       decimal.Decimal `json:"saldo"`
	FormasCobro string          `json:"formas_cobro"`
}

// ResumenClienteDTO un grupo cliente+domicilio con sus comprobantes.
type ResumenClienteDTO struct {
	ClaveCliente string           `json:"clave_cliente"`
	CodCliente   int              `json:"cod_cliente"`
	Domicilio    string           `json:"domicilio"`
	SaldoTotal   decimal.Decimal  `json:"saldo_total"`
	FormasCobro  string           `json:"formas_cobro"`
	MasAntiguo   ComprobanteDTO   `json:"mas_antiguo"`
	Comprobantes []ComprobanteDTO `json:"comprobantes"`
}

// VencidosRequest parámetros de la vista de vencidos.
type VencidosRequest struct {
	Buscar     string   `query:"buscar"`
	Campo      string   `query:"campo"` // campo lógico del filtro de texto, ej. "domicilio"
	Categorias []string `query:"categoria"`
	PaginaRequest
}

// VencidosResponse es la vista paginada de resúmenes de vencidos.
type VencidosResponse struct {
	Lote      string              `json:"lote"` // ID del snapshot, para trazar en logs
	Resumenes []ResumenClienteDTO `json:"resumenes"`
	PaginaResponse
}

// DesdeComprobante convierte la entidad a DTO.
func DesdeComprobante(c entity.ComprobanteVencido) ComprobanteDTO {
	return ComprobanteDTO{
		ID:          c.ID,
		TipoComp:    c.TipoComp,
		Prefijo:     c.Prefijo,
		Numero:      c.Numero,
		Vencimiento: c.Vencimiento.Display,
		CodCliente:  c.CodCliente,
		Domicilio:   c.Domicilio,
		Importe:     c.Importe,
		Cobrado:     c.Cobrado,
		Saldo:       c.Saldo,
		FormasCobro: c.FormasCobro,
	}
}

// DesdeResumen convierte el resumen de cliente a DTO.
func DesdeResumen(r entity.ResumenCliente) ResumenClienteDTO {
	comps := make([]ComprobanteDTO, 0, len(r.Comprobantes))
	for _, c := range r.Comprobantes {
		comps = append(comps, DesdeComprobante(c))
	}
	return ResumenClienteDTO{
		ClaveCliente: r.ClaveCliente,
		CodCliente:   r.CodCliente,
		Domicilio:    r.Domicilio,
		SaldoTotal:   r.SaldoTotal,
		FormasCobro:  r.FormasCobro,
		MasAntiguo:   DesdeComprobante(r.MasAntiguo),
		Comprobantes: comps,
	}
}
