package entity

import (
	"github.com/shopspring/decimal"

	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
)

// ComprobanteVencido es una línea de factura/comprobante con saldo pendiente,
// ya normalizada desde la fila cruda. Inmutable después de creada; el lote
// entero se descarta y reconstruye en cada consulta.
type ComprobanteVencido struct {
	ID          string // sintético: clave natural + índice posicional, único aun con duplicados upstream
	TipoComp    string
	Prefijo     string
	Numero      string
	Vencimiento registro.Fecha
	CodCliente  int
	Domicilio   string // domicilio de entrega; junto con CodCliente arma la clave de agrupamiento
	Importe     decimal.Decimal
	Cobrado     decimal.Decimal
	Saldo       decimal.Decimal
	FormasCobro string // texto libre: "CC", "S / B-MP", etc.
}

// ResumenCliente agrupa los comprobantes vencidos de un cliente en un
// domicilio de entrega. Se reconstruye de cero en cada consulta, nunca se
// muta parcialmente.
type ResumenCliente struct {
	ClaveCliente string // CodCliente + Domicilio
	CodCliente   int
	Domicilio    string
	SaldoTotal   decimal.Decimal // suma exacta de los saldos de Comprobantes
	FormasCobro  string          // formas de cobro distintas, deduplicadas sin casing, unidas con ", "
	MasAntiguo   ComprobanteVencido
	Comprobantes []ComprobanteVencido // ordenados por vencimiento, tipo, prefijo, número
}
