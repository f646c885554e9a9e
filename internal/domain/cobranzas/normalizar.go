// Package cobranzas normaliza y agrupa los comprobantes vencidos que llegan
// del servicio de consultas: filas crudas con columnas de nombre y casing
// variable se vuelven líneas tipadas y resúmenes por cliente+domicilio listos
// para presentar.
package cobranzas

import (
	"fmt"

	"github.com/L34N07/PATnav-sub000/internal/domain/entity"
	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
)

// Listas de claves candidatas por campo lógico. El orden importa: se toma la
// primera columna presente. Sinónimos relevados de los orígenes reales.
var (
	candTipoComp    = registro.Candidatos{"tipo_comp", "tipocomp", "tipo"}
	candPrefijo     = registro.Candidatos{"prefijo", "pref"}
	candNumero      = registro.Candidatos{"nro_comp", "nrocomp", "numero", "nro"}
	candVencimiento = registro.Candidatos{"vencimiento", "fec_vencimiento", "fecha_vto", "vto"}
	candCodCliente  = registro.Candidatos{"cod_cliente", "codcliente", "cliente"}
	candDomicilio   = registro.Candidatos{"domicilio", "domicilio_entrega", "direccion"}
	candImporte     = registro.Candidatos{"importe_total", "importe", "total"}
	candCobrado     = registro.Candidatos{"cobrado", "importe_cobrado", "pagado"}
	candSaldo       = registro.Candidatos{"saldo", "saldo_pendiente"}
	candFormasCobro = registro.Candidatos{"formas_cobro", "forma_cobro", "cobranza"}
)

func cadena(reg registro.Registro, cand registro.Candidatos) string {
	v, _ := registro.ResolverCampo(reg, cand)
	return registro.ComoCadena(v)
}

// NormalizarComprobantes convierte el lote crudo en líneas tipadas. Nunca
// descarta filas ni falla por un campo roto: cada campo degrada a su valor
// por defecto. El largo de la salida es siempre el largo de la entrada.
func NormalizarComprobantes(regs []registro.Registro) []entity.ComprobanteVencido {
	lineas := make([]entity.ComprobanteVencido, 0, len(regs))
	for i, reg := range regs {
		vImporte, _ := registro.ResolverCampo(reg, candImporte)
		vCobrado, _ := registro.ResolverCampo(reg, candCobrado)
		importe := registro.ComoDecimal(vImporte)
		cobrado := registro.ComoDecimal(vCobrado)

		// Algunos orígenes mandan la columna saldo y otros no; si falta se
		// reconstruye como importe - cobrado.
		saldo := importe.Sub(cobrado)
		if vSaldo, ok := registro.ResolverCampo(reg, candSaldo); ok {
			saldo = registro.ComoDecimal(vSaldo)
		}

		vVto, _ := registro.ResolverCampo(reg, candVencimiento)
		vCliente, _ := registro.ResolverCampo(reg, candCodCliente)

		linea := entity.ComprobanteVencido{
			TipoComp:    cadena(reg, candTipoComp),
			Prefijo:     cadena(reg, candPrefijo),
			Numero:      cadena(reg, candNumero),
			Vencimiento: registro.ParsearFecha(vVto),
			CodCliente:  registro.ComoEntero(vCliente),
			Domicilio:   cadena(reg, candDomicilio),
			Importe:     importe,
			Cobrado:     cobrado,
			Saldo:       saldo,
			FormasCobro: cadena(reg, candFormasCobro),
		}
		// El índice posicional garantiza unicidad aunque upstream repita la
		// clave natural: dos filas duplicadas no deben fusionarse ni perderse.
		linea.ID = fmt.Sprintf("%s-%s-%s-%d", linea.TipoComp, linea.Prefijo, linea.Numero, i)
		lineas = append(lineas, linea)
	}
	return lineas
}

// DerivarIgnorados construye el conjunto de códigos de cliente excluidos de
// la vista principal de vencidos (van a la vista restringida de admin). Solo
// entran filas donde alguna candidata de código resolvió de verdad: un 0 por
// coerción de basura no debe ignorar al cliente 0.
func DerivarIgnorados(regs []registro.Registro) map[int]struct{} {
	ignorados := make(map[int]struct{}, len(regs))
	for _, reg := range regs {
		if v, ok := registro.ResolverCampo(reg, candCodCliente); ok {
			ignorados[registro.ComoEntero(v)] = struct{}{}
		}
	}
	return ignorados
}

// PartirPorIgnorados separa las líneas en (visibles, ignoradas) según el
// conjunto de clientes excluidos. Orden relativo preservado.
func PartirPorIgnorados(lineas []entity.ComprobanteVencido, ignorados map[int]struct{}) (visibles, ocultas []entity.ComprobanteVencido) {
	for _, l := range lineas {
		if _, ign := ignorados[l.CodCliente]; ign {
			ocultas = append(ocultas, l)
		} else {
			visibles = append(visibles, l)
		}
	}
	return visibles, ocultas
}
