// Package prestamos normaliza y colapsa los movimientos de préstamo y
// devolución de artículos (remitos de envases y equipos en comodato). La
// regla de colapso cancela pares préstamo/devolución del mismo remito para
// que el ledger muestre el saldo real y no el ida y vuelta completo.
package prestamos

import (
	"fmt"

	"github.com/L34N07/PATnav-sub000/internal/domain/entity"
	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
)

var (
	candFecha       = registro.Candidatos{"fec_remito", "fecha_remito", "fecha"}
	candNroRemito   = registro.Candidatos{"nro_remito", "nroremito", "remito", "numero"}
	candPrefijo     = registro.Candidatos{"prefijo", "pref"}
	candTipoComp    = registro.Candidatos{"tipo_comp", "tipocomp", "tipo"}
	candCodArticulo = registro.Candidatos{"cod_articulo", "codarticulo", "articulo"}
	candCantidad    = registro.Candidatos{"cantidad", "cant"}
	candEstado      = registro.Candidatos{"info_extra", "estado", "observacion"}
)

// Tabla fija código→etiqueta de artículos prestables.
var etiquetasArticulo = map[int]string{
	1: "Garrafa 10 kg",
	2: "Garrafa 15 kg",
	3: "Garrafa 30 kg",
	4: "Cilindro 45 kg",
	5: "Dispenser frío/calor",
	6: "Botellón 20 L",
}

// EtiquetaArticulo resuelve la etiqueta de un código. Un código desconocido
// distinto de cero se muestra con su número; el cero (o la columna ausente)
// queda como artículo sin especificar.
func EtiquetaArticulo(codigo int) string {
	if e, ok := etiquetasArticulo[codigo]; ok {
		return e
	}
	if codigo == 0 {
		return "Artículo sin especificar"
	}
	return fmt.Sprintf("Artículo %d", codigo)
}

func cadena(reg registro.Registro, cand registro.Candidatos) string {
	v, _ := registro.ResolverCampo(reg, cand)
	return registro.ComoCadena(v)
}

// NormalizarMovimientos convierte el lote crudo de remitos de un cliente en
// movimientos tipados. Igual que con los comprobantes: nunca descarta filas,
// cada campo roto degrada a su defecto.
func NormalizarMovimientos(regs []registro.Registro, codCliente int) []entity.MovimientoPrestamo {
	movs := make([]entity.MovimientoPrestamo, 0, len(regs))
	for i, reg := range regs {
		vFecha, _ := registro.ResolverCampo(reg, candFecha)
		vCant, _ := registro.ResolverCampo(reg, candCantidad)
		vArt, _ := registro.ResolverCampo(reg, candCodArticulo)

		m := entity.MovimientoPrestamo{
			Fecha:       registro.ParsearFecha(vFecha),
			NroRemito:   cadena(reg, candNroRemito),
			Prefijo:     cadena(reg, candPrefijo),
			TipoComp:    cadena(reg, candTipoComp),
			CodArticulo: registro.ComoEntero(vArt),
			Cantidad:    registro.ComoDecimal(vCant),
			Estado:      cadena(reg, candEstado),
		}
		m.Articulo = EtiquetaArticulo(m.CodArticulo)

		// ID compuesto cliente|fecha|remito; si el remito viene vacío se cae
		// al índice posicional para no colisionar.
		if m.NroRemito != "" {
			m.ID = fmt.Sprintf("%d|%s|%s", codCliente, m.Fecha.Display, m.NroRemito)
		} else {
			m.ID = fmt.Sprintf("%d|%s|#%d", codCliente, m.Fecha.Display, i)
		}
		movs = append(movs, m)
	}
	return movs
}
