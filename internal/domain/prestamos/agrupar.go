package prestamos

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/L34N07/PATnav-sub000/internal/domain/entity"
)

// Estados que impiden colapsar su grupo: el usuario tiene que ver cada
// movimiento por separado cuando uno de estos aparece.
var estadosSinAgrupar = map[string]struct{}{
	"anulado": {},
}

func estadoExcluido(estado string) bool {
	_, ok := estadosSinAgrupar[strings.ToLower(strings.TrimSpace(estado))]
	return ok
}

// movimientoBase elige el representante de identidad de un grupo: el de mayor
// cantidad positiva (primera aparición gana el empate exacto), o el primero
// si ninguna cantidad es positiva. Este desempate decide qué remito/fecha ve
// el usuario en la fila colapsada, no cambiarlo.
func movimientoBase(grupo []entity.MovimientoPrestamo) entity.MovimientoPrestamo {
	base := grupo[0]
	hayPositivo := false
	for _, m := range grupo {
		if m.Cantidad.IsPositive() && (!hayPositivo || m.Cantidad.GreaterThan(base.Cantidad)) {
			base = m
			hayPositivo = true
		}
	}
	return base
}

// AgruparMovimientos colapsa los movimientos que comparten
// (prefijo, nro_remito, tipo_comp) según la regla de negocio:
//
//   - Con algún estado presente: si hay un estado excluido o la suma no
//     cancela, el grupo queda entero sin colapsar; si cancela, queda solo el
//     movimiento base.
//   - Sin estados: queda un único representante con la identidad del base y
//     la suma con signo como cantidad. Cuando aportaron ambos signos se
//     registra CantidadDisplay "prestado x devuelto = saldo".
//
// La operación es idempotente: re-agrupar la salida devuelve lo mismo.
// La salida queda ordenada por fecha, número de remito e ID.
func AgruparMovimientos(movs []entity.MovimientoPrestamo) []entity.MovimientoPrestamo {
	type grupo struct {
		miembros []entity.MovimientoPrestamo
	}
	porClave := make(map[string]*grupo)
	orden := make([]string, 0)

	for _, m := range movs {
		clave := fmt.Sprintf("%s|%s|%s", m.Prefijo, m.NroRemito, m.TipoComp)
		g, ok := porClave[clave]
		if !ok {
			g = &grupo{}
			porClave[clave] = g
			orden = append(orden, clave)
		}
		g.miembros = append(g.miembros, m)
	}

	resultado := make([]entity.MovimientoPrestamo, 0, len(movs))
	for _, clave := range orden {
		resultado = append(resultado, colapsar(porClave[clave].miembros)...)
	}

	sort.SliceStable(resultado, func(i, j int) bool {
		a, b := resultado[i], resultado[j]
		if a.Fecha.SortKey != b.Fecha.SortKey {
			return a.Fecha.SortKey < b.Fecha.SortKey
		}
		if a.NroRemito != b.NroRemito {
			return a.NroRemito < b.NroRemito
		}
		return a.ID < b.ID
	})
	return resultado
}

func colapsar(grupo []entity.MovimientoPrestamo) []entity.MovimientoPrestamo {
	// Un grupo de un solo miembro queda tal cual: preserva CantidadDisplay
	// de una corrida anterior y hace idempotente la agregación.
	if len(grupo) == 1 {
		return grupo
	}

	suma := decimal.Zero
	positivos := decimal.Zero
	negativos := decimal.Zero
	hayEstado := false
	hayExcluido := false
	for _, m := range grupo {
		suma = suma.Add(m.Cantidad)
		if m.Cantidad.IsPositive() {
			positivos = positivos.Add(m.Cantidad)
		} else if m.Cantidad.IsNegative() {
			negativos = negativos.Add(m.Cantidad)
		}
		if strings.TrimSpace(m.Estado) != "" {
			hayEstado = true
			if estadoExcluido(m.Estado) {
				hayExcluido = true
			}
		}
	}

	if hayEstado {
		// El estado pide atención: si además hay un excluido o el grupo no
		// cancela, se muestra todo por separado.
		if hayExcluido || !suma.IsZero() {
			return grupo
		}
		return []entity.MovimientoPrestamo{movimientoBase(grupo)}
	}

	rep := movimientoBase(grupo)
	rep.Cantidad = suma
	if positivos.IsPositive() && negativos.IsNegative() {
		rep.CantidadDisplay = fmt.Sprintf("%s x %s = %s", positivos.String(), negativos.Abs().String(), suma.String())
	} else {
		rep.CantidadDisplay = ""
	}
	return []entity.MovimientoPrestamo{rep}
}
