package cobranzas

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/L34N07/PATnav-sub000/internal/domain/entity"
)

// menorLinea ordena comprobantes por vencimiento, tipo, prefijo y número.
// Es el mismo orden con el que se elige el comprobante más antiguo del grupo.
func menorLinea(a, b entity.ComprobanteVencido) bool {
	if a.Vencimiento.SortKey != b.Vencimiento.SortKey {
		return a.Vencimiento.SortKey < b.Vencimiento.SortKey
	}
	if a.TipoComp != b.TipoComp {
		return a.TipoComp < b.TipoComp
	}
	if a.Prefijo != b.Prefijo {
		return a.Prefijo < b.Prefijo
	}
	return a.Numero < b.Numero
}

// ArmarResumenes agrupa las líneas por (cod_cliente, domicilio), suma saldos
// con aritmética exacta, deduplica las formas de cobro y elige el comprobante
// más antiguo como ancla. Determinístico ante cualquier orden de entrada: lo
// único que depende del orden crudo es qué casing "gana" en las formas de
// cobro (primera aparición).
func ArmarResumenes(lineas []entity.ComprobanteVencido) []entity.ResumenCliente {
	porClave := make(map[string]*entity.ResumenCliente)
	vistasFormas := make(map[string]map[string]struct{})
	orden := make([]string, 0)

	for _, l := range lineas {
		clave := fmt.Sprintf("%d|%s", l.CodCliente, l.Domicilio)
		res, ok := porClave[clave]
		if !ok {
			res = &entity.ResumenCliente{
				ClaveCliente: clave,
				CodCliente:   l.CodCliente,
				Domicilio:    l.Domicilio,
				SaldoTotal:   decimal.Zero,
			}
			porClave[clave] = res
			vistasFormas[clave] = make(map[string]struct{})
			orden = append(orden, clave)
		}
		res.SaldoTotal = res.SaldoTotal.Add(l.Saldo)
		res.Comprobantes = append(res.Comprobantes, l)

		// Dedup sin casing, gana el casing de la primera aparición.
		if fc := strings.TrimSpace(l.FormasCobro); fc != "" {
			bajo := strings.ToLower(fc)
			if _, ya := vistasFormas[clave][bajo]; !ya {
				vistasFormas[clave][bajo] = struct{}{}
				if res.FormasCobro == "" {
					res.FormasCobro = fc
				} else {
					res.FormasCobro += ", " + fc
				}
			}
		}
	}

	resumenes := make([]entity.ResumenCliente, 0, len(porClave))
	for _, clave := range orden {
		res := porClave[clave]
		sort.SliceStable(res.Comprobantes, func(i, j int) bool {
			return menorLinea(res.Comprobantes[i], res.Comprobantes[j])
		})
		res.MasAntiguo = res.Comprobantes[0]
		resumenes = append(resumenes, *res)
	}

	// Grupos por vencimiento del ancla; desempata código de cliente y después
	// domicilio, para que el listado no "baile" entre consultas.
	sort.SliceStable(resumenes, func(i, j int) bool {
		a, b := resumenes[i], resumenes[j]
		if a.MasAntiguo.Vencimiento.SortKey != b.MasAntiguo.Vencimiento.SortKey {
			return a.MasAntiguo.Vencimiento.SortKey < b.MasAntiguo.Vencimiento.SortKey
		}
		if a.CodCliente != b.CodCliente {
			return a.CodCliente < b.CodCliente
		}
		return a.Domicilio < b.Domicilio
	})
	return resumenes
}
