// Package registro implementa el acceso tolerante a esquemas sobre las filas
// crudas que devuelve el servicio de consultas. Las fuentes upstream no
// garantizan ni el casing ni el nombre exacto de las columnas (cod_cliente,
// CodCliente, CLIENTE...), por lo que cada campo lógico se resuelve contra una
// lista ordenada de claves candidatas.
package registro

import (
	"sort"
	"strings"
)

// Registro es una fila cruda: mapa de claves arbitrarias a valores escalares
// sin tipar (string, número, bool, nil). Nunca se muta.
type Registro map[string]any

// Candidatos es la lista ordenada de nombres de columna considerados
// sinónimos de un mismo campo lógico. Se prueban en orden, comparando
// en minúsculas y sin espacios a los costados.
type Candidatos []string

// normalizarClave deja la clave en la forma canónica de comparación.
func normalizarClave(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// ResolverCampo devuelve el valor de la primera clave candidata presente en
// el registro. El segundo retorno distingue "ninguna candidata existe" de
// "existe pero su valor es nil o vacío": un false significa ausencia total.
// Nunca entra en pánico ante claves raras ni valores no string.
func ResolverCampo(reg Registro, candidatos Candidatos) (any, bool) {
	if len(reg) == 0 || len(candidatos) == 0 {
		return nil, false
	}
	// El orden de iteración de un map no es estable; se indexa con las claves
	// ordenadas para que una colisión de casing resuelva siempre igual.
	claves := make([]string, 0, len(reg))
	for k := range reg {
		claves = append(claves, k)
	}
	sort.Strings(claves)

	indice := make(map[string]any, len(reg))
	for _, k := range claves {
		kn := normalizarClave(k)
		if _, ya := indice[kn]; !ya {
			indice[kn] = reg[k]
		}
	}
	for _, c := range candidatos {
		if v, ok := indice[normalizarClave(c)]; ok {
			return v, true
		}
	}
	return nil, false
}
