// Package listado computa las vistas de presentación: filtro de texto libre,
// filtro por categoría de forma de cobro y paginado. Solo deriva vistas,
// nunca muta los datos de origen; cada filtro opera siempre sobre el snapshot
// completo sin filtrar, así los filtros no se componen por accidente.
package listado

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/L34N07/PATnav-sub000/internal/domain/entity"
	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
)

// TamPaginaDefecto es el tamaño de página cuando el pedido no trae uno válido.
const TamPaginaDefecto = 25

// CodigosFormaCobro son las categorías conocidas de forma de cobro. Lista
// corta y estática; si crece se convierte en configuración.
var CodigosFormaCobro = []string{"S", "B-MP", "BA", "BC", "CC", "X"}

// quitarAcentos descompone y elimina marcas diacríticas: "Sán" matchea "san".
var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Plegar normaliza texto para comparación: sin acentos y en minúsculas.
func Plegar(s string) string {
	plano, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(plano)
}

// Contiene reporta si texto contiene consulta, ignorando casing y acentos.
func Contiene(texto, consulta string) bool {
	return strings.Contains(Plegar(texto), Plegar(consulta))
}

// FiltrarPorTexto devuelve las filas crudas cuyo campo (resuelto con la misma
// tolerancia de sinónimos/casing que el resto del sistema) contiene la
// consulta. Consulta vacía devuelve el snapshot completo tal cual.
func FiltrarPorTexto(regs []registro.Registro, consulta, campo string) []registro.Registro {
	if strings.TrimSpace(consulta) == "" {
		return regs
	}
	cand := registro.Candidatos{campo}
	filtradas := make([]registro.Registro, 0, len(regs))
	for _, reg := range regs {
		v, ok := registro.ResolverCampo(reg, cand)
		if ok && Contiene(registro.ComoCadena(v), consulta) {
			filtradas = append(filtradas, reg)
		}
	}
	return filtradas
}

var patronCodigo = regexp.MustCompile(`[A-Z0-9-]+`)

// CodigosDeFormasCobro tokeniza el texto libre de formas de cobro en corridas
// [A-Z0-9-]+ sobre el texto en mayúsculas: "S / B-MP" → {"S", "B-MP"}.
func CodigosDeFormasCobro(texto string) []string {
	return patronCodigo.FindAllString(strings.ToUpper(texto), -1)
}

// FiltrarPorCategoria devuelve los resúmenes cuyas formas de cobro incluyen
// alguno de los códigos pedidos. Sin códigos ("ver todo") no filtra nada.
func FiltrarPorCategoria(resumenes []entity.ResumenCliente, codigos []string) []entity.ResumenCliente {
	if len(codigos) == 0 {
		return resumenes
	}
	buscados := make(map[string]struct{}, len(codigos))
	for _, c := range codigos {
		buscados[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}
	filtrados := make([]entity.ResumenCliente, 0, len(resumenes))
	for _, r := range resumenes {
		for _, tok := range CodigosDeFormasCobro(r.FormasCobro) {
			if _, ok := buscados[tok]; ok {
				filtrados = append(filtrados, r)
				break
			}
		}
	}
	return filtrados
}

// Pagina es una vista paginada con el índice ya acotado a rango.
type Pagina[T any] struct {
	Items   []T
	Paginas int
	Indice  int
}

// Paginar corta items en páginas de tamaño fijo, acotando el índice pedido:
// nunca devuelve una página fuera de rango. Colección vacía produce página 0
// de 0 páginas.
func Paginar[T any](items []T, tam, indice int) Pagina[T] {
	if tam <= 0 {
		tam = TamPaginaDefecto
	}
	if len(items) == 0 {
		return Pagina[T]{Items: nil, Paginas: 0, Indice: 0}
	}
	paginas := (len(items) + tam - 1) / tam
	if indice < 0 {
		indice = 0
	}
	if indice >= paginas {
		indice = paginas - 1
	}
	desde := indice * tam
	hasta := desde + tam
	if hasta > len(items) {
		hasta = len(items)
	}
	return Pagina[T]{Items: items[desde:hasta], Paginas: paginas, Indice: indice}
}
