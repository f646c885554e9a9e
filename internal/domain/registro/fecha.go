package registro

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// Fecha es el par presentación/orden de una fecha upstream: el texto que ve
// el usuario (DD/MM/YYYY) y una clave numérica de ordenamiento en milisegundos
// UTC. Las fechas imposibles de interpretar quedan con SortKey = +Inf, así
// ordenan siempre al final de forma determinística.
type Fecha struct {
	Display string
	SortKey float64
}

var patronISO = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// Formatos alternativos que aparecen en los orígenes de datos cuando la
// columna no viene en ISO. Se prueban en orden.
var formatosFecha = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
}

// ParsearFecha es total: todo valor de entrada produce alguna Fecha, jamás un
// error. El camino rápido YYYY-MM-DD interpreta los componentes como fecha
// calendario UTC, independiente de locale y de zona horaria del proceso.
func ParsearFecha(v any) Fecha {
	switch x := v.(type) {
	case time.Time:
		return desdeTiempo(x)
	case int, int32, int64, float32, float64:
		// Epoch en milisegundos (así lo serializa más de un origen).
		ms := ComoDecimal(v).IntPart()
		if ms > 0 {
			return desdeTiempo(time.UnixMilli(ms).UTC())
		}
	}

	s := ComoCadena(v)
	if s == "" {
		return Fecha{Display: "", SortKey: math.Inf(1)}
	}

	if m := patronISO.FindStringSubmatch(s); m != nil {
		t, err := time.Parse("2006-01-02", m[0])
		if err == nil {
			return desdeTiempo(t)
		}
	}

	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return desdeTiempo(t.UTC())
		}
	}

	// Ilegible: se muestra el crudo tal cual y ordena al final.
	return Fecha{Display: s, SortKey: math.Inf(1)}
}

func desdeTiempo(t time.Time) Fecha {
	return Fecha{
		Display: fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year()),
		SortKey: float64(t.UnixMilli()),
	}
}

// Valida reporta si la fecha pudo interpretarse (SortKey finito).
func (f Fecha) Valida() bool {
	return !math.IsInf(f.SortKey, 1)
}
