package registro

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Coerciones escalares con valores por defecto documentados. Una fila rota
// degrada campo a campo, nunca aborta el lote completo (los orígenes mandan
// números como texto, fechas en formatos mezclados y columnas faltantes con
// frecuencia).

// ComoCadena convierte cualquier escalar a string recortado.
// nil produce cadena vacía.
func ComoCadena(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case []byte:
		return strings.TrimSpace(string(x))
	case decimal.Decimal:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", x))
	}
}

// ComoDecimal intenta interpretar el valor como número exacto.
// Si no se puede (texto basura, nil, columna ausente) devuelve cero:
// un importe ilegible no es un error fatal del lote.
func ComoDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case bool:
		if x {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	default:
		s := strings.ReplaceAll(ComoCadena(v), ",", ".")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	}
}

// ComoEntero coerciona a entero truncando decimales; basura produce 0.
func ComoEntero(v any) int {
	return int(ComoDecimal(v).IntPart())
}

// ComoBool aplica la regla de coerción booleana de permisos:
// nil → false; bool pasa directo; número → distinto de cero;
// string (recortado, en minúsculas) "", "0", "false", "no" → false,
// cualquier otro texto → true.
func ComoBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int, int32, int64, float32, float64, decimal.Decimal:
		return !ComoDecimal(v).IsZero()
	default:
		s := strings.ToLower(ComoCadena(x))
		switch s {
		case "", "0", "false", "no":
			return false
		}
		return true
	}
}
