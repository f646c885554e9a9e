package registro_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
)

// TestParsearFecha_CaminoRapidoISO: el prefijo YYYY-MM-DD se interpreta como
// fecha calendario UTC exacta, sin depender del locale del proceso.
func TestParsearFecha_CaminoRapidoISO(t *testing.T) {
	f := registro.ParsearFecha("2024-03-05")

	require.True(t, f.Valida())
	assert.Equal(t, "05/03/2024", f.Display)

	esperado := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, float64(esperado), f.SortKey)
}

// TestParsearFecha_PreservaOrden: fechas consecutivas producen claves de
// orden consecutivas.
func TestParsearFecha_PreservaOrden(t *testing.T) {
	a := registro.ParsearFecha("2024-03-05")
	b := registro.ParsearFecha("2024-03-06")
	assert.Less(t, a.SortKey, b.SortKey)
}

// TestParsearFecha_PrefijoConHora: un timestamp ISO con hora usa igualmente
// el camino rápido por prefijo.
func TestParsearFecha_PrefijoConHora(t *testing.T) {
	f := registro.ParsearFecha("2023-11-29T14:30:00")
	require.True(t, f.Valida())
	assert.Equal(t, "29/11/2023", f.Display)
}

func TestParsearFecha_FormatoLocal(t *testing.T) {
	f := registro.ParsearFecha("29/11/2023")
	require.True(t, f.Valida())
	assert.Equal(t, "29/11/2023", f.Display)
}

// TestParsearFecha_TotalSobreBasura: nunca lanza; lo ilegible se muestra
// crudo y ordena al final con +Inf.
func TestParsearFecha_TotalSobreBasura(t *testing.T) {
	f := registro.ParsearFecha("sin fecha")
	assert.False(t, f.Valida())
	assert.Equal(t, "sin fecha", f.Display)
	assert.True(t, math.IsInf(f.SortKey, 1))

	f = registro.ParsearFecha(nil)
	assert.False(t, f.Valida())
	assert.Equal(t, "", f.Display)
}

// TestParsearFecha_BasuraOrdenaUltima: una fecha rota queda después de
// cualquier fecha válida.
func TestParsearFecha_BasuraOrdenaUltima(t *testing.T) {
	rota := registro.ParsearFecha("???")
	valida := registro.ParsearFecha("2099-12-31")
	assert.Greater(t, rota.SortKey, valida.SortKey)
}

func TestParsearFecha_EpochMilisegundos(t *testing.T) {
	ms := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	f := registro.ParsearFecha(ms)
	require.True(t, f.Valida())
	assert.Equal(t, "15/01/2024", f.Display)
}
