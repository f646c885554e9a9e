package registro_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
)

// TestResolverCampo_InsensibleACasingYEspacios verifica la propiedad central
// del resolutor: "CUIT", " cuit " y "Cuit" refieren a la misma columna.
func TestResolverCampo_InsensibleACasingYEspacios(t *testing.T) {
	casos := []registro.Registro{
		{"CUIT": "20-12345678-9"},
		{" cuit ": "20-12345678-9"},
		{"Cuit": "20-12345678-9"},
	}
	for _, reg := range casos {
		v, ok := registro.ResolverCampo(reg, registro.Candidatos{"cuit"})
		require.True(t, ok, "la clave debe resolverse sin importar casing/espacios: %v", reg)
		assert.Equal(t, "20-12345678-9", v)
	}
}

// TestResolverCampo_OrdenDeCandidatas: se devuelve la primera candidata
// presente, no la primera columna del registro.
func TestResolverCampo_OrdenDeCandidatas(t *testing.T) {
	reg := registro.Registro{"cliente": 7, "cod_cliente": 42}

	v, ok := registro.ResolverCampo(reg, registro.Candidatos{"cod_cliente", "codcliente", "cliente"})
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

// TestResolverCampo_AusenciaVsVacio: "no existe ninguna candidata" (ok=false)
// es distinto de "existe con valor nil o vacío" (ok=true).
func TestResolverCampo_AusenciaVsVacio(t *testing.T) {
	reg := registro.Registro{"domicilio": nil, "saldo": ""}

	_, ok := registro.ResolverCampo(reg, registro.Candidatos{"cobrado"})
	assert.False(t, ok, "candidata inexistente debe reportar ausencia")

	v, ok := registro.ResolverCampo(reg, registro.Candidatos{"domicilio"})
	assert.True(t, ok, "columna presente con nil sigue siendo presente")
	assert.Nil(t, v)

	v, ok = registro.ResolverCampo(reg, registro.Candidatos{"saldo"})
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestResolverCampo_RegistroVacio(t *testing.T) {
	_, ok := registro.ResolverCampo(nil, registro.Candidatos{"cuit"})
	assert.False(t, ok)
	_, ok = registro.ResolverCampo(registro.Registro{"a": 1}, nil)
	assert.False(t, ok)
}

func TestComoCadena(t *testing.T) {
	assert.Equal(t, "", registro.ComoCadena(nil))
	assert.Equal(t, "hola", registro.ComoCadena("  hola  "))
	assert.Equal(t, "3.5", registro.ComoCadena(3.5))
	assert.Equal(t, "true", registro.ComoCadena(true))
}

func TestComoDecimal_BasuraProduceCero(t *testing.T) {
	assert.True(t, registro.ComoDecimal("no-es-numero").IsZero())
	assert.True(t, registro.ComoDecimal(nil).IsZero())
	assert.True(t, registro.ComoDecimal(math.NaN()).IsZero())
}

func TestComoDecimal_FormatosNumericos(t *testing.T) {
	assert.True(t, registro.ComoDecimal("1234.56").Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, registro.ComoDecimal("1234,56").Equal(decimal.RequireFromString("1234.56")), "coma decimal rioplatense")
	assert.True(t, registro.ComoDecimal(int64(-3)).Equal(decimal.NewFromInt(-3)))
}

// TestComoBool cubre la tabla completa de coerción booleana de permisos.
func TestComoBool(t *testing.T) {
	falsos := []any{nil, false, 0, 0.0, "", "0", "false", "FALSE", " no ", "No"}
	for _, v := range falsos {
		assert.False(t, registro.ComoBool(v), "debe coercionar a false: %#v", v)
	}
	verdaderos := []any{true, 1, -2, 0.5, "1", "si", "yes", "S", "cualquier texto"}
	for _, v := range verdaderos {
		assert.True(t, registro.ComoBool(v), "debe coercionar a true: %#v", v)
	}
}
