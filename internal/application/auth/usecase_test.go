package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/L34N07/PATnav-sub000/internal/application/auth"
	"github.com/L34N07/PATnav-sub000/internal/application/dto"
	"github.com/L34N07/PATnav-sub000/internal/domain"
	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
	pkgjwt "github.com/L34N07/PATnav-sub000/pkg/jwt"
)

type fakeUsuarios struct {
	usuarios []registro.Registro
}

func (f *fakeUsuarios) ComprobantesVencidos(ctx context.Context) ([]registro.Registro, error) {
	return nil, nil
}
func (f *fakeUsuarios) ClientesIgnorados(ctx context.Context) ([]registro.Registro, error) {
	return nil, nil
}
func (f *fakeUsuarios) MovimientosPrestamo(ctx context.Context, codCliente int) ([]registro.Registro, error) {
	return nil, nil
}
func (f *fakeUsuarios) UsuariosApp(ctx context.Context) ([]registro.Registro, error) {
	return f.usuarios, nil
}

func cfgTest() auth.JWTConfig {
	return auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "patnav-test"}
}

func hashDe(t *testing.T, clave string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// TestLogin_HashBcrypt: credenciales correctas contra hash → token con las
// capacidades permitidas del registro crudo.
func TestLogin_HashBcrypt(t *testing.T) {
	src := &fakeUsuarios{usuarios: []registro.Registro{
		{"USUARIO": "lnavarro", "Nombre": "Leandro Navarro", "clave": hashDe(t, "secreta"),
			"verCobranzas": 1, "ver_prestamos": "si"},
	}}
	uc := auth.NewAuthUseCase(src, cfgTest())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: " LNAVARRO ", Clave: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "lnavarro", out.Usuario)
	assert.Equal(t, "Leandro Navarro", out.Nombre)
	assert.True(t, out.Permisos["verCobranzas"])
	assert.True(t, out.Permisos["verPrestamos"], "resuelto vía alias ver_prestamos")
	assert.False(t, out.Permisos["verIgnorados"])

	usuario, permisos, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "lnavarro", usuario)
	assert.Equal(t, []string{"verCobranzas", "verPrestamos"}, permisos,
		"las capacidades del token preservan el orden de declaración")
}

// TestLogin_ClaveLegadaEnTextoPlano: filas viejas guardan la clave sin hash.
func TestLogin_ClaveLegadaEnTextoPlano(t *testing.T) {
	src := &fakeUsuarios{usuarios: []registro.Registro{
		{"usuario": "admin", "clave": "1234", "verIgnorados": true},
	}}
	uc := auth.NewAuthUseCase(src, cfgTest())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "admin", Clave: "1234"})
	require.NoError(t, err)
	assert.True(t, out.Permisos["verIgnorados"])
}

func TestLogin_ClaveIncorrecta(t *testing.T) {
	src := &fakeUsuarios{usuarios: []registro.Registro{
		{"usuario": "admin", "clave": hashDe(t, "1234")},
	}}
	uc := auth.NewAuthUseCase(src, cfgTest())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "admin", Clave: "malo"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUsuarios{}, cfgTest())
	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Clave: "x"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoExiste)
}

func TestLogin_EntradaVacia(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUsuarios{}, cfgTest())
	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "", Clave: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestPermisos_MatrizCompleta: la respuesta trae todas las capacidades
// declaradas, ausentes en false.
func TestPermisos_MatrizCompleta(t *testing.T) {
	src := &fakeUsuarios{usuarios: []registro.Registro{
		{"usuario": "vendedor", "clave": "x", "vercobranzas": "1"},
	}}
	uc := auth.NewAuthUseCase(src, cfgTest())

	out, err := uc.Permisos(context.Background(), "vendedor")
	require.NoError(t, err)
	assert.Len(t, out.Permisos, 6, "toda capacidad declarada está presente")
	assert.True(t, out.Permisos["verCobranzas"])
	assert.False(t, out.Permisos["imprimir"])
}
