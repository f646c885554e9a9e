package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/L34N07/PATnav-sub000/internal/interfaces/http"
	pkgjwt "github.com/L34N07/PATnav-sub000/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsuario   = "lnavarro"
	testIssuer    = "patnav-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y
// RequiereCapacidad, más un handler dummy que devuelve 200 si pasa ambos.
func buildTestApp(capacidadRequerida string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequiereCapacidad(capacidadRequerida),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"usuario": apphttp.GetUsuario(c),
			})
		},
	)
	return app
}

// tokenConPermisos genera un JWT con las capacidades indicadas.
func tokenConPermisos(t *testing.T, permisos ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuario, permisos, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Con la capacidad requerida en el token → 200 y usuario en locals.
func TestRequiereCapacidad_ConPermiso(t *testing.T) {
	app := buildTestApp("verIgnorados")
	resp := doRequest(t, app, tokenConPermisos(t, "verCobranzas", "verIgnorados"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUsuario, body["usuario"])
}

// Token válido pero sin la capacidad → 403.
func TestRequiereCapacidad_SinPermiso(t *testing.T) {
	app := buildTestApp("verIgnorados")
	resp := doRequest(t, app, tokenConPermisos(t, "verCobranzas"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sin la capacidad el acceso debe denegarse")
}

// Sin header Authorization → 401.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp("verCobranzas")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secret → 401.
func TestAuthMiddleware_FirmaInvalida(t *testing.T) {
	app := buildTestApp("verCobranzas")
	tok, err := pkgjwt.Generate("otro-secret", testUsuario, []string{"verCobranzas"}, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Header con formato roto → 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp("verCobranzas")
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
