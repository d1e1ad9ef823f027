package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agisales/proposals-api/internal/domain/entity"
	apphttp "github.com/agisales/proposals-api/internal/interfaces/http"
	"github.com/agisales/proposals-api/pkg/jwt"
)

const testJWTSecret = "secreto-de-test"

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta una app mínima con las rutas protegidas por rol, igual que
// el router real: /manager solo manager, /seller solo seller, /any cualquier
// actor autenticado.
func buildTestApp() *fiber.App {
	app := fiber.New()

	protected := app.Group("/", apphttp.AuthMiddleware(testJWTSecret))
	protected.Get("/any", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "role": apphttp.GetRole(c)})
	})
	protected.Post("/manager", apphttp.RequireRole(entity.RoleManager), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	protected.Post("/seller", apphttp.RequireRole(entity.RoleSeller), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	protected.Post("/both", apphttp.RequireRole(entity.RoleSeller, entity.RoleManager), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, "1", "Actor de Test", role, "test", 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderDa401(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, fiber.MethodGet, "/any", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalidoDa401(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, fiber.MethodGet, "/any", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrectaDa401(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate("otro-secreto", "1", "Actor", entity.RoleManager, "test", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, fiber.MethodGet, "/any", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SinEsquemaBearerDa401(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(fiber.MethodGet, "/any", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleSeller))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoPasaYExponeClaims(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, fiber.MethodGet, "/any", tokenForRole(t, entity.RoleSeller))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_ManagerAccedeARutaDeManager(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, fiber.MethodPost, "/manager", tokenForRole(t, entity.RoleManager))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_SellerBloqueadoEnRutaDeManager(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, fiber.MethodPost, "/manager", tokenForRole(t, entity.RoleSeller))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_ManagerBloqueadoEnRutaDeSeller(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, fiber.MethodPost, "/seller", tokenForRole(t, entity.RoleManager))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_VariosRolesPermitidos(t *testing.T) {
	app := buildTestApp()

	for _, role := range []string{entity.RoleSeller, entity.RoleManager} {
		resp := doRequest(t, app, fiber.MethodPost, "/both", tokenForRole(t, role))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "rol %s debe pasar", role)
	}
}
