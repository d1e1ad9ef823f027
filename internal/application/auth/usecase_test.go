package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agisales/proposals-api/internal/application/auth"
	"github.com/agisales/proposals-api/internal/application/dto"
	"github.com/agisales/proposals-api/internal/domain"
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/domain/repository"
	"github.com/agisales/proposals-api/internal/infrastructure/kvstore"
	"github.com/agisales/proposals-api/internal/infrastructure/mockstore"
	"github.com/agisales/proposals-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

func buildAuthUC(t *testing.T) (*auth.AuthUseCase, repository.SessionStore) {
	t.Helper()
	store := kvstore.NewFileStore(t.TempDir(), "app", logger.Nop())
	sessions := mockstore.NewSessionStore(store)
	users, err := mockstore.NewUserDirectory()
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(users, sessions, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     "proposals-api-test",
	})
	return uc, sessions
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Credenciales válidas: el usuario devuelto coincide con el registro y la
// sesión queda persistida de forma que GetMe lo devuelve después.
func TestLogin_CredencialesValidas(t *testing.T) {
	cases := []struct {
		email string
		name  string
		role  string
	}{
		{"vendedor@agisales.com", "João Vendedor", entity.RoleSeller},
		{"gerente@agisales.com", "Maria Gerente", entity.RoleManager},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			uc, _ := buildAuthUC(t)
			ctx := context.Background()

			out, err := uc.Login(ctx, dto.LoginRequest{Email: tc.email, Password: "123456"})
			require.NoError(t, err)
			assert.Equal(t, tc.email, out.User.Email)
			assert.Equal(t, tc.role, out.User.Role)
			assert.NotEmpty(t, out.Token, "el login debe emitir un token")

			assert.True(t, uc.IsAuthenticated(ctx))

			me, err := uc.GetMe(ctx)
			require.NoError(t, err)
			assert.Equal(t, out.User, *me, "GetMe debe devolver el mismo usuario logueado")
		})
	}
}

// Credenciales inválidas: ErrInvalidCredentials y nada de estado parcial.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"password incorrecto", "vendedor@agisales.com", "otra"},
		{"email desconocido", "nadie@agisales.com", "123456"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, sessions := buildAuthUC(t)
			ctx := context.Background()

			_, err := uc.Login(ctx, dto.LoginRequest{Email: tc.email, Password: tc.password})
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

			_, hasToken := sessions.Token()
			assert.False(t, hasToken, "un login fallido no debe persistir sesión")
			assert.False(t, uc.IsAuthenticated(ctx))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout / GetMe
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaSesion(t *testing.T) {
	uc, _ := buildAuthUC(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "gerente@agisales.com", Password: "123456"})
	require.NoError(t, err)

	uc.Logout(ctx)

	assert.False(t, uc.IsAuthenticated(ctx))
	_, err = uc.GetMe(ctx)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated, "tras logout GetMe debe fallar siempre")
}

func TestGetMe_SinSesion(t *testing.T) {
	uc, _ := buildAuthUC(t)

	_, err := uc.GetMe(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

// GetMe es idempotente: llamadas repetidas devuelven el mismo usuario.
func TestGetMe_Idempotente(t *testing.T) {
	uc, _ := buildAuthUC(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "vendedor@agisales.com", Password: "123456"})
	require.NoError(t, err)

	first, err := uc.GetMe(ctx)
	require.NoError(t, err)
	second, err := uc.GetMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
