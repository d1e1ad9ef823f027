// Package auth contiene los casos de uso de autenticación: login contra el
// directorio de usuarios, sesión persistida (token + user) y consulta del
// usuario actual.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/agisales/proposals-api/internal/application/dto"
	"github.com/agisales/proposals-api/internal/domain"
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/domain/repository"
	"github.com/agisales/proposals-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	users    repository.UserDirectory
	sessions repository.SessionStore
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserDirectory, sessions repository.SessionStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el directorio, genera un token que embebe
// el rol y el instante de emisión, persiste la sesión y retorna token + usuario.
// Sin match devuelve domain.ErrInvalidCredentials sin escribir estado parcial.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.sessions.Save(token, user)
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout borra token y usuario persistidos incondicionalmente. El kvstore es
// fail-soft, así que desde la perspectiva del caller siempre tiene éxito.
func (uc *AuthUseCase) Logout(_ context.Context) {
	uc.sessions.Clear()
}

// GetMe devuelve el usuario persistido si hay sesión y refresca su registro
// (idempotente). Sin token o sin usuario devuelve domain.ErrNotAuthenticated.
func (uc *AuthUseCase) GetMe(_ context.Context) (*dto.UserResponse, error) {
	if _, ok := uc.sessions.Token(); !ok {
		return nil, domain.ErrNotAuthenticated
	}
	user, ok := uc.sessions.User()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	uc.sessions.SaveUser(user)
	return toUserResponse(user), nil
}

// IsAuthenticated predicado puro: true si hay token persistido.
func (uc *AuthUseCase) IsAuthenticated(_ context.Context) bool {
	_, ok := uc.sessions.Token()
	return ok
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
