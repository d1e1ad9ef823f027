package mockstore

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/domain/repository"
)

var _ repository.UserDirectory = (*UserDirectory)(nil)

// mockCredential usuario fijo del modo mock; el password se hashea en construcción
// para que el use case de auth compare siempre contra bcrypt, igual que en el
// backend real.
type mockCredential struct {
	user     entity.User
	password string
}

func mockUsers() []mockCredential {
	return []mockCredential{
		{
			user:     entity.User{ID: "1", Name: "João Vendedor", Email: "vendedor@agisales.com", Role: entity.RoleSeller},
			password: "123456",
		},
		{
			user:     entity.User{ID: "2", Name: "Maria Gerente", Email: "gerente@agisales.com", Role: entity.RoleManager},
			password: "123456",
		},
	}
}

// UserDirectory directorio fijo de usuarios en memoria (modo mock).
type UserDirectory struct {
	users []*entity.User
}

// NewUserDirectory construye el directorio y hashea los passwords fijos.
func NewUserDirectory() (*UserDirectory, error) {
	var users []*entity.User
	for _, c := range mockUsers() {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashear password de %s: %w", c.user.Email, err)
		}
		u := c.user
		u.PasswordHash = string(hash)
		users = append(users, &u)
	}
	return &UserDirectory{users: users}, nil
}

// FindByEmail busca por email exacto; (nil, nil) si no existe.
func (d *UserDirectory) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range d.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
