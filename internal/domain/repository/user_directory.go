package repository

import (
	"context"

	"github.com/agisales/proposals-api/internal/domain/entity"
)

// UserDirectory define el puerto de lectura de usuarios para autenticación.
// FindByEmail devuelve (nil, nil) si el email no está registrado.
//
// Implementaciones: lista fija en memoria (modo mock) y tabla users (postgres).
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
