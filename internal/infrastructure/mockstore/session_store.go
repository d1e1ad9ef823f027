package mockstore

import (
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/internal/domain/repository"
	"github.com/agisales/proposals-api/internal/infrastructure/kvstore"
)

// Claves de la sesión dentro del namespace del kvstore.
const (
	keyToken = "token"
	keyUser  = "user"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore persiste la sesión (token + user) en el kvstore.
type SessionStore struct {
	store kvstore.Store
}

// NewSessionStore construye el store de sesión.
func NewSessionStore(store kvstore.Store) *SessionStore {
	return &SessionStore{store: store}
}

// Save persiste token y usuario de un login exitoso.
func (s *SessionStore) Save(token string, user *entity.User) {
	s.store.Set(keyToken, token)
	s.store.Set(keyUser, user.Sanitized())
}

// Token devuelve el token persistido, si existe.
func (s *SessionStore) Token() (string, bool) {
	var token string
	found, err := s.store.Get(keyToken, &token)
	if err != nil || !found || token == "" {
		return "", false
	}
	return token, true
}

// User devuelve el usuario persistido, si existe.
func (s *SessionStore) User() (*entity.User, bool) {
	var user entity.User
	found, err := s.store.Get(keyUser, &user)
	if err != nil || !found || user.ID == "" {
		return nil, false
	}
	return &user, true
}

// SaveUser refresca el registro persistido del usuario (idempotente).
func (s *SessionStore) SaveUser(user *entity.User) {
	s.store.Set(keyUser, user.Sanitized())
}

// Clear borra token y usuario incondicionalmente.
func (s *SessionStore) Clear() {
	s.store.Remove(keyToken)
	s.store.Remove(keyUser)
}
