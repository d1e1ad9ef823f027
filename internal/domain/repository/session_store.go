package repository

import "github.com/agisales/proposals-api/internal/domain/entity"

// SessionStore define el puerto de persistencia de la sesión (token + user).
//
// Invariante: presencia de token implica un login previo exitoso; ausencia implica
// sesión cerrada. Las escrituras son fail-soft (ver kvstore), por lo que Clear
// siempre "funciona" desde la perspectiva del caller.
type SessionStore interface {
	Save(token string, user *entity.User)
	Token() (string, bool)
	User() (*entity.User, bool)
	SaveUser(user *entity.User)
	Clear()
}
