package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("propuesta no encontrada")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrNotAuthenticated   = errors.New("no autenticado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)
