package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agisales/proposals-api/internal/application/dto"
	"github.com/agisales/proposals-api/internal/domain/entity"
	"github.com/agisales/proposals-api/pkg/jwt"
)

// Locals keys para la identidad del actor en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, Name y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, name, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, name)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que autoriza solo a los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "role no encontrado en el token"})
		}
		for _, r := range allowed {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol '" + role + "' no puede realizar esta acción"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetUserName devuelve el nombre del actor del contexto.
func GetUserName(c *fiber.Ctx) string {
	return localString(c, LocalUserName)
}

// GetRole devuelve el rol del actor del contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// Actor reconstruye la identidad del actor desde los claims del token; nil si
// no hay sesión en el contexto. Los use cases la reciben como parámetro
// explícito para el stamping de identidad.
func Actor(c *fiber.Ctx) *entity.User {
	id := GetUserID(c)
	if id == "" {
		return nil
	}
	return &entity.User{ID: id, Name: GetUserName(c), Role: GetRole(c)}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
