package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agisales/proposals-api/internal/application/auth"
	"github.com/agisales/proposals-api/internal/application/dto"
	"github.com/agisales/proposals-api/internal/domain"
)

// AuthHandler maneja login, logout y consulta del usuario actual.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuario autenticado actual
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.UserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.GetMe(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_AUTHENTICATED", Message: "no autenticado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(user)
}
