package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/L34N07/PATnav-sub000/internal/application/auth"
	"github.com/L34N07/PATnav-sub000/internal/application/dto"
	"github.com/L34N07/PATnav-sub000/internal/domain"
)

// AuthHandler maneja login y consulta de permisos.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario y clave son requeridos"})
		case errors.Is(err, domain.ErrUsuarioNoExiste), errors.Is(err, domain.ErrCredenciales):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "CREDENTIALS", Message: "usuario o clave incorrectos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Permisos GET /api/usuarios/permisos
func (h *AuthHandler) Permisos(c *fiber.Ctx) error {
	usuario := GetUsuario(c)
	if usuario == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.Permisos(c.Context(), usuario)
	if err != nil {
		if errors.Is(err, domain.ErrUsuarioNoExiste) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
