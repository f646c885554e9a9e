package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/L34N07/PATnav-sub000/internal/application/dto"
	"github.com/L34N07/PATnav-sub000/pkg/jwt"
)

// Locals keys para el usuario autenticado y sus capacidades.
const (
	LocalUsuario  = "usuario"
	LocalPermisos = "permisos"
)

// AuthMiddleware valida el Bearer Token JWT y deja usuario y capacidades en
// c.Locals para que las rutas y el middleware de capacidad decidan.
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
		usuario, permisos, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsuario, usuario)
		c.Locals(LocalPermisos, permisos)
		return c.Next()
	}
}

// RequiereCapacidad corta con 403 si el token no trae la capacidad pedida.
func RequiereCapacidad(clave string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, p := range GetPermisos(c) {
			if p == clave {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "capacidad requerida: " + clave})
	}
}

// GetUsuario devuelve el usuario del contexto (después del middleware).
func GetUsuario(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPermisos devuelve las capacidades del token (después del middleware).
func GetPermisos(c *fiber.Ctx) []string {
	v := c.Locals(LocalPermisos)
	if v == nil {
		return nil
	}
	p, _ := v.([]string)
	return p
}
