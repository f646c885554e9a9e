package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/L34N07/PATnav-sub000/internal/application/dto"
	"github.com/L34N07/PATnav-sub000/internal/application/usecase"
)

// PrestamosHandler maneja el ledger de préstamos por cliente.
type PrestamosHandler struct {
	uc *usecase.PrestamosUseCase
}

// NewPrestamosHandler construye el handler.
func NewPrestamosHandler(uc *usecase.PrestamosUseCase) *PrestamosHandler {
	return &PrestamosHandler{uc: uc}
}

// Movimientos GET /api/prestamos/:cliente/movimientos
func (h *PrestamosHandler) Movimientos(c *fiber.Ctx) error {
	codCliente, err := strconv.Atoi(c.Params("cliente"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código de cliente inválido"})
	}
	out, err := h.uc.Movimientos(c.Context(), codCliente)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
