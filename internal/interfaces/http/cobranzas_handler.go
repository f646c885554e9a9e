package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/L34N07/PATnav-sub000/internal/application/dto"
	"github.com/L34N07/PATnav-sub000/internal/application/usecase"
)

// CobranzasHandler maneja las vistas de comprobantes vencidos.
type CobranzasHandler struct {
	uc *usecase.CobranzasUseCase
}

// NewCobranzasHandler construye el handler.
func NewCobranzasHandler(uc *usecase.CobranzasUseCase) *CobranzasHandler {
	return &CobranzasHandler{uc: uc}
}

func vencidosRequest(c *fiber.Ctx) dto.VencidosRequest {
	req := dto.VencidosRequest{
		Buscar: c.Query("buscar"),
		Campo:  c.Query("campo", "domicilio"),
	}
	if cat := strings.TrimSpace(c.Query("categoria")); cat != "" {
		req.Categorias = strings.Split(cat, ",")
	}
	req.Tam, _ = strconv.Atoi(c.Query("tam", "25"))
	req.Pagina, _ = strconv.Atoi(c.Query("pagina", "0"))
	return req
}

// Vencidos GET /api/cobranzas/vencidos?buscar=&campo=&categoria=&pagina=&tam=
func (h *CobranzasHandler) Vencidos(c *fiber.Ctx) error {
	out, err := h.uc.Vencidos(c.Context(), vencidosRequest(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Ignorados GET /api/cobranzas/ignorados — vista restringida, exige la
// capacidad verIgnorados (middleware en el router).
func (h *CobranzasHandler) Ignorados(c *fiber.Ctx) error {
	out, err := h.uc.Ignorados(c.Context(), vencidosRequest(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
