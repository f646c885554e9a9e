package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/L34N07/PATnav-sub000/internal/application/auth"
	"github.com/L34N07/PATnav-sub000/internal/application/usecase"
	"github.com/L34N07/PATnav-sub000/internal/domain/permisos"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CobranzasUC *usecase.CobranzasUseCase
	PrestamosUC *usecase.PrestamosUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/usuarios/permisos", authHandler.Permisos)

	cobranzasHandler := NewCobranzasHandler(deps.CobranzasUC)
	cob := protected.Group("/cobranzas", RequiereCapacidad(permisos.CapVerCobranzas))
	cob.Get("/vencidos", cobranzasHandler.Vencidos)
	// La vista de ignorados es solo para quien tiene la capacidad extra.
	cob.Get("/ignorados", RequiereCapacidad(permisos.CapVerIgnorados), cobranzasHandler.Ignorados)

	prestamosHandler := NewPrestamosHandler(deps.PrestamosUC)
	pres := protected.Group("/prestamos", RequiereCapacidad(permisos.CapVerPrestamos))
	pres.Get("/:cliente/movimientos", prestamosHandler.Movimientos)
}
