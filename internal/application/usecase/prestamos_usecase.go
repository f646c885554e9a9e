package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/L34N07/PATnav-sub000/internal/application/dto"
	"github.com/L34N07/PATnav-sub000/internal/application/ports"
	"github.com/L34N07/PATnav-sub000/internal/domain/prestamos"
	"github.com/L34N07/PATnav-sub000/pkg/logger"
)

// PrestamosUseCase arma el ledger de préstamos/devoluciones de un cliente:
// snapshot crudo → movimientos tipados → colapso por remito → DTO ordenado.
type PrestamosUseCase struct {
	src ports.RecordSource
	log *logger.Logger
}

// NewPrestamosUseCase construye el caso de uso.
func NewPrestamosUseCase(src ports.RecordSource, log *logger.Logger) *PrestamosUseCase {
	return &PrestamosUseCase{src: src, log: log}
}

// Movimientos devuelve el ledger colapsado del cliente.
func (uc *PrestamosUseCase) Movimientos(ctx context.Context, codCliente int) (*dto.MovimientosResponse, error) {
	regs, err := uc.src.MovimientosPrestamo(ctx, codCliente)
	if err != nil {
		return nil, fmt.Errorf("prestamos: movimientos del cliente %d: %w", codCliente, err)
	}

	loteID := uuid.New().String()
	movs := prestamos.AgruparMovimientos(prestamos.NormalizarMovimientos(regs, codCliente))

	uc.log.Debug().
		Str("lote", loteID).
		Int("cod_cliente", codCliente).
		Int("crudos", len(regs)).
		Int("colapsados", len(movs)).
		Msg("ledger de préstamos armado")

	out := make([]dto.MovimientoDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.DesdeMovimiento(m))
	}
	return &dto.MovimientosResponse{Lote: loteID, CodCliente: codCliente, Movimientos: out}, nil
}
