package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/L34N07/PATnav-sub000/internal/application/dto"
	"github.com/L34N07/PATnav-sub000/internal/application/ports"
	"github.com/L34N07/PATnav-sub000/internal/domain/cobranzas"
	"github.com/L34N07/PATnav-sub000/internal/domain/listado"
	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
	"github.com/L34N07/PATnav-sub000/pkg/logger"
)

// CobranzasUseCase orquesta la vista de comprobantes vencidos: trae el
// snapshot crudo del servicio de consultas, lo normaliza, separa los clientes
// ignorados, agrupa, filtra y pagina. Cada consulta trabaja sobre un snapshot
// nuevo e inmutable; nada queda cacheado entre llamadas.
type CobranzasUseCase struct {
	src ports.RecordSource
	log *logger.Logger
}

// NewCobranzasUseCase construye el caso de uso.
func NewCobranzasUseCase(src ports.RecordSource, log *logger.Logger) *CobranzasUseCase {
	return &CobranzasUseCase{src: src, log: log}
}

// Vencidos arma la vista principal (clientes ignorados excluidos).
func (uc *CobranzasUseCase) Vencidos(ctx context.Context, req dto.VencidosRequest) (*dto.VencidosResponse, error) {
	return uc.armarVista(ctx, req, false)
}

// Ignorados arma la vista restringida: solo los clientes del conjunto de
// ignorados. La autorización (capacidad verIgnorados) la decide la capa HTTP.
func (uc *CobranzasUseCase) Ignorados(ctx context.Context, req dto.VencidosRequest) (*dto.VencidosResponse, error) {
	return uc.armarVista(ctx, req, true)
}

func (uc *CobranzasUseCase) armarVista(ctx context.Context, req dto.VencidosRequest, soloIgnorados bool) (*dto.VencidosResponse, error) {
	// Comprobantes e ignorados son consultas independientes: en paralelo.
	type lote struct {
		regs []registro.Registro
		err  error
	}
	compCh := make(chan lote, 1)
	ignCh := make(chan lote, 1)
	go func() {
		regs, err := uc.src.ComprobantesVencidos(ctx)
		compCh <- lote{regs, err}
	}()
	go func() {
		regs, err := uc.src.ClientesIgnorados(ctx)
		ignCh <- lote{regs, err}
	}()

	comp := <-compCh
	ign := <-ignCh
	if comp.err != nil {
		return nil, fmt.Errorf("cobranzas: comprobantes vencidos: %w", comp.err)
	}
	if ign.err != nil {
		return nil, fmt.Errorf("cobranzas: clientes ignorados: %w", ign.err)
	}

	loteID := uuid.New().String()
	uc.log.Debug().
		Str("lote", loteID).
		Int("filas", len(comp.regs)).
		Bool("solo_ignorados", soloIgnorados).
		Msg("snapshot de vencidos recibido")

	// El filtro de texto opera siempre sobre el snapshot completo, nunca
	// sobre un subconjunto ya filtrado.
	crudas := comp.regs
	if req.Buscar != "" && req.Campo != "" {
		crudas = listado.FiltrarPorTexto(crudas, req.Buscar, req.Campo)
	}

	lineas := cobranzas.NormalizarComprobantes(crudas)
	ignorados := cobranzas.DerivarIgnorados(ign.regs)
	visibles, ocultas := cobranzas.PartirPorIgnorados(lineas, ignorados)

	seleccion := visibles
	if soloIgnorados {
		seleccion = ocultas
	}

	resumenes := cobranzas.ArmarResumenes(seleccion)
	resumenes = listado.FiltrarPorCategoria(resumenes, req.Categorias)

	pagina := listado.Paginar(resumenes, req.Tam, req.Pagina)
	out := make([]dto.ResumenClienteDTO, 0, len(pagina.Items))
	for _, r := range pagina.Items {
		out = append(out, dto.DesdeResumen(r))
	}
	return &dto.VencidosResponse{
		Lote:      loteID,
		Resumenes: out,
		PaginaResponse: dto.PaginaResponse{
			Pagina:  pagina.Indice,
			Paginas: pagina.Paginas,
			Total:   len(resumenes),
		},
	}, nil
}
