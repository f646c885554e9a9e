package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
	"github.com/L34N07/PATnav-sub000/pkg/config"
)

// RecordSource implementa el servicio de consultas sobre PostgreSQL: ejecuta
// la sentencia configurada de cada dataset y devuelve las filas como mapas
// columna→valor sin tipar. Las columnas salen con el nombre que tenga la
// vista upstream; la tolerancia de casing/sinónimos la pone el dominio.
type RecordSource struct {
	pool      *pgxpool.Pool
	consultas config.ConsultasConfig
}

// NewRecordSource construye el servicio de consultas.
func NewRecordSource(pool *pgxpool.Pool, consultas config.ConsultasConfig) *RecordSource {
	return &RecordSource{pool: pool, consultas: consultas}
}

// consultar ejecuta una sentencia y materializa el snapshot completo.
func (s *RecordSource) consultar(ctx context.Context, sql string, args ...any) ([]registro.Registro, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("consulta: %w", err)
	}
	defer rows.Close()

	campos := rows.FieldDescriptions()
	var regs []registro.Registro
	for rows.Next() {
		valores, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		reg := make(registro.Registro, len(campos))
		for i, fd := range campos {
			reg[fd.Name] = valores[i]
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar filas: %w", err)
	}
	return regs, nil
}

// ComprobantesVencidos snapshot fresco de comprobantes con saldo.
func (s *RecordSource) ComprobantesVencidos(ctx context.Context) ([]registro.Registro, error) {
	return s.consultar(ctx, s.consultas.ComprobantesVencidos)
}

// ClientesIgnorados snapshot de la lista de clientes excluidos.
func (s *RecordSource) ClientesIgnorados(ctx context.Context) ([]registro.Registro, error) {
	return s.consultar(ctx, s.consultas.ClientesIgnorados)
}

// MovimientosPrestamo snapshot de remitos de préstamo de un cliente.
func (s *RecordSource) MovimientosPrestamo(ctx context.Context, codCliente int) ([]registro.Registro, error) {
	return s.consultar(ctx, s.consultas.MovimientosPrestamo, codCliente)
}

// UsuariosApp snapshot de la tabla de usuarios de la aplicación.
func (s *RecordSource) UsuariosApp(ctx context.Context) ([]registro.Registro, error) {
	return s.consultar(ctx, s.consultas.UsuariosApp)
}
