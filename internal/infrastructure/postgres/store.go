package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Store agrupa el pool y expone los repositorios y el TxRunner que lo comparten.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el store sobre un pool ya abierto (ver NewPool).
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate aplica el esquema (idempotente: CREATE ... IF NOT EXISTS).
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}

// Close libera el pool.
func (s *Store) Close() { s.pool.Close() }

func (s *Store) Products() *ProductRepo   { return NewProductRepository(s.pool) }
func (s *Store) Users() *UserRepo         { return NewUserRepository(s.pool) }
func (s *Store) Movements() *MovementRepo { return NewMovementRepository(s.pool) }
func (s *Store) Reports() *ReportRepo     { return NewReportRepository(s.pool) }
func (s *Store) TxRunner() *TxRunner      { return NewTxRunner(s.pool) }
