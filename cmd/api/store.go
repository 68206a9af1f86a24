package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/stock-ledger/pkg/config"
)

// backend repositorios y TxRunner del driver elegido en STORE_DRIVER.
type backend struct {
	products  repository.ProductRepository
	users     repository.UserRepository
	movements repository.MovementRepository
	reports   repository.ReportRepository
	txRunner  inventory.TxRunner
	close     func()
}

func openBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store := postgres.NewStore(pool)
		if cfg.DB.AutoMigrate {
			if err := store.Migrate(ctx); err != nil {
				store.Close()
				return nil, err
			}
		}
		log.Info().Str("driver", config.DriverPostgres).Bool("auto_migrate", cfg.DB.AutoMigrate).Msg("almacenamiento listo")
		return &backend{
			products:  store.Products(),
			users:     store.Users(),
			movements: store.Movements(),
			reports:   store.Reports(),
			txRunner:  store.TxRunner(),
			close:     store.Close,
		}, nil

	default:
		db, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		store := sqlite.NewStore(db)
		log.Info().Str("driver", config.DriverSQLite).Str("path", cfg.SQLite.Path).Msg("almacenamiento listo")
		return &backend{
			products:  store.Products(),
			users:     store.Users(),
			movements: store.Movements(),
			reports:   store.Reports(),
			txRunner:  store.TxRunner(),
			close: func() {
				if err := store.Close(); err != nil {
					log.Error().Err(err).Msg("cerrar sqlite")
				}
			},
		}, nil
	}
}
