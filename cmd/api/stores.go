package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/mercadolivro-api/internal/application/billing"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/memory"
	"github.com/jhoicas/mercadolivro-api/internal/infrastructure/postgres"
	"github.com/jhoicas/mercadolivro-api/pkg/config"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

// stores repositorios y runner de transacciones del driver elegido.
type stores struct {
	customers repository.CustomerRepository
	books     repository.BookRepository
	purchases repository.PurchaseRepository
	txRunner  billing.PurchaseTxRunner
	close     func()
}

// openStores abre PostgreSQL (aplicando migraciones si DB_MIGRATE) o el almacenamiento en memoria.
func openStores(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*stores, error) {
	if cfg.Driver == config.DriverMemory {
		store := memory.NewStore()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &stores{
			customers: store.Customers(),
			books:     store.Books(),
			purchases: store.Purchases(),
			txRunner:  memory.NewTxRunner(store),
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if cfg.Migrate {
		if err := postgres.Migrate(cfg.ConnectionString(), log.Component("migrate")); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &stores{
		customers: postgres.NewCustomerRepository(pool),
		books:     postgres.NewBookRepository(pool),
		purchases: postgres.NewPurchaseRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}
