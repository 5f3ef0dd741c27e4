package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
	"bankfront/internal/infrastructure/memstore"
	"bankfront/internal/infrastructure/postgres"
	httphandlers "bankfront/internal/interfaces/http"
	"bankfront/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	CustomerHandler *httphandlers.CustomerHandler
	AccountHandler  *httphandlers.AccountHandler
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{}

	var (
		clientRepo  client.Repository
		accountRepo account.Repository
	)

	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := postgres.New(cfg.Database.ConnectionString())
		if err != nil {
			return nil, err
		}
		log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("connected to database")

		if err := postgres.Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
		deps.DB = db
		clientRepo = postgres.NewClientRepository(db)
		accountRepo = postgres.NewAccountRepository(db)
	default:
		store, err := memstore.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create memory store: %w", err)
		}
		log.Info().Msg("using in-memory store")
		clientRepo = memstore.NewClientRepository(store)
		accountRepo = memstore.NewAccountRepository(store)
	}

	// Initialize domain services
	clientService := client.NewService(clientRepo)
	accountService := account.NewService(accountRepo, clientService)

	deps.CustomerHandler = httphandlers.NewCustomerHandler(clientService)
	deps.AccountHandler = httphandlers.NewAccountHandler(accountService)

	return deps, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
