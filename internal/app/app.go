// Package app assembles storage and services from configuration. Every entry
// point builds the same graph through New.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
	"github.com/MrJamesThe3rd/careercoin/internal/config"
	"github.com/MrJamesThe3rd/careercoin/internal/database"
	"github.com/MrJamesThe3rd/careercoin/internal/export"
	"github.com/MrJamesThe3rd/careercoin/internal/importer"
	"github.com/MrJamesThe3rd/careercoin/internal/kv"
	kvStore "github.com/MrJamesThe3rd/careercoin/internal/kv/store"
	ledgerStore "github.com/MrJamesThe3rd/careercoin/internal/ledger/store"
	"github.com/MrJamesThe3rd/careercoin/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/careercoin/internal/matching/store"
	"github.com/MrJamesThe3rd/careercoin/internal/progress"
	progressStore "github.com/MrJamesThe3rd/careercoin/internal/progress/store"
	"github.com/MrJamesThe3rd/careercoin/internal/reward"
	"github.com/MrJamesThe3rd/careercoin/internal/settlement"
	"github.com/MrJamesThe3rd/careercoin/internal/skills"
	skillsStore "github.com/MrJamesThe3rd/careercoin/internal/skills/store"
)

// LedgerPrefix namespaces the ledger keys, giving careerCoinBalance and friends.
const LedgerPrefix = "careerCoin"

type App struct {
	Coins    *coin.Service
	Tracker  *progress.Tracker
	Matching *matching.Service
	Skills   *skills.Service
	Export   *export.Service
	Importer *importer.Service

	db *sqlx.DB
}

// New opens the configured storage and hydrates every service from it.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	storage, db, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	a, err := Build(ctx, storage, cfg.Rewards.CatalogFile)
	if err != nil {
		if db != nil {
			db.Close()
		}

		return nil, err
	}

	a.db = db

	return a, nil
}

// Build wires the services over an already opened storage.
func Build(ctx context.Context, storage kv.Storage, catalogFile string) (*App, error) {
	catalog := reward.DefaultCatalog()

	if catalogFile != "" {
		c, err := reward.LoadCatalogFile(catalogFile)
		if err != nil {
			return nil, fmt.Errorf("loading reward catalog: %w", err)
		}

		catalog = c
	}

	var (
		coins    = coin.NewService(ledgerStore.New(kv.WithPrefix(storage, LedgerPrefix)), catalog, settlement.NewSimulated(nil))
		tracker  = progress.NewTracker(progressStore.New(storage), coins, newRand())
		matchSvc = matching.NewService(matchingStore.New(storage))
		skillSvc = skills.NewService(skillsStore.New(storage), coins, matchSvc, tracker)
		exporter = export.NewService(coins)
		imports  = importer.NewService(coins)
	)

	if err := coins.Load(ctx); err != nil {
		return nil, err
	}

	if err := tracker.Load(ctx); err != nil {
		return nil, err
	}

	if err := skillSvc.Load(ctx); err != nil {
		return nil, err
	}

	slog.Debug("services ready", "balance", coins.Balance(), "rewards", len(catalog.Items()))

	return &App{
		Coins:    coins,
		Tracker:  tracker,
		Matching: matchSvc,
		Skills:   skillSvc,
		Export:   exporter,
		Importer: imports,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	return a.db.Close()
}

func openStorage(cfg *config.Config) (kv.Storage, *sqlx.DB, error) {
	var driver string

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return kv.NewMemory(), nil, nil
	case config.StorageSQLite:
		driver = database.DriverSQLite
	case config.StoragePostgres:
		driver = database.DriverPostgres
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	db, err := database.New(driver, cfg.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Driver, err)
	}

	return kvStore.New(db), db, nil
}
