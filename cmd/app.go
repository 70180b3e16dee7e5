package cmd

import (
	"context"
	"fmt"

	"tataru/core/config"
	"tataru/core/database"
	"tataru/core/logger"
	"tataru/core/remote"
	"tataru/core/storage"
	"tataru/core/store"
	"tataru/feature/integrity"
	"tataru/feature/lookup"
	"tataru/feature/recipe"

	"go.uber.org/zap"
)

// app holds the services shared by the server and the CLI commands.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	store     *store.Store
	lookup    *lookup.Service
	recipe    *recipe.Service
	integrity *integrity.Service
}

// newApp loads the configuration and wires the store, the remote source and the services.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}
	logg = logg.With(zap.String("backend", backend.Name()))

	st, err := store.Open(ctx, backend, logg)
	if err != nil {
		return nil, err
	}
	logg.Info("Item cache loaded", zap.Int("items", st.Len()))

	source, err := remote.NewNotFoundCache(
		remote.NewClient(cfg.Remote, nil, logg),
		cfg.Remote.NotFoundCacheSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote source: %w", err)
	}

	lk := lookup.NewService(st, source, cfg.Lookup, logg)
	return &app{
		cfg:       cfg,
		logger:    logg,
		store:     st,
		lookup:    lk,
		recipe:    recipe.NewService(lk, cfg.Lookup, logg),
		integrity: integrity.NewService(st, lk, logg),
	}, nil
}

// openBackend builds the persistence backend selected by store.backend.
func openBackend(cfg *config.Config) (store.Backend, error) {
	if !cfg.Store.IsValidBackend() {
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	switch cfg.Store.Backend {
	case store.BackendObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return store.NewObjectBackend(client, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Store.ObjectKey), nil
	case store.BackendMemory:
		return store.NewMemoryBackend(), nil
	default:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		return store.NewDatabaseBackend(db)
	}
}

// Close flushes the store and syncs the logger.
func (a *app) Close(ctx context.Context) {
	if err := a.store.Close(ctx); err != nil {
		a.logger.Error("Failed to close item store", zap.Error(err))
	}
	_ = a.logger.Sync()
}
