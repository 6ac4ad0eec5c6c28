package main

import (
	"context"
	"fmt"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"hotel-desk/config"
	"hotel-desk/services"
	"hotel-desk/storage"
)

// app is everything a command needs: the loaded store and its backend.
type app struct {
	cfg      *config.Config
	repo     storage.Repository
	store    *services.HotelService
	registry *prometheus.Registry
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(config.ResolvePath(flags.configPath))
	if err != nil {
		return nil, err
	}
	if flags.dataDir != "" {
		cfg.Storage.DataDir = flags.dataDir
	}
	if flags.storage != "" {
		cfg.Storage.Backend = flags.storage
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openApp opens the configured backend and loads it into a new store.
func openApp(ctx context.Context, flags *globalFlags) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	repo, err := config.OpenRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := services.NewHotelService(repo,
		services.WithUniqueRoomNumbers(cfg.UniqueRooms),
		services.WithMetrics(services.NewMetrics(registry)),
	)
	if err := store.Load(ctx); err != nil {
		_ = repo.Close()
		return nil, err
	}

	return &app{cfg: cfg, repo: repo, store: store, registry: registry}, nil
}

func (a *app) Close() {
	if err := a.repo.Close(); err != nil {
		log.Printf("⚠️ closing storage: %v", err)
	}
}
