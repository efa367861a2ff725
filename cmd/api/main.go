package main

import (
	"context"
	"log"
	"time"

	"dispatch-board/internal/core/cache"
	"dispatch-board/internal/core/config"
	"dispatch-board/internal/core/docstore"
	"dispatch-board/internal/core/logger"
	"dispatch-board/internal/core/server"
	"dispatch-board/internal/features/dashboard/adapters"
	"dispatch-board/internal/features/dashboard/handler"
	"dispatch-board/internal/features/dashboard/ports"
	"dispatch-board/internal/features/dashboard/service"

	"go.uber.org/zap"
)

// @title Dispatch Board API
// @version 1.0
// @description Back-office dashboard snapshot aggregation service for a last-mile logistics operation.
// @contact.name API Support
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Select the document store and run a health check when it is remote.
	var store docstore.Store
	if cfg.Store.URL != "" {
		restAdapter := docstore.NewRESTAdapter(cfg.Store)
		if err := restAdapter.HealthCheck(); err != nil {
			l.Fatal("Document store health check failed", zap.Error(err))
		}
		l.Info("Document store connection verified", zap.String("url", cfg.Store.URL))
		store = restAdapter
	} else {
		l.Warn("STORE_URL not set, using the empty in-memory store")
		store = docstore.NewMemoryAdapter()
	}

	// Snapshot caching is optional; without Redis every request recomputes.
	var snapshotCache ports.SnapshotCache
	if cfg.Redis.URL != "" {
		redisAdapter, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Failed to create Redis adapter", zap.Error(err))
		}
		defer redisAdapter.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisAdapter.Ping(ctx); err != nil {
			cancel()
			l.Fatal("Redis ping failed", zap.Error(err))
		}
		cancel()
		l.Info("Redis connection verified")

		ttl := time.Duration(cfg.Dashboard.CacheTTLSeconds) * time.Second
		snapshotCache = adapters.NewRedisSnapshotCache(redisAdapter, ttl)
	} else {
		l.Warn("REDIS_URL not set, snapshot caching disabled")
	}

	snapshotService := service.NewSnapshotService(
		adapters.NewShipmentReader(store),
		adapters.NewUserReader(store, cfg.Dashboard.UsersScanLimit),
		adapters.NewFinanceReader(store),
		snapshotCache,
		service.Options{
			WindowDays:     cfg.Dashboard.WindowDays,
			MaxRows:        cfg.Dashboard.MaxRows,
			RecentLimit:    cfg.Dashboard.RecentLimit,
			FinanceMaxRows: cfg.Dashboard.FinanceMaxRows,
		},
	)
	dashboardHandler := handler.NewDashboardHandler(snapshotService)

	srv := server.New(cfg)

	srv.App.Get("/dashboard/snapshot", dashboardHandler.GetSnapshot)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
