package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"qa-board-sync/config"
	"qa-board-sync/internal/board"
	boardGateway "qa-board-sync/internal/board/gateway"
	boardUsecase "qa-board-sync/internal/board/usecase"
	"qa-board-sync/internal/httpserver"
	mappingSqlite "qa-board-sync/internal/mapping/repository/sqlite"
	mappingUsecase "qa-board-sync/internal/mapping/usecase"
	"qa-board-sync/internal/notification"
	notificationSqlite "qa-board-sync/internal/notification/repository/sqlite"
	notificationUsecase "qa-board-sync/internal/notification/usecase"
	projectionSqlite "qa-board-sync/internal/projection/repository/sqlite"
	projectionUsecase "qa-board-sync/internal/projection/usecase"
	"qa-board-sync/internal/webhook"
	"qa-board-sync/pkg/database"
	"qa-board-sync/pkg/log"
	"qa-board-sync/pkg/tracker"
)

// @title       QA Board Sync API
// @description Kanban-style QA board synced to an external issue tracker via labels and webhooks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting QA Board Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Tracker URL: %s", cfg.Tracker.BaseURL)

	// 3. Database
	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	for _, migrate := range []func(*gorm.DB) error{
		mappingSqlite.Migrate,
		projectionSqlite.Migrate,
		notificationSqlite.Migrate,
	} {
		if err := migrate(db); err != nil {
			logger.Error(ctx, "Failed to migrate database: ", err)
			return
		}
	}

	// 4. Tracker client
	trackerClient := tracker.NewClient(cfg.Tracker.BaseURL, cfg.Tracker.AccessToken)

	// 5. Notification domain (hub first: board and projection push through it)
	hub := notification.NewHub(logger)
	notificationRepo := notificationSqlite.New(db, logger)
	notificationUC := notificationUsecase.New(notificationRepo, hub, logger)

	// 6. Mapping domain + listing cache
	listingCache := board.NewListingCache(cfg.Board.CacheSize, cfg.Board.CacheTTL)
	mappingRepo := mappingSqlite.New(db, logger)
	mappingUC := mappingUsecase.New(mappingRepo, listingCache, logger)

	// 7. Board domain
	gateway := boardGateway.New(trackerClient, cfg.Tracker.Timeout, logger)
	boardUC := boardUsecase.New(gateway, mappingUC, trackerClient, listingCache, notificationUC, logger)

	// 8. Projection domain + webhook ingestion
	projectionRepo := projectionSqlite.New(db, logger)
	projectionUC := projectionUsecase.New(projectionRepo, mappingUC, notificationUC, trackerClient, listingCache, logger)

	srvCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		MappingUC:      mappingUC,
		BoardUC:        boardUC,
		NotificationUC: notificationUC,
		Hub:            hub,
		Heartbeat:      cfg.Push.HeartbeatInterval,
	}

	if cfg.Webhook.Enabled {
		srvCfg.WebhookHandler = webhook.NewHandler(projectionUC, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	} else {
		logger.Warn(ctx, "Webhook ingestion disabled: board projections will not track tracker changes")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
