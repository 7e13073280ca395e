package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	boardHTTP "qa-board-sync/internal/board/delivery/http"
	mappingHTTP "qa-board-sync/internal/mapping/delivery/http"
	"qa-board-sync/internal/middleware"
	"qa-board-sync/internal/model"
	notificationHTTP "qa-board-sync/internal/notification/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l)
	api := srv.gin.Group("/api/v1")

	// Project-scoped: column mapping + board
	project := api.Group("/projects/:projectID")
	mappingHTTP.RegisterRoutes(project, mappingHTTP.New(srv.l, srv.mappingUC), mw)
	boardHTTP.RegisterRoutes(project, boardHTTP.New(srv.l, srv.boardUC), mw)

	// Notifications: list + push stream
	notificationHTTP.RegisterRoutes(
		api.Group("/notifications"),
		notificationHTTP.New(srv.l, srv.notificationUC, srv.hub, srv.heartbeat),
		mw,
	)

	// Tracker webhook ingestion
	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/tracker", srv.webhookHandler.HandleTrackerWebhook)
		srv.l.Infof(ctx, "Tracker webhook route registered at POST /webhook/tracker")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping tracker webhook route")
	}

	return nil
}
