package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"qa-board-sync/internal/board"
	"qa-board-sync/internal/mapping"
	"qa-board-sync/internal/notification"
	"qa-board-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain usecases
	mappingUC      mapping.UseCase
	boardUC        board.UseCase
	notificationUC notification.UseCase

	// Push
	hub       *notification.Hub
	heartbeat time.Duration

	// Webhook ingestion
	webhookHandler interface {
		HandleTrackerWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	MappingUC      mapping.UseCase
	BoardUC        board.UseCase
	NotificationUC notification.UseCase

	Hub       *notification.Hub
	Heartbeat time.Duration

	WebhookHandler interface {
		HandleTrackerWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mappingUC:      cfg.MappingUC,
		boardUC:        cfg.BoardUC,
		notificationUC: cfg.NotificationUC,
		hub:            cfg.Hub,
		heartbeat:      cfg.Heartbeat,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mappingUC == nil || srv.boardUC == nil || srv.notificationUC == nil {
		return errors.New("domain usecases are required")
	}
	if srv.hub == nil {
		return errors.New("notification hub is required")
	}
	return nil
}
