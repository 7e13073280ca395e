package webhook

import (
	"qa-board-sync/internal/projection"
	pkgLog "qa-board-sync/pkg/log"
)

type Handler struct {
	projectionUC projection.UseCase
	security     *SecurityValidator
	parser       *TrackerWebhookParser
	l            pkgLog.Logger
}

func NewHandler(
	projectionUC projection.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		projectionUC: projectionUC,
		security:     NewSecurityValidator(securityConfig),
		parser:       NewTrackerParser(),
		l:            l,
	}
}
