package http

import (
	"github.com/gin-gonic/gin"

	"qa-board-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/columns", mw.Identify(), h.Get)
	rg.PUT("/columns", mw.Identify(), h.Save)
}
