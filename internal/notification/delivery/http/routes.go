package http

import (
	"github.com/gin-gonic/gin"

	"qa-board-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.RequireUser(), h.List)
	rg.GET("/stream", mw.RequireUser(), h.Stream)
}
