package http

import (
	"github.com/gin-gonic/gin"

	"qa-board-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/board", mw.Identify(), h.Board)
	rg.POST("/board/drop", mw.RequireUser(), h.Drop)
}
