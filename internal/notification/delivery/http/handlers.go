package http

import (
	"github.com/gin-gonic/gin"

	"qa-board-sync/internal/middleware"
	"qa-board-sync/pkg/response"
)

// List godoc
// @Summary     List notifications
// @Description Returns the caller's stored notifications, newest first.
// @Tags        Notification
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.UserID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}
