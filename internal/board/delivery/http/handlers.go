package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"qa-board-sync/internal/middleware"
	"qa-board-sync/pkg/response"
)

// Board godoc
// @Summary     Get project board
// @Description Returns the project's issues grouped into mapped columns.
// @Tags        Board
// @Accept      json
// @Produce     json
// @Param       projectID path int true "Project ID"
// @Success     200 {object} boardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{projectID}/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := strconv.Atoi(c.Param("projectID"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Board(ctx, projectID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newBoardResp(output))
}

// Drop godoc
// @Summary     Handle a card drop
// @Description Applies a drag gesture optimistically and starts the label transition.
// @Tags        Board
// @Accept      json
// @Produce     json
// @Param       projectID path int     true "Project ID"
// @Param       body      body dropReq true "Drop gesture"
// @Success     200 {object} dropResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/projects/{projectID}/board/drop [POST]
func (h *handler) Drop(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDropReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleDrop(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleDrop: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newDropResp(output))
}

// processDropReq binds the drop request body + URI param + identity.
func (h *handler) processDropReq(c *gin.Context) (dropReq, error) {
	var req dropReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	projectID, err := strconv.Atoi(c.Param("projectID"))
	if err != nil {
		return req, err
	}
	req.ProjectID = projectID
	req.UserID = middleware.UserID(c)
	return req, nil
}
