package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"qa-board-sync/pkg/response"
)

// Get godoc
// @Summary     Get column mapping
// @Description Returns the project's configured columns, or the default set.
// @Tags        Mapping
// @Accept      json
// @Produce     json
// @Param       projectID path int true "Project ID"
// @Success     200 {object} mappingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{projectID}/columns [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := strconv.Atoi(c.Param("projectID"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Get(ctx, projectID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newMappingResp(output.Mapping, output.Defaulted))
}

// Save godoc
// @Summary     Save column mapping
// @Description Validates and replaces the project's column mapping.
// @Tags        Mapping
// @Accept      json
// @Produce     json
// @Param       projectID path int     true "Project ID"
// @Param       body      body saveReq true "Column mapping"
// @Success     200 {object} mappingResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{projectID}/columns [PUT]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Save(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newMappingResp(output.Mapping, false))
}

// processSaveReq binds the save request body + URI param.
func (h *handler) processSaveReq(c *gin.Context) (saveReq, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	projectID, err := strconv.Atoi(c.Param("projectID"))
	if err != nil {
		return req, err
	}
	req.ProjectID = projectID
	return req, nil
}
