package http

import (
	"github.com/gin-gonic/gin"

	"notes-copilot/pkg/response"
)

// Relevant godoc
// @Summary     Relevant tasks
// @Description Fetches every TickTick task and groups it into overdue, due soon, in progress and recently completed.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} relevantResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     424 {object} response.Resp "TickTick reauthorization required"
// @Failure     502 {object} response.Resp "TickTick unavailable"
// @Router      /api/v1/tasks/relevant [GET]
func (h *handler) Relevant(c *gin.Context) {
	ctx := c.Request.Context()

	buckets, err := h.uc.GetRelevantTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetRelevantTasks: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newRelevantResp(buckets))
}
