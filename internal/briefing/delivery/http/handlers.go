package http

import (
	"github.com/gin-gonic/gin"

	"notes-copilot/pkg/llmprovider"
	"notes-copilot/pkg/response"
)

// Provider godoc
// @Summary     Provider status
// @Description Probes the configured text-generation backend.
// @Tags        Generation
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} providerResp
// @Router      /api/v1/provider [GET]
func (h *handler) Provider(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.gen.CheckConnection(ctx); err != nil {
		response.OK(c, providerResp{Connected: false, Error: err.Error()})
		return
	}
	response.OK(c, providerResp{Connected: true})
}

// Generate godoc
// @Summary     Generate text
// @Description Sends a prompt to the configured backend and returns the complete answer.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body generateReq true "Prompt"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend error"
// @Failure     503 {object} response.Resp "Backend unreachable"
// @Failure     504 {object} response.Resp "Backend timeout"
// @Router      /api/v1/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	out, err := h.gen.Generate(ctx, &llmprovider.Request{Prompt: req.Prompt})
	if err != nil {
		h.l.Errorf(ctx, "gen.Generate: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newGenerateResp(out))
}

// Daily godoc
// @Summary     Create daily briefing
// @Description Summarizes recent daily notes and relevant tasks into a briefing note.
// @Tags        Briefing
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} documentResp
// @Failure     404 {object} response.Resp "No daily notes"
// @Failure     502 {object} response.Resp "Backend error"
// @Router      /api/v1/briefing/daily [POST]
func (h *handler) Daily(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.CreateDailyBriefing(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateDailyBriefing: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newDocumentResp(out))
}

// Monthly godoc
// @Summary     Create monthly summaries
// @Description Writes one summary note per month of daily notes.
// @Tags        Briefing
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  documentResp
// @Failure     404 {object} response.Resp "No daily notes"
// @Failure     503 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/briefing/monthly [POST]
func (h *handler) Monthly(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.CreateMonthlySummary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateMonthlySummary: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newDocumentsResp(out))
}

// Organize godoc
// @Summary     Organize a note
// @Description Rewrites one vault document in place.
// @Tags        Briefing
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body organizeReq true "Document path"
// @Success     200 {object} documentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Document not found"
// @Router      /api/v1/organize [POST]
func (h *handler) Organize(c *gin.Context) {
	ctx := c.Request.Context()

	var req organizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	out, err := h.uc.OrganizeText(ctx, req.Path)
	if err != nil {
		h.l.Errorf(ctx, "uc.OrganizeText: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newDocumentResp(out))
}
