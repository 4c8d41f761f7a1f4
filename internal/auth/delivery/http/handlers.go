package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notes-copilot/pkg/response"
	"notes-copilot/pkg/ticktick"
)

type authorizeResp struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// Authorize godoc
// @Summary     Start TickTick authorization
// @Description Redirects to the TickTick consent page. With ?format=json the URL is returned instead.
// @Tags        OAuth
// @Produce     json
// @Param       format query string false "json to get the URL instead of a redirect"
// @Success     200 {object} authorizeResp
// @Success     302
// @Failure     503 {object} response.Resp "OAuth client not configured"
// @Router      /oauth/ticktick/authorize [GET]
func (h *handler) Authorize(c *gin.Context) {
	ctx := c.Request.Context()

	authURL, state, err := h.auth.AuthCodeURL()
	if err != nil {
		h.l.Errorf(ctx, "auth.AuthCodeURL: %v", err)
		response.Error(c, http.StatusServiceUnavailable, err)
		return
	}

	if c.Query("format") == "json" {
		response.OK(c, authorizeResp{URL: authURL, State: state})
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// Callback godoc
// @Summary     TickTick OAuth callback
// @Description Exchanges the authorization code and stores the tokens.
// @Tags        OAuth
// @Produce     json
// @Param       code  query string true "Authorization code"
// @Param       state query string true "State issued by /authorize"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Missing code or unknown state"
// @Failure     502 {object} response.Resp "Token exchange failed"
// @Router      /oauth/ticktick/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if denied := c.Query("error"); denied != "" {
		response.BadRequest(c, errors.New("authorization denied"), map[string]any{"error": denied})
		return
	}

	err := h.auth.Exchange(ctx, c.Query("code"), c.Query("state"))
	switch {
	case err == nil:
		response.OK(c, gin.H{"connected": true})
	case errors.Is(err, ticktick.ErrMissingCode), errors.Is(err, ticktick.ErrInvalidState):
		response.BadRequest(c, err, nil)
	default:
		h.l.Errorf(ctx, "auth.Exchange: %v", err)
		response.Error(c, http.StatusBadGateway, err)
	}
}
