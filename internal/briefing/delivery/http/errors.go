package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notes-copilot/internal/briefing"
	"notes-copilot/internal/vault"
	pkgErrors "notes-copilot/pkg/errors"
	"notes-copilot/pkg/llmprovider"
	"notes-copilot/pkg/response"
)

// writeError translates use-case and provider errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, llmprovider.ErrInvalidRequest),
		errors.Is(err, vault.ErrInvalidPath),
		errors.Is(err, briefing.ErrEmptyDocument):
		response.BadRequest(c, err, nil)
		return
	case errors.Is(err, briefing.ErrNoDailyNotes), errors.Is(err, vault.ErrNotFound):
		response.Error(c, http.StatusNotFound, err)
		return
	case errors.Is(err, llmprovider.ErrProviderTimeout):
		response.Error(c, http.StatusGatewayTimeout, err)
		return
	}

	if status := pkgErrors.HTTPStatus(err); status != 0 {
		response.Error(c, status, err)
		return
	}
	response.InternalError(c, err)
}
