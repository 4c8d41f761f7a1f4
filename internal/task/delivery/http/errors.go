package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notes-copilot/internal/task"
	pkgErrors "notes-copilot/pkg/errors"
	"notes-copilot/pkg/response"
)

var errReconnect = errors.New("TickTick authorization expired, reconnect via /oauth/ticktick/authorize")

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgErrors.ErrReauthenticationRequired):
		response.Error(c, http.StatusFailedDependency, errReconnect)
		return
	case errors.Is(err, task.ErrProjectsUnavailable):
		status := pkgErrors.HTTPStatus(err)
		if status == 0 {
			status = http.StatusBadGateway
		}
		response.Error(c, status, err)
		return
	}

	if status := pkgErrors.HTTPStatus(err); status != 0 {
		response.Error(c, status, err)
		return
	}
	response.InternalError(c, err)
}
