package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends err with the given status. The status doubles as the
// error code.
func Error(c *gin.Context, status int, err error) {
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// BadRequest sends 400 with the validation error and optional details.
func BadRequest(c *gin.Context, err error, details map[string]any) {
	if details == nil {
		details = make(map[string]any)
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
		Errors:    details,
	})
}

// InternalError sends 500 internal server error without leaking err.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}
