package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"notes-copilot/pkg/response"
)

// SubjectKey is the gin context key holding the token subject.
const SubjectKey = "subject"

// Auth requires "Authorization: Bearer <jwt>" when a secret is configured.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.AuthEnabled() {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			response.Unauthorized(c)
			return
		}

		subject, err := ParseToken(m.jwtSecret, raw)
		if err != nil {
			m.l.Warn(c.Request.Context(), "middleware.Auth: rejected token", "error", err.Error())
			response.Unauthorized(c)
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
