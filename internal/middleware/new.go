package middleware

import (
	"notes-copilot/pkg/log"
)

type Middleware struct {
	l         log.Logger
	jwtSecret []byte
}

// New builds the middleware set. An empty secret disables bearer auth.
func New(l log.Logger, jwtSecret string) Middleware {
	return Middleware{
		l:         l,
		jwtSecret: []byte(jwtSecret),
	}
}

// AuthEnabled reports whether /api routes require a token.
func (m Middleware) AuthEnabled() bool {
	return len(m.jwtSecret) > 0
}
