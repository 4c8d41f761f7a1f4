package http

import (
	"notes-copilot/internal/auth"
	"notes-copilot/pkg/log"
)

type handler struct {
	l    log.Logger
	auth auth.Authorizer
}

// New creates a new HTTP handler for the OAuth connect flow.
func New(l log.Logger, a auth.Authorizer) *handler {
	return &handler{
		l:    l,
		auth: a,
	}
}
