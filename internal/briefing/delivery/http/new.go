package http

import (
	"notes-copilot/internal/briefing"
	"notes-copilot/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  briefing.UseCase
	gen briefing.Generator
}

// New creates a new HTTP handler for generation and the note commands.
func New(l log.Logger, uc briefing.UseCase, gen briefing.Generator) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		gen: gen,
	}
}
