package briefing

import (
	"context"

	"notes-copilot/pkg/llmprovider"
)

// UseCase holds the note commands: briefings, summaries and reorganizing.
type UseCase interface {
	// CreateDailyBriefing summarizes recent daily notes together with the
	// relevant tasks and writes the briefing into the output folder.
	CreateDailyBriefing(ctx context.Context) (Result, error)

	// CreateMonthlySummary writes one summary per month of daily notes.
	CreateMonthlySummary(ctx context.Context) ([]Result, error)

	// OrganizeText rewrites one document in place.
	OrganizeText(ctx context.Context, path string) (Result, error)
}

// Generator is the text-generation side the commands need.
type Generator interface {
	CheckConnection(ctx context.Context) error
	Generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
