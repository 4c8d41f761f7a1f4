package llmprovider

import (
	"context"
	"time"
)

// Provider is a text-generation backend.
type Provider interface {
	// CheckConnection probes the backend. It never returns an error; any
	// failure reads as false.
	CheckConnection(ctx context.Context) bool

	// GenerateResponse sends prompt and returns the complete answer.
	GenerateResponse(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name ("ollama", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is one generation call as the Manager sees it. Model and Host
// are informational; the provider instance already carries them.
type Request struct {
	Prompt string
	Model  string
	Host   string
}

// Response is the Manager's result for one generation.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Duration     time.Duration
}
