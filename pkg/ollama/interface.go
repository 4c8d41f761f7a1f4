package ollama

import "context"

// IOllama is a client for the Ollama generate API.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Generate posts prompt to /api/generate and assembles the streamed answer.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Version probes /api/version.
	Version(ctx context.Context) (string, error)

	// Model returns the configured model.
	Model() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
