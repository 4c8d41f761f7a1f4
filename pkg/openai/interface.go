package openai

import "context"

// IOpenAI defines the interface for an OpenAI-compatible chat client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// CreateChatCompletion sends a non-streaming chat completion request
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// ListModels probes the models endpoint
	ListModels(ctx context.Context) ([]string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new OpenAI client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
