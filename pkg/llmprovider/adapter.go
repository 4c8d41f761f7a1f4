package llmprovider

import (
	"context"

	"notes-copilot/pkg/ollama"
	"notes-copilot/pkg/openai"
)

// OllamaAdapter adapts pkg/ollama to the Provider interface. It is the
// streaming variant.
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// CheckConnection implements Provider interface
func (a *OllamaAdapter) CheckConnection(ctx context.Context) bool {
	_, err := a.client.Version(ctx)
	return err == nil
}

// GenerateResponse implements Provider interface
func (a *OllamaAdapter) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Generate(ctx, &ollama.GenerateRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to the Provider interface. It is the
// single-shot variant.
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// CheckConnection implements Provider interface
func (a *OpenAIAdapter) CheckConnection(ctx context.Context) bool {
	_, err := a.client.ListModels(ctx)
	return err == nil
}

// GenerateResponse implements Provider interface
func (a *OpenAIAdapter) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, &openai.Request{
		Messages: []openai.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
