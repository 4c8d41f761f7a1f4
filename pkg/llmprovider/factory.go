package llmprovider

import (
	"fmt"
	"net/http"
	"strings"

	"notes-copilot/config"
	"notes-copilot/pkg/httpclient"
	pkgLog "notes-copilot/pkg/log"
	"notes-copilot/pkg/ollama"
	"notes-copilot/pkg/openai"
)

// New returns the provider selected by cfg.Provider. An unrecognised kind
// fails with ErrUnknownProvider; there is no silent fallback.
func New(cfg config.LLMConfig, l pkgLog.Logger) (Provider, error) {
	kind := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch kind {
	case "ollama":
		client, err := ollama.New(ollama.Config{
			Host:        cfg.Ollama.Host,
			Model:       cfg.Ollama.Model,
			HTTPClient:  newTransport(cfg, kind, l),
			ProbeClient: newProbeTransport(cfg, kind, l),
			Logger:      l,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(client), nil

	case "openai":
		client, err := openai.New(openai.Config{
			APIKey:      cfg.OpenAI.APIKey,
			Model:       cfg.OpenAI.Model,
			Host:        cfg.OpenAI.Host,
			HTTPClient:  newTransport(cfg, kind, l),
			ProbeClient: newProbeTransport(cfg, kind, l),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func newTransport(cfg config.LLMConfig, name string, l pkgLog.Logger) *httpclient.Client {
	// The Manager owns the overall deadline; this one only bounds a single
	// attempt.
	return httpclient.New(httpclient.Config{
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
		MaxAttempts: cfg.RetryAttempts,
		BaseDelay:   cfg.RetryDelay,
		Logger:      l,
		Name:        name,
	})
}

// newProbeTransport makes a single attempt; a connection check reports the
// backend as it is right now.
func newProbeTransport(cfg config.LLMConfig, name string, l pkgLog.Logger) *httpclient.Client {
	return httpclient.New(httpclient.Config{
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
		MaxAttempts: 1,
		Logger:      l,
		Name:        name,
	})
}
