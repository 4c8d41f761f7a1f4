package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgErrors "notes-copilot/pkg/errors"
	"notes-copilot/pkg/log"
)

// Manager wraps the selected provider with a deadline, a connection check
// and logging. Commands talk to the Manager, not the provider.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Manager
type Config struct {
	// Timeout bounds one whole generation, streaming included. Zero
	// disables it.
	Timeout time.Duration
}

// NewManager creates a new Manager for provider
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// Provider returns the wrapped provider.
func (m *Manager) Provider() Provider {
	return m.provider
}

// CheckConnection probes the provider and reports failure as a
// ConnectivityError.
func (m *Manager) CheckConnection(ctx context.Context) error {
	if m.provider.CheckConnection(ctx) {
		return nil
	}
	m.logger.Warn(ctx, "LLM provider unreachable",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
	)
	return &pkgErrors.ConnectivityError{Target: m.provider.Name()}
}

// Generate runs one generation under the configured deadline.
func (m *Manager) Generate(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Prompt == "" {
		return nil, fmt.Errorf("%w: empty prompt", ErrInvalidRequest)
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := m.provider.GenerateResponse(ctx, req.Prompt)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s: %w", ErrProviderTimeout, m.config.Timeout, err)
		}
		m.logFailure(ctx, err)
		return nil, &ProviderError{Provider: m.provider.Name(), Err: err}
	}

	resp := &Response{
		Text:         text,
		ProviderName: m.provider.Name(),
		ModelName:    m.provider.Model(),
		Duration:     elapsed,
	}
	m.logSuccess(ctx, resp)
	return resp, nil
}

// logSuccess logs a successful generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	m.logger.Info(ctx, "LLM generation successful",
		"provider", resp.ProviderName,
		"model", resp.ModelName,
		"chars", len(resp.Text),
		"duration_ms", resp.Duration.Milliseconds(),
	)
}

// logFailure logs a failed generation
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", m.provider.Name(),
		"model", m.provider.Model(),
		"error", err.Error(),
	)
}
