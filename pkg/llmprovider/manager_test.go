package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgErrors "notes-copilot/pkg/errors"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	reachable  bool
	shouldFail bool
	delay      time.Duration
	response   string
	callCount  int
	lastPrompt string
}

func (m *mockProvider) CheckConnection(ctx context.Context) bool {
	return m.reachable
}

func (m *mockProvider) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	m.lastPrompt = prompt
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.shouldFail {
		return "", errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestGenerate_Success(t *testing.T) {
	provider := &mockProvider{
		name:     "ollama",
		model:    "llama3:latest",
		response: "Hello from ollama",
	}
	logger := &mockLogger{}
	manager := NewManager(provider, &Config{Timeout: time.Second}, logger)

	resp, err := manager.Generate(context.Background(), &Request{Prompt: "Hello"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.Text != "Hello from ollama" {
		t.Errorf("Expected text 'Hello from ollama', got: %s", resp.Text)
	}
	if resp.ProviderName != "ollama" || resp.ModelName != "llama3:latest" {
		t.Errorf("Unexpected provider/model: %s/%s", resp.ProviderName, resp.ModelName)
	}
	if provider.callCount != 1 {
		t.Errorf("Expected provider to be called once, got: %d", provider.callCount)
	}
	if provider.lastPrompt != "Hello" {
		t.Errorf("Expected prompt to be forwarded, got: %q", provider.lastPrompt)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	provider := &mockProvider{name: "openai", model: "gpt-3.5-turbo", shouldFail: true}
	logger := &mockLogger{}
	manager := NewManager(provider, nil, logger)

	resp, err := manager.Generate(context.Background(), &Request{Prompt: "Hello"})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Provider != "openai" {
		t.Errorf("Expected ProviderError for openai, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerate_Timeout(t *testing.T) {
	provider := &mockProvider{name: "ollama", model: "m", delay: time.Second, response: "late"}
	manager := NewManager(provider, &Config{Timeout: 10 * time.Millisecond}, &mockLogger{})

	_, err := manager.Generate(context.Background(), &Request{Prompt: "Hello"})
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("Expected ErrProviderTimeout, got: %v", err)
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	provider := &mockProvider{name: "ollama"}
	manager := NewManager(provider, nil, &mockLogger{})

	_, err := manager.Generate(context.Background(), &Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("Expected ErrInvalidRequest, got: %v", err)
	}
	if provider.callCount != 0 {
		t.Errorf("Expected provider not to be called, got: %d", provider.callCount)
	}
}

func TestCheckConnection(t *testing.T) {
	tests := []struct {
		name      string
		reachable bool
		wantErr   bool
	}{
		{name: "reachable", reachable: true},
		{name: "unreachable", reachable: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewManager(&mockProvider{name: "ollama", reachable: tt.reachable}, nil, &mockLogger{})
			err := manager.CheckConnection(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckConnection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, pkgErrors.ErrConnectivity) {
				t.Errorf("Expected ErrConnectivity, got: %v", err)
			}
		})
	}
}
