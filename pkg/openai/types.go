package openai

import (
	"fmt"
	"net/http"
	"strings"

	"notes-copilot/pkg/httpclient"
)

// Config holds OpenAI client configuration
type Config struct {
	APIKey     string
	Model      string
	Host       string
	HTTPClient *httpclient.Client
	// ProbeClient serves ListModels. It defaults to a single-attempt client.
	ProbeClient *httpclient.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	c.Host = strings.TrimRight(c.Host, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = httpclient.New(httpclient.Config{
			HTTPClient: &http.Client{Timeout: DefaultTimeout},
			Name:       providerName,
		})
	}
	if c.ProbeClient == nil {
		c.ProbeClient = httpclient.New(httpclient.Config{
			HTTPClient:  &http.Client{Timeout: DefaultTimeout},
			MaxAttempts: 1,
			Name:        providerName,
		})
	}
	return nil
}

// openAIImpl is the internal implementation of IOpenAI
type openAIImpl struct {
	apiKey      string
	host        string
	model       string
	httpClient  *httpclient.Client
	probeClient *httpclient.Client
}

// Request represents a chat completion request
type Request struct {
	SystemPrompt string
	Messages     []Message
	Temperature  float64
	MaxTokens    int
	// Model overrides the configured model when set.
	Model string
}

// Message represents one chat message
type Message struct {
	Role    string
	Content string
}

// Response represents a chat completion response
type Response struct {
	Content      string
	Model        string
	FinishReason string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire types
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index int `json:"index"`
	// Message is a pointer so a missing message can be told apart from an
	// empty one.
	Message      *chatResponseMessage `json:"message"`
	FinishReason string               `json:"finish_reason"`
}

type chatResponseMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type modelList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}
