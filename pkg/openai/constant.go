package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-3.5-turbo"

	// DefaultHost is the public OpenAI API host
	DefaultHost = "https://api.openai.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/v1/chat/completions"
	modelsPath          = "/v1/models"

	providerName = "openai"
)
