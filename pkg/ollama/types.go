package ollama

import (
	"fmt"
	"net/url"
	"strings"

	"notes-copilot/pkg/httpclient"
	pkgLog "notes-copilot/pkg/log"
)

// Config holds Ollama client configuration
type Config struct {
	Host       string
	Model      string
	HTTPClient *httpclient.Client
	// ProbeClient serves Version. It defaults to a single-attempt client so
	// an unreachable daemon is reported at once.
	ProbeClient *httpclient.Client
	Logger      pkgLog.Logger
}

// Validate fills defaults and checks the host.
func (c *Config) Validate() error {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	c.Host = strings.TrimRight(c.Host, "/")
	if u, err := url.Parse(c.Host); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("ollama: invalid host %q", c.Host)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = httpclient.New(httpclient.Config{Name: providerName, Logger: c.Logger})
	}
	if c.ProbeClient == nil {
		c.ProbeClient = httpclient.New(httpclient.Config{MaxAttempts: 1, Name: providerName, Logger: c.Logger})
	}
	return nil
}

type ollamaImpl struct {
	host        string
	model       string
	httpClient  *httpclient.Client
	probeClient *httpclient.Client
	l           pkgLog.Logger
}

// GenerateRequest is one generation call. Model overrides the configured
// model when set.
type GenerateRequest struct {
	Prompt string
	Model  string
}

// GenerateResponse is the assembled answer of a streamed generation.
type GenerateResponse struct {
	Text   string
	Model  string
	Chunks int
	// Dropped holds an unterminated trailing fragment the stream ended on.
	Dropped string
}

type generateBody struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type versionBody struct {
	Version string `json:"version"`
}
