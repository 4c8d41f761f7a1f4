package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	pkgErrors "notes-copilot/pkg/errors"
	"notes-copilot/pkg/ndjson"
)

func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		host:        cfg.Host,
		model:       cfg.Model,
		httpClient:  cfg.HTTPClient,
		probeClient: cfg.ProbeClient,
		l:           cfg.Logger,
	}
}

// Generate posts the prompt and folds the NDJSON stream into one answer.
func (o *ollamaImpl) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	model := o.model
	if req.Model != "" {
		model = req.Model
	}

	body, err := json.Marshal(generateBody{Model: model, Prompt: req.Prompt})
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.host+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(ctx, httpReq)
	if err != nil {
		return nil, &pkgErrors.ConnectivityError{Target: o.host, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &pkgErrors.BackendError{Provider: providerName, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	dec := ndjson.NewDecoder(resp.Body)
	out := &GenerateResponse{Model: model}
	for {
		chunk, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &pkgErrors.TransportError{Provider: providerName, Err: err}
		}
		if chunk.Error != "" {
			return nil, &pkgErrors.BackendError{Provider: providerName, StatusCode: resp.StatusCode, Body: chunk.Error}
		}
		out.Chunks++
	}

	out.Text = dec.Text()
	out.Dropped = dec.Pending()
	if out.Dropped != "" && o.l != nil {
		o.l.Warn(ctx, "ollama: stream ended on an unterminated fragment", "bytes", len(out.Dropped))
	}

	return out, nil
}

// Version returns the daemon version reported by /api/version.
func (o *ollamaImpl) Version(ctx context.Context) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, o.host+versionPath, nil)
	if err != nil {
		return "", fmt.Errorf("ollama: failed to create request: %w", err)
	}

	resp, err := o.probeClient.Do(ctx, httpReq)
	if err != nil {
		return "", &pkgErrors.ConnectivityError{Target: o.host, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &pkgErrors.BackendError{Provider: providerName, StatusCode: resp.StatusCode}
	}

	var v versionBody
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return "", &pkgErrors.MalformedResponseError{Provider: providerName, Reason: err.Error()}
	}
	return v.Version, nil
}

// Model returns the configured model.
func (o *ollamaImpl) Model() string {
	return o.model
}
