package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	pkgErrors "notes-copilot/pkg/errors"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:      cfg.APIKey,
		host:        cfg.Host,
		model:       cfg.Model,
		httpClient:  cfg.HTTPClient,
		probeClient: cfg.ProbeClient,
	}
}

// CreateChatCompletion sends a chat completion request with stream=false
func (o *openAIImpl) CreateChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(o.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.host+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(ctx, httpReq)
	if err != nil {
		return nil, &pkgErrors.ConnectivityError{Target: o.host, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pkgErrors.TransportError{Provider: providerName, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &pkgErrors.BackendError{Provider: providerName, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(raw, &chatResp); err != nil {
		return nil, &pkgErrors.MalformedResponseError{Provider: providerName, Reason: err.Error()}
	}

	return o.transformResponse(&chatResp)
}

// ListModels returns the model ids served by the host
func (o *openAIImpl) ListModels(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, o.host+modelsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.probeClient.Do(ctx, httpReq)
	if err != nil {
		return nil, &pkgErrors.ConnectivityError{Target: o.host, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &pkgErrors.BackendError{Provider: providerName, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var list modelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, &pkgErrors.MalformedResponseError{Provider: providerName, Reason: err.Error()}
	}

	ids := make([]string, 0, len(list.Data))
	for _, m := range list.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

func (o *openAIImpl) transformRequest(req *Request) *chatRequest {
	model := o.model
	if req.Model != "" {
		model = req.Model
	}

	out := &chatRequest{
		Model:       model,
		Stream:      false,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)+1),
	}

	if req.SystemPrompt != "" {
		out.Messages = append(out.Messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		out.Messages = append(out.Messages, chatMessage{Role: role, Content: msg.Content})
	}

	return out
}

func (o *openAIImpl) transformResponse(resp *chatResponse) (*Response, error) {
	if len(resp.Choices) == 0 {
		return nil, &pkgErrors.MalformedResponseError{Provider: providerName, Reason: "no choices in response"}
	}

	choice := resp.Choices[0]
	if choice.Message == nil || choice.Message.Content == nil {
		return nil, &pkgErrors.MalformedResponseError{Provider: providerName, Reason: "choices[0].message.content missing"}
	}

	return &Response{
		Content:      *choice.Message.Content,
		Model:        resp.Model,
		FinishReason: choice.FinishReason,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
