package http

import (
	"notes-copilot/internal/briefing"
	"notes-copilot/pkg/llmprovider"
)

type generateReq struct {
	Prompt string `json:"prompt" binding:"required"`
}

type generateResp struct {
	Text       string `json:"text"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	DurationMS int64  `json:"duration_ms"`
}

func newGenerateResp(r *llmprovider.Response) generateResp {
	return generateResp{
		Text:       r.Text,
		Provider:   r.ProviderName,
		Model:      r.ModelName,
		DurationMS: r.Duration.Milliseconds(),
	}
}

type organizeReq struct {
	Path string `json:"path" binding:"required"`
}

type providerResp struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

type documentResp struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Notes    int    `json:"notes"`
	Tasks    int    `json:"tasks"`
}

func newDocumentResp(r briefing.Result) documentResp {
	return documentResp(r)
}

func newDocumentsResp(rs []briefing.Result) []documentResp {
	out := make([]documentResp, 0, len(rs))
	for _, r := range rs {
		out = append(out, newDocumentResp(r))
	}
	return out
}
