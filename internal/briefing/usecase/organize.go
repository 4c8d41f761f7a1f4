package usecase

import (
	"context"
	"fmt"
	"strings"

	"notes-copilot/internal/briefing"
	"notes-copilot/internal/vault"
	"notes-copilot/pkg/llmprovider"
)

func (uc *implUseCase) OrganizeText(ctx context.Context, path string) (briefing.Result, error) {
	path = vault.CleanPath(path)

	if err := uc.gen.CheckConnection(ctx); err != nil {
		uc.reportProviderError(ctx, err)
		return briefing.Result{}, err
	}

	content, err := uc.store.Read(ctx, path)
	if err != nil {
		return briefing.Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	if strings.TrimSpace(content) == "" {
		return briefing.Result{}, briefing.ErrEmptyDocument
	}

	resp, err := uc.gen.Generate(ctx, &llmprovider.Request{Prompt: buildOrganizePrompt(content)})
	if err != nil {
		uc.reportProviderError(ctx, err)
		return briefing.Result{}, err
	}

	if err := uc.store.Write(ctx, path, resp.Text); err != nil {
		return briefing.Result{}, fmt.Errorf("write %s: %w", path, err)
	}

	return briefing.Result{
		Path:     path,
		Content:  resp.Text,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
		Notes:    1,
	}, nil
}
