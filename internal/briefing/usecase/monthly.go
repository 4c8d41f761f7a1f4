package usecase

import (
	"context"
	"fmt"

	"notes-copilot/internal/briefing"
	"notes-copilot/internal/vault"
	"notes-copilot/pkg/llmprovider"
)

func (uc *implUseCase) CreateMonthlySummary(ctx context.Context) ([]briefing.Result, error) {
	if err := uc.gen.CheckConnection(ctx); err != nil {
		uc.reportProviderError(ctx, err)
		return nil, err
	}

	docs, err := uc.store.List(ctx, uc.opts.DailyNotesFolder)
	if err != nil {
		return nil, fmt.Errorf("list daily notes: %w", err)
	}
	groups, months := groupByMonth(docs)
	if len(months) == 0 {
		return nil, briefing.ErrNoDailyNotes
	}

	tasks, taskCount := uc.formattedTasks(ctx)

	results := make([]briefing.Result, 0, len(months))
	for _, month := range months {
		notes, err := uc.aggregate(ctx, groups[month])
		if err != nil {
			return results, err
		}

		resp, err := uc.gen.Generate(ctx, &llmprovider.Request{Prompt: buildMonthlyPrompt(notes, tasks)})
		if err != nil {
			uc.reportProviderError(ctx, err)
			return results, fmt.Errorf("summarize %s: %w", month, err)
		}

		path := vault.Join(uc.opts.MonthlyFolder, month+"-Summary")
		content := fmt.Sprintf("# Monthly Summary for %s\n\n%s\n", month, resp.Text)
		if err := uc.store.Write(ctx, path, content); err != nil {
			return results, fmt.Errorf("write summary %s: %w", month, err)
		}

		uc.l.Info(ctx, "monthly summary written", "month", month, "path", path, "notes", len(groups[month]))
		results = append(results, briefing.Result{
			Path:     path,
			Content:  content,
			Provider: resp.ProviderName,
			Model:    resp.ModelName,
			Notes:    len(groups[month]),
			Tasks:    taskCount,
		})
	}

	return results, nil
}
