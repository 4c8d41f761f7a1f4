package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"notes-copilot/internal/briefing"
	"notes-copilot/internal/vault"
	"notes-copilot/pkg/llmprovider"
)

func (uc *implUseCase) CreateDailyBriefing(ctx context.Context) (briefing.Result, error) {
	now := uc.now()

	var (
		notes      string
		noteCount  int
		tasks      string
		tasksCount int
	)

	// Notes and tasks are independent; tasks never fail the group.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := uc.store.List(gctx, uc.opts.DailyNotesFolder)
		if err != nil {
			return fmt.Errorf("list daily notes: %w", err)
		}
		docs = recentNotes(docs, now, uc.opts.DaysToAnalyze)
		if len(docs) == 0 {
			return briefing.ErrNoDailyNotes
		}
		noteCount = len(docs)
		notes, err = uc.aggregate(gctx, docs)
		return err
	})
	g.Go(func() error {
		tasks, tasksCount = uc.formattedTasks(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Warn(ctx, "briefing.usecase.CreateDailyBriefing", "error", err.Error())
		return briefing.Result{}, err
	}

	resp, err := uc.gen.Generate(ctx, &llmprovider.Request{Prompt: buildDailyPrompt(notes, tasks)})
	if err != nil {
		uc.reportProviderError(ctx, err)
		return briefing.Result{}, err
	}

	day := now.Format(briefing.DateLayout)
	path := vault.Join(uc.opts.OutputFolder, "Daily Briefing "+day)
	content := fmt.Sprintf("# 🌅 Daily Briefing - %s\n\n%s\n", day, resp.Text)
	if err := uc.store.Write(ctx, path, content); err != nil {
		return briefing.Result{}, fmt.Errorf("write briefing: %w", err)
	}

	uc.l.Info(ctx, "daily briefing written", "path", path, "notes", noteCount, "tasks", tasksCount)
	return briefing.Result{
		Path:     path,
		Content:  content,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
		Notes:    noteCount,
		Tasks:    tasksCount,
	}, nil
}

// reportProviderError tells the user a generation failed.
func (uc *implUseCase) reportProviderError(ctx context.Context, err error) {
	if nErr := uc.notifier.Notify(ctx, fmt.Sprintf("Text generation failed: %v", err)); nErr != nil {
		uc.l.Error(ctx, "briefing: notify failed", "error", nErr.Error())
	}
}
