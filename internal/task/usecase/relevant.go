package usecase

import (
	"context"
	"errors"
	"fmt"

	"notes-copilot/internal/model"
	"notes-copilot/internal/task"
	pkgErrors "notes-copilot/pkg/errors"
)

// GetRelevantTasks fetches tasks across every project and buckets them.
func (uc *implUseCase) GetRelevantTasks(ctx context.Context) (task.Buckets, error) {
	if !uc.enabled || uc.creds == nil || uc.creds.AccessToken() == "" {
		uc.l.Debug(ctx, "task usecase: integration disabled or not authorized, skipping fetch")
		return task.Empty(), nil
	}

	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		return task.Empty(), fmt.Errorf("%w: %w", task.ErrProjectsUnavailable, err)
	}

	var all []model.Task
	for _, p := range projects {
		tasks, err := uc.repo.ListProjectTasks(ctx, p.ID)
		if err != nil {
			// Credentials are gone for every project, not just this one.
			if errors.Is(err, pkgErrors.ErrReauthenticationRequired) || ctx.Err() != nil {
				return task.Empty(), err
			}
			uc.l.Warn(ctx, "task usecase: skipping project", "project_id", p.ID, "project", p.Name, "error", err.Error())
			continue
		}
		all = append(all, tasks...)
	}

	b := classify(all, uc.now())
	uc.l.Info(ctx, "task usecase: tasks classified",
		"projects", len(projects),
		"overdue", len(b.Overdue),
		"due_soon", len(b.DueSoon),
		"in_progress", len(b.InProgress),
		"completed", len(b.Completed),
	)
	return b, nil
}
