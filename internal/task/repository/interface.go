package repository

import (
	"context"

	"notes-copilot/internal/model"
)

// TaskRepository reads projects and their tasks from the task service.
type TaskRepository interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListProjectTasks(ctx context.Context, projectID string) ([]model.Task, error)
}
