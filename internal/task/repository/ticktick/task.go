package ticktick

import (
	"context"
	"time"

	"notes-copilot/internal/model"
	"notes-copilot/internal/task/repository"
	pkgLog "notes-copilot/pkg/log"
)

// dueDateLayouts are tried in order. TickTick sends a numeric offset
// without a colon.
var dueDateLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	time.RFC3339Nano,
	"2006-01-02",
}

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new TickTick repository.
func New(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := r.client.GetProjects(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, model.Project{
			ID:     p.ID,
			Name:   p.Name,
			Color:  p.Color,
			Closed: p.Closed,
			Kind:   p.Kind,
		})
	}
	return out, nil
}

func (r *implRepository) ListProjectTasks(ctx context.Context, projectID string) ([]model.Task, error) {
	data, err := r.client.GetProjectData(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		tasks = append(tasks, r.toTask(ctx, t))
	}
	return tasks, nil
}

// toTask converts a TickTick API Task to model.Task.
func (r *implRepository) toTask(ctx context.Context, t Task) model.Task {
	body := t.Content
	if body == "" {
		body = t.Desc
	}

	out := model.Task{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Title:     t.Title,
		Body:      body,
		Priority:  t.Priority,
		Status:    t.Status,
		Tags:      t.Tags,
		IsAllDay:  t.IsAllDay,
	}

	if t.DueDate != "" {
		due, ok := parseDueDate(t.DueDate)
		if ok {
			out.DueDate = &due
		} else {
			r.l.Warnf(ctx, "ticktick repository: task %s has unparseable due date %q", t.ID, t.DueDate)
		}
	}

	for _, it := range t.Items {
		out.Items = append(out.Items, model.ChecklistItem{ID: it.ID, Title: it.Title, Status: it.Status})
	}
	return out
}

func parseDueDate(s string) (time.Time, bool) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
