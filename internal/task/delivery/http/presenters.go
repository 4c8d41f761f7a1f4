package http

import (
	"time"

	"notes-copilot/internal/model"
	"notes-copilot/internal/task"
	"notes-copilot/pkg/response"
)

type taskItem struct {
	ID        string             `json:"id"`
	ProjectID string             `json:"project_id"`
	Title     string             `json:"title"`
	Due       *response.Date     `json:"due,omitempty"`
	DueAt     *response.DateTime `json:"due_at,omitempty"`
	AllDay    bool               `json:"all_day"`
	Priority  int                `json:"priority"`
	Completed bool               `json:"completed"`
	Tags      []string           `json:"tags,omitempty"`
}

type relevantResp struct {
	Overdue    []taskItem `json:"overdue"`
	DueSoon    []taskItem `json:"due_soon"`
	InProgress []taskItem `json:"in_progress"`
	Completed  []taskItem `json:"completed"`
	Total      int        `json:"total"`
	Markdown   string     `json:"markdown"`
}

func (h *handler) newRelevantResp(b task.Buckets) relevantResp {
	return relevantResp{
		Overdue:    toItems(b.Overdue),
		DueSoon:    toItems(b.DueSoon),
		InProgress: toItems(b.InProgress),
		Completed:  toItems(b.Completed),
		Total:      b.Total(),
		Markdown:   h.uc.FormatBriefing(b),
	}
}

func toItems(tasks []model.Task) []taskItem {
	items := make([]taskItem, 0, len(tasks))
	for _, t := range tasks {
		item := taskItem{
			ID:        t.ID,
			ProjectID: t.ProjectID,
			Title:     t.Title,
			AllDay:    t.IsAllDay,
			Priority:  t.Priority,
			Completed: t.IsCompleted(),
			Tags:      t.Tags,
		}
		if t.DueDate != nil {
			// All-day tasks arrive as local midnight expressed in UTC.
			due := t.DueDate.In(time.Local)
			item.Due = response.NewDate(&due)
			if !t.IsAllDay {
				item.DueAt = response.NewDateTime(&due)
			}
		}
		items = append(items, item)
	}
	return items
}
