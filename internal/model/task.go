package model

import "time"

// TaskStatusCompleted is the TickTick status value of a finished task.
const TaskStatusCompleted = 2

// Task is a task fetched from TickTick. It is read fresh on every call and
// never cached.
type Task struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	Title     string          `json:"title"`
	Body      string          `json:"body,omitempty"`
	DueDate   *time.Time      `json:"due_date,omitempty"` // nil when the task has no due date
	Priority  int             `json:"priority"`           // 0 (none) to 5 (high)
	Status    int             `json:"status"`
	Tags      []string        `json:"tags,omitempty"`
	IsAllDay  bool            `json:"is_all_day"`
	Items     []ChecklistItem `json:"items,omitempty"`
}

// IsCompleted reports whether the task is finished.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// ChecklistItem is one sub-item of a Task.
type ChecklistItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status int    `json:"status"`
}

// Project is a TickTick project (list).
type Project struct {
	ID     string
	Name   string
	Color  string
	Closed bool
	Kind   string
}
