package task

import (
	"time"

	"notes-copilot/internal/model"
)

const (
	// DueSoonWindow is how far ahead an open task counts as due soon.
	DueSoonWindow = 3 * 24 * time.Hour

	// CompletedWindow is how far back a completed task is still reported.
	CompletedWindow = 24 * time.Hour
)

// Buckets partitions tasks relative to "now". A task appears in at most
// one bucket.
type Buckets struct {
	Overdue    []model.Task `json:"overdue"`
	DueSoon    []model.Task `json:"due_soon"`
	InProgress []model.Task `json:"in_progress"`
	Completed  []model.Task `json:"completed"`
}

// Total returns the number of tasks across all buckets.
func (b Buckets) Total() int {
	return len(b.Overdue) + len(b.DueSoon) + len(b.InProgress) + len(b.Completed)
}

// Empty returns buckets with every slice non-nil and empty.
func Empty() Buckets {
	return Buckets{
		Overdue:    []model.Task{},
		DueSoon:    []model.Task{},
		InProgress: []model.Task{},
		Completed:  []model.Task{},
	}
}
