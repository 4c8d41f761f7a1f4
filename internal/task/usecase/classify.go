package usecase

import (
	"sort"
	"time"

	"notes-copilot/internal/model"
	"notes-copilot/internal/task"
)

// classify partitions tasks against now. Completed tasks without a due
// date, completed tasks outside the lookback window and open tasks due
// after the lookahead window land in no bucket.
func classify(tasks []model.Task, now time.Time) task.Buckets {
	b := task.Empty()
	soonLimit := now.Add(task.DueSoonWindow)
	completedSince := now.Add(-task.CompletedWindow)

	for _, t := range tasks {
		if t.IsCompleted() {
			if t.DueDate != nil && !t.DueDate.Before(completedSince) && !t.DueDate.After(now) {
				b.Completed = append(b.Completed, t)
			}
			continue
		}

		switch {
		case t.DueDate == nil:
			b.InProgress = append(b.InProgress, t)
		case t.DueDate.Before(now):
			b.Overdue = append(b.Overdue, t)
		case !t.DueDate.After(soonLimit):
			b.DueSoon = append(b.DueSoon, t)
		}
	}

	byDue := func(s []model.Task) func(i, j int) bool {
		return func(i, j int) bool { return s[i].DueDate.Before(*s[j].DueDate) }
	}
	sort.SliceStable(b.Overdue, byDue(b.Overdue))
	sort.SliceStable(b.DueSoon, byDue(b.DueSoon))
	sort.SliceStable(b.InProgress, func(i, j int) bool {
		return b.InProgress[i].Priority > b.InProgress[j].Priority
	})

	return b
}
