package usecase

import (
	"fmt"
	"strings"

	"notes-copilot/internal/model"
	"notes-copilot/internal/task"
)

const dueDateFormat = "2006-01-02"

// FormatBriefing renders non-empty buckets as markdown checklists.
func (uc *implUseCase) FormatBriefing(b task.Buckets) string {
	var sb strings.Builder

	if len(b.Overdue) > 0 {
		sb.WriteString("\n\n### ⚠️ Overdue Tasks\n")
		for _, t := range b.Overdue {
			fmt.Fprintf(&sb, "- [ ] 🔴 %s (due: %s)\n", t.Title, uc.dueDate(t))
			writeBody(&sb, t)
		}
	}

	if len(b.DueSoon) > 0 {
		sb.WriteString("\n\n### 📅 Due Soon\n")
		for _, t := range b.DueSoon {
			fmt.Fprintf(&sb, "- [ ] %s %s (due: %s)\n", priorityMarker(t.Priority), t.Title, uc.dueDate(t))
			writeBody(&sb, t)
		}
	}

	if len(b.InProgress) > 0 {
		sb.WriteString("\n\n### 🎯 In Progress\n")
		for _, t := range b.InProgress {
			fmt.Fprintf(&sb, "- [ ] %s %s\n", priorityMarker(t.Priority), t.Title)
			writeBody(&sb, t)
		}
	}

	if len(b.Completed) > 0 {
		sb.WriteString("\n\n### ✅ Recently Completed\n")
		for _, t := range b.Completed {
			fmt.Fprintf(&sb, "- [x] %s\n", t.Title)
		}
	}

	return sb.String()
}

// dueDate formats the due date in the display zone. All-day tasks arrive as
// local midnight expressed in UTC.
func (uc *implUseCase) dueDate(t model.Task) string {
	return t.DueDate.In(uc.loc).Format(dueDateFormat)
}

func writeBody(sb *strings.Builder, t model.Task) {
	if t.Body != "" {
		fmt.Fprintf(sb, "  - %s\n", t.Body)
	}
}

func priorityMarker(priority int) string {
	switch priority {
	case 5:
		return "🔥"
	case 4:
		return "⚡"
	case 3:
		return "⭐"
	case 2:
		return "🔹"
	default:
		return "⚪"
	}
}
