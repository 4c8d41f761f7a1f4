package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// GetRelevantTasks fetches every task and sorts it into time-relative
	// buckets. A disabled or unauthorized integration yields empty buckets.
	GetRelevantTasks(ctx context.Context) (Buckets, error)

	// FormatBriefing renders buckets as markdown sections.
	FormatBriefing(b Buckets) string
}
