package notify

import "context"

// Notifier tells the user something needs their attention.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
