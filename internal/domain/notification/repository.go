package notification

import "context"

type Repository interface {
	// Enqueue inserts the notification unless an equivalent row already
	// exists for (user, type, week), keeping rescoring runs from
	// duplicating winner messages.
	Enqueue(ctx context.Context, item Notification) error
	ListPending(ctx context.Context) ([]Notification, error)
	UpdateStatus(ctx context.Context, notificationID int64, status string) error
}
