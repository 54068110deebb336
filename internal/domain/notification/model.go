package notification

import "time"

const (
	TypeWeeklyWinner    = "weekly_winner"
	TypeSeasonalWinner  = "seasonal_winner"
	TypePaymentReminder = "payment_reminder"
	TypeWeekOpen        = "week_open"
	TypeWeekClosing     = "week_closing"
)

const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Notification is a pending outbound message. Delivery is owned by an
// external worker; this service only enqueues rows.
type Notification struct {
	ID        int64
	UserID    int64
	Type      string
	WeekID    *int64
	SeasonID  *int64
	Status    string
	SentAt    *time.Time
	CreatedAt time.Time
}
