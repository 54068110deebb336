package memory

import (
	"context"
	"sync"

	"github.com/mrftt12/Pickem/internal/domain/notification"
)

type NotificationRepository struct {
	mu     sync.RWMutex
	items  []notification.Notification
	nextID int64
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Enqueue(_ context.Context, item notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.UserID == item.UserID && existing.Type == item.Type && equalWeekID(existing.WeekID, item.WeekID) {
			return nil
		}
	}

	r.nextID++
	item.ID = r.nextID
	r.items = append(r.items, item)
	return nil
}

func (r *NotificationRepository) ListPending(_ context.Context) ([]notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notification.Notification, 0)
	for _, item := range r.items {
		if item.Status == notification.StatusPending {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *NotificationRepository) UpdateStatus(_ context.Context, notificationID int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID == notificationID {
			r.items[idx].Status = status
		}
	}
	return nil
}

func equalWeekID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
