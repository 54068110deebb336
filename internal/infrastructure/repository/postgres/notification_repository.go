package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mrftt12/Pickem/internal/domain/notification"
	qb "github.com/mrftt12/Pickem/internal/platform/querybuilder"
)

type NotificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, item notification.Notification) error {
	insertModel := notificationInsertModel{
		UserID:   item.UserID,
		Type:     item.Type,
		WeekID:   int64PtrToNull(item.WeekID),
		SeasonID: int64PtrToNull(item.SeasonID),
		Status:   item.Status,
	}
	query, args, err := qb.InsertModel("notifications", insertModel, `ON CONFLICT (user_id, type, week_id) WHERE deleted_at IS NULL
DO NOTHING`)
	if err != nil {
		return fmt.Errorf("build enqueue notification query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListPending(ctx context.Context) ([]notification.Notification, error) {
	query, args, err := qb.Select("*").From("notifications").
		Where(
			qb.Eq("status", notification.StatusPending),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list pending notifications query: %w", err)
	}

	var rows []notificationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pending notifications: %w", err)
	}

	out := make([]notification.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, notification.Notification{
			ID:        row.ID,
			UserID:    row.UserID,
			Type:      row.Type,
			WeekID:    nullInt64ToInt64Ptr(row.WeekID),
			SeasonID:  nullInt64ToInt64Ptr(row.SeasonID),
			Status:    row.Status,
			SentAt:    row.SentAt,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *NotificationRepository) UpdateStatus(ctx context.Context, notificationID int64, status string) error {
	builder := qb.Update("notifications").Set("status", status)
	if status == notification.StatusSent {
		builder.SetExpr("sent_at", "NOW()")
	}
	builder.Where(
		qb.Eq("id", notificationID),
		qb.IsNull("deleted_at"),
	)

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build update notification status query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update notification status: %w", err)
	}
	return nil
}
