package postgres

import (
	"database/sql"
	"time"
)

type notificationTableModel struct {
	ID        int64         `db:"id"`
	UserID    int64         `db:"user_id"`
	Type      string        `db:"type"`
	WeekID    sql.NullInt64 `db:"week_id"`
	SeasonID  sql.NullInt64 `db:"season_id"`
	Status    string        `db:"status"`
	SentAt    *time.Time    `db:"sent_at"`
	CreatedAt time.Time     `db:"created_at"`
	DeletedAt *time.Time    `db:"deleted_at"`
}

type notificationInsertModel struct {
	UserID   int64         `db:"user_id"`
	Type     string        `db:"type"`
	WeekID   sql.NullInt64 `db:"week_id"`
	SeasonID sql.NullInt64 `db:"season_id"`
	Status   string        `db:"status"`
}
