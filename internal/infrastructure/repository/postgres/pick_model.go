package postgres

import (
	"database/sql"
	"time"
)

type pickTableModel struct {
	ID         int64        `db:"id"`
	UserID     int64        `db:"user_id"`
	MatchupID  int64        `db:"matchup_id"`
	WeekID     int64        `db:"week_id"`
	PickedTeam string       `db:"picked_team"`
	IsCorrect  sql.NullBool `db:"is_correct"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
	DeletedAt  *time.Time   `db:"deleted_at"`
}

type pickInsertModel struct {
	UserID     int64  `db:"user_id"`
	MatchupID  int64  `db:"matchup_id"`
	WeekID     int64  `db:"week_id"`
	PickedTeam string `db:"picked_team"`
}
