package postgres

import "time"

type weekTableModel struct {
	ID         int64      `db:"id"`
	SeasonID   int64      `db:"season_id"`
	WeekNumber int        `db:"week_number"`
	StartDate  time.Time  `db:"start_date"`
	EndDate    time.Time  `db:"end_date"`
	IsLocked   bool       `db:"is_locked"`
	IsScored   bool       `db:"is_scored"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type weekInsertModel struct {
	SeasonID   int64     `db:"season_id"`
	WeekNumber int       `db:"week_number"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	IsLocked   bool      `db:"is_locked"`
	IsScored   bool      `db:"is_scored"`
}
