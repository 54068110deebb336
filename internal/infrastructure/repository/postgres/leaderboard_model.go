package postgres

import (
	"database/sql"
	"time"
)

type weeklyEntryTableModel struct {
	ID               int64         `db:"id"`
	WeekID           int64         `db:"week_id"`
	UserID           int64         `db:"user_id"`
	CorrectPicks     int           `db:"correct_picks"`
	TotalPicks       int           `db:"total_picks"`
	Rank             int           `db:"rank"`
	PrizeAmountCents sql.NullInt64 `db:"prize_amount_cents"`
	CreatedAt        time.Time     `db:"created_at"`
	DeletedAt        *time.Time    `db:"deleted_at"`
}

type weeklyEntryInsertModel struct {
	WeekID       int64 `db:"week_id"`
	UserID       int64 `db:"user_id"`
	CorrectPicks int   `db:"correct_picks"`
	TotalPicks   int   `db:"total_picks"`
	Rank         int   `db:"rank"`
}

type seasonEntryTableModel struct {
	ID                int64      `db:"id"`
	SeasonID          int64      `db:"season_id"`
	UserID            int64      `db:"user_id"`
	TotalCorrectPicks int        `db:"total_correct_picks"`
	TotalPicks        int        `db:"total_picks"`
	Rank              int        `db:"rank"`
	UpdatedAt         time.Time  `db:"updated_at"`
	DeletedAt         *time.Time `db:"deleted_at"`
}

type seasonEntryInsertModel struct {
	SeasonID          int64 `db:"season_id"`
	UserID            int64 `db:"user_id"`
	TotalCorrectPicks int   `db:"total_correct_picks"`
	TotalPicks        int   `db:"total_picks"`
	Rank              int   `db:"rank"`
}

type prizePoolTableModel struct {
	ID                  int64         `db:"id"`
	WeekID              int64         `db:"week_id"`
	TotalCollectedCents int64         `db:"total_collected_cents"`
	ParticipantCount    int           `db:"participant_count"`
	WinnerCount         int           `db:"winner_count"`
	PrizePerWinnerCents sql.NullInt64 `db:"prize_per_winner_cents"`
	UpdatedAt           time.Time     `db:"updated_at"`
	DeletedAt           *time.Time    `db:"deleted_at"`
}

type prizePoolInsertModel struct {
	WeekID              int64         `db:"week_id"`
	TotalCollectedCents int64         `db:"total_collected_cents"`
	ParticipantCount    int           `db:"participant_count"`
	WinnerCount         int           `db:"winner_count"`
	PrizePerWinnerCents sql.NullInt64 `db:"prize_per_winner_cents"`
}
