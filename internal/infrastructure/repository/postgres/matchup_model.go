package postgres

import (
	"database/sql"
	"time"
)

type matchupTableModel struct {
	ID             int64         `db:"id"`
	WeekID         int64         `db:"week_id"`
	ExternalGameID string        `db:"external_game_id"`
	HomeTeam       string        `db:"home_team"`
	AwayTeam       string        `db:"away_team"`
	HomeTeamAbbr   string        `db:"home_team_abbr"`
	AwayTeamAbbr   string        `db:"away_team_abbr"`
	PointSpread    float64       `db:"point_spread"`
	SpreadFavor    string        `db:"spread_favor"`
	GameTime       time.Time     `db:"game_time"`
	HomeScore      sql.NullInt64 `db:"home_score"`
	AwayScore      sql.NullInt64 `db:"away_score"`
	Status         string        `db:"status"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
	DeletedAt      *time.Time    `db:"deleted_at"`
}

type matchupInsertModel struct {
	WeekID         int64     `db:"week_id"`
	ExternalGameID string    `db:"external_game_id"`
	HomeTeam       string    `db:"home_team"`
	AwayTeam       string    `db:"away_team"`
	HomeTeamAbbr   string    `db:"home_team_abbr"`
	AwayTeamAbbr   string    `db:"away_team_abbr"`
	PointSpread    float64   `db:"point_spread"`
	SpreadFavor    string    `db:"spread_favor"`
	GameTime       time.Time `db:"game_time"`
	Status         string    `db:"status"`
}
