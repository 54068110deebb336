package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mrftt12/Pickem/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo season, weeks, and opening slate into an
// empty database. A database that already has a season is left alone.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM seasons WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count seasons for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	seasonIDs := make(map[int64]int64)
	for _, s := range memory.SeedSeasons() {
		var id int64
		if err := tx.QueryRowxContext(ctx, `
INSERT INTO seasons (year, start_date, end_date, is_active)
VALUES ($1, $2, $3, $4)
RETURNING id`, s.Year, s.StartDate, s.EndDate, s.IsActive).Scan(&id); err != nil {
			return fmt.Errorf("seed season %d: %w", s.Year, err)
		}
		seasonIDs[s.ID] = id
	}

	weekIDs := make(map[int64]int64)
	for _, w := range memory.SeedWeeks() {
		var id int64
		if err := tx.QueryRowxContext(ctx, `
INSERT INTO weeks (season_id, week_number, start_date, end_date, is_locked, is_scored)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`, seasonIDs[w.SeasonID], w.WeekNumber, w.StartDate, w.EndDate, w.IsLocked, w.IsScored).Scan(&id); err != nil {
			return fmt.Errorf("seed week %d: %w", w.WeekNumber, err)
		}
		weekIDs[w.ID] = id
	}

	for _, m := range memory.SeedMatchups() {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO matchups (week_id, external_game_id, home_team, away_team, home_team_abbr, away_team_abbr, point_spread, spread_favor, game_time, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			weekIDs[m.WeekID], m.ExternalGameID, m.HomeTeam, m.AwayTeam,
			m.HomeTeamAbbr, m.AwayTeamAbbr, m.PointSpread, string(m.SpreadFavor),
			m.GameTime, m.Status); err != nil {
			return fmt.Errorf("seed matchup %s: %w", m.ExternalGameID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
