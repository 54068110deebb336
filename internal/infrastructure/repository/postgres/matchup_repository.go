package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
	qb "github.com/mrftt12/Pickem/internal/platform/querybuilder"
)

type MatchupRepository struct {
	db *sqlx.DB
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) GetByID(ctx context.Context, matchupID int64) (matchup.Matchup, bool, error) {
	query, args, err := qb.Select("*").From("matchups").
		Where(
			qb.Eq("id", matchupID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return matchup.Matchup{}, false, fmt.Errorf("build get matchup by id query: %w", err)
	}

	var row matchupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchup.Matchup{}, false, nil
		}
		return matchup.Matchup{}, false, fmt.Errorf("get matchup by id: %w", err)
	}

	return matchupFromRow(row), true, nil
}

func (r *MatchupRepository) ListByWeek(ctx context.Context, weekID int64) ([]matchup.Matchup, error) {
	query, args, err := qb.Select("*").From("matchups").
		Where(
			qb.Eq("week_id", weekID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("game_time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matchups query: %w", err)
	}

	var rows []matchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matchups by week: %w", err)
	}

	out := make([]matchup.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchupFromRow(row))
	}
	return out, nil
}

func (r *MatchupRepository) Create(ctx context.Context, item matchup.Matchup) (matchup.Matchup, error) {
	insertModel := matchupInsertModel{
		WeekID:         item.WeekID,
		ExternalGameID: item.ExternalGameID,
		HomeTeam:       item.HomeTeam,
		AwayTeam:       item.AwayTeam,
		HomeTeamAbbr:   item.HomeTeamAbbr,
		AwayTeamAbbr:   item.AwayTeamAbbr,
		PointSpread:    item.PointSpread,
		SpreadFavor:    string(item.SpreadFavor),
		GameTime:       item.GameTime,
		Status:         item.Status,
	}
	query, args, err := qb.InsertModel("matchups", insertModel, "RETURNING id, created_at, updated_at")
	if err != nil {
		return matchup.Matchup{}, fmt.Errorf("build insert matchup query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return matchup.Matchup{}, fmt.Errorf("insert matchup: %w", err)
	}
	return item, nil
}

func (r *MatchupRepository) UpdateScore(ctx context.Context, matchupID int64, homeScore, awayScore int, status string) error {
	query, args, err := qb.Update("matchups").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		Set("status", status).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", matchupID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update matchup score query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update matchup score: %w", err)
	}
	return nil
}

func matchupFromRow(row matchupTableModel) matchup.Matchup {
	return matchup.Matchup{
		ID:             row.ID,
		WeekID:         row.WeekID,
		ExternalGameID: row.ExternalGameID,
		HomeTeam:       row.HomeTeam,
		AwayTeam:       row.AwayTeam,
		HomeTeamAbbr:   row.HomeTeamAbbr,
		AwayTeamAbbr:   row.AwayTeamAbbr,
		PointSpread:    row.PointSpread,
		SpreadFavor:    matchup.Side(row.SpreadFavor),
		GameTime:       row.GameTime,
		HomeScore:      nullInt64ToIntPtr(row.HomeScore),
		AwayScore:      nullInt64ToIntPtr(row.AwayScore),
		Status:         row.Status,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
