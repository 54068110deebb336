package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
	qb "github.com/mrftt12/Pickem/internal/platform/querybuilder"
)

type LeaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) ReplaceWeekly(ctx context.Context, weekID int64, entries []leaderboard.WeeklyEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace weekly leaderboard: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("weekly_leaderboard_entries").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("week_id", weekID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear weekly leaderboard query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear weekly leaderboard: %w", err)
	}

	for _, entry := range entries {
		insertModel := weeklyEntryInsertModel{
			WeekID:       entry.WeekID,
			UserID:       entry.UserID,
			CorrectPicks: entry.CorrectPicks,
			TotalPicks:   entry.TotalPicks,
			Rank:         entry.Rank,
		}
		query, args, err := qb.InsertModel("weekly_leaderboard_entries", insertModel, `ON CONFLICT (week_id, user_id) WHERE deleted_at IS NULL
DO UPDATE SET
    correct_picks = EXCLUDED.correct_picks,
    total_picks = EXCLUDED.total_picks,
    rank = EXCLUDED.rank,
    prize_amount_cents = NULL,
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert weekly entry query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert weekly entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace weekly leaderboard: %w", err)
	}
	return nil
}

func (r *LeaderboardRepository) ListWeekly(ctx context.Context, weekID int64) ([]leaderboard.WeeklyEntry, error) {
	query, args, err := qb.Select("*").From("weekly_leaderboard_entries").
		Where(
			qb.Eq("week_id", weekID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list weekly leaderboard query: %w", err)
	}

	var rows []weeklyEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list weekly leaderboard: %w", err)
	}

	out := make([]leaderboard.WeeklyEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboard.WeeklyEntry{
			WeekID:       row.WeekID,
			UserID:       row.UserID,
			CorrectPicks: row.CorrectPicks,
			TotalPicks:   row.TotalPicks,
			Rank:         row.Rank,
			PrizeAmount:  nullInt64ToInt64Ptr(row.PrizeAmountCents),
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}

func (r *LeaderboardRepository) SetWeeklyPrizeAmount(ctx context.Context, weekID, userID int64, amount int64) error {
	query, args, err := qb.Update("weekly_leaderboard_entries").
		Set("prize_amount_cents", amount).
		Where(
			qb.Eq("week_id", weekID),
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set weekly prize amount query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set weekly prize amount: %w", err)
	}
	return nil
}

func (r *LeaderboardRepository) ReplaceSeason(ctx context.Context, seasonID int64, entries []leaderboard.SeasonEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace season leaderboard: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("season_leaderboard_entries").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("season_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear season leaderboard query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear season leaderboard: %w", err)
	}

	for _, entry := range entries {
		insertModel := seasonEntryInsertModel{
			SeasonID:          entry.SeasonID,
			UserID:            entry.UserID,
			TotalCorrectPicks: entry.TotalCorrectPicks,
			TotalPicks:        entry.TotalPicks,
			Rank:              entry.Rank,
		}
		query, args, err := qb.InsertModel("season_leaderboard_entries", insertModel, `ON CONFLICT (season_id, user_id) WHERE deleted_at IS NULL
DO UPDATE SET
    total_correct_picks = EXCLUDED.total_correct_picks,
    total_picks = EXCLUDED.total_picks,
    rank = EXCLUDED.rank,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert season entry query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert season entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace season leaderboard: %w", err)
	}
	return nil
}

func (r *LeaderboardRepository) ListSeason(ctx context.Context, seasonID int64) ([]leaderboard.SeasonEntry, error) {
	query, args, err := qb.Select("*").From("season_leaderboard_entries").
		Where(
			qb.Eq("season_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season leaderboard query: %w", err)
	}

	var rows []seasonEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season leaderboard: %w", err)
	}

	out := make([]leaderboard.SeasonEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboard.SeasonEntry{
			SeasonID:          row.SeasonID,
			UserID:            row.UserID,
			TotalCorrectPicks: row.TotalCorrectPicks,
			TotalPicks:        row.TotalPicks,
			Rank:              row.Rank,
			UpdatedAt:         row.UpdatedAt,
		})
	}
	return out, nil
}

func (r *LeaderboardRepository) GetPrizePool(ctx context.Context, weekID int64) (leaderboard.PrizePool, bool, error) {
	query, args, err := qb.Select("*").From("prize_pools").
		Where(
			qb.Eq("week_id", weekID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return leaderboard.PrizePool{}, false, fmt.Errorf("build get prize pool query: %w", err)
	}

	var row prizePoolTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return leaderboard.PrizePool{}, false, nil
		}
		return leaderboard.PrizePool{}, false, fmt.Errorf("get prize pool: %w", err)
	}

	return leaderboard.PrizePool{
		WeekID:           row.WeekID,
		TotalCollected:   row.TotalCollectedCents,
		ParticipantCount: row.ParticipantCount,
		WinnerCount:      row.WinnerCount,
		PrizePerWinner:   nullInt64ToInt64Ptr(row.PrizePerWinnerCents),
		UpdatedAt:        row.UpdatedAt,
	}, true, nil
}

func (r *LeaderboardRepository) UpsertPrizePool(ctx context.Context, pool leaderboard.PrizePool) error {
	insertModel := prizePoolInsertModel{
		WeekID:              pool.WeekID,
		TotalCollectedCents: pool.TotalCollected,
		ParticipantCount:    pool.ParticipantCount,
		WinnerCount:         pool.WinnerCount,
		PrizePerWinnerCents: int64PtrToNull(pool.PrizePerWinner),
	}
	query, args, err := qb.InsertModel("prize_pools", insertModel, `ON CONFLICT (week_id) WHERE deleted_at IS NULL
DO UPDATE SET
    total_collected_cents = EXCLUDED.total_collected_cents,
    participant_count = EXCLUDED.participant_count,
    winner_count = EXCLUDED.winner_count,
    prize_per_winner_cents = EXCLUDED.prize_per_winner_cents,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert prize pool query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert prize pool: %w", err)
	}
	return nil
}
