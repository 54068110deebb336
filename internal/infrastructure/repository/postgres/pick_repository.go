package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mrftt12/Pickem/internal/domain/pick"
	qb "github.com/mrftt12/Pickem/internal/platform/querybuilder"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

func (r *PickRepository) GetByID(ctx context.Context, pickID int64) (pick.Pick, bool, error) {
	query, args, err := qb.Select("*").From("picks").
		Where(
			qb.Eq("id", pickID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return pick.Pick{}, false, fmt.Errorf("build get pick by id query: %w", err)
	}

	var row pickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pick.Pick{}, false, nil
		}
		return pick.Pick{}, false, fmt.Errorf("get pick by id: %w", err)
	}

	return pickFromRow(row), true, nil
}

func (r *PickRepository) ListByMatchup(ctx context.Context, matchupID int64) ([]pick.Pick, error) {
	query, args, err := qb.Select("*").From("picks").
		Where(
			qb.Eq("matchup_id", matchupID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks by matchup query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks by matchup: %w", err)
	}

	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}
	return out, nil
}

func (r *PickRepository) ListByUserWeek(ctx context.Context, userID, weekID int64) ([]pick.Pick, error) {
	query, args, err := qb.Select("*").From("picks").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("week_id", weekID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("matchup_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks by user week query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks by user week: %w", err)
	}

	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}
	return out, nil
}

func (r *PickRepository) Upsert(ctx context.Context, item pick.Pick) (pick.Pick, error) {
	insertModel := pickInsertModel{
		UserID:     item.UserID,
		MatchupID:  item.MatchupID,
		WeekID:     item.WeekID,
		PickedTeam: item.PickedTeam,
	}
	query, args, err := qb.InsertModel("picks", insertModel, `ON CONFLICT (user_id, matchup_id) WHERE deleted_at IS NULL
DO UPDATE SET
    picked_team = EXCLUDED.picked_team,
    week_id = EXCLUDED.week_id,
    is_correct = NULL,
    updated_at = NOW()
RETURNING id, created_at, updated_at`)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("build upsert pick query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return pick.Pick{}, fmt.Errorf("upsert pick: %w", err)
	}
	item.Verdict = pick.VerdictUnscored
	return item, nil
}

func (r *PickRepository) UpdateVerdict(ctx context.Context, pickID int64, verdict pick.Verdict) error {
	query, args, err := qb.Update("picks").
		Set("is_correct", boolPtrToNull(verdict.Bool())).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", pickID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update pick verdict query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update pick verdict: %w", err)
	}
	return nil
}

func (r *PickRepository) Delete(ctx context.Context, pickID int64) error {
	query, args, err := qb.Update("picks").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("id", pickID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete pick query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete pick: %w", err)
	}
	return nil
}

func pickFromRow(row pickTableModel) pick.Pick {
	return pick.Pick{
		ID:         row.ID,
		UserID:     row.UserID,
		MatchupID:  row.MatchupID,
		WeekID:     row.WeekID,
		PickedTeam: row.PickedTeam,
		Verdict:    pick.VerdictFromBool(nullBoolToPtr(row.IsCorrect)),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
