package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mrftt12/Pickem/internal/domain/week"
	qb "github.com/mrftt12/Pickem/internal/platform/querybuilder"
)

type WeekRepository struct {
	db *sqlx.DB
}

func NewWeekRepository(db *sqlx.DB) *WeekRepository {
	return &WeekRepository{db: db}
}

func (r *WeekRepository) GetByID(ctx context.Context, weekID int64) (week.Week, bool, error) {
	query, args, err := qb.Select("*").From("weeks").
		Where(
			qb.Eq("id", weekID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return week.Week{}, false, fmt.Errorf("build get week by id query: %w", err)
	}

	var row weekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return week.Week{}, false, nil
		}
		return week.Week{}, false, fmt.Errorf("get week by id: %w", err)
	}

	return weekFromRow(row), true, nil
}

func (r *WeekRepository) ListBySeason(ctx context.Context, seasonID int64) ([]week.Week, error) {
	query, args, err := qb.Select("*").From("weeks").
		Where(
			qb.Eq("season_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("week_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list weeks query: %w", err)
	}

	var rows []weekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list weeks by season: %w", err)
	}

	out := make([]week.Week, 0, len(rows))
	for _, row := range rows {
		out = append(out, weekFromRow(row))
	}
	return out, nil
}

func (r *WeekRepository) Create(ctx context.Context, item week.Week) (week.Week, error) {
	insertModel := weekInsertModel{
		SeasonID:   item.SeasonID,
		WeekNumber: item.WeekNumber,
		StartDate:  item.StartDate,
		EndDate:    item.EndDate,
		IsLocked:   item.IsLocked,
		IsScored:   item.IsScored,
	}
	query, args, err := qb.InsertModel("weeks", insertModel, "RETURNING id, created_at, updated_at")
	if err != nil {
		return week.Week{}, fmt.Errorf("build insert week query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return week.Week{}, fmt.Errorf("insert week: %w", err)
	}
	return item, nil
}

func (r *WeekRepository) SetLocked(ctx context.Context, weekID int64, locked bool) error {
	query, args, err := qb.Update("weeks").
		Set("is_locked", locked).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", weekID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set week locked query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set week locked: %w", err)
	}
	return nil
}

func (r *WeekRepository) SetScored(ctx context.Context, weekID int64, scored bool) error {
	query, args, err := qb.Update("weeks").
		Set("is_scored", scored).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", weekID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set week scored query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set week scored: %w", err)
	}
	return nil
}

func weekFromRow(row weekTableModel) week.Week {
	return week.Week{
		ID:         row.ID,
		SeasonID:   row.SeasonID,
		WeekNumber: row.WeekNumber,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		IsLocked:   row.IsLocked,
		IsScored:   row.IsScored,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
