package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mrftt12/Pickem/internal/domain/season"
	qb "github.com/mrftt12/Pickem/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season by id query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by id: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("is_active", true),
			qb.IsNull("deleted_at"),
		).
		OrderBy("year DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get active season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get active season: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	insertModel := seasonInsertModel{
		Year:      item.Year,
		StartDate: item.StartDate,
		EndDate:   item.EndDate,
		IsActive:  item.IsActive,
	}
	query, args, err := qb.InsertModel("seasons", insertModel, "RETURNING id, created_at, updated_at")
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return season.Season{}, fmt.Errorf("insert season: %w", err)
	}
	return item, nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:        row.ID,
		Year:      row.Year,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
