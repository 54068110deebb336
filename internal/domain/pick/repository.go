package pick

import "context"

type Repository interface {
	GetByID(ctx context.Context, pickID int64) (Pick, bool, error)
	ListByMatchup(ctx context.Context, matchupID int64) ([]Pick, error)
	ListByUserWeek(ctx context.Context, userID, weekID int64) ([]Pick, error)
	// Upsert writes the pick keyed by (user, matchup), overwriting any
	// previous selection and clearing its verdict.
	Upsert(ctx context.Context, item Pick) (Pick, error)
	UpdateVerdict(ctx context.Context, pickID int64, verdict Verdict) error
	Delete(ctx context.Context, pickID int64) error
}
