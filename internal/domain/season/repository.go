package season

import "context"

// Repository exposes season read operations.
type Repository interface {
	GetByID(ctx context.Context, seasonID int64) (Season, bool, error)
	GetActive(ctx context.Context) (Season, bool, error)
	Create(ctx context.Context, item Season) (Season, error)
}
