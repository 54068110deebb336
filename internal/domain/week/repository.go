package week

import "context"

type Repository interface {
	GetByID(ctx context.Context, weekID int64) (Week, bool, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]Week, error)
	Create(ctx context.Context, item Week) (Week, error)
	SetLocked(ctx context.Context, weekID int64, locked bool) error
	SetScored(ctx context.Context, weekID int64, scored bool) error
}
