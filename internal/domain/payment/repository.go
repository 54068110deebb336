package payment

import "context"

type Repository interface {
	GetByID(ctx context.Context, paymentID int64) (Payment, bool, error)
	GetByUserWeek(ctx context.Context, userID, weekID int64) (Payment, bool, error)
	ListByWeek(ctx context.Context, weekID int64) ([]Payment, error)
	Create(ctx context.Context, item Payment) (Payment, error)
	UpdateStatus(ctx context.Context, paymentID int64, status string) error
}
