package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mrftt12/Pickem/internal/domain/payment"
	qb "github.com/mrftt12/Pickem/internal/platform/querybuilder"
)

type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) GetByID(ctx context.Context, paymentID int64) (payment.Payment, bool, error) {
	query, args, err := qb.Select("*").From("payments").
		Where(
			qb.Eq("id", paymentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return payment.Payment{}, false, fmt.Errorf("build get payment by id query: %w", err)
	}

	var row paymentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return payment.Payment{}, false, nil
		}
		return payment.Payment{}, false, fmt.Errorf("get payment by id: %w", err)
	}

	return paymentFromRow(row), true, nil
}

func (r *PaymentRepository) GetByUserWeek(ctx context.Context, userID, weekID int64) (payment.Payment, bool, error) {
	query, args, err := qb.Select("*").From("payments").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("week_id", weekID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return payment.Payment{}, false, fmt.Errorf("build get payment by user week query: %w", err)
	}

	var row paymentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return payment.Payment{}, false, nil
		}
		return payment.Payment{}, false, fmt.Errorf("get payment by user week: %w", err)
	}

	return paymentFromRow(row), true, nil
}

func (r *PaymentRepository) ListByWeek(ctx context.Context, weekID int64) ([]payment.Payment, error) {
	query, args, err := qb.Select("*").From("payments").
		Where(
			qb.Eq("week_id", weekID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list payments query: %w", err)
	}

	var rows []paymentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list payments by week: %w", err)
	}

	out := make([]payment.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, paymentFromRow(row))
	}
	return out, nil
}

func (r *PaymentRepository) Create(ctx context.Context, item payment.Payment) (payment.Payment, error) {
	insertModel := paymentInsertModel{
		UserID:      item.UserID,
		WeekID:      item.WeekID,
		AmountCents: item.Amount,
		Status:      item.Status,
		ProviderRef: item.ProviderRef,
	}
	query, args, err := qb.InsertModel("payments", insertModel, "RETURNING id, created_at, updated_at")
	if err != nil {
		return payment.Payment{}, fmt.Errorf("build insert payment query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return payment.Payment{}, fmt.Errorf("insert payment: %w", err)
	}
	return item, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, paymentID int64, status string) error {
	query, args, err := qb.Update("payments").
		Set("status", status).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", paymentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update payment status query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return nil
}

func paymentFromRow(row paymentTableModel) payment.Payment {
	return payment.Payment{
		ID:          row.ID,
		UserID:      row.UserID,
		WeekID:      row.WeekID,
		Amount:      row.AmountCents,
		Status:      row.Status,
		ProviderRef: row.ProviderRef,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
