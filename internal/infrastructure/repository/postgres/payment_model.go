package postgres

import "time"

type paymentTableModel struct {
	ID          int64      `db:"id"`
	UserID      int64      `db:"user_id"`
	WeekID      int64      `db:"week_id"`
	AmountCents int64      `db:"amount_cents"`
	Status      string     `db:"status"`
	ProviderRef string     `db:"provider_ref"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type paymentInsertModel struct {
	UserID      int64  `db:"user_id"`
	WeekID      int64  `db:"week_id"`
	AmountCents int64  `db:"amount_cents"`
	Status      string `db:"status"`
	ProviderRef string `db:"provider_ref"`
}
