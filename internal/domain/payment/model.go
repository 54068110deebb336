package payment

import (
	"strings"
	"time"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// Payment is one user's entry fee for one week. Amount is in minor currency
// units (cents). Only completed payments count toward the prize pool.
type Payment struct {
	ID          int64
	UserID      int64
	WeekID      int64
	Amount      int64
	Status      string
	ProviderRef string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func IsValidStatus(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	default:
		return false
	}
}
