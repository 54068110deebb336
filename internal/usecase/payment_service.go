package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/payment"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

type RecordPaymentInput struct {
	UserID      int64
	WeekID      int64
	Amount      int64
	ProviderRef string
}

// PaymentService records entry fees. Charging is owned by an external
// provider; this service tracks one payment row per (user, week) and its
// status transitions. Only completed rows feed the prize pool.
type PaymentService struct {
	paymentRepo   payment.Repository
	weekRepo      week.Repository
	entryFeeCents int64
	now           func() time.Time
}

func NewPaymentService(paymentRepo payment.Repository, weekRepo week.Repository, entryFeeCents int64) *PaymentService {
	return &PaymentService{
		paymentRepo:   paymentRepo,
		weekRepo:      weekRepo,
		entryFeeCents: entryFeeCents,
		now:           time.Now,
	}
}

// RecordPayment opens a pending payment for the user's weekly entry fee.
// A second attempt for the same (user, week) returns the existing row.
func (s *PaymentService) RecordPayment(ctx context.Context, input RecordPaymentInput) (payment.Payment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PaymentService.RecordPayment")
	defer span.End()

	if input.UserID <= 0 {
		return payment.Payment{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	amount := input.Amount
	if amount == 0 {
		amount = s.entryFeeCents
	}
	if amount <= 0 {
		return payment.Payment{}, fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}

	wk, exists, err := s.weekRepo.GetByID(ctx, input.WeekID)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("get week for payment: %w", err)
	}
	if !exists {
		return payment.Payment{}, fmt.Errorf("%w: week=%d", ErrNotFound, input.WeekID)
	}
	if wk.IsLocked {
		return payment.Payment{}, fmt.Errorf("%w: week %d is locked", ErrInvalidInput, wk.ID)
	}

	if existing, found, err := s.paymentRepo.GetByUserWeek(ctx, input.UserID, input.WeekID); err != nil {
		return payment.Payment{}, fmt.Errorf("get payment user=%d week=%d: %w", input.UserID, input.WeekID, err)
	} else if found {
		return existing, nil
	}

	item := payment.Payment{
		UserID:      input.UserID,
		WeekID:      input.WeekID,
		Amount:      amount,
		Status:      payment.StatusPending,
		ProviderRef: strings.TrimSpace(input.ProviderRef),
		CreatedAt:   s.now().UTC(),
		UpdatedAt:   s.now().UTC(),
	}
	created, err := s.paymentRepo.Create(ctx, item)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("create payment user=%d week=%d: %w", input.UserID, input.WeekID, err)
	}
	return created, nil
}

// UpdatePaymentStatus applies a provider callback. Refunding a completed
// payment is allowed; any transition out of refunded is not.
func (s *PaymentService) UpdatePaymentStatus(ctx context.Context, paymentID int64, status string) (payment.Payment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PaymentService.UpdatePaymentStatus")
	defer span.End()

	status = strings.ToLower(strings.TrimSpace(status))
	if !payment.IsValidStatus(status) {
		return payment.Payment{}, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, status)
	}

	p, exists, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("get payment for status: %w", err)
	}
	if !exists {
		return payment.Payment{}, fmt.Errorf("%w: payment=%d", ErrNotFound, paymentID)
	}
	if p.Status == payment.StatusRefunded && status != payment.StatusRefunded {
		return payment.Payment{}, fmt.Errorf("%w: payment %d is refunded", ErrInvalidInput, paymentID)
	}

	if p.Status != status {
		if err := s.paymentRepo.UpdateStatus(ctx, paymentID, status); err != nil {
			return payment.Payment{}, fmt.Errorf("update payment status payment=%d: %w", paymentID, err)
		}
		p.Status = status
	}
	return p, nil
}

func (s *PaymentService) GetUserWeekPayment(ctx context.Context, userID, weekID int64) (payment.Payment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PaymentService.GetUserWeekPayment")
	defer span.End()

	p, exists, err := s.paymentRepo.GetByUserWeek(ctx, userID, weekID)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("get payment user=%d week=%d: %w", userID, weekID, err)
	}
	if !exists {
		return payment.Payment{}, fmt.Errorf("%w: payment user=%d week=%d", ErrNotFound, userID, weekID)
	}
	return p, nil
}
