package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mrftt12/Pickem/internal/domain/payment"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

func TestPaymentService_RecordPayment_DefaultsToEntryFee(t *testing.T) {
	t.Parallel()

	weekRepo := &stubWeekRepository{}
	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1})
	service := NewPaymentService(&stubPaymentRepository{}, weekRepo, 1000)

	created, err := service.RecordPayment(context.Background(), RecordPaymentInput{UserID: 10, WeekID: 1})
	if err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if created.Amount != 1000 || created.Status != payment.StatusPending {
		t.Fatalf("unexpected payment: %+v", created)
	}

	// A second attempt returns the open row instead of double-charging.
	again, err := service.RecordPayment(context.Background(), RecordPaymentInput{UserID: 10, WeekID: 1, Amount: 2000})
	if err != nil {
		t.Fatalf("repeat RecordPayment error: %v", err)
	}
	if again.ID != created.ID || again.Amount != 1000 {
		t.Fatalf("expected existing payment returned, got %+v", again)
	}
}

func TestPaymentService_RecordPayment_LockedWeek(t *testing.T) {
	t.Parallel()

	weekRepo := &stubWeekRepository{}
	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsLocked: true})
	service := NewPaymentService(&stubPaymentRepository{}, weekRepo, 1000)

	_, err := service.RecordPayment(context.Background(), RecordPaymentInput{UserID: 10, WeekID: 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for locked week, got %v", err)
	}
}

func TestPaymentService_UpdatePaymentStatus_Transitions(t *testing.T) {
	t.Parallel()

	weekRepo := &stubWeekRepository{}
	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1})
	paymentRepo := &stubPaymentRepository{}
	paymentRepo.seed(payment.Payment{ID: 1, UserID: 10, WeekID: 1, Amount: 1000, Status: payment.StatusPending})
	service := NewPaymentService(paymentRepo, weekRepo, 1000)

	updated, err := service.UpdatePaymentStatus(context.Background(), 1, "COMPLETED")
	if err != nil {
		t.Fatalf("UpdatePaymentStatus error: %v", err)
	}
	if updated.Status != payment.StatusCompleted {
		t.Fatalf("unexpected status: %s", updated.Status)
	}

	if _, err := service.UpdatePaymentStatus(context.Background(), 1, "chargeback"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}

	if _, err := service.UpdatePaymentStatus(context.Background(), 1, payment.StatusRefunded); err != nil {
		t.Fatalf("refund error: %v", err)
	}
	if _, err := service.UpdatePaymentStatus(context.Background(), 1, payment.StatusCompleted); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected refunds to be terminal, got %v", err)
	}
}
