package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/payment"
	"github.com/mrftt12/Pickem/internal/usecase"
)

type paymentDTO struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	WeekID      int64     `json:"week_id"`
	AmountCents int64     `json:"amount_cents"`
	Status      string    `json:"status"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type recordPaymentRequest struct {
	WeekID      int64  `json:"week_id" validate:"required,gt=0"`
	AmountCents int64  `json:"amount_cents" validate:"omitempty,gt=0"`
	ProviderRef string `json:"provider_ref" validate:"omitempty,max=100"`
}

type updatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed failed refunded"`
}

func paymentToDTO(p payment.Payment) paymentDTO {
	return paymentDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		WeekID:      p.WeekID,
		AmountCents: p.Amount,
		Status:      p.Status,
		ProviderRef: p.ProviderRef,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPayment")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	var req recordPaymentRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	recorded, err := h.paymentService.RecordPayment(ctx, usecase.RecordPaymentInput{
		UserID:      principal.UserID,
		WeekID:      req.WeekID,
		Amount:      req.AmountCents,
		ProviderRef: req.ProviderRef,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record payment failed", "user_id", principal.UserID, "week_id", req.WeekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, paymentToDTO(recorded))
}

func (h *Handler) GetMyWeekPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyWeekPayment")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	weekID, err := pathID(r, "weekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.paymentService.GetUserWeekPayment(ctx, principal.UserID, weekID)
	if err != nil {
		h.logger.WarnContext(ctx, "get week payment failed", "user_id", principal.UserID, "week_id", weekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, paymentToDTO(p))
}

func (h *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePaymentStatus")
	defer span.End()

	paymentID, err := pathID(r, "paymentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePaymentStatusRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.paymentService.UpdatePaymentStatus(ctx, paymentID, req.Status)
	if err != nil {
		h.logger.WarnContext(ctx, "update payment status failed", "payment_id", paymentID, "status", req.Status, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, paymentToDTO(updated))
}
