package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/pick"
	"github.com/mrftt12/Pickem/internal/usecase"
)

type pickDTO struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	MatchupID  int64     `json:"matchup_id"`
	WeekID     int64     `json:"week_id"`
	PickedTeam string    `json:"picked_team"`
	Verdict    string    `json:"verdict"`
	IsCorrect  *bool     `json:"is_correct"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type submitPickRequest struct {
	MatchupID  int64  `json:"matchup_id" validate:"required,gt=0"`
	PickedTeam string `json:"picked_team" validate:"required,min=2,max=5"`
}

func pickToDTO(p pick.Pick) pickDTO {
	return pickDTO{
		ID:         p.ID,
		UserID:     p.UserID,
		MatchupID:  p.MatchupID,
		WeekID:     p.WeekID,
		PickedTeam: p.PickedTeam,
		Verdict:    p.Verdict.String(),
		IsCorrect:  p.Verdict.Bool(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (h *Handler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	var req submitPickRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	submitted, err := h.pickService.SubmitPick(ctx, usecase.SubmitPickInput{
		UserID:     principal.UserID,
		MatchupID:  req.MatchupID,
		PickedTeam: req.PickedTeam,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit pick failed", "user_id", principal.UserID, "matchup_id", req.MatchupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pickToDTO(submitted))
}

func (h *Handler) ListMyWeekPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyWeekPicks")
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

	picks, err := h.pickService.ListUserWeekPicks(ctx, principal.UserID, weekID)
	if err != nil {
		h.logger.WarnContext(ctx, "list week picks failed", "user_id", principal.UserID, "week_id", weekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pickDTO, 0, len(picks))
	for _, p := range picks {
		items = append(items, pickToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) DeletePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	pickID, err := pathID(r, "pickID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.pickService.DeletePick(ctx, principal.UserID, pickID); err != nil {
		h.logger.WarnContext(ctx, "delete pick failed", "user_id", principal.UserID, "pick_id", pickID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
