package httpapi

import (
	"net/http"

	"github.com/mrftt12/Pickem/internal/usecase"
)

type scoreWeekJobRequest struct {
	WeekID int64 `json:"week_id" validate:"required,gt=0"`
}

type scorePendingWeeksJobRequest struct {
	SeasonID   int64 `json:"season_id" validate:"omitempty,gt=0"`
	MaxWorkers int   `json:"max_workers" validate:"omitempty,gt=0"`
}

type seasonLeaderboardJobRequest struct {
	SeasonID int64 `json:"season_id" validate:"required,gt=0"`
}

type weekScoreResultDTO struct {
	WeekID    int64            `json:"week_id"`
	Entries   []weeklyEntryDTO `json:"entries"`
	PrizePool prizePoolDTO     `json:"prize_pool"`
}

func weekScoreResultToDTO(result usecase.WeekScoreResult) weekScoreResultDTO {
	entries := make([]weeklyEntryDTO, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, weeklyEntryToDTO(e))
	}

	return weekScoreResultDTO{
		WeekID:    result.WeekID,
		Entries:   entries,
		PrizePool: prizePoolToDTO(result.PrizePool),
	}
}

func (h *Handler) RunScoreWeekJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunScoreWeekJob")
	defer span.End()

	var req scoreWeekJobRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.scoringService.ScoreWeek(ctx, req.WeekID)
	if err != nil {
		h.logger.WarnContext(ctx, "run score week job failed", "week_id", req.WeekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekScoreResultToDTO(result))
}

func (h *Handler) RunScorePendingWeeksJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunScorePendingWeeksJob")
	defer span.End()

	var req scorePendingWeeksJobRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.jobService.ScorePendingWeeks(ctx, usecase.ScorePendingWeeksInput{
		SeasonID:   req.SeasonID,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run score pending weeks job failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunSyncScoresJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncScoresJob")
	defer span.End()

	var req scoreWeekJobRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncService.SyncWeekScores(ctx, req.WeekID)
	if err != nil {
		h.logger.WarnContext(ctx, "run sync scores job failed", "week_id", req.WeekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunWeeklyLeaderboardJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWeeklyLeaderboardJob")
	defer span.End()

	var req scoreWeekJobRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.scoringService.CalculateWeeklyLeaderboard(ctx, req.WeekID)
	if err != nil {
		h.logger.WarnContext(ctx, "run weekly leaderboard job failed", "week_id", req.WeekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]weeklyEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, weeklyEntryToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RunSeasonLeaderboardJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSeasonLeaderboardJob")
	defer span.End()

	var req seasonLeaderboardJobRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.seasonService.CalculateSeasonalLeaderboard(ctx, req.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "run season leaderboard job failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, seasonEntryToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
