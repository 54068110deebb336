package httpapi

import (
	"net/http"

	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
)

type weeklyEntryDTO struct {
	WeekID           int64  `json:"week_id"`
	UserID           int64  `json:"user_id"`
	CorrectPicks     int    `json:"correct_picks"`
	TotalPicks       int    `json:"total_picks"`
	Rank             int    `json:"rank"`
	PrizeAmountCents *int64 `json:"prize_amount_cents"`
}

type seasonEntryDTO struct {
	SeasonID          int64 `json:"season_id"`
	UserID            int64 `json:"user_id"`
	TotalCorrectPicks int   `json:"total_correct_picks"`
	TotalPicks        int   `json:"total_picks"`
	Rank              int   `json:"rank"`
}

type prizePoolDTO struct {
	WeekID              int64  `json:"week_id"`
	TotalCollectedCents int64  `json:"total_collected_cents"`
	ParticipantCount    int    `json:"participant_count"`
	WinnerCount         int    `json:"winner_count"`
	PrizePerWinnerCents *int64 `json:"prize_per_winner_cents"`
}

func weeklyEntryToDTO(e leaderboard.WeeklyEntry) weeklyEntryDTO {
	return weeklyEntryDTO{
		WeekID:           e.WeekID,
		UserID:           e.UserID,
		CorrectPicks:     e.CorrectPicks,
		TotalPicks:       e.TotalPicks,
		Rank:             e.Rank,
		PrizeAmountCents: e.PrizeAmount,
	}
}

func seasonEntryToDTO(e leaderboard.SeasonEntry) seasonEntryDTO {
	return seasonEntryDTO{
		SeasonID:          e.SeasonID,
		UserID:            e.UserID,
		TotalCorrectPicks: e.TotalCorrectPicks,
		TotalPicks:        e.TotalPicks,
		Rank:              e.Rank,
	}
}

func prizePoolToDTO(p leaderboard.PrizePool) prizePoolDTO {
	return prizePoolDTO{
		WeekID:              p.WeekID,
		TotalCollectedCents: p.TotalCollected,
		ParticipantCount:    p.ParticipantCount,
		WinnerCount:         p.WinnerCount,
		PrizePerWinnerCents: p.PrizePerWinner,
	}
}

func (h *Handler) GetWeeklyLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeeklyLeaderboard")
	defer span.End()

	weekID, err := pathID(r, "weekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.leaderboardService.GetWeeklyLeaderboard(ctx, weekID)
	if err != nil {
		h.logger.WarnContext(ctx, "get weekly leaderboard failed", "week_id", weekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]weeklyEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, weeklyEntryToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeasonLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonLeaderboard")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.leaderboardService.GetSeasonLeaderboard(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season leaderboard failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, seasonEntryToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPrizePool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPrizePool")
	defer span.End()

	weekID, err := pathID(r, "weekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	pool, err := h.leaderboardService.GetPrizePool(ctx, weekID)
	if err != nil {
		h.logger.WarnContext(ctx, "get prize pool failed", "week_id", weekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, prizePoolToDTO(pool))
}
