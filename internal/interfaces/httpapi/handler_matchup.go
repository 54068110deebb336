package httpapi

import (
	"net/http"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/usecase"
)

type matchupDTO struct {
	ID             int64     `json:"id"`
	WeekID         int64     `json:"week_id"`
	ExternalGameID string    `json:"external_game_id,omitempty"`
	HomeTeam       string    `json:"home_team"`
	AwayTeam       string    `json:"away_team"`
	HomeTeamAbbr   string    `json:"home_team_abbr"`
	AwayTeamAbbr   string    `json:"away_team_abbr"`
	PointSpread    float64   `json:"point_spread"`
	SpreadFavor    string    `json:"spread_favor"`
	GameTime       time.Time `json:"game_time"`
	HomeScore      *int      `json:"home_score"`
	AwayScore      *int      `json:"away_score"`
	Status         string    `json:"status"`
}

type createMatchupRequest struct {
	WeekID         int64     `json:"week_id" validate:"required,gt=0"`
	ExternalGameID string    `json:"external_game_id" validate:"omitempty,max=40"`
	HomeTeam       string    `json:"home_team" validate:"required,max=100"`
	AwayTeam       string    `json:"away_team" validate:"required,max=100"`
	HomeTeamAbbr   string    `json:"home_team_abbr" validate:"required,min=2,max=5"`
	AwayTeamAbbr   string    `json:"away_team_abbr" validate:"required,min=2,max=5"`
	PointSpread    float64   `json:"point_spread"`
	SpreadFavor    string    `json:"spread_favor" validate:"required,oneof=home away"`
	GameTime       time.Time `json:"game_time" validate:"required"`
}

type updateScoreRequest struct {
	HomeScore *int   `json:"home_score" validate:"required,gte=0"`
	AwayScore *int   `json:"away_score" validate:"required,gte=0"`
	Status    string `json:"status" validate:"required,oneof=scheduled live final"`
}

func matchupToDTO(m matchup.Matchup) matchupDTO {
	return matchupDTO{
		ID:             m.ID,
		WeekID:         m.WeekID,
		ExternalGameID: m.ExternalGameID,
		HomeTeam:       m.HomeTeam,
		AwayTeam:       m.AwayTeam,
		HomeTeamAbbr:   m.HomeTeamAbbr,
		AwayTeamAbbr:   m.AwayTeamAbbr,
		PointSpread:    m.PointSpread,
		SpreadFavor:    string(m.SpreadFavor),
		GameTime:       m.GameTime,
		HomeScore:      m.HomeScore,
		AwayScore:      m.AwayScore,
		Status:         m.Status,
	}
}

func (h *Handler) ListWeekMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeekMatchups")
	defer span.End()

	weekID, err := pathID(r, "weekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchups, err := h.matchupService.ListWeekMatchups(ctx, weekID)
	if err != nil {
		h.logger.WarnContext(ctx, "list week matchups failed", "week_id", weekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchupDTO, 0, len(matchups))
	for _, m := range matchups {
		items = append(items, matchupToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchup")
	defer span.End()

	matchupID, err := pathID(r, "matchupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchupService.GetMatchup(ctx, matchupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchup failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupToDTO(m))
}

func (h *Handler) CreateMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchup")
	defer span.End()

	var req createMatchupRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchupService.CreateMatchup(ctx, usecase.CreateMatchupInput{
		WeekID:         req.WeekID,
		ExternalGameID: req.ExternalGameID,
		HomeTeam:       req.HomeTeam,
		AwayTeam:       req.AwayTeam,
		HomeTeamAbbr:   req.HomeTeamAbbr,
		AwayTeamAbbr:   req.AwayTeamAbbr,
		PointSpread:    req.PointSpread,
		SpreadFavor:    req.SpreadFavor,
		GameTime:       req.GameTime,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create matchup failed", "week_id", req.WeekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchupToDTO(created))
}

func (h *Handler) UpdateMatchupScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchupScore")
	defer span.End()

	matchupID, err := pathID(r, "matchupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateScoreRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchupService.UpdateScore(ctx, usecase.UpdateScoreInput{
		MatchupID: matchupID,
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
		Status:    req.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update matchup score failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupToDTO(updated))
}
