package httpapi

import (
	"net/http"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
	"github.com/mrftt12/Pickem/internal/usecase"
)

type seasonDTO struct {
	ID        int64     `json:"id"`
	Year      int       `json:"year"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
}

type weekDTO struct {
	ID         int64     `json:"id"`
	SeasonID   int64     `json:"season_id"`
	WeekNumber int       `json:"week_number"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	IsLocked   bool      `json:"is_locked"`
	IsScored   bool      `json:"is_scored"`
}

type createSeasonRequest struct {
	Year      int       `json:"year" validate:"required,gte=1970"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	IsActive  bool      `json:"is_active"`
}

type createWeekRequest struct {
	SeasonID   int64     `json:"season_id" validate:"required,gt=0"`
	WeekNumber int       `json:"week_number" validate:"required,gt=0"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

type setWeekLockedRequest struct {
	Locked *bool `json:"locked" validate:"required"`
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{
		ID:        s.ID,
		Year:      s.Year,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		IsActive:  s.IsActive,
	}
}

func weekToDTO(w week.Week) weekDTO {
	return weekDTO{
		ID:         w.ID,
		SeasonID:   w.SeasonID,
		WeekNumber: w.WeekNumber,
		StartDate:  w.StartDate,
		EndDate:    w.EndDate,
		IsLocked:   w.IsLocked,
		IsScored:   w.IsScored,
	}
}

func (h *Handler) GetActiveSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveSeason")
	defer span.End()

	active, err := h.seasonService.GetActiveSeason(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get active season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(active))
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req createSeasonRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.seasonService.CreateSeason(ctx, usecase.CreateSeasonInput{
		Year:      req.Year,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(created))
}

func (h *Handler) ListSeasonWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonWeeks")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	weeks, err := h.weekService.ListSeasonWeeks(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season weeks failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]weekDTO, 0, len(weeks))
	for _, wk := range weeks {
		items = append(items, weekToDTO(wk))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeek")
	defer span.End()

	weekID, err := pathID(r, "weekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	wk, err := h.weekService.GetWeek(ctx, weekID)
	if err != nil {
		h.logger.WarnContext(ctx, "get week failed", "week_id", weekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekToDTO(wk))
}

func (h *Handler) CreateWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateWeek")
	defer span.End()

	var req createWeekRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.weekService.CreateWeek(ctx, usecase.CreateWeekInput{
		SeasonID:   req.SeasonID,
		WeekNumber: req.WeekNumber,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create week failed", "season_id", req.SeasonID, "week_number", req.WeekNumber, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, weekToDTO(created))
}

func (h *Handler) SetWeekLocked(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetWeekLocked")
	defer span.End()

	weekID, err := pathID(r, "weekID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setWeekLockedRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.weekService.SetWeekLocked(ctx, weekID, *req.Locked)
	if err != nil {
		h.logger.WarnContext(ctx, "set week locked failed", "week_id", weekID, "locked", *req.Locked, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekToDTO(updated))
}
