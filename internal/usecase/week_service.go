package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

type CreateWeekInput struct {
	SeasonID   int64
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
}

// WeekService handles the admin side of the week lifecycle: creation,
// locking, and readback.
type WeekService struct {
	weekRepo   week.Repository
	seasonRepo season.Repository
	now        func() time.Time
}

func NewWeekService(weekRepo week.Repository, seasonRepo season.Repository) *WeekService {
	return &WeekService{
		weekRepo:   weekRepo,
		seasonRepo: seasonRepo,
		now:        time.Now,
	}
}

func (s *WeekService) CreateWeek(ctx context.Context, input CreateWeekInput) (week.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeekService.CreateWeek")
	defer span.End()

	if input.WeekNumber <= 0 {
		return week.Week{}, fmt.Errorf("%w: week number must be positive", ErrInvalidInput)
	}
	if !input.EndDate.After(input.StartDate) {
		return week.Week{}, fmt.Errorf("%w: week end date must follow start date", ErrInvalidInput)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, input.SeasonID)
	if err != nil {
		return week.Week{}, fmt.Errorf("get season for week: %w", err)
	}
	if !exists {
		return week.Week{}, fmt.Errorf("%w: season=%d", ErrNotFound, input.SeasonID)
	}

	existing, err := s.weekRepo.ListBySeason(ctx, input.SeasonID)
	if err != nil {
		return week.Week{}, fmt.Errorf("list weeks season=%d: %w", input.SeasonID, err)
	}
	for _, wk := range existing {
		if wk.WeekNumber == input.WeekNumber {
			return week.Week{}, fmt.Errorf("%w: week %d already exists in season %d", ErrInvalidInput, input.WeekNumber, input.SeasonID)
		}
	}

	item := week.Week{
		SeasonID:   input.SeasonID,
		WeekNumber: input.WeekNumber,
		StartDate:  input.StartDate.UTC(),
		EndDate:    input.EndDate.UTC(),
		CreatedAt:  s.now().UTC(),
		UpdatedAt:  s.now().UTC(),
	}
	created, err := s.weekRepo.Create(ctx, item)
	if err != nil {
		return week.Week{}, fmt.Errorf("create week: %w", err)
	}
	return created, nil
}

func (s *WeekService) GetWeek(ctx context.Context, weekID int64) (week.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeekService.GetWeek")
	defer span.End()

	wk, exists, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		return week.Week{}, fmt.Errorf("get week: %w", err)
	}
	if !exists {
		return week.Week{}, fmt.Errorf("%w: week=%d", ErrNotFound, weekID)
	}
	return wk, nil
}

func (s *WeekService) ListSeasonWeeks(ctx context.Context, seasonID int64) ([]week.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeekService.ListSeasonWeeks")
	defer span.End()

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season for weeks: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	weeks, err := s.weekRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list weeks season=%d: %w", seasonID, err)
	}
	return weeks, nil
}

// SetWeekLocked opens or closes pick submission. Unlocking an already
// scored week is refused; corrections go through rescoring instead.
func (s *WeekService) SetWeekLocked(ctx context.Context, weekID int64, locked bool) (week.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeekService.SetWeekLocked")
	defer span.End()

	wk, exists, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		return week.Week{}, fmt.Errorf("get week for lock: %w", err)
	}
	if !exists {
		return week.Week{}, fmt.Errorf("%w: week=%d", ErrNotFound, weekID)
	}
	if !locked && wk.IsScored {
		return week.Week{}, fmt.Errorf("%w: week %d is already scored", ErrInvalidInput, weekID)
	}

	if wk.IsLocked != locked {
		if err := s.weekRepo.SetLocked(ctx, weekID, locked); err != nil {
			return week.Week{}, fmt.Errorf("set week locked week=%d: %w", weekID, err)
		}
		wk.IsLocked = locked
	}
	return wk, nil
}
