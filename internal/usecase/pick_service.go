package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/pick"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

type SubmitPickInput struct {
	UserID     int64
	MatchupID  int64
	PickedTeam string
}

// PickService owns pick submission and readback. A submission for a matchup
// the user already picked replaces the earlier selection and clears its
// verdict.
type PickService struct {
	pickRepo    pick.Repository
	matchupRepo matchup.Repository
	weekRepo    week.Repository
	now         func() time.Time
}

func NewPickService(
	pickRepo pick.Repository,
	matchupRepo matchup.Repository,
	weekRepo week.Repository,
) *PickService {
	return &PickService{
		pickRepo:    pickRepo,
		matchupRepo: matchupRepo,
		weekRepo:    weekRepo,
		now:         time.Now,
	}
}

// SubmitPick validates and upserts one selection. Submissions are refused
// once the week is locked or the game has left the scheduled state.
func (s *PickService) SubmitPick(ctx context.Context, input SubmitPickInput) (pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.SubmitPick")
	defer span.End()

	if input.UserID <= 0 {
		return pick.Pick{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	pickedTeam := strings.ToUpper(strings.TrimSpace(input.PickedTeam))
	if pickedTeam == "" {
		return pick.Pick{}, fmt.Errorf("%w: picked team is required", ErrInvalidInput)
	}

	m, exists, err := s.matchupRepo.GetByID(ctx, input.MatchupID)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("get matchup for pick: %w", err)
	}
	if !exists {
		return pick.Pick{}, fmt.Errorf("%w: matchup=%d", ErrNotFound, input.MatchupID)
	}
	if !m.HasTeam(pickedTeam) {
		return pick.Pick{}, fmt.Errorf("%w: team %q is not playing in matchup %d", ErrInvalidInput, pickedTeam, input.MatchupID)
	}
	if matchup.NormalizeStatus(m.Status) != matchup.StatusScheduled {
		return pick.Pick{}, fmt.Errorf("%w: matchup %d has already started", ErrInvalidInput, input.MatchupID)
	}

	wk, exists, err := s.weekRepo.GetByID(ctx, m.WeekID)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("get week for pick: %w", err)
	}
	if !exists {
		return pick.Pick{}, fmt.Errorf("%w: week=%d", ErrNotFound, m.WeekID)
	}
	if wk.IsLocked {
		return pick.Pick{}, fmt.Errorf("%w: week %d is locked", ErrInvalidInput, wk.ID)
	}

	item := pick.Pick{
		UserID:     input.UserID,
		MatchupID:  m.ID,
		WeekID:     m.WeekID,
		PickedTeam: pickedTeam,
		Verdict:    pick.VerdictUnscored,
		CreatedAt:  s.now().UTC(),
		UpdatedAt:  s.now().UTC(),
	}
	saved, err := s.pickRepo.Upsert(ctx, item)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("upsert pick user=%d matchup=%d: %w", input.UserID, m.ID, err)
	}
	return saved, nil
}

// ListUserWeekPicks returns the user's picks for one week in matchup order.
func (s *PickService) ListUserWeekPicks(ctx context.Context, userID, weekID int64) ([]pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.ListUserWeekPicks")
	defer span.End()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	_, exists, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("get week for picks: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: week=%d", ErrNotFound, weekID)
	}

	picks, err := s.pickRepo.ListByUserWeek(ctx, userID, weekID)
	if err != nil {
		return nil, fmt.Errorf("list picks user=%d week=%d: %w", userID, weekID, err)
	}
	return picks, nil
}

// DeletePick removes the user's own pick while the week is still open.
func (s *PickService) DeletePick(ctx context.Context, userID, pickID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.DeletePick")
	defer span.End()

	p, exists, err := s.pickRepo.GetByID(ctx, pickID)
	if err != nil {
		return fmt.Errorf("get pick for delete: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: pick=%d", ErrNotFound, pickID)
	}
	if p.UserID != userID {
		return fmt.Errorf("%w: pick %d belongs to another user", ErrUnauthorized, pickID)
	}

	wk, exists, err := s.weekRepo.GetByID(ctx, p.WeekID)
	if err != nil {
		return fmt.Errorf("get week for pick delete: %w", err)
	}
	if exists && wk.IsLocked {
		return fmt.Errorf("%w: week %d is locked", ErrInvalidInput, wk.ID)
	}

	if err := s.pickRepo.Delete(ctx, pickID); err != nil {
		return fmt.Errorf("delete pick pick=%d: %w", pickID, err)
	}
	return nil
}
