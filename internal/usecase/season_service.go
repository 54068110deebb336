package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

const seasonFanoutWorkers = 4

// SeasonService derives the season-long standings from the persisted weekly
// leaderboards. The season board is always recomputed wholesale, never
// incremented, so a corrected week flows through on the next run.
type SeasonService struct {
	seasonRepo season.Repository
	weekRepo   week.Repository
	boardRepo  leaderboard.Repository
	now        func() time.Time
}

func NewSeasonService(
	seasonRepo season.Repository,
	weekRepo week.Repository,
	boardRepo leaderboard.Repository,
) *SeasonService {
	return &SeasonService{
		seasonRepo: seasonRepo,
		weekRepo:   weekRepo,
		boardRepo:  boardRepo,
		now:        time.Now,
	}
}

type CreateSeasonInput struct {
	Year      int
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
}

func (s *SeasonService) CreateSeason(ctx context.Context, input CreateSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.CreateSeason")
	defer span.End()

	if input.Year < 1970 {
		return season.Season{}, fmt.Errorf("%w: season year %d is out of range", ErrInvalidInput, input.Year)
	}
	if !input.EndDate.After(input.StartDate) {
		return season.Season{}, fmt.Errorf("%w: season end date must follow start date", ErrInvalidInput)
	}

	item := season.Season{
		Year:      input.Year,
		StartDate: input.StartDate.UTC(),
		EndDate:   input.EndDate.UTC(),
		IsActive:  input.IsActive,
		CreatedAt: s.now().UTC(),
		UpdatedAt: s.now().UTC(),
	}
	created, err := s.seasonRepo.Create(ctx, item)
	if err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}
	return created, nil
}

func (s *SeasonService) GetActiveSeason(ctx context.Context) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetActiveSeason")
	defer span.End()

	active, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no active season", ErrNotFound)
	}
	return active, nil
}

// CalculateSeasonalLeaderboard sums every user's weekly totals across the
// season, ranks them, and replaces the stored season board. Weekly boards
// are fetched concurrently but merged in week order, so ties resolve the
// same way on every run.
func (s *SeasonService) CalculateSeasonalLeaderboard(ctx context.Context, seasonID int64) ([]leaderboard.SeasonEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.CalculateSeasonalLeaderboard")
	defer span.End()

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season for leaderboard: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	weeks, err := s.weekRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list weeks season=%d: %w", seasonID, err)
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("%w: season %d has no weeks", ErrNotFound, seasonID)
	}

	weeklyBoards := make([][]leaderboard.WeeklyEntry, len(weeks))
	fanout := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(seasonFanoutWorkers)
	for idx, wk := range weeks {
		idx, wk := idx, wk
		fanout.Go(func(ctx context.Context) error {
			entries, err := s.boardRepo.ListWeekly(ctx, wk.ID)
			if err != nil {
				return fmt.Errorf("list weekly leaderboard week=%d: %w", wk.ID, err)
			}
			weeklyBoards[idx] = entries
			return nil
		})
	}
	if err := fanout.Wait(); err != nil {
		return nil, err
	}

	entries := buildSeasonEntries(seasonID, s.now().UTC(), weeklyBoards)
	if err := s.boardRepo.ReplaceSeason(ctx, seasonID, entries); err != nil {
		return nil, fmt.Errorf("replace season leaderboard season=%d: %w", seasonID, err)
	}

	return entries, nil
}

// buildSeasonEntries folds ordered weekly boards into per-user season totals.
// Users enter the accumulator in the order they first appear walking the
// weeks, which is the order ties fall back to after the stable sort.
func buildSeasonEntries(seasonID int64, at time.Time, weeklyBoards [][]leaderboard.WeeklyEntry) []leaderboard.SeasonEntry {
	type userTotals struct {
		userID  int64
		correct int
		total   int
	}

	byUser := make(map[int64]*userTotals)
	order := make([]int64, 0)
	for _, board := range weeklyBoards {
		for _, entry := range board {
			totals, ok := byUser[entry.UserID]
			if !ok {
				totals = &userTotals{userID: entry.UserID}
				byUser[entry.UserID] = totals
				order = append(order, entry.UserID)
			}
			totals.correct += entry.CorrectPicks
			totals.total += entry.TotalPicks
		}
	}

	sorted := make([]*userTotals, 0, len(order))
	for _, userID := range order {
		sorted = append(sorted, byUser[userID])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].correct > sorted[j].correct
	})

	entries := make([]leaderboard.SeasonEntry, 0, len(sorted))
	for idx, totals := range sorted {
		entries = append(entries, leaderboard.SeasonEntry{
			SeasonID:          seasonID,
			UserID:            totals.userID,
			TotalCorrectPicks: totals.correct,
			TotalPicks:        totals.total,
			Rank:              idx + 1,
			UpdatedAt:         at,
		})
	}
	return entries
}
