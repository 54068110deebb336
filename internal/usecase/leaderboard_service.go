package usecase

import (
	"context"
	"fmt"

	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

// LeaderboardService is the read side of the boards: it serves whatever the
// last scoring run persisted without recomputing anything.
type LeaderboardService struct {
	boardRepo  leaderboard.Repository
	weekRepo   week.Repository
	seasonRepo season.Repository
}

func NewLeaderboardService(
	boardRepo leaderboard.Repository,
	weekRepo week.Repository,
	seasonRepo season.Repository,
) *LeaderboardService {
	return &LeaderboardService{
		boardRepo:  boardRepo,
		weekRepo:   weekRepo,
		seasonRepo: seasonRepo,
	}
}

func (s *LeaderboardService) GetWeeklyLeaderboard(ctx context.Context, weekID int64) ([]leaderboard.WeeklyEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetWeeklyLeaderboard")
	defer span.End()

	_, exists, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("get week for leaderboard read: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: week=%d", ErrNotFound, weekID)
	}

	entries, err := s.boardRepo.ListWeekly(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("list weekly leaderboard week=%d: %w", weekID, err)
	}
	return entries, nil
}

func (s *LeaderboardService) GetSeasonLeaderboard(ctx context.Context, seasonID int64) ([]leaderboard.SeasonEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetSeasonLeaderboard")
	defer span.End()

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season for leaderboard read: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	entries, err := s.boardRepo.ListSeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list season leaderboard season=%d: %w", seasonID, err)
	}
	return entries, nil
}

func (s *LeaderboardService) GetPrizePool(ctx context.Context, weekID int64) (leaderboard.PrizePool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetPrizePool")
	defer span.End()

	pool, exists, err := s.boardRepo.GetPrizePool(ctx, weekID)
	if err != nil {
		return leaderboard.PrizePool{}, fmt.Errorf("get prize pool week=%d: %w", weekID, err)
	}
	if !exists {
		return leaderboard.PrizePool{}, fmt.Errorf("%w: prize pool week=%d", ErrNotFound, weekID)
	}
	return pool, nil
}
