package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
	leaderboardmock "github.com/mrftt12/Pickem/internal/mocks/domain/leaderboard"
	seasonmock "github.com/mrftt12/Pickem/internal/mocks/domain/season"
	weekmock "github.com/mrftt12/Pickem/internal/mocks/domain/week"
)

func TestLeaderboardService_GetWeeklyLeaderboard_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boardRepo := leaderboardmock.NewRepository(t)
	weekRepo := weekmock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)

	service := NewLeaderboardService(boardRepo, weekRepo, seasonRepo)

	expected := []leaderboard.WeeklyEntry{
		{WeekID: 1, UserID: 10, CorrectPicks: 3, TotalPicks: 4, Rank: 1},
		{WeekID: 1, UserID: 20, CorrectPicks: 2, TotalPicks: 4, Rank: 2},
	}

	weekRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsScored: true}, true, nil).
		Once()
	boardRepo.
		On("ListWeekly", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return(expected, nil).
		Once()

	got, err := service.GetWeeklyLeaderboard(ctx, 1)
	if err != nil {
		t.Fatalf("GetWeeklyLeaderboard error: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected entry count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].UserID != expected[0].UserID || got[0].Rank != 1 {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
}

func TestLeaderboardService_GetWeeklyLeaderboard_WeekNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boardRepo := leaderboardmock.NewRepository(t)
	weekRepo := weekmock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)

	service := NewLeaderboardService(boardRepo, weekRepo, seasonRepo)

	weekRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(99)).
		Return(week.Week{}, false, nil).
		Once()

	_, err := service.GetWeeklyLeaderboard(ctx, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeaderboardService_GetSeasonLeaderboard_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boardRepo := leaderboardmock.NewRepository(t)
	weekRepo := weekmock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)

	service := NewLeaderboardService(boardRepo, weekRepo, seasonRepo)

	seasonRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return(season.Season{ID: 1, Year: 2025}, true, nil).
		Once()
	boardRepo.
		On("ListSeason", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return([]leaderboard.SeasonEntry{
			{SeasonID: 1, UserID: 10, TotalCorrectPicks: 12, TotalPicks: 16, Rank: 1},
		}, nil).
		Once()

	got, err := service.GetSeasonLeaderboard(ctx, 1)
	if err != nil {
		t.Fatalf("GetSeasonLeaderboard error: %v", err)
	}
	if len(got) != 1 || got[0].TotalCorrectPicks != 12 {
		t.Fatalf("unexpected season entries: %+v", got)
	}
}
