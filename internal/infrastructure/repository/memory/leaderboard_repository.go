package memory

import (
	"context"
	"sync"

	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
)

type LeaderboardRepository struct {
	mu     sync.RWMutex
	weekly map[int64][]leaderboard.WeeklyEntry
	season map[int64][]leaderboard.SeasonEntry
	pools  map[int64]leaderboard.PrizePool
}

func NewLeaderboardRepository() *LeaderboardRepository {
	return &LeaderboardRepository{
		weekly: make(map[int64][]leaderboard.WeeklyEntry),
		season: make(map[int64][]leaderboard.SeasonEntry),
		pools:  make(map[int64]leaderboard.PrizePool),
	}
}

func (r *LeaderboardRepository) ReplaceWeekly(_ context.Context, weekID int64, entries []leaderboard.WeeklyEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.weekly[weekID] = append([]leaderboard.WeeklyEntry(nil), entries...)
	return nil
}

func (r *LeaderboardRepository) ListWeekly(_ context.Context, weekID int64) ([]leaderboard.WeeklyEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]leaderboard.WeeklyEntry(nil), r.weekly[weekID]...), nil
}

func (r *LeaderboardRepository) SetWeeklyPrizeAmount(_ context.Context, weekID, userID int64, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.weekly[weekID]
	for idx := range entries {
		if entries[idx].UserID == userID {
			value := amount
			entries[idx].PrizeAmount = &value
		}
	}
	return nil
}

func (r *LeaderboardRepository) ReplaceSeason(_ context.Context, seasonID int64, entries []leaderboard.SeasonEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.season[seasonID] = append([]leaderboard.SeasonEntry(nil), entries...)
	return nil
}

func (r *LeaderboardRepository) ListSeason(_ context.Context, seasonID int64) ([]leaderboard.SeasonEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]leaderboard.SeasonEntry(nil), r.season[seasonID]...), nil
}

func (r *LeaderboardRepository) GetPrizePool(_ context.Context, weekID int64) (leaderboard.PrizePool, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pool, ok := r.pools[weekID]
	return pool, ok, nil
}

func (r *LeaderboardRepository) UpsertPrizePool(_ context.Context, pool leaderboard.PrizePool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pools[pool.WeekID] = pool
	return nil
}
