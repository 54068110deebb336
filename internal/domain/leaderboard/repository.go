package leaderboard

import "context"

type Repository interface {
	// ReplaceWeekly swaps the week's leaderboard for the given entries,
	// clearing rows for users no longer present. Keyed by (week, user).
	ReplaceWeekly(ctx context.Context, weekID int64, entries []WeeklyEntry) error
	ListWeekly(ctx context.Context, weekID int64) ([]WeeklyEntry, error)
	SetWeeklyPrizeAmount(ctx context.Context, weekID, userID int64, amount int64) error

	ReplaceSeason(ctx context.Context, seasonID int64, entries []SeasonEntry) error
	ListSeason(ctx context.Context, seasonID int64) ([]SeasonEntry, error)

	GetPrizePool(ctx context.Context, weekID int64) (PrizePool, bool, error)
	UpsertPrizePool(ctx context.Context, pool PrizePool) error
}
