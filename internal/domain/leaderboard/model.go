package leaderboard

import "time"

// WeeklyEntry is one user's ranked snapshot for one week. PrizeAmount stays
// nil for non-winners. Entries are replaced wholesale on every scoring run.
type WeeklyEntry struct {
	WeekID       int64
	UserID       int64
	CorrectPicks int
	TotalPicks   int
	Rank         int
	PrizeAmount  *int64
	CreatedAt    time.Time
}

// SeasonEntry is one user's cumulative snapshot across a season, recomputed
// wholesale from the persisted weekly entries.
type SeasonEntry struct {
	SeasonID          int64
	UserID            int64
	TotalCorrectPicks int
	TotalPicks        int
	Rank              int
	UpdatedAt         time.Time
}

// PrizePool is the per-week money snapshot. Amounts are in minor currency
// units. PrizePerWinner stays nil until a winner set exists.
type PrizePool struct {
	WeekID           int64
	TotalCollected   int64
	ParticipantCount int
	WinnerCount      int
	PrizePerWinner   *int64
	UpdatedAt        time.Time
}
