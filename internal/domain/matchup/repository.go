package matchup

import "context"

type Repository interface {
	GetByID(ctx context.Context, matchupID int64) (Matchup, bool, error)
	ListByWeek(ctx context.Context, weekID int64) ([]Matchup, error)
	Create(ctx context.Context, item Matchup) (Matchup, error)
	UpdateScore(ctx context.Context, matchupID int64, homeScore, awayScore int, status string) error
}
