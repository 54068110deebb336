package memory

import (
	"context"
	"sync"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
)

type MatchupRepository struct {
	mu     sync.RWMutex
	items  map[int64]matchup.Matchup
	orders []int64
	nextID int64
}

func NewMatchupRepository(matchups []matchup.Matchup) *MatchupRepository {
	r := &MatchupRepository{
		items:  make(map[int64]matchup.Matchup, len(matchups)),
		orders: make([]int64, 0, len(matchups)),
	}
	for _, m := range matchups {
		r.items[m.ID] = m
		r.orders = append(r.orders, m.ID)
		if m.ID > r.nextID {
			r.nextID = m.ID
		}
	}
	return r
}

func (r *MatchupRepository) GetByID(_ context.Context, matchupID int64) (matchup.Matchup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchupID]
	if !ok {
		return matchup.Matchup{}, false, nil
	}
	return m, true, nil
}

func (r *MatchupRepository) ListByWeek(_ context.Context, weekID int64) ([]matchup.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchup.Matchup, 0)
	for _, id := range r.orders {
		if m := r.items[id]; m.WeekID == weekID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MatchupRepository) Create(_ context.Context, item matchup.Matchup) (matchup.Matchup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return item, nil
}

func (r *MatchupRepository) UpdateScore(_ context.Context, matchupID int64, homeScore, awayScore int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.items[matchupID]; ok {
		home := homeScore
		away := awayScore
		m.HomeScore = &home
		m.AwayScore = &away
		m.Status = status
		r.items[matchupID] = m
	}
	return nil
}
