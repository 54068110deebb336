package memory

import (
	"context"
	"sync"

	"github.com/mrftt12/Pickem/internal/domain/pick"
)

type PickRepository struct {
	mu     sync.RWMutex
	items  map[int64]pick.Pick
	orders []int64
	nextID int64
}

func NewPickRepository(picks []pick.Pick) *PickRepository {
	r := &PickRepository{
		items:  make(map[int64]pick.Pick, len(picks)),
		orders: make([]int64, 0, len(picks)),
	}
	for _, p := range picks {
		r.items[p.ID] = p
		r.orders = append(r.orders, p.ID)
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *PickRepository) GetByID(_ context.Context, pickID int64) (pick.Pick, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[pickID]
	if !ok {
		return pick.Pick{}, false, nil
	}
	return p, true, nil
}

func (r *PickRepository) ListByMatchup(_ context.Context, matchupID int64) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, 0)
	for _, id := range r.orders {
		if p, ok := r.items[id]; ok && p.MatchupID == matchupID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PickRepository) ListByUserWeek(_ context.Context, userID, weekID int64) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, 0)
	for _, id := range r.orders {
		if p, ok := r.items[id]; ok && p.UserID == userID && p.WeekID == weekID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PickRepository) Upsert(_ context.Context, item pick.Pick) (pick.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.orders {
		if existing, ok := r.items[id]; ok && existing.UserID == item.UserID && existing.MatchupID == item.MatchupID {
			item.ID = id
			item.Verdict = pick.VerdictUnscored
			item.CreatedAt = existing.CreatedAt
			r.items[id] = item
			return item, nil
		}
	}

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return item, nil
}

func (r *PickRepository) UpdateVerdict(_ context.Context, pickID int64, verdict pick.Verdict) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.items[pickID]; ok {
		p.Verdict = verdict
		r.items[pickID] = p
	}
	return nil
}

func (r *PickRepository) Delete(_ context.Context, pickID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, pickID)
	return nil
}
