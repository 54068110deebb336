package memory

import (
	"context"
	"sync"

	"github.com/mrftt12/Pickem/internal/domain/week"
)

type WeekRepository struct {
	mu     sync.RWMutex
	items  map[int64]week.Week
	orders []int64
	nextID int64
}

func NewWeekRepository(weeks []week.Week) *WeekRepository {
	r := &WeekRepository{
		items:  make(map[int64]week.Week, len(weeks)),
		orders: make([]int64, 0, len(weeks)),
	}
	for _, w := range weeks {
		r.items[w.ID] = w
		r.orders = append(r.orders, w.ID)
		if w.ID > r.nextID {
			r.nextID = w.ID
		}
	}
	return r
}

func (r *WeekRepository) GetByID(_ context.Context, weekID int64) (week.Week, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.items[weekID]
	if !ok {
		return week.Week{}, false, nil
	}
	return w, true, nil
}

func (r *WeekRepository) ListBySeason(_ context.Context, seasonID int64) ([]week.Week, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]week.Week, 0)
	for _, id := range r.orders {
		if w := r.items[id]; w.SeasonID == seasonID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *WeekRepository) Create(_ context.Context, item week.Week) (week.Week, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return item, nil
}

func (r *WeekRepository) SetLocked(_ context.Context, weekID int64, locked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.items[weekID]; ok {
		w.IsLocked = locked
		r.items[weekID] = w
	}
	return nil
}

func (r *WeekRepository) SetScored(_ context.Context, weekID int64, scored bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.items[weekID]; ok {
		w.IsScored = scored
		r.items[weekID] = w
	}
	return nil
}
