package memory

import (
	"context"
	"sync"

	"github.com/mrftt12/Pickem/internal/domain/season"
)

type SeasonRepository struct {
	mu     sync.RWMutex
	items  map[int64]season.Season
	orders []int64
	nextID int64
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	r := &SeasonRepository{
		items:  make(map[int64]season.Season, len(seasons)),
		orders: make([]int64, 0, len(seasons)),
	}
	for _, s := range seasons {
		r.items[s.ID] = s
		r.orders = append(r.orders, s.ID)
		if s.ID > r.nextID {
			r.nextID = s.ID
		}
	}
	return r
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID int64) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[seasonID]
	if !ok {
		return season.Season{}, false, nil
	}
	return s, true, nil
}

func (r *SeasonRepository) GetActive(_ context.Context) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		if s := r.items[id]; s.IsActive {
			return s, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) (season.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return item, nil
}
