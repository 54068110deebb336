// Package cache decorates repositories with a read-through cache. Only the
// read-heavy public lookups (seasons, weeks, matchups) are cached; writes
// invalidate the affected keys.
package cache

import (
	"context"
	"strconv"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
	basecache "github.com/mrftt12/Pickem/internal/platform/cache"
)

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	key := "season:id:" + strconv.FormatInt(seasonID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "season:active", func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetActive(ctx)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return season.Season{}, err
	}
	r.cache.DeletePrefix(ctx, "season:")
	return created, nil
}

type cachedSeason struct {
	value  season.Season
	exists bool
}

type WeekRepository struct {
	next  week.Repository
	cache *basecache.Store
}

func NewWeekRepository(next week.Repository, cache *basecache.Store) *WeekRepository {
	return &WeekRepository{next: next, cache: cache}
}

func (r *WeekRepository) GetByID(ctx context.Context, weekID int64) (week.Week, bool, error) {
	key := weekKey(weekID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, weekID)
		if err != nil {
			return nil, err
		}
		return cachedWeek{value: item, exists: exists}, nil
	})
	if err != nil {
		return week.Week{}, false, err
	}

	cached, _ := v.(cachedWeek)
	return cached.value, cached.exists, nil
}

func (r *WeekRepository) ListBySeason(ctx context.Context, seasonID int64) ([]week.Week, error) {
	key := "week:list:season:" + strconv.FormatInt(seasonID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]week.Week(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]week.Week)
	return append([]week.Week(nil), items...), nil
}

func (r *WeekRepository) Create(ctx context.Context, item week.Week) (week.Week, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return week.Week{}, err
	}
	r.cache.Delete(ctx, "week:list:season:"+strconv.FormatInt(created.SeasonID, 10))
	return created, nil
}

func (r *WeekRepository) SetLocked(ctx context.Context, weekID int64, locked bool) error {
	if err := r.next.SetLocked(ctx, weekID, locked); err != nil {
		return err
	}
	r.invalidateWeek(ctx, weekID)
	return nil
}

func (r *WeekRepository) SetScored(ctx context.Context, weekID int64, scored bool) error {
	if err := r.next.SetScored(ctx, weekID, scored); err != nil {
		return err
	}
	r.invalidateWeek(ctx, weekID)
	return nil
}

func (r *WeekRepository) invalidateWeek(ctx context.Context, weekID int64) {
	r.cache.Delete(ctx, weekKey(weekID))
	r.cache.DeletePrefix(ctx, "week:list:season:")
}

type cachedWeek struct {
	value  week.Week
	exists bool
}

func weekKey(weekID int64) string {
	return "week:id:" + strconv.FormatInt(weekID, 10)
}

type MatchupRepository struct {
	next  matchup.Repository
	cache *basecache.Store
}

func NewMatchupRepository(next matchup.Repository, cache *basecache.Store) *MatchupRepository {
	return &MatchupRepository{next: next, cache: cache}
}

func (r *MatchupRepository) GetByID(ctx context.Context, matchupID int64) (matchup.Matchup, bool, error) {
	key := matchupKey(matchupID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, matchupID)
		if err != nil {
			return nil, err
		}
		return cachedMatchup{value: item, exists: exists}, nil
	})
	if err != nil {
		return matchup.Matchup{}, false, err
	}

	cached, _ := v.(cachedMatchup)
	return cached.value, cached.exists, nil
}

func (r *MatchupRepository) ListByWeek(ctx context.Context, weekID int64) ([]matchup.Matchup, error) {
	key := "matchup:list:week:" + strconv.FormatInt(weekID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByWeek(ctx, weekID)
		if err != nil {
			return nil, err
		}
		return append([]matchup.Matchup(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchup.Matchup)
	return append([]matchup.Matchup(nil), items...), nil
}

func (r *MatchupRepository) Create(ctx context.Context, item matchup.Matchup) (matchup.Matchup, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return matchup.Matchup{}, err
	}
	r.cache.Delete(ctx, "matchup:list:week:"+strconv.FormatInt(created.WeekID, 10))
	return created, nil
}

func (r *MatchupRepository) UpdateScore(ctx context.Context, matchupID int64, homeScore, awayScore int, status string) error {
	if err := r.next.UpdateScore(ctx, matchupID, homeScore, awayScore, status); err != nil {
		return err
	}
	r.cache.Delete(ctx, matchupKey(matchupID))
	r.cache.DeletePrefix(ctx, "matchup:list:week:")
	return nil
}

type cachedMatchup struct {
	value  matchup.Matchup
	exists bool
}

func matchupKey(matchupID int64) string {
	return "matchup:id:" + strconv.FormatInt(matchupID, 10)
}
