package usecase

import (
	"context"
	"sync"

	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/notification"
	"github.com/mrftt12/Pickem/internal/domain/payment"
	"github.com/mrftt12/Pickem/internal/domain/pick"
	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

type stubSeasonRepository struct {
	byID   map[int64]season.Season
	nextID int64
}

func (r *stubSeasonRepository) GetByID(_ context.Context, seasonID int64) (season.Season, bool, error) {
	item, ok := r.byID[seasonID]
	return item, ok, nil
}

func (r *stubSeasonRepository) GetActive(_ context.Context) (season.Season, bool, error) {
	for _, item := range r.byID {
		if item.IsActive {
			return item, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (r *stubSeasonRepository) Create(_ context.Context, item season.Season) (season.Season, error) {
	if r.byID == nil {
		r.byID = make(map[int64]season.Season)
	}
	r.nextID++
	item.ID = r.nextID
	r.byID[item.ID] = item
	return item, nil
}

type stubWeekRepository struct {
	byID   map[int64]week.Week
	nextID int64
}

func (r *stubWeekRepository) GetByID(_ context.Context, weekID int64) (week.Week, bool, error) {
	item, ok := r.byID[weekID]
	return item, ok, nil
}

func (r *stubWeekRepository) ListBySeason(_ context.Context, seasonID int64) ([]week.Week, error) {
	out := make([]week.Week, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if item, ok := r.byID[id]; ok && item.SeasonID == seasonID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubWeekRepository) Create(_ context.Context, item week.Week) (week.Week, error) {
	if r.byID == nil {
		r.byID = make(map[int64]week.Week)
	}
	r.nextID++
	item.ID = r.nextID
	r.byID[item.ID] = item
	return item, nil
}

func (r *stubWeekRepository) SetLocked(_ context.Context, weekID int64, locked bool) error {
	item := r.byID[weekID]
	item.IsLocked = locked
	r.byID[weekID] = item
	return nil
}

func (r *stubWeekRepository) SetScored(_ context.Context, weekID int64, scored bool) error {
	item := r.byID[weekID]
	item.IsScored = scored
	r.byID[weekID] = item
	return nil
}

func (r *stubWeekRepository) seed(items ...week.Week) {
	if r.byID == nil {
		r.byID = make(map[int64]week.Week)
	}
	for _, item := range items {
		r.byID[item.ID] = item
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
	}
}

type stubMatchupRepository struct {
	byID   map[int64]matchup.Matchup
	nextID int64
}

func (r *stubMatchupRepository) GetByID(_ context.Context, matchupID int64) (matchup.Matchup, bool, error) {
	item, ok := r.byID[matchupID]
	return item, ok, nil
}

func (r *stubMatchupRepository) ListByWeek(_ context.Context, weekID int64) ([]matchup.Matchup, error) {
	out := make([]matchup.Matchup, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if item, ok := r.byID[id]; ok && item.WeekID == weekID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubMatchupRepository) Create(_ context.Context, item matchup.Matchup) (matchup.Matchup, error) {
	if r.byID == nil {
		r.byID = make(map[int64]matchup.Matchup)
	}
	r.nextID++
	item.ID = r.nextID
	r.byID[item.ID] = item
	return item, nil
}

func (r *stubMatchupRepository) UpdateScore(_ context.Context, matchupID int64, homeScore, awayScore int, status string) error {
	item := r.byID[matchupID]
	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.Status = status
	r.byID[matchupID] = item
	return nil
}

func (r *stubMatchupRepository) seed(items ...matchup.Matchup) {
	if r.byID == nil {
		r.byID = make(map[int64]matchup.Matchup)
	}
	for _, item := range items {
		r.byID[item.ID] = item
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
	}
}

type stubPickRepository struct {
	byID   map[int64]pick.Pick
	nextID int64
}

func (r *stubPickRepository) GetByID(_ context.Context, pickID int64) (pick.Pick, bool, error) {
	item, ok := r.byID[pickID]
	return item, ok, nil
}

func (r *stubPickRepository) ListByMatchup(_ context.Context, matchupID int64) ([]pick.Pick, error) {
	out := make([]pick.Pick, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if item, ok := r.byID[id]; ok && item.MatchupID == matchupID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubPickRepository) ListByUserWeek(_ context.Context, userID, weekID int64) ([]pick.Pick, error) {
	out := make([]pick.Pick, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if item, ok := r.byID[id]; ok && item.UserID == userID && item.WeekID == weekID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubPickRepository) Upsert(_ context.Context, item pick.Pick) (pick.Pick, error) {
	if r.byID == nil {
		r.byID = make(map[int64]pick.Pick)
	}
	for id := int64(1); id <= r.nextID; id++ {
		if existing, ok := r.byID[id]; ok && existing.UserID == item.UserID && existing.MatchupID == item.MatchupID {
			item.ID = id
			item.Verdict = pick.VerdictUnscored
			r.byID[id] = item
			return item, nil
		}
	}
	r.nextID++
	item.ID = r.nextID
	r.byID[item.ID] = item
	return item, nil
}

func (r *stubPickRepository) UpdateVerdict(_ context.Context, pickID int64, verdict pick.Verdict) error {
	item := r.byID[pickID]
	item.Verdict = verdict
	r.byID[pickID] = item
	return nil
}

func (r *stubPickRepository) Delete(_ context.Context, pickID int64) error {
	delete(r.byID, pickID)
	return nil
}

func (r *stubPickRepository) seed(items ...pick.Pick) {
	if r.byID == nil {
		r.byID = make(map[int64]pick.Pick)
	}
	for _, item := range items {
		r.byID[item.ID] = item
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
	}
}

type stubPaymentRepository struct {
	byID   map[int64]payment.Payment
	nextID int64
}

func (r *stubPaymentRepository) GetByID(_ context.Context, paymentID int64) (payment.Payment, bool, error) {
	item, ok := r.byID[paymentID]
	return item, ok, nil
}

func (r *stubPaymentRepository) GetByUserWeek(_ context.Context, userID, weekID int64) (payment.Payment, bool, error) {
	for id := int64(1); id <= r.nextID; id++ {
		if item, ok := r.byID[id]; ok && item.UserID == userID && item.WeekID == weekID {
			return item, true, nil
		}
	}
	return payment.Payment{}, false, nil
}

func (r *stubPaymentRepository) ListByWeek(_ context.Context, weekID int64) ([]payment.Payment, error) {
	out := make([]payment.Payment, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if item, ok := r.byID[id]; ok && item.WeekID == weekID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubPaymentRepository) Create(_ context.Context, item payment.Payment) (payment.Payment, error) {
	if r.byID == nil {
		r.byID = make(map[int64]payment.Payment)
	}
	r.nextID++
	item.ID = r.nextID
	r.byID[item.ID] = item
	return item, nil
}

func (r *stubPaymentRepository) UpdateStatus(_ context.Context, paymentID int64, status string) error {
	item := r.byID[paymentID]
	item.Status = status
	r.byID[paymentID] = item
	return nil
}

func (r *stubPaymentRepository) seed(items ...payment.Payment) {
	if r.byID == nil {
		r.byID = make(map[int64]payment.Payment)
	}
	for _, item := range items {
		r.byID[item.ID] = item
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
	}
}

type stubLeaderboardRepository struct {
	mu     sync.Mutex
	weekly map[int64][]leaderboard.WeeklyEntry
	season map[int64][]leaderboard.SeasonEntry
	pools  map[int64]leaderboard.PrizePool
}

func (r *stubLeaderboardRepository) ReplaceWeekly(_ context.Context, weekID int64, entries []leaderboard.WeeklyEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.weekly == nil {
		r.weekly = make(map[int64][]leaderboard.WeeklyEntry)
	}
	r.weekly[weekID] = append([]leaderboard.WeeklyEntry(nil), entries...)
	return nil
}

func (r *stubLeaderboardRepository) ListWeekly(_ context.Context, weekID int64) ([]leaderboard.WeeklyEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]leaderboard.WeeklyEntry(nil), r.weekly[weekID]...), nil
}

func (r *stubLeaderboardRepository) SetWeeklyPrizeAmount(_ context.Context, weekID, userID int64, amount int64) error {
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

func (r *stubLeaderboardRepository) ReplaceSeason(_ context.Context, seasonID int64, entries []leaderboard.SeasonEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.season == nil {
		r.season = make(map[int64][]leaderboard.SeasonEntry)
	}
	r.season[seasonID] = append([]leaderboard.SeasonEntry(nil), entries...)
	return nil
}

func (r *stubLeaderboardRepository) ListSeason(_ context.Context, seasonID int64) ([]leaderboard.SeasonEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]leaderboard.SeasonEntry(nil), r.season[seasonID]...), nil
}

func (r *stubLeaderboardRepository) GetPrizePool(_ context.Context, weekID int64) (leaderboard.PrizePool, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pool, ok := r.pools[weekID]
	return pool, ok, nil
}

func (r *stubLeaderboardRepository) UpsertPrizePool(_ context.Context, pool leaderboard.PrizePool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pools == nil {
		r.pools = make(map[int64]leaderboard.PrizePool)
	}
	r.pools[pool.WeekID] = pool
	return nil
}

type stubNotificationRepository struct {
	items []notification.Notification
}

func (r *stubNotificationRepository) Enqueue(_ context.Context, item notification.Notification) error {
	for _, existing := range r.items {
		if existing.UserID == item.UserID && existing.Type == item.Type && equalInt64Ptr(existing.WeekID, item.WeekID) {
			return nil
		}
	}
	item.ID = int64(len(r.items) + 1)
	r.items = append(r.items, item)
	return nil
}

func (r *stubNotificationRepository) ListPending(_ context.Context) ([]notification.Notification, error) {
	out := make([]notification.Notification, 0)
	for _, item := range r.items {
		if item.Status == notification.StatusPending {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubNotificationRepository) UpdateStatus(_ context.Context, notificationID int64, status string) error {
	for idx := range r.items {
		if r.items[idx].ID == notificationID {
			r.items[idx].Status = status
		}
	}
	return nil
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
