package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
	"github.com/mrftt12/Pickem/internal/domain/notification"
	"github.com/mrftt12/Pickem/internal/domain/payment"
)

// PrizeService splits a week's collected entry fees among the users tied at
// the top of the leaderboard. Integer division floors the per-winner share;
// the remainder stays in the pool snapshot as the difference between
// TotalCollected and WinnerCount*PrizePerWinner.
type PrizeService struct {
	paymentRepo      payment.Repository
	boardRepo        leaderboard.Repository
	notificationRepo notification.Repository
	logger           *slog.Logger
	now              func() time.Time
}

func NewPrizeService(
	paymentRepo payment.Repository,
	boardRepo leaderboard.Repository,
	notificationRepo notification.Repository,
	logger *slog.Logger,
) *PrizeService {
	return &PrizeService{
		paymentRepo:      paymentRepo,
		boardRepo:        boardRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// DistributeWeek recomputes the week's prize pool from completed payments
// and the current leaderboard, stamps prize amounts on the winning entries,
// and enqueues winner notifications. It overwrites whatever a previous run
// produced, so re-running after a score correction settles on the new
// winner set.
func (s *PrizeService) DistributeWeek(ctx context.Context, weekID int64) (leaderboard.PrizePool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PrizeService.DistributeWeek")
	defer span.End()

	entries, err := s.boardRepo.ListWeekly(ctx, weekID)
	if err != nil {
		return leaderboard.PrizePool{}, fmt.Errorf("list weekly leaderboard week=%d: %w", weekID, err)
	}

	payments, err := s.paymentRepo.ListByWeek(ctx, weekID)
	if err != nil {
		return leaderboard.PrizePool{}, fmt.Errorf("list payments week=%d: %w", weekID, err)
	}

	var totalCollected int64
	participantCount := 0
	for _, p := range payments {
		if p.Status == payment.StatusCompleted {
			totalCollected += p.Amount
			participantCount++
		}
	}

	winners := topEntries(entries)

	pool := leaderboard.PrizePool{
		WeekID:           weekID,
		TotalCollected:   totalCollected,
		ParticipantCount: participantCount,
		WinnerCount:      len(winners),
		UpdatedAt:        s.now().UTC(),
	}

	if len(winners) > 0 {
		prizePerWinner := totalCollected / int64(len(winners))
		pool.PrizePerWinner = &prizePerWinner

		for _, winner := range winners {
			if err := s.boardRepo.SetWeeklyPrizeAmount(ctx, weekID, winner.UserID, prizePerWinner); err != nil {
				return leaderboard.PrizePool{}, fmt.Errorf("set prize amount week=%d user=%d: %w", weekID, winner.UserID, err)
			}
			if err := s.enqueueWinnerNotification(ctx, weekID, winner.UserID); err != nil {
				return leaderboard.PrizePool{}, err
			}
		}
	}

	if err := s.boardRepo.UpsertPrizePool(ctx, pool); err != nil {
		return leaderboard.PrizePool{}, fmt.Errorf("upsert prize pool week=%d: %w", weekID, err)
	}

	s.logger.InfoContext(ctx, "distributed weekly prizes",
		slog.Int64("weekId", weekID),
		slog.Int64("totalCollected", totalCollected),
		slog.Int("winnerCount", len(winners)),
	)

	return pool, nil
}

func (s *PrizeService) enqueueWinnerNotification(ctx context.Context, weekID, userID int64) error {
	item := notification.Notification{
		UserID:    userID,
		Type:      notification.TypeWeeklyWinner,
		WeekID:    &weekID,
		Status:    notification.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.notificationRepo.Enqueue(ctx, item); err != nil {
		return fmt.Errorf("enqueue winner notification week=%d user=%d: %w", weekID, userID, err)
	}
	return nil
}

// topEntries returns every entry sharing the highest correct-pick count.
// The top score is taken as a true maximum, so the result does not depend
// on the stored ordering.
func topEntries(entries []leaderboard.WeeklyEntry) []leaderboard.WeeklyEntry {
	if len(entries) == 0 {
		return nil
	}

	topScore := entries[0].CorrectPicks
	for _, entry := range entries[1:] {
		if entry.CorrectPicks > topScore {
			topScore = entry.CorrectPicks
		}
	}

	winners := make([]leaderboard.WeeklyEntry, 0, 1)
	for _, entry := range entries {
		if entry.CorrectPicks == topScore {
			winners = append(winners, entry)
		}
	}
	return winners
}
