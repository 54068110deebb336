package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

// ProviderGameScore is one game's state as reported by the upstream feed.
type ProviderGameScore struct {
	ExternalGameID string
	HomeScore      int
	AwayScore      int
	Status         string
}

// ScoreProvider fetches game results from the external scoreboard feed.
type ScoreProvider interface {
	FetchWeekScores(ctx context.Context, seasonYear, weekNumber int) ([]ProviderGameScore, error)
}

// ScoreSyncResult summarizes one sync run.
type ScoreSyncResult struct {
	WeekID       int64 `json:"week_id"`
	FetchedCount int   `json:"fetched_count"`
	UpdatedCount int   `json:"updated_count"`
	SkippedCount int   `json:"skipped_count"`
}

// ScoreSyncService pulls scores from the provider and applies them to the
// week's matchups. Updates route through MatchupService so a late final
// score still triggers a rescore.
type ScoreSyncService struct {
	provider   ScoreProvider
	enabled    bool
	weekRepo   week.Repository
	seasonRepo season.Repository
	matchups   *MatchupService
	logger     *slog.Logger
}

func NewScoreSyncService(
	provider ScoreProvider,
	enabled bool,
	weekRepo week.Repository,
	seasonRepo season.Repository,
	matchups *MatchupService,
	logger *slog.Logger,
) *ScoreSyncService {
	return &ScoreSyncService{
		provider:   provider,
		enabled:    enabled,
		weekRepo:   weekRepo,
		seasonRepo: seasonRepo,
		matchups:   matchups,
		logger:     logger,
	}
}

// SyncWeekScores fetches the provider scoreboard for the week and applies
// changed final results to the stored matchups. Scheduled and live games
// are skipped, as are games the provider does not know about.
func (s *ScoreSyncService) SyncWeekScores(ctx context.Context, weekID int64) (ScoreSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreSyncService.SyncWeekScores")
	defer span.End()

	if !s.enabled {
		return ScoreSyncResult{}, fmt.Errorf("%w: score sync is disabled (ESPN_ENABLED=false)", ErrDependencyUnavailable)
	}
	if s.provider == nil {
		return ScoreSyncResult{}, fmt.Errorf("%w: score provider is not configured", ErrDependencyUnavailable)
	}

	wk, exists, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		return ScoreSyncResult{}, fmt.Errorf("get week for sync: %w", err)
	}
	if !exists {
		return ScoreSyncResult{}, fmt.Errorf("%w: week=%d", ErrNotFound, weekID)
	}

	sn, exists, err := s.seasonRepo.GetByID(ctx, wk.SeasonID)
	if err != nil {
		return ScoreSyncResult{}, fmt.Errorf("get season for sync: %w", err)
	}
	if !exists {
		return ScoreSyncResult{}, fmt.Errorf("%w: season=%d", ErrNotFound, wk.SeasonID)
	}

	items, err := s.matchups.ListWeekMatchups(ctx, weekID)
	if err != nil {
		return ScoreSyncResult{}, err
	}

	scores, err := s.provider.FetchWeekScores(ctx, sn.Year, wk.WeekNumber)
	if err != nil {
		return ScoreSyncResult{}, fmt.Errorf("fetch provider scores season=%d week=%d: %w", sn.Year, wk.WeekNumber, err)
	}

	byGameID := make(map[string]ProviderGameScore, len(scores))
	for _, score := range scores {
		byGameID[score.ExternalGameID] = score
	}

	result := ScoreSyncResult{WeekID: weekID, FetchedCount: len(scores)}
	for _, m := range items {
		score, ok := byGameID[m.ExternalGameID]
		if !ok || m.ExternalGameID == "" {
			result.SkippedCount++
			continue
		}
		// Only final results are written back; live score updates are out
		// of scope and a partial score must never look like a result.
		if matchup.NormalizeStatus(score.Status) != matchup.StatusFinal {
			result.SkippedCount++
			continue
		}
		if !scoreChanged(m, score) {
			result.SkippedCount++
			continue
		}

		if _, err := s.matchups.UpdateScore(ctx, UpdateScoreInput{
			MatchupID: m.ID,
			HomeScore: score.HomeScore,
			AwayScore: score.AwayScore,
			Status:    score.Status,
		}); err != nil {
			return result, fmt.Errorf("apply provider score matchup=%d: %w", m.ID, err)
		}
		result.UpdatedCount++
	}

	s.logger.InfoContext(ctx, "synced provider scores",
		slog.Int64("weekId", weekID),
		slog.Int("fetched", result.FetchedCount),
		slog.Int("updated", result.UpdatedCount),
		slog.Int("skipped", result.SkippedCount),
	)
	return result, nil
}

func scoreChanged(m matchup.Matchup, score ProviderGameScore) bool {
	if matchup.NormalizeStatus(m.Status) != matchup.NormalizeStatus(score.Status) {
		return true
	}
	if m.HomeScore == nil || m.AwayScore == nil {
		return true
	}
	return *m.HomeScore != score.HomeScore || *m.AwayScore != score.AwayScore
}
