package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

type CreateMatchupInput struct {
	WeekID         int64
	ExternalGameID string
	HomeTeam       string
	AwayTeam       string
	HomeTeamAbbr   string
	AwayTeamAbbr   string
	PointSpread    float64
	SpreadFavor    string
	GameTime       time.Time
}

type UpdateScoreInput struct {
	MatchupID int64
	HomeScore int
	AwayScore int
	Status    string
}

// MatchupService handles matchup administration and score updates. A final
// score landing on a week that was already scored triggers a rescore, so
// late corrections from the data feed propagate to verdicts and prizes.
type MatchupService struct {
	matchupRepo matchup.Repository
	weekRepo    week.Repository
	scoring     *ScoringService
	logger      *slog.Logger
	now         func() time.Time
}

func NewMatchupService(
	matchupRepo matchup.Repository,
	weekRepo week.Repository,
	scoring *ScoringService,
	logger *slog.Logger,
) *MatchupService {
	return &MatchupService{
		matchupRepo: matchupRepo,
		weekRepo:    weekRepo,
		scoring:     scoring,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *MatchupService) CreateMatchup(ctx context.Context, input CreateMatchupInput) (matchup.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.CreateMatchup")
	defer span.End()

	homeAbbr := strings.ToUpper(strings.TrimSpace(input.HomeTeamAbbr))
	awayAbbr := strings.ToUpper(strings.TrimSpace(input.AwayTeamAbbr))
	if homeAbbr == "" || awayAbbr == "" {
		return matchup.Matchup{}, fmt.Errorf("%w: both team abbreviations are required", ErrInvalidInput)
	}
	if homeAbbr == awayAbbr {
		return matchup.Matchup{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	favor := matchup.Side(strings.ToLower(strings.TrimSpace(input.SpreadFavor)))
	if favor != matchup.SideHome && favor != matchup.SideAway {
		return matchup.Matchup{}, fmt.Errorf("%w: spread favor must be home or away", ErrInvalidInput)
	}

	wk, exists, err := s.weekRepo.GetByID(ctx, input.WeekID)
	if err != nil {
		return matchup.Matchup{}, fmt.Errorf("get week for matchup: %w", err)
	}
	if !exists {
		return matchup.Matchup{}, fmt.Errorf("%w: week=%d", ErrNotFound, input.WeekID)
	}
	if wk.IsScored {
		return matchup.Matchup{}, fmt.Errorf("%w: week %d is already scored", ErrInvalidInput, wk.ID)
	}

	item := matchup.Matchup{
		WeekID:         input.WeekID,
		ExternalGameID: strings.TrimSpace(input.ExternalGameID),
		HomeTeam:       strings.TrimSpace(input.HomeTeam),
		AwayTeam:       strings.TrimSpace(input.AwayTeam),
		HomeTeamAbbr:   homeAbbr,
		AwayTeamAbbr:   awayAbbr,
		PointSpread:    input.PointSpread,
		SpreadFavor:    favor,
		GameTime:       input.GameTime.UTC(),
		Status:         matchup.StatusScheduled,
		CreatedAt:      s.now().UTC(),
		UpdatedAt:      s.now().UTC(),
	}
	created, err := s.matchupRepo.Create(ctx, item)
	if err != nil {
		return matchup.Matchup{}, fmt.Errorf("create matchup: %w", err)
	}
	return created, nil
}

func (s *MatchupService) GetMatchup(ctx context.Context, matchupID int64) (matchup.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.GetMatchup")
	defer span.End()

	m, exists, err := s.matchupRepo.GetByID(ctx, matchupID)
	if err != nil {
		return matchup.Matchup{}, fmt.Errorf("get matchup: %w", err)
	}
	if !exists {
		return matchup.Matchup{}, fmt.Errorf("%w: matchup=%d", ErrNotFound, matchupID)
	}
	return m, nil
}

func (s *MatchupService) ListWeekMatchups(ctx context.Context, weekID int64) ([]matchup.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.ListWeekMatchups")
	defer span.End()

	_, exists, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("get week for matchups: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: week=%d", ErrNotFound, weekID)
	}

	matchups, err := s.matchupRepo.ListByWeek(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("list matchups week=%d: %w", weekID, err)
	}
	return matchups, nil
}

// UpdateScore writes the latest score and status for one matchup. When the
// update finalizes a game inside an already scored week, the whole week is
// rescored so the correction reaches verdicts, the leaderboard, and prizes.
func (s *MatchupService) UpdateScore(ctx context.Context, input UpdateScoreInput) (matchup.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.UpdateScore")
	defer span.End()

	if input.HomeScore < 0 || input.AwayScore < 0 {
		return matchup.Matchup{}, fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
	}
	status := matchup.NormalizeStatus(input.Status)
	if !matchup.IsValidStatus(status) {
		return matchup.Matchup{}, fmt.Errorf("%w: unknown matchup status %q", ErrInvalidInput, input.Status)
	}

	m, exists, err := s.matchupRepo.GetByID(ctx, input.MatchupID)
	if err != nil {
		return matchup.Matchup{}, fmt.Errorf("get matchup for score: %w", err)
	}
	if !exists {
		return matchup.Matchup{}, fmt.Errorf("%w: matchup=%d", ErrNotFound, input.MatchupID)
	}

	if err := s.matchupRepo.UpdateScore(ctx, m.ID, input.HomeScore, input.AwayScore, status); err != nil {
		return matchup.Matchup{}, fmt.Errorf("update matchup score matchup=%d: %w", m.ID, err)
	}
	m.HomeScore = &input.HomeScore
	m.AwayScore = &input.AwayScore
	m.Status = status

	if status == matchup.StatusFinal {
		wk, exists, err := s.weekRepo.GetByID(ctx, m.WeekID)
		if err != nil {
			return matchup.Matchup{}, fmt.Errorf("get week after score update: %w", err)
		}
		if exists && wk.IsScored {
			if _, err := s.scoring.ScoreWeek(ctx, wk.ID); err != nil {
				return matchup.Matchup{}, fmt.Errorf("rescore week %d after score correction: %w", wk.ID, err)
			}
			s.logger.InfoContext(ctx, "rescored week after final score update",
				slog.Int64("weekId", wk.ID),
				slog.Int64("matchupId", m.ID),
			)
		}
	}

	return m, nil
}
