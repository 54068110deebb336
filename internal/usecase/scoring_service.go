package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/leaderboard"
	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/pick"
	"github.com/mrftt12/Pickem/internal/domain/week"
	"github.com/mrftt12/Pickem/internal/platform/resilience"
)

// ScoringService runs the weekly scoring pipeline: evaluate every pick
// against its final matchup, build the ranked leaderboard, and hand the
// winner set to prize distribution. Every stage is idempotent, so the
// recovery path for a failed run is re-running the whole week.
type ScoringService struct {
	weekRepo    week.Repository
	matchupRepo matchup.Repository
	pickRepo    pick.Repository
	boardRepo   leaderboard.Repository
	prizes      *PrizeService
	now         func() time.Time
	scoreFlight resilience.SingleFlight
}

// WeekScoreResult is the outcome of one full scoring run.
type WeekScoreResult struct {
	WeekID    int64
	Entries   []leaderboard.WeeklyEntry
	PrizePool leaderboard.PrizePool
}

func NewScoringService(
	weekRepo week.Repository,
	matchupRepo matchup.Repository,
	pickRepo pick.Repository,
	boardRepo leaderboard.Repository,
	prizes *PrizeService,
) *ScoringService {
	return &ScoringService{
		weekRepo:    weekRepo,
		matchupRepo: matchupRepo,
		pickRepo:    pickRepo,
		boardRepo:   boardRepo,
		prizes:      prizes,
		now:         time.Now,
	}
}

// evaluatePick decides whether the pick beat the spread. The verdict is
// unscored until the game is final with both scores present. The picked
// side covers iff the signed margin in its favor strictly exceeds the
// spread when it is the favorite, or strictly exceeds the negated spread
// when it is the underdog. An exact push lands on neither side.
func evaluatePick(p pick.Pick, m matchup.Matchup) pick.Verdict {
	if !m.Final() {
		return pick.VerdictUnscored
	}

	spread := math.Abs(m.PointSpread)
	scoreDiff := float64(*m.HomeScore - *m.AwayScore)

	margin := scoreDiff
	pickedSide := matchup.SideHome
	if p.PickedTeam != m.HomeTeamAbbr {
		margin = -scoreDiff
		pickedSide = matchup.SideAway
	}

	line := spread
	if m.SpreadFavor != pickedSide {
		line = -spread
	}

	if margin > line {
		return pick.VerdictCorrect
	}
	return pick.VerdictIncorrect
}

// ScoreWeek runs the full pipeline for one week and marks it scored.
// Concurrent calls for the same week collapse into a single run; callers
// arriving while a run is in flight receive that run's result.
func (s *ScoringService) ScoreWeek(ctx context.Context, weekID int64) (WeekScoreResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreWeek")
	defer span.End()

	key := fmt.Sprintf("scoring:week:%d", weekID)
	value, err, _ := s.scoreFlight.Do(key, func() (any, error) {
		return s.scoreWeekOnce(ctx, weekID)
	})
	if err != nil {
		return WeekScoreResult{}, err
	}

	result, ok := value.(WeekScoreResult)
	if !ok {
		return WeekScoreResult{}, fmt.Errorf("unexpected score week result type %T", value)
	}
	return result, nil
}

func (s *ScoringService) scoreWeekOnce(ctx context.Context, weekID int64) (WeekScoreResult, error) {
	wk, exists, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		return WeekScoreResult{}, fmt.Errorf("get week for scoring: %w", err)
	}
	if !exists {
		return WeekScoreResult{}, fmt.Errorf("%w: week=%d", ErrNotFound, weekID)
	}

	matchups, err := s.matchupRepo.ListByWeek(ctx, weekID)
	if err != nil {
		return WeekScoreResult{}, fmt.Errorf("list matchups for scoring: %w", err)
	}
	if len(matchups) == 0 {
		return WeekScoreResult{}, fmt.Errorf("%w: week=%d", ErrEmptyWeek, weekID)
	}

	allPicks, err := s.evaluateWeekPicks(ctx, matchups)
	if err != nil {
		return WeekScoreResult{}, err
	}

	entries := buildWeeklyEntries(weekID, s.now().UTC(), allPicks)
	if err := s.boardRepo.ReplaceWeekly(ctx, weekID, entries); err != nil {
		return WeekScoreResult{}, fmt.Errorf("replace weekly leaderboard week=%d: %w", weekID, err)
	}

	pool, err := s.prizes.DistributeWeek(ctx, weekID)
	if err != nil {
		return WeekScoreResult{}, err
	}

	if !wk.IsScored {
		if err := s.weekRepo.SetScored(ctx, weekID, true); err != nil {
			return WeekScoreResult{}, fmt.Errorf("mark week scored week=%d: %w", weekID, err)
		}
	}

	return WeekScoreResult{WeekID: weekID, Entries: entries, PrizePool: pool}, nil
}

// evaluateWeekPicks scores every pick in the given matchups and persists
// definitive verdicts. Unscored verdicts leave the stored value untouched.
// Picks come back in matchup order then pick order, which fixes the
// first-seen ordering the leaderboard tie policy depends on.
func (s *ScoringService) evaluateWeekPicks(ctx context.Context, matchups []matchup.Matchup) ([]pick.Pick, error) {
	allPicks := make([]pick.Pick, 0)
	for _, m := range matchups {
		picks, err := s.pickRepo.ListByMatchup(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("list picks matchup=%d: %w", m.ID, err)
		}

		for _, p := range picks {
			verdict := evaluatePick(p, m)
			if verdict.Scored() && verdict != p.Verdict {
				if err := s.pickRepo.UpdateVerdict(ctx, p.ID, verdict); err != nil {
					return nil, fmt.Errorf("update pick verdict pick=%d: %w", p.ID, err)
				}
			}
			if verdict.Scored() {
				p.Verdict = verdict
			}
			allPicks = append(allPicks, p)
		}
	}
	return allPicks, nil
}

// CalculateWeeklyLeaderboard rebuilds the week's leaderboard from stored
// verdicts and redistributes prizes. Unlike ScoreWeek it neither evaluates
// picks nor flips the scored flag, so it is safe to call on its own once
// picks are scored.
func (s *ScoringService) CalculateWeeklyLeaderboard(ctx context.Context, weekID int64) ([]leaderboard.WeeklyEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.CalculateWeeklyLeaderboard")
	defer span.End()

	_, exists, err := s.weekRepo.GetByID(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("get week for leaderboard: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: week=%d", ErrNotFound, weekID)
	}

	matchups, err := s.matchupRepo.ListByWeek(ctx, weekID)
	if err != nil {
		return nil, fmt.Errorf("list matchups for leaderboard: %w", err)
	}
	if len(matchups) == 0 {
		return nil, fmt.Errorf("%w: week=%d", ErrEmptyWeek, weekID)
	}

	allPicks := make([]pick.Pick, 0)
	for _, m := range matchups {
		picks, err := s.pickRepo.ListByMatchup(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("list picks matchup=%d: %w", m.ID, err)
		}
		allPicks = append(allPicks, picks...)
	}

	entries := buildWeeklyEntries(weekID, s.now().UTC(), allPicks)
	if err := s.boardRepo.ReplaceWeekly(ctx, weekID, entries); err != nil {
		return nil, fmt.Errorf("replace weekly leaderboard week=%d: %w", weekID, err)
	}

	if _, err := s.prizes.DistributeWeek(ctx, weekID); err != nil {
		return nil, err
	}

	return entries, nil
}

// buildWeeklyEntries groups picks by user in first-seen order, counts
// correct and total picks (total includes unscored ones), and assigns
// 1-based ranks after a stable sort. Tied users keep their insertion order
// and receive distinct consecutive ranks; rank sharing happens only at the
// prize stage by grouping on the correct-pick count.
func buildWeeklyEntries(weekID int64, at time.Time, picks []pick.Pick) []leaderboard.WeeklyEntry {
	type userStats struct {
		userID  int64
		correct int
		total   int
	}

	byUser := make(map[int64]*userStats)
	order := make([]int64, 0)
	for _, p := range picks {
		stats, ok := byUser[p.UserID]
		if !ok {
			stats = &userStats{userID: p.UserID}
			byUser[p.UserID] = stats
			order = append(order, p.UserID)
		}
		stats.total++
		if p.Verdict == pick.VerdictCorrect {
			stats.correct++
		}
	}

	sorted := make([]*userStats, 0, len(order))
	for _, userID := range order {
		sorted = append(sorted, byUser[userID])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].correct > sorted[j].correct
	})

	entries := make([]leaderboard.WeeklyEntry, 0, len(sorted))
	for idx, stats := range sorted {
		entries = append(entries, leaderboard.WeeklyEntry{
			WeekID:       weekID,
			UserID:       stats.userID,
			CorrectPicks: stats.correct,
			TotalPicks:   stats.total,
			Rank:         idx + 1,
			CreatedAt:    at,
		})
	}
	return entries
}
