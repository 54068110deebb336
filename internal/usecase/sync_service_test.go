package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/payment"
	"github.com/mrftt12/Pickem/internal/domain/pick"
	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

type stubScoreProvider struct {
	scores []ProviderGameScore
	err    error
	calls  int
}

func (p *stubScoreProvider) FetchWeekScores(_ context.Context, _, _ int) ([]ProviderGameScore, error) {
	p.calls++
	return p.scores, p.err
}

func newSyncFixture(provider ScoreProvider, enabled bool) (*ScoreSyncService, *stubWeekRepository, *stubMatchupRepository, *stubPickRepository, *stubPaymentRepository) {
	scoring, weekRepo, matchupRepo, pickRepo, paymentRepo, _, _ := newScoringFixture()
	seasonRepo := &stubSeasonRepository{byID: map[int64]season.Season{
		1: {ID: 1, Year: 2025, IsActive: true},
	}}
	matchups := NewMatchupService(matchupRepo, weekRepo, scoring, testLogger())
	service := NewScoreSyncService(provider, enabled, weekRepo, seasonRepo, matchups, testLogger())
	return service, weekRepo, matchupRepo, pickRepo, paymentRepo
}

func TestScoreSyncService_SyncWeekScores_AppliesChangedScores(t *testing.T) {
	t.Parallel()

	provider := &stubScoreProvider{scores: []ProviderGameScore{
		{ExternalGameID: "espn-1", HomeScore: 27, AwayScore: 20, Status: matchup.StatusFinal},
		// In-progress score moved since the last poll; still not a result.
		{ExternalGameID: "espn-2", HomeScore: 17, AwayScore: 14, Status: matchup.StatusLive},
		{ExternalGameID: "espn-unknown", HomeScore: 3, AwayScore: 0, Status: matchup.StatusLive},
	}}
	service, weekRepo, matchupRepo, _, _ := newSyncFixture(provider, true)

	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsLocked: true})
	matchupRepo.seed(
		matchup.Matchup{ID: 1, WeekID: 1, ExternalGameID: "espn-1", HomeTeamAbbr: "KC", AwayTeamAbbr: "BUF", PointSpread: 3, SpreadFavor: matchup.SideHome, Status: matchup.StatusLive},
		matchup.Matchup{ID: 2, WeekID: 1, ExternalGameID: "espn-2", HomeTeamAbbr: "DAL", AwayTeamAbbr: "PHI", PointSpread: 2.5, SpreadFavor: matchup.SideHome, HomeScore: intPtr(14), AwayScore: intPtr(14), Status: matchup.StatusLive},
		matchup.Matchup{ID: 3, WeekID: 1, HomeTeamAbbr: "SF", AwayTeamAbbr: "SEA", Status: matchup.StatusScheduled},
	)

	result, err := service.SyncWeekScores(context.Background(), 1)
	if err != nil {
		t.Fatalf("SyncWeekScores error: %v", err)
	}

	if result.FetchedCount != 3 || result.UpdatedCount != 1 || result.SkippedCount != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}

	updated, _, _ := matchupRepo.GetByID(context.Background(), 1)
	if updated.Status != matchup.StatusFinal || updated.HomeScore == nil || *updated.HomeScore != 27 {
		t.Fatalf("expected final score applied, got %+v", updated)
	}

	live, _, _ := matchupRepo.GetByID(context.Background(), 2)
	if live.Status != matchup.StatusLive || live.HomeScore == nil || *live.HomeScore != 14 {
		t.Fatalf("expected live score left untouched, got %+v", live)
	}
}

func TestScoreSyncService_SyncWeekScores_LateFinalTriggersRescore(t *testing.T) {
	t.Parallel()

	provider := &stubScoreProvider{scores: []ProviderGameScore{
		{ExternalGameID: "espn-1", HomeScore: 20, AwayScore: 27, Status: matchup.StatusFinal},
	}}
	service, weekRepo, matchupRepo, pickRepo, paymentRepo := newSyncFixture(provider, true)

	// Week already scored with KC credited; the corrected score flips it.
	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsLocked: true, IsScored: true})
	matchupRepo.seed(matchup.Matchup{
		ID: 1, WeekID: 1, ExternalGameID: "espn-1",
		HomeTeamAbbr: "KC", AwayTeamAbbr: "BUF",
		PointSpread: 3, SpreadFavor: matchup.SideHome,
		HomeScore: intPtr(27), AwayScore: intPtr(20),
		Status: matchup.StatusFinal,
	})
	pickRepo.seed(
		pick.Pick{ID: 1, UserID: 10, MatchupID: 1, WeekID: 1, PickedTeam: "KC", Verdict: pick.VerdictCorrect},
		pick.Pick{ID: 2, UserID: 20, MatchupID: 1, WeekID: 1, PickedTeam: "BUF", Verdict: pick.VerdictIncorrect},
	)
	paymentRepo.seed(
		payment.Payment{ID: 1, UserID: 10, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
		payment.Payment{ID: 2, UserID: 20, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
	)

	result, err := service.SyncWeekScores(context.Background(), 1)
	if err != nil {
		t.Fatalf("SyncWeekScores error: %v", err)
	}
	if result.UpdatedCount != 1 {
		t.Fatalf("expected 1 update, got %+v", result)
	}

	flipped, _, _ := pickRepo.GetByID(context.Background(), 1)
	if flipped.Verdict != pick.VerdictIncorrect {
		t.Fatalf("expected KC pick flipped to incorrect, got %s", flipped.Verdict)
	}
	winner, _, _ := pickRepo.GetByID(context.Background(), 2)
	if winner.Verdict != pick.VerdictCorrect {
		t.Fatalf("expected BUF pick flipped to correct, got %s", winner.Verdict)
	}
}

func TestScoreSyncService_SyncWeekScores_Disabled(t *testing.T) {
	t.Parallel()

	service, weekRepo, _, _, _ := newSyncFixture(&stubScoreProvider{}, false)
	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1})

	_, err := service.SyncWeekScores(context.Background(), 1)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
