package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/payment"
	"github.com/mrftt12/Pickem/internal/domain/pick"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

func intPtr(v int) *int { return &v }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Home favored by 3: KC -3 against BUF, spread stored as home-favored.
func homeFavoredMatchup(home, away *int, status string) matchup.Matchup {
	return matchup.Matchup{
		ID:           1,
		WeekID:       1,
		HomeTeamAbbr: "KC",
		AwayTeamAbbr: "BUF",
		PointSpread:  3,
		SpreadFavor:  matchup.SideHome,
		HomeScore:    home,
		AwayScore:    away,
		Status:       status,
	}
}

func TestEvaluatePick_SpreadOutcomes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		m           matchup.Matchup
		pickedTeam  string
		wantVerdict pick.Verdict
	}{
		{
			name:        "favorite covers",
			m:           homeFavoredMatchup(intPtr(27), intPtr(20), matchup.StatusFinal),
			pickedTeam:  "KC",
			wantVerdict: pick.VerdictCorrect,
		},
		{
			name:        "favorite wins but fails to cover",
			m:           homeFavoredMatchup(intPtr(22), intPtr(20), matchup.StatusFinal),
			pickedTeam:  "KC",
			wantVerdict: pick.VerdictIncorrect,
		},
		{
			name:        "push counts against the favorite pick",
			m:           homeFavoredMatchup(intPtr(23), intPtr(20), matchup.StatusFinal),
			pickedTeam:  "KC",
			wantVerdict: pick.VerdictIncorrect,
		},
		{
			name:        "push counts against the underdog pick too",
			m:           homeFavoredMatchup(intPtr(23), intPtr(20), matchup.StatusFinal),
			pickedTeam:  "BUF",
			wantVerdict: pick.VerdictIncorrect,
		},
		{
			name:        "underdog covers while losing",
			m:           homeFavoredMatchup(intPtr(22), intPtr(20), matchup.StatusFinal),
			pickedTeam:  "BUF",
			wantVerdict: pick.VerdictCorrect,
		},
		{
			name:        "underdog wins outright",
			m:           homeFavoredMatchup(intPtr(17), intPtr(24), matchup.StatusFinal),
			pickedTeam:  "BUF",
			wantVerdict: pick.VerdictCorrect,
		},
		{
			// Mirror of "favorite covers": same game with home and away
			// swapped must produce the same verdict for the same team.
			name: "mirrored favorite covers",
			m: matchup.Matchup{
				ID: 2, WeekID: 1,
				HomeTeamAbbr: "BUF", AwayTeamAbbr: "KC",
				PointSpread: 3, SpreadFavor: matchup.SideAway,
				HomeScore: intPtr(20), AwayScore: intPtr(27),
				Status: matchup.StatusFinal,
			},
			pickedTeam:  "KC",
			wantVerdict: pick.VerdictCorrect,
		},
		{
			name: "mirrored favorite wins but fails to cover",
			m: matchup.Matchup{
				ID: 2, WeekID: 1,
				HomeTeamAbbr: "BUF", AwayTeamAbbr: "KC",
				PointSpread: 3, SpreadFavor: matchup.SideAway,
				HomeScore: intPtr(20), AwayScore: intPtr(22),
				Status: matchup.StatusFinal,
			},
			pickedTeam:  "KC",
			wantVerdict: pick.VerdictIncorrect,
		},
		{
			name: "mirrored underdog covers while losing",
			m: matchup.Matchup{
				ID: 2, WeekID: 1,
				HomeTeamAbbr: "BUF", AwayTeamAbbr: "KC",
				PointSpread: 3, SpreadFavor: matchup.SideAway,
				HomeScore: intPtr(20), AwayScore: intPtr(22),
				Status: matchup.StatusFinal,
			},
			pickedTeam:  "BUF",
			wantVerdict: pick.VerdictCorrect,
		},
		{
			name: "away favorite covers",
			m: matchup.Matchup{
				ID: 2, WeekID: 1,
				HomeTeamAbbr: "NYJ", AwayTeamAbbr: "KC",
				PointSpread: 6.5, SpreadFavor: matchup.SideAway,
				HomeScore: intPtr(10), AwayScore: intPtr(20),
				Status: matchup.StatusFinal,
			},
			pickedTeam:  "KC",
			wantVerdict: pick.VerdictCorrect,
		},
		{
			name: "negative stored spread is treated by magnitude",
			m: matchup.Matchup{
				ID: 3, WeekID: 1,
				HomeTeamAbbr: "KC", AwayTeamAbbr: "BUF",
				PointSpread: -3, SpreadFavor: matchup.SideHome,
				HomeScore: intPtr(27), AwayScore: intPtr(20),
				Status: matchup.StatusFinal,
			},
			pickedTeam:  "KC",
			wantVerdict: pick.VerdictCorrect,
		},
		{
			name:        "live game stays unscored",
			m:           homeFavoredMatchup(intPtr(14), intPtr(7), matchup.StatusLive),
			pickedTeam:  "KC",
			wantVerdict: pick.VerdictUnscored,
		},
		{
			name:        "final without scores stays unscored",
			m:           homeFavoredMatchup(nil, nil, matchup.StatusFinal),
			pickedTeam:  "KC",
			wantVerdict: pick.VerdictUnscored,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := evaluatePick(pick.Pick{PickedTeam: tc.pickedTeam}, tc.m)
			if got != tc.wantVerdict {
				t.Fatalf("unexpected verdict: got=%s want=%s", got, tc.wantVerdict)
			}
		})
	}
}

func TestBuildWeeklyEntries_TiesKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	picks := []pick.Pick{
		{ID: 1, UserID: 10, MatchupID: 1, Verdict: pick.VerdictCorrect},
		{ID: 2, UserID: 20, MatchupID: 1, Verdict: pick.VerdictCorrect},
		{ID: 3, UserID: 30, MatchupID: 1, Verdict: pick.VerdictIncorrect},
		{ID: 4, UserID: 10, MatchupID: 2, Verdict: pick.VerdictIncorrect},
		{ID: 5, UserID: 20, MatchupID: 2, Verdict: pick.VerdictCorrect},
		{ID: 6, UserID: 30, MatchupID: 2, Verdict: pick.VerdictUnscored},
	}

	entries := buildWeeklyEntries(1, time.Now(), picks)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].UserID != 20 || entries[0].CorrectPicks != 2 || entries[0].Rank != 1 {
		t.Fatalf("unexpected rank 1 entry: %+v", entries[0])
	}
	if entries[1].UserID != 10 || entries[1].CorrectPicks != 1 || entries[1].Rank != 2 {
		t.Fatalf("unexpected rank 2 entry: %+v", entries[1])
	}
	if entries[2].UserID != 30 || entries[2].CorrectPicks != 0 || entries[2].Rank != 3 {
		t.Fatalf("unexpected rank 3 entry: %+v", entries[2])
	}
	// Unscored picks still count toward totals.
	if entries[2].TotalPicks != 2 {
		t.Fatalf("unexpected total picks for user 30: got=%d want=2", entries[2].TotalPicks)
	}
}

func TestBuildWeeklyEntries_TiedUsersGetDistinctRanks(t *testing.T) {
	t.Parallel()

	picks := []pick.Pick{
		{ID: 1, UserID: 10, MatchupID: 1, Verdict: pick.VerdictCorrect},
		{ID: 2, UserID: 20, MatchupID: 1, Verdict: pick.VerdictCorrect},
	}

	entries := buildWeeklyEntries(1, time.Now(), picks)
	if entries[0].UserID != 10 || entries[0].Rank != 1 {
		t.Fatalf("expected user 10 first on tie, got %+v", entries[0])
	}
	if entries[1].UserID != 20 || entries[1].Rank != 2 {
		t.Fatalf("expected user 20 second on tie, got %+v", entries[1])
	}
}

func newScoringFixture() (*ScoringService, *stubWeekRepository, *stubMatchupRepository, *stubPickRepository, *stubPaymentRepository, *stubLeaderboardRepository, *stubNotificationRepository) {
	weekRepo := &stubWeekRepository{}
	matchupRepo := &stubMatchupRepository{}
	pickRepo := &stubPickRepository{}
	paymentRepo := &stubPaymentRepository{}
	boardRepo := &stubLeaderboardRepository{}
	notificationRepo := &stubNotificationRepository{}

	prizes := NewPrizeService(paymentRepo, boardRepo, notificationRepo, testLogger())
	scoring := NewScoringService(weekRepo, matchupRepo, pickRepo, boardRepo, prizes)
	return scoring, weekRepo, matchupRepo, pickRepo, paymentRepo, boardRepo, notificationRepo
}

func TestScoringService_ScoreWeek_SplitsPrizeAcrossTiedWinners(t *testing.T) {
	t.Parallel()

	scoring, weekRepo, matchupRepo, pickRepo, paymentRepo, boardRepo, notificationRepo := newScoringFixture()

	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsLocked: true})
	matchupRepo.seed(
		homeFavoredMatchup(intPtr(27), intPtr(20), matchup.StatusFinal),
		matchup.Matchup{
			ID: 2, WeekID: 1,
			HomeTeamAbbr: "DAL", AwayTeamAbbr: "PHI",
			PointSpread: 2.5, SpreadFavor: matchup.SideAway,
			HomeScore: intPtr(21), AwayScore: intPtr(28),
			Status: matchup.StatusFinal,
		},
	)
	pickRepo.seed(
		// Both users go 1-1: tied at the top.
		pick.Pick{ID: 1, UserID: 10, MatchupID: 1, WeekID: 1, PickedTeam: "KC"},
		pick.Pick{ID: 2, UserID: 20, MatchupID: 1, WeekID: 1, PickedTeam: "BUF"},
		pick.Pick{ID: 3, UserID: 10, MatchupID: 2, WeekID: 1, PickedTeam: "DAL"},
		pick.Pick{ID: 4, UserID: 20, MatchupID: 2, WeekID: 1, PickedTeam: "PHI"},
	)
	paymentRepo.seed(
		payment.Payment{ID: 1, UserID: 10, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
		payment.Payment{ID: 2, UserID: 20, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
		// Pending money never enters the pool.
		payment.Payment{ID: 3, UserID: 30, WeekID: 1, Amount: 1000, Status: payment.StatusPending},
	)

	result, err := scoring.ScoreWeek(context.Background(), 1)
	if err != nil {
		t.Fatalf("ScoreWeek error: %v", err)
	}

	if result.PrizePool.TotalCollected != 2000 {
		t.Fatalf("unexpected total collected: got=%d want=2000", result.PrizePool.TotalCollected)
	}
	if result.PrizePool.WinnerCount != 2 {
		t.Fatalf("unexpected winner count: got=%d want=2", result.PrizePool.WinnerCount)
	}
	if result.PrizePool.PrizePerWinner == nil || *result.PrizePool.PrizePerWinner != 1000 {
		t.Fatalf("unexpected prize per winner: %+v", result.PrizePool.PrizePerWinner)
	}

	entries, err := boardRepo.ListWeekly(context.Background(), 1)
	if err != nil {
		t.Fatalf("list weekly: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.CorrectPicks != 1 || entry.TotalPicks != 2 {
			t.Fatalf("unexpected entry stats: %+v", entry)
		}
		if entry.PrizeAmount == nil || *entry.PrizeAmount != 1000 {
			t.Fatalf("expected prize 1000 on entry %+v", entry)
		}
	}

	wk, _, _ := weekRepo.GetByID(context.Background(), 1)
	if !wk.IsScored {
		t.Fatalf("expected week marked scored")
	}

	pending, _ := notificationRepo.ListPending(context.Background())
	if len(pending) != 2 {
		t.Fatalf("expected 2 winner notifications, got %d", len(pending))
	}
}

func TestScoringService_ScoreWeek_ParticipantCountTracksCompletedPayments(t *testing.T) {
	t.Parallel()

	scoring, weekRepo, matchupRepo, pickRepo, paymentRepo, _, _ := newScoringFixture()

	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsLocked: true})
	matchupRepo.seed(homeFavoredMatchup(intPtr(27), intPtr(20), matchup.StatusFinal))
	pickRepo.seed(
		// Three users pick, but only two have paid up.
		pick.Pick{ID: 1, UserID: 10, MatchupID: 1, WeekID: 1, PickedTeam: "KC"},
		pick.Pick{ID: 2, UserID: 20, MatchupID: 1, WeekID: 1, PickedTeam: "BUF"},
		pick.Pick{ID: 3, UserID: 30, MatchupID: 1, WeekID: 1, PickedTeam: "BUF"},
	)
	paymentRepo.seed(
		payment.Payment{ID: 1, UserID: 10, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
		payment.Payment{ID: 2, UserID: 20, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
		payment.Payment{ID: 3, UserID: 30, WeekID: 1, Amount: 1000, Status: payment.StatusPending},
	)

	result, err := scoring.ScoreWeek(context.Background(), 1)
	if err != nil {
		t.Fatalf("ScoreWeek error: %v", err)
	}

	if len(result.Entries) != 3 {
		t.Fatalf("expected 3 leaderboard entries, got %d", len(result.Entries))
	}
	if result.PrizePool.ParticipantCount != 2 {
		t.Fatalf("unexpected participant count: got=%d want=2", result.PrizePool.ParticipantCount)
	}
	if result.PrizePool.TotalCollected != 2000 {
		t.Fatalf("unexpected total collected: got=%d want=2000", result.PrizePool.TotalCollected)
	}
}

func TestScoringService_ScoreWeek_FlooredPrizeLeavesRemainderInPool(t *testing.T) {
	t.Parallel()

	scoring, weekRepo, matchupRepo, pickRepo, paymentRepo, _, _ := newScoringFixture()

	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsLocked: true})
	matchupRepo.seed(homeFavoredMatchup(intPtr(27), intPtr(20), matchup.StatusFinal))
	pickRepo.seed(
		pick.Pick{ID: 1, UserID: 10, MatchupID: 1, WeekID: 1, PickedTeam: "KC"},
		pick.Pick{ID: 2, UserID: 20, MatchupID: 1, WeekID: 1, PickedTeam: "KC"},
		pick.Pick{ID: 3, UserID: 30, MatchupID: 1, WeekID: 1, PickedTeam: "KC"},
	)
	paymentRepo.seed(
		payment.Payment{ID: 1, UserID: 10, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
		payment.Payment{ID: 2, UserID: 20, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
		payment.Payment{ID: 3, UserID: 30, WeekID: 1, Amount: 500, Status: payment.StatusCompleted},
	)

	result, err := scoring.ScoreWeek(context.Background(), 1)
	if err != nil {
		t.Fatalf("ScoreWeek error: %v", err)
	}

	// 2500 across 3 winners floors to 833; the remaining 1 cent stays put.
	if result.PrizePool.PrizePerWinner == nil || *result.PrizePool.PrizePerWinner != 833 {
		t.Fatalf("unexpected prize per winner: %+v", result.PrizePool.PrizePerWinner)
	}
	distributed := *result.PrizePool.PrizePerWinner * int64(result.PrizePool.WinnerCount)
	if result.PrizePool.TotalCollected-distributed != 1 {
		t.Fatalf("unexpected remainder: total=%d distributed=%d", result.PrizePool.TotalCollected, distributed)
	}
}

func TestScoringService_ScoreWeek_IsIdempotent(t *testing.T) {
	t.Parallel()

	scoring, weekRepo, matchupRepo, pickRepo, paymentRepo, boardRepo, notificationRepo := newScoringFixture()

	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsLocked: true})
	matchupRepo.seed(homeFavoredMatchup(intPtr(27), intPtr(20), matchup.StatusFinal))
	pickRepo.seed(pick.Pick{ID: 1, UserID: 10, MatchupID: 1, WeekID: 1, PickedTeam: "KC"})
	paymentRepo.seed(payment.Payment{ID: 1, UserID: 10, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted})

	first, err := scoring.ScoreWeek(context.Background(), 1)
	if err != nil {
		t.Fatalf("first ScoreWeek error: %v", err)
	}
	second, err := scoring.ScoreWeek(context.Background(), 1)
	if err != nil {
		t.Fatalf("second ScoreWeek error: %v", err)
	}

	if len(first.Entries) != len(second.Entries) {
		t.Fatalf("entry count changed between runs: %d vs %d", len(first.Entries), len(second.Entries))
	}
	if *first.PrizePool.PrizePerWinner != *second.PrizePool.PrizePerWinner {
		t.Fatalf("prize changed between runs")
	}

	entries, _ := boardRepo.ListWeekly(context.Background(), 1)
	if len(entries) != 1 {
		t.Fatalf("expected a single entry after rerun, got %d", len(entries))
	}
	pending, _ := notificationRepo.ListPending(context.Background())
	if len(pending) != 1 {
		t.Fatalf("expected a single winner notification after rerun, got %d", len(pending))
	}
}

func TestScoringService_ScoreWeek_SkipsUnfinishedGames(t *testing.T) {
	t.Parallel()

	scoring, weekRepo, matchupRepo, pickRepo, _, _, _ := newScoringFixture()

	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsLocked: true})
	matchupRepo.seed(
		homeFavoredMatchup(intPtr(27), intPtr(20), matchup.StatusFinal),
		matchup.Matchup{
			ID: 2, WeekID: 1,
			HomeTeamAbbr: "DAL", AwayTeamAbbr: "PHI",
			PointSpread: 2.5, SpreadFavor: matchup.SideHome,
			Status: matchup.StatusScheduled,
		},
	)
	pickRepo.seed(
		pick.Pick{ID: 1, UserID: 10, MatchupID: 1, WeekID: 1, PickedTeam: "KC"},
		pick.Pick{ID: 2, UserID: 10, MatchupID: 2, WeekID: 1, PickedTeam: "DAL"},
	)

	result, err := scoring.ScoreWeek(context.Background(), 1)
	if err != nil {
		t.Fatalf("ScoreWeek error: %v", err)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if result.Entries[0].CorrectPicks != 1 || result.Entries[0].TotalPicks != 2 {
		t.Fatalf("unexpected entry: %+v", result.Entries[0])
	}

	stored, _, _ := pickRepo.GetByID(context.Background(), 2)
	if stored.Verdict != pick.VerdictUnscored {
		t.Fatalf("pick on unfinished game must stay unscored, got %s", stored.Verdict)
	}
}

func TestScoringService_CalculateWeeklyLeaderboard_UsesStoredVerdicts(t *testing.T) {
	t.Parallel()

	scoring, weekRepo, matchupRepo, pickRepo, paymentRepo, boardRepo, _ := newScoringFixture()

	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1, IsLocked: true, IsScored: true})
	matchupRepo.seed(homeFavoredMatchup(intPtr(27), intPtr(20), matchup.StatusFinal))
	// User 20's stored verdict disagrees with the final score; the rebuild
	// must honor it rather than re-evaluate the pick.
	pickRepo.seed(
		pick.Pick{ID: 1, UserID: 10, MatchupID: 1, WeekID: 1, PickedTeam: "KC", Verdict: pick.VerdictIncorrect},
		pick.Pick{ID: 2, UserID: 20, MatchupID: 1, WeekID: 1, PickedTeam: "BUF", Verdict: pick.VerdictCorrect},
	)
	paymentRepo.seed(
		payment.Payment{ID: 1, UserID: 10, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
		payment.Payment{ID: 2, UserID: 20, WeekID: 1, Amount: 1000, Status: payment.StatusCompleted},
	)

	entries, err := scoring.CalculateWeeklyLeaderboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("CalculateWeeklyLeaderboard error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].UserID != 20 || entries[0].CorrectPicks != 1 || entries[0].Rank != 1 {
		t.Fatalf("unexpected rank 1 entry: %+v", entries[0])
	}

	stored, _, _ := pickRepo.GetByID(context.Background(), 1)
	if stored.Verdict != pick.VerdictIncorrect {
		t.Fatalf("rebuild must not re-evaluate picks, verdict became %s", stored.Verdict)
	}

	replaced, _ := boardRepo.ListWeekly(context.Background(), 1)
	if len(replaced) != 2 {
		t.Fatalf("expected replaced weekly board, got %d entries", len(replaced))
	}
	pool, ok, _ := boardRepo.GetPrizePool(context.Background(), 1)
	if !ok || pool.WinnerCount != 1 {
		t.Fatalf("expected prizes redistributed, got %+v ok=%v", pool, ok)
	}
}

func TestScoringService_CalculateWeeklyLeaderboard_Errors(t *testing.T) {
	t.Parallel()

	scoring, weekRepo, _, _, _, _, _ := newScoringFixture()
	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1})

	if _, err := scoring.CalculateWeeklyLeaderboard(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing week, got %v", err)
	}
	if _, err := scoring.CalculateWeeklyLeaderboard(context.Background(), 1); !errors.Is(err, ErrEmptyWeek) {
		t.Fatalf("expected ErrEmptyWeek for week without matchups, got %v", err)
	}
}

func TestScoringService_ScoreWeek_Errors(t *testing.T) {
	t.Parallel()

	scoring, weekRepo, _, _, _, _, _ := newScoringFixture()
	weekRepo.seed(week.Week{ID: 1, SeasonID: 1, WeekNumber: 1})

	if _, err := scoring.ScoreWeek(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing week, got %v", err)
	}
	if _, err := scoring.ScoreWeek(context.Background(), 1); !errors.Is(err, ErrEmptyWeek) {
		t.Fatalf("expected ErrEmptyWeek for week without matchups, got %v", err)
	}
}
