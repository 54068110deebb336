package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/mrftt12/Pickem/internal/infrastructure/repository/memory"
	"github.com/mrftt12/Pickem/internal/usecase"
)

const testJobToken = "test-job-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	seasonRepo := memory.NewSeasonRepository(memory.SeedSeasons())
	weekRepo := memory.NewWeekRepository(memory.SeedWeeks())
	matchupRepo := memory.NewMatchupRepository(memory.SeedMatchups())
	pickRepo := memory.NewPickRepository(nil)
	paymentRepo := memory.NewPaymentRepository(nil)
	boardRepo := memory.NewLeaderboardRepository()
	notificationRepo := memory.NewNotificationRepository()

	prizeService := usecase.NewPrizeService(paymentRepo, boardRepo, notificationRepo, logger)
	scoringService := usecase.NewScoringService(weekRepo, matchupRepo, pickRepo, boardRepo, prizeService)
	matchupService := usecase.NewMatchupService(matchupRepo, weekRepo, scoringService, logger)
	handler := NewHandler(
		usecase.NewSeasonService(seasonRepo, weekRepo, boardRepo),
		usecase.NewWeekService(weekRepo, seasonRepo),
		matchupService,
		usecase.NewPickService(pickRepo, matchupRepo, weekRepo),
		usecase.NewPaymentService(paymentRepo, weekRepo, 1000),
		usecase.NewLeaderboardService(boardRepo, weekRepo, seasonRepo),
		scoringService,
		usecase.NewScoreSyncService(nil, false, weekRepo, seasonRepo, matchupService, logger),
		usecase.NewJobService(seasonRepo, weekRepo, scoringService, 4),
		logger,
	)

	return NewRouter(handler, logger, false, []string{"*"}, testJobToken)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_GetActiveSeason(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/seasons/active", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	if got, _ := data["year"].(float64); int(got) != 2025 {
		t.Fatalf("expected seeded season year 2025, got %v", data["year"])
	}
}

func TestRouter_ListWeekMatchups(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/weeks/1/matchups", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	items, ok := body["data"].([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("expected seeded matchups, got %v", body["data"])
	}
}

func TestRouter_SubmitPick(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/picks", strings.NewReader(`{"matchup_id":1,"picked_team":"KC"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "10")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	if got, _ := data["picked_team"].(string); got != "KC" {
		t.Fatalf("expected picked_team KC, got %v", data["picked_team"])
	}
	if got, _ := data["verdict"].(string); got != "unscored" {
		t.Fatalf("expected verdict unscored, got %v", data["verdict"])
	}
}

func TestRouter_SubmitPick_MissingIdentity(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/picks", strings.NewReader(`{"matchup_id":1,"picked_team":"KC"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_AdminRouteRejectsNonAdmin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/weeks/1/lock", strings.NewReader(`{"locked":true}`))
	req.Header.Set("X-User-ID", "10")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_AdminLockWeek(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/weeks/1/lock", strings.NewReader(`{"locked":true}`))
	req.Header.Set("X-User-ID", "1")
	req.Header.Set("X-User-Role", "admin")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	if locked, _ := data["is_locked"].(bool); !locked {
		t.Fatalf("expected is_locked true, got %v", data["is_locked"])
	}
}

func TestRouter_InternalJobRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/score-week", strings.NewReader(`{"week_id":1}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_WeeklyLeaderboardJob(t *testing.T) {
	router := newTestRouter(t)

	pickReq := httptest.NewRequest(http.MethodPost, "/v1/picks", strings.NewReader(`{"matchup_id":1,"picked_team":"KC"}`))
	pickReq.Header.Set("Content-Type", "application/json")
	pickReq.Header.Set("X-User-ID", "10")
	pickRec := httptest.NewRecorder()
	router.ServeHTTP(pickRec, pickReq)
	if pickRec.Code != http.StatusOK {
		t.Fatalf("submit pick setup failed: %d: %s", pickRec.Code, pickRec.Body.String())
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/weekly-leaderboard", strings.NewReader(`{"week_id":1}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	items, ok := body["data"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one leaderboard entry, got %v", body["data"])
	}
	entry, _ := items[0].(map[string]any)
	if got, _ := entry["user_id"].(float64); int64(got) != 10 {
		t.Fatalf("expected entry for user 10, got %v", entry)
	}
}

func TestRouter_SyncScoresJobUnavailableWhenDisabled(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync-scores", strings.NewReader(`{"week_id":1}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d: %s", rec.Code, rec.Body.String())
	}
}
