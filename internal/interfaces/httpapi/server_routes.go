package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/active", handler.GetActiveSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/weeks", handler.ListSeasonWeeks)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/leaderboard", handler.GetSeasonLeaderboard)
	mux.HandleFunc("GET /v1/weeks/{weekID}", handler.GetWeek)
	mux.HandleFunc("GET /v1/weeks/{weekID}/matchups", handler.ListWeekMatchups)
	mux.HandleFunc("GET /v1/weeks/{weekID}/leaderboard", handler.GetWeeklyLeaderboard)
	mux.HandleFunc("GET /v1/weeks/{weekID}/prize-pool", handler.GetPrizePool)
	mux.HandleFunc("GET /v1/matchups/{matchupID}", handler.GetMatchup)
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/picks", RequireUser(http.HandlerFunc(handler.SubmitPick)))
	mux.Handle("DELETE /v1/picks/{pickID}", RequireUser(http.HandlerFunc(handler.DeletePick)))
	mux.Handle("GET /v1/weeks/{weekID}/picks/me", RequireUser(http.HandlerFunc(handler.ListMyWeekPicks)))
	mux.Handle("POST /v1/payments", RequireUser(http.HandlerFunc(handler.RecordPayment)))
	mux.Handle("GET /v1/weeks/{weekID}/payments/me", RequireUser(http.HandlerFunc(handler.GetMyWeekPayment)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/admin/seasons", RequireAdmin(http.HandlerFunc(handler.CreateSeason)))
	mux.Handle("POST /v1/admin/weeks", RequireAdmin(http.HandlerFunc(handler.CreateWeek)))
	mux.Handle("PUT /v1/admin/weeks/{weekID}/lock", RequireAdmin(http.HandlerFunc(handler.SetWeekLocked)))
	mux.Handle("POST /v1/admin/matchups", RequireAdmin(http.HandlerFunc(handler.CreateMatchup)))
	mux.Handle("PUT /v1/admin/matchups/{matchupID}/score", RequireAdmin(http.HandlerFunc(handler.UpdateMatchupScore)))
	mux.Handle("PATCH /v1/admin/payments/{paymentID}/status", RequireAdmin(http.HandlerFunc(handler.UpdatePaymentStatus)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/score-week", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunScoreWeekJob)))
	mux.Handle("POST /v1/internal/jobs/score-pending-weeks", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunScorePendingWeeksJob)))
	mux.Handle("POST /v1/internal/jobs/sync-scores", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncScoresJob)))
	mux.Handle("POST /v1/internal/jobs/weekly-leaderboard", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunWeeklyLeaderboardJob)))
	mux.Handle("POST /v1/internal/jobs/season-leaderboard", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSeasonLeaderboardJob)))
}
