package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/mrftt12/Pickem/internal/usecase"
)

type Handler struct {
	seasonService      *usecase.SeasonService
	weekService        *usecase.WeekService
	matchupService     *usecase.MatchupService
	pickService        *usecase.PickService
	paymentService     *usecase.PaymentService
	leaderboardService *usecase.LeaderboardService
	scoringService     *usecase.ScoringService
	syncService        *usecase.ScoreSyncService
	jobService         *usecase.JobService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	weekService *usecase.WeekService,
	matchupService *usecase.MatchupService,
	pickService *usecase.PickService,
	paymentService *usecase.PaymentService,
	leaderboardService *usecase.LeaderboardService,
	scoringService *usecase.ScoringService,
	syncService *usecase.ScoreSyncService,
	jobService *usecase.JobService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		seasonService:      seasonService,
		weekService:        weekService,
		matchupService:     matchupService,
		pickService:        pickService,
		paymentService:     paymentService,
		leaderboardService: leaderboardService,
		scoringService:     scoringService,
		syncService:        syncService,
		jobService:         jobService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest fills payload from the request body. An empty body leaves
// the payload zero-valued so required-field validation reports the miss.
func decodeRequest(r *http.Request, payload any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}
