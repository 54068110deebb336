package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

const (
	jobStatusSuccess = "success"
	jobStatusFailed  = "failed"
	jobStatusSkipped = "skipped"

	defaultJobWorkers = 4
	maxJobWorkers     = 16
)

type ScorePendingWeeksInput struct {
	SeasonID   int64
	MaxWorkers int
}

type ScorePendingWeeksResult struct {
	WeekCount    int             `json:"week_count"`
	SuccessCount int             `json:"success_count"`
	FailedCount  int             `json:"failed_count"`
	SkippedCount int             `json:"skipped_count"`
	WorkerCount  int             `json:"worker_count"`
	Weeks        []WeekJobResult `json:"weeks"`
}

type WeekJobResult struct {
	WeekID     int64  `json:"week_id"`
	WeekNumber int    `json:"week_number"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// JobService is the batch entry point behind the internal job routes. It
// sweeps a season for weeks that are locked, past their end date, and not
// yet scored, and runs each through the scoring pipeline. Different weeks
// score concurrently; per-week exclusivity is already enforced by the
// scoring service.
type JobService struct {
	seasonRepo     season.Repository
	weekRepo       week.Repository
	scoring        *ScoringService
	defaultWorkers int
	now            func() time.Time
}

// NewJobService builds the batch scorer. defaultWorkers is used when a job
// request does not name a worker count; values <= 0 fall back to the
// package default.
func NewJobService(seasonRepo season.Repository, weekRepo week.Repository, scoring *ScoringService, defaultWorkers int) *JobService {
	return &JobService{
		seasonRepo:     seasonRepo,
		weekRepo:       weekRepo,
		scoring:        scoring,
		defaultWorkers: defaultWorkers,
		now:            time.Now,
	}
}

func (s *JobService) ScorePendingWeeks(ctx context.Context, input ScorePendingWeeksInput) (ScorePendingWeeksResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.JobService.ScorePendingWeeks")
	defer span.End()

	seasonID := input.SeasonID
	if seasonID == 0 {
		active, exists, err := s.seasonRepo.GetActive(ctx)
		if err != nil {
			return ScorePendingWeeksResult{}, fmt.Errorf("get active season: %w", err)
		}
		if !exists {
			return ScorePendingWeeksResult{}, fmt.Errorf("%w: no active season", ErrNotFound)
		}
		seasonID = active.ID
	} else {
		_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
		if err != nil {
			return ScorePendingWeeksResult{}, fmt.Errorf("get season for job: %w", err)
		}
		if !exists {
			return ScorePendingWeeksResult{}, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
		}
	}

	weeks, err := s.weekRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return ScorePendingWeeksResult{}, fmt.Errorf("list weeks season=%d: %w", seasonID, err)
	}

	now := s.now().UTC()
	pending := make([]week.Week, 0)
	for _, wk := range weeks {
		if wk.IsLocked && !wk.IsScored && wk.EndDate.Before(now) {
			pending = append(pending, wk)
		}
	}

	requested := input.MaxWorkers
	if requested <= 0 {
		requested = s.defaultWorkers
	}
	workerCount := normalizeJobWorkerCount(requested, len(pending))
	result := ScorePendingWeeksResult{
		WeekCount:   len(pending),
		WorkerCount: workerCount,
		Weeks:       make([]WeekJobResult, 0, len(pending)),
	}
	if len(pending) == 0 {
		return result, nil
	}

	rows := make(chan WeekJobResult, len(pending))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return ScorePendingWeeksResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, wk := range pending {
		wk := wk
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WeekJobResult{WeekID: wk.ID, WeekNumber: wk.WeekNumber}

			_, err := s.scoring.ScoreWeek(ctx, wk.ID)
			switch {
			case err == nil:
				row.Status = jobStatusSuccess
				successCount.Add(1)
			case errors.Is(err, ErrEmptyWeek):
				row.Status = jobStatusSkipped
				row.Message = err.Error()
				skippedCount.Add(1)
			default:
				row.Status = jobStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			rows <- row
		}); err != nil {
			workers.Done()
			return ScorePendingWeeksResult{}, fmt.Errorf("submit week to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Weeks = append(result.Weeks, row)
	}
	sort.SliceStable(result.Weeks, func(i, j int) bool {
		return result.Weeks[i].WeekNumber < result.Weeks[j].WeekNumber
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	return result, nil
}

func normalizeJobWorkerCount(requested, taskCount int) int {
	count := requested
	if count <= 0 {
		count = defaultJobWorkers
	}
	if count > maxJobWorkers {
		count = maxJobWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	if count < 1 {
		count = 1
	}
	return count
}
