package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
)

const (
	defaultBulkWorkers = 4
	maxBulkWorkers     = 32
	maxBulkMatches     = 500

	bulkStatusSuccess  = "success"
	bulkStatusNotFound = "not_found"
	bulkStatusFailed   = "failed"
)

type BulkInput struct {
	MatchIDs   []int64
	MaxWorkers int
}

type BulkResult struct {
	MatchCount   int               `json:"match_count"`
	WorkerCount  int               `json:"worker_count"`
	SuccessCount int               `json:"success_count"`
	NotFound     int               `json:"not_found_count"`
	FailedCount  int               `json:"failed_count"`
	HitCount     int               `json:"hit_count"`
	Matches      []BulkMatchResult `json:"matches"`
}

type BulkMatchResult struct {
	MatchID    int64                  `json:"match_id"`
	Status     string                 `json:"status"`
	DurationMs int64                  `json:"duration_ms"`
	Message    string                 `json:"message,omitempty"`
	Analysis   *buzzerbeater.Analysis `json:"analysis,omitempty"`
}

// FindByMatches runs FindByMatch for every distinct match id on a bounded worker pool.
// A failing match is reported in its own row and never aborts the others.
func (s *BuzzerbeaterService) FindByMatches(ctx context.Context, input BulkInput) (BulkResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BuzzerbeaterService.FindByMatches")
	defer span.End()

	matchIDs, err := normalizeBulkMatchIDs(input.MatchIDs)
	if err != nil {
		return BulkResult{}, err
	}

	workerCount := s.normalizeBulkWorkerCount(input.MaxWorkers, len(matchIDs))
	result := BulkResult{
		MatchCount:  len(matchIDs),
		WorkerCount: workerCount,
		Matches:     make([]BulkMatchResult, 0, len(matchIDs)),
	}

	results := make(chan BulkMatchResult, len(matchIDs))

	var successCount atomic.Int32
	var notFoundCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BulkResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, matchID := range matchIDs {
		matchID := matchID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := BulkMatchResult{MatchID: matchID}
			analysis, err := s.FindByMatch(ctx, matchID)
			switch {
			case err == nil:
				row.Status = bulkStatusSuccess
				row.Analysis = &analysis
				successCount.Add(1)
			case isNotFound(err):
				row.Status = bulkStatusNotFound
				row.Message = err.Error()
				notFoundCount.Add(1)
			default:
				row.Status = bulkStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return BulkResult{}, fmt.Errorf("submit match to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		if row.Analysis != nil {
			result.HitCount += len(row.Analysis.Hits)
		}
		result.Matches = append(result.Matches, row)
	}
	sort.Slice(result.Matches, func(i, j int) bool {
		return result.Matches[i].MatchID < result.Matches[j].MatchID
	})

	result.SuccessCount = int(successCount.Load())
	result.NotFound = int(notFoundCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func normalizeBulkMatchIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: match_ids is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: match id must be > 0, got %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) > maxBulkMatches {
		return nil, fmt.Errorf("%w: at most %d matches per request", ErrInvalidInput, maxBulkMatches)
	}
	return out, nil
}

func (s *BuzzerbeaterService) normalizeBulkWorkerCount(requested, tasks int) int {
	workers := requested
	if workers <= 0 {
		workers = s.cfg.MaxWorkers
	}
	if workers > maxBulkWorkers {
		workers = maxBulkWorkers
	}
	if workers > tasks {
		workers = tasks
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
