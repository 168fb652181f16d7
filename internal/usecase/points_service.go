package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/mlbb-fantasy/api/internal/domain/roster"
	idgen "github.com/mlbb-fantasy/api/internal/platform/id"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

const defaultPointsWorkers = 8

// PointsEntry is one externally computed score total for a user's week.
type PointsEntry struct {
	UserID string
	Points int64
}

type ApplyPointsInput struct {
	Week       int
	Entries    []PointsEntry
	MaxWorkers int
}

// ApplyPointsResult reports the fan-out outcome. Missing counts entries whose
// (user, week) has no roster; those are skipped, not failed.
type ApplyPointsResult struct {
	Updated int `json:"updated"`
	Missing int `json:"missing"`
	Failed  int `json:"failed"`
	Workers int `json:"workers"`
}

// PointsService applies scoring-run output to drafted rosters. Scoring itself
// happens elsewhere; this service only lands the supplied totals.
type PointsService struct {
	rosterRepo roster.Repository
	logger     *logging.Logger
}

func NewPointsService(rosterRepo roster.Repository, logger *logging.Logger) *PointsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PointsService{
		rosterRepo: rosterRepo,
		logger:     logger,
	}
}

func (s *PointsService) ApplyPoints(ctx context.Context, input ApplyPointsInput) (ApplyPointsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsService.ApplyPoints")
	defer span.End()

	if input.Week <= 0 {
		return ApplyPointsResult{}, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}
	if len(input.Entries) == 0 {
		return ApplyPointsResult{}, fmt.Errorf("%w: entries are required", ErrInvalidInput)
	}
	for i := range input.Entries {
		input.Entries[i].UserID = strings.TrimSpace(input.Entries[i].UserID)
		if !idgen.Valid(input.Entries[i].UserID) {
			return ApplyPointsResult{}, fmt.Errorf("%w: user_id at entry %d", ErrInvalidID, i)
		}
		if input.Entries[i].Points < 0 {
			return ApplyPointsResult{}, fmt.Errorf("%w: points must not be negative at entry %d", ErrInvalidInput, i)
		}
	}

	workers := input.MaxWorkers
	if workers <= 0 {
		workers = defaultPointsWorkers
	}
	if workers > len(input.Entries) {
		workers = len(input.Entries)
	}

	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return ApplyPointsResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		wg      sync.WaitGroup
		updated atomic.Int64
		missing atomic.Int64
		failed  atomic.Int64
	)
	for _, entry := range input.Entries {
		wg.Add(1)
		submitErr := workerPool.Submit(func() {
			defer wg.Done()

			ok, err := s.rosterRepo.SetPoints(ctx, entry.UserID, input.Week, entry.Points)
			if err != nil {
				failed.Add(1)
				s.logger.ErrorContext(ctx, "apply points failed",
					"user_id", entry.UserID,
					"week", input.Week,
					"error", err,
				)
				return
			}
			if !ok {
				missing.Add(1)
				return
			}
			updated.Add(1)
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
		}
	}
	wg.Wait()

	result := ApplyPointsResult{
		Updated: int(updated.Load()),
		Missing: int(missing.Load()),
		Failed:  int(failed.Load()),
		Workers: workers,
	}

	s.logger.InfoContext(ctx, "points applied",
		"week", input.Week,
		"updated", result.Updated,
		"missing", result.Missing,
		"failed", result.Failed,
	)

	return result, nil
}
