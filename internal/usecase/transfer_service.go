package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/player"
	"github.com/mlbb-fantasy/api/internal/domain/roster"
	idgen "github.com/mlbb-fantasy/api/internal/platform/id"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

// transferMaxAttempts bounds the optimistic-concurrency retry loop. Each
// attempt re-reads the roster, so a stale version only means another writer
// landed between our read and our conditional write.
const transferMaxAttempts = 5

type TransferInput struct {
	UserID      string
	Week        int
	OutPlayerID string
	InPlayerID  string
}

type TransferService struct {
	playerRepo player.Repository
	rosterRepo roster.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewTransferService(
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TransferService{
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// Transfer swaps one player for another on an existing roster, re-validating
// the stored budget. The swap, cost recompute, and audit record land in one
// conditional write keyed on the roster version: either everything persists
// or nothing does. Removing an absent out-player is a tolerated no-op, and a
// player may end up drafted twice; both follow the draft contract.
func (s *TransferService) Transfer(ctx context.Context, input TransferInput) (roster.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Transfer")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.OutPlayerID = strings.TrimSpace(input.OutPlayerID)
	input.InPlayerID = strings.TrimSpace(input.InPlayerID)
	if !idgen.Valid(input.UserID) {
		return roster.Roster{}, fmt.Errorf("%w: user_id", ErrInvalidID)
	}
	if !idgen.Valid(input.OutPlayerID) {
		return roster.Roster{}, fmt.Errorf("%w: out_player_id", ErrInvalidID)
	}
	if !idgen.Valid(input.InPlayerID) {
		return roster.Roster{}, fmt.Errorf("%w: in_player_id", ErrInvalidID)
	}
	if input.Week <= 0 {
		return roster.Roster{}, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}

	for attempt := 1; attempt <= transferMaxAttempts; attempt++ {
		current, exists, err := s.rosterRepo.GetByUserAndWeek(ctx, input.UserID, input.Week)
		if err != nil {
			return roster.Roster{}, fmt.Errorf("get roster: %w", err)
		}
		if !exists {
			return roster.Roster{}, fmt.Errorf("%w: no draft for user=%s week=%d", ErrNotFound, input.UserID, input.Week)
		}

		nextPlayerIDs := roster.Swap(current.PlayerIDs, input.OutPlayerID, input.InPlayerID)

		players, err := s.playerRepo.GetByIDs(ctx, dedupe(nextPlayerIDs))
		if err != nil {
			return roster.Roster{}, fmt.Errorf("get players by ids: %w", err)
		}

		totalCost, err := roster.CostOf(nextPlayerIDs, players)
		if err != nil {
			return roster.Roster{}, err
		}
		// The cap is the roster's stored budget, never re-supplied by the caller.
		if err := roster.CheckBudget(totalCost, current.Budget); err != nil {
			return roster.Roster{}, err
		}

		transferID, err := s.idGen.NewID()
		if err != nil {
			return roster.Roster{}, fmt.Errorf("generate transfer id: %w", err)
		}

		now := s.now().UTC()
		audit := roster.Transfer{
			ID:          transferID,
			UserID:      input.UserID,
			Week:        input.Week,
			OutPlayerID: input.OutPlayerID,
			InPlayerID:  input.InPlayerID,
			CreatedAt:   now,
		}

		applied, err := s.rosterRepo.ApplyTransfer(ctx, current.ID, current.Version, roster.Update{
			PlayerIDs: nextPlayerIDs,
			TotalCost: totalCost,
		}, audit)
		if err != nil {
			return roster.Roster{}, fmt.Errorf("apply transfer: %w", err)
		}
		if !applied {
			s.logger.WarnContext(ctx, "transfer lost version race, retrying",
				"user_id", input.UserID,
				"week", input.Week,
				"attempt", attempt,
			)
			continue
		}

		current.PlayerIDs = nextPlayerIDs
		current.TotalCost = totalCost
		current.Version++
		current.UpdatedAt = now

		s.logger.InfoContext(ctx, "transfer applied",
			"user_id", input.UserID,
			"week", input.Week,
			"out_player_id", input.OutPlayerID,
			"in_player_id", input.InPlayerID,
			"total_cost", totalCost,
		)

		return current, nil
	}

	return roster.Roster{}, fmt.Errorf("%w: transfer contention for user=%s week=%d", ErrConflict, input.UserID, input.Week)
}

func (s *TransferService) ListTransfers(ctx context.Context, userID string, week int) ([]roster.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.ListTransfers")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if !idgen.Valid(userID) {
		return nil, fmt.Errorf("%w: user_id", ErrInvalidID)
	}
	if week <= 0 {
		return nil, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}

	items, err := s.rosterRepo.ListTransfers(ctx, userID, week)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	return items, nil
}
