package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/player"
	"github.com/mlbb-fantasy/api/internal/domain/roster"
	idgen "github.com/mlbb-fantasy/api/internal/platform/id"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

// CreateRosterInput is the incoming payload for drafting a weekly roster.
// Budget of zero means "use the default cap".
type CreateRosterInput struct {
	UserID    string
	Week      int
	PlayerIDs []string
	Budget    int64
}

type RosterService struct {
	playerRepo player.Repository
	rosterRepo roster.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewRosterService(
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateRoster validates the draft against the budget cap and persists it.
// Any player id that does not resolve in the catalog is a hard error; the
// roster is never priced from a partial lookup. One roster may exist per
// (user, week): drafting over an occupied key fails with ErrConflict.
func (s *RosterService) CreateRoster(ctx context.Context, input CreateRosterInput) (roster.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CreateRoster")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	if !idgen.Valid(input.UserID) {
		return roster.Roster{}, fmt.Errorf("%w: user_id", ErrInvalidID)
	}
	if input.Week <= 0 {
		return roster.Roster{}, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}
	if input.Budget == 0 {
		input.Budget = roster.DefaultBudget
	}
	if input.Budget < 0 {
		return roster.Roster{}, fmt.Errorf("%w: budget must be greater than zero", ErrInvalidInput)
	}

	playerIDs, err := cleanPlayerIDs(input.PlayerIDs)
	if err != nil {
		return roster.Roster{}, err
	}

	players, err := s.playerRepo.GetByIDs(ctx, dedupe(playerIDs))
	if err != nil {
		return roster.Roster{}, fmt.Errorf("get players by ids: %w", err)
	}

	totalCost, err := roster.CostOf(playerIDs, players)
	if err != nil {
		return roster.Roster{}, err
	}
	if err := roster.CheckBudget(totalCost, input.Budget); err != nil {
		return roster.Roster{}, err
	}

	rosterID, err := s.idGen.NewID()
	if err != nil {
		return roster.Roster{}, fmt.Errorf("generate roster id: %w", err)
	}

	now := s.now().UTC()
	drafted := roster.Roster{
		ID:        rosterID,
		UserID:    input.UserID,
		Week:      input.Week,
		Budget:    input.Budget,
		PlayerIDs: playerIDs,
		TotalCost: totalCost,
		Points:    0,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := drafted.ValidateBasic(); err != nil {
		return roster.Roster{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.rosterRepo.Create(ctx, drafted); err != nil {
		if errors.Is(err, roster.ErrAlreadyExists) {
			return roster.Roster{}, fmt.Errorf("%w: roster for user=%s week=%d", ErrConflict, input.UserID, input.Week)
		}
		return roster.Roster{}, fmt.Errorf("create roster: %w", err)
	}

	s.logger.InfoContext(ctx, "roster drafted",
		"user_id", input.UserID,
		"week", input.Week,
		"roster_id", drafted.ID,
		"total_cost", totalCost,
		"budget", input.Budget,
	)

	return drafted, nil
}

func (s *RosterService) GetRoster(ctx context.Context, userID string, week int) (roster.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetRoster")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if !idgen.Valid(userID) {
		return roster.Roster{}, fmt.Errorf("%w: user_id", ErrInvalidID)
	}
	if week <= 0 {
		return roster.Roster{}, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}

	drafted, exists, err := s.rosterRepo.GetByUserAndWeek(ctx, userID, week)
	if err != nil {
		return roster.Roster{}, fmt.Errorf("get roster: %w", err)
	}
	if !exists {
		return roster.Roster{}, fmt.Errorf("%w: no draft for user=%s week=%d", ErrNotFound, userID, week)
	}

	return drafted, nil
}

func cleanPlayerIDs(playerIDs []string) ([]string, error) {
	if len(playerIDs) == 0 {
		return nil, fmt.Errorf("%w: player ids are required", ErrInvalidInput)
	}

	cleaned := make([]string, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		playerID = strings.TrimSpace(playerID)
		if !idgen.Valid(playerID) {
			return nil, fmt.Errorf("%w: player id %q", ErrInvalidID, playerID)
		}
		cleaned = append(cleaned, playerID)
	}

	return cleaned, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
