package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/player"
	idgen "github.com/mlbb-fantasy/api/internal/platform/id"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

type PlayerService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, idGen idgen.Generator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	filter.Team = strings.TrimSpace(filter.Team)
	filter.Role = player.Role(strings.TrimSpace(string(filter.Role)))
	if filter.Role != "" {
		if _, ok := player.AllRoles[filter.Role]; !ok {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, filter.Role)
		}
	}

	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

// SeedPlayer adds one player to the catalog. The catalog is reference data:
// records are created by this administrative path and never mutated after.
func (s *PlayerService) SeedPlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SeedPlayer")
	defer span.End()

	p.Name = strings.TrimSpace(p.Name)
	p.IGN = strings.TrimSpace(p.IGN)
	p.Team = strings.TrimSpace(p.Team)
	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	p.ID = playerID
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player seeded",
		"player_id", p.ID,
		"team", p.Team,
		"role", p.Role,
		"cost", p.Cost,
	)

	return p, nil
}
