package memory

import (
	"context"
	"sync"

	"github.com/mlbb-fantasy/api/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	ordered []player.Player
	byID    map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{
		ordered: make([]player.Player, 0, len(players)),
		byID:    make(map[string]player.Player, len(players)),
	}
	for _, p := range players {
		repo.ordered = append(repo.ordered, p)
		repo.byID[p.ID] = p
	}

	return repo
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.ordered))
	for _, p := range r.ordered {
		if filter.Role != "" && p.Role != filter.Role {
			continue
		}
		if filter.Team != "" && p.Team != filter.Team {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		p, ok := r.byID[playerID]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ordered = append(r.ordered, p)
	r.byID[p.ID] = p

	return nil
}
