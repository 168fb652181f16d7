// Package cache decorates repositories with a read-through TTL cache. Only
// the player catalog is cached: it is reference data written through one
// administrative path, so staleness is bounded by the TTL and invalidated on
// every write.
package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/mlbb-fantasy/api/internal/domain/player"
	"github.com/mlbb-fantasy/api/internal/platform/cache"
)

const playerKeyPrefix = "players:"

type PlayerRepository struct {
	next  player.Repository
	store *cache.Store
}

func NewPlayerRepository(next player.Repository, store *cache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, store: store}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	key := playerKeyPrefix + "list:" + string(filter.Role) + ":" + filter.Team

	value, err := r.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}

	items, ok := value.([]player.Player)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type for %s", key)
	}
	return items, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	key := playerKeyPrefix + "ids:" + strings.Join(playerIDs, ",")

	value, err := r.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.GetByIDs(ctx, playerIDs)
	})
	if err != nil {
		return nil, err
	}

	items, ok := value.([]player.Player)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type for %s", key)
	}
	return items, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.store.DeletePrefix(ctx, playerKeyPrefix)
	return nil
}
