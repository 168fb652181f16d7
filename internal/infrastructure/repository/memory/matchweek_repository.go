package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mlbb-fantasy/api/internal/domain/matchweek"
)

type MatchweekRepository struct {
	mu    sync.RWMutex
	weeks []matchweek.Matchweek
}

func NewMatchweekRepository(weeks []matchweek.Matchweek) *MatchweekRepository {
	return &MatchweekRepository{weeks: append([]matchweek.Matchweek(nil), weeks...)}
}

func (r *MatchweekRepository) List(_ context.Context) ([]matchweek.Matchweek, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]matchweek.Matchweek(nil), r.weeks...)
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })

	return out, nil
}

func (r *MatchweekRepository) Create(_ context.Context, w matchweek.Matchweek) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.weeks = append(r.weeks, w)

	return nil
}
