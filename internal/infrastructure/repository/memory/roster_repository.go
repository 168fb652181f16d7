package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/roster"
)

type RosterRepository struct {
	mu        sync.Mutex
	byKey     map[string]roster.Roster
	keyByID   map[string]string
	transfers []roster.Transfer
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{
		byKey:   make(map[string]roster.Roster),
		keyByID: make(map[string]string),
	}
}

func rosterKey(userID string, week int) string {
	return fmt.Sprintf("%s::%d", userID, week)
}

func (r *RosterRepository) Create(_ context.Context, rst roster.Roster) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rosterKey(rst.UserID, rst.Week)
	if _, exists := r.byKey[key]; exists {
		return fmt.Errorf("%w: user %s week %d", roster.ErrAlreadyExists, rst.UserID, rst.Week)
	}

	rst.PlayerIDs = append([]string(nil), rst.PlayerIDs...)
	r.byKey[key] = rst
	r.keyByID[rst.ID] = key

	return nil
}

func (r *RosterRepository) GetByUserAndWeek(_ context.Context, userID string, week int) (roster.Roster, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rst, ok := r.byKey[rosterKey(userID, week)]
	if !ok {
		return roster.Roster{}, false, nil
	}
	rst.PlayerIDs = append([]string(nil), rst.PlayerIDs...)

	return rst, true, nil
}

// ApplyTransfer updates the roster only when its version still matches
// expectedVersion, recording the audit row in the same critical section.
func (r *RosterRepository) ApplyTransfer(_ context.Context, rosterID string, expectedVersion int64, update roster.Update, audit roster.Transfer) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.keyByID[rosterID]
	if !ok {
		return false, fmt.Errorf("roster %s not found", rosterID)
	}

	rst := r.byKey[key]
	if rst.Version != expectedVersion {
		return false, nil
	}

	rst.PlayerIDs = append([]string(nil), update.PlayerIDs...)
	rst.TotalCost = update.TotalCost
	rst.Version++
	rst.UpdatedAt = audit.CreatedAt
	r.byKey[key] = rst
	r.transfers = append(r.transfers, audit)

	return true, nil
}

func (r *RosterRepository) SetPoints(_ context.Context, userID string, week int, points int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rosterKey(userID, week)
	rst, ok := r.byKey[key]
	if !ok {
		return false, nil
	}

	rst.Points = points
	rst.Version++
	rst.UpdatedAt = time.Now().UTC()
	r.byKey[key] = rst

	return true, nil
}

func (r *RosterRepository) SumPointsByUser(_ context.Context, week *int) ([]roster.UserPoints, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	totals := make(map[string]int64)
	for _, rst := range r.byKey {
		if week != nil && rst.Week != *week {
			continue
		}
		totals[rst.UserID] += rst.Points
	}

	out := make([]roster.UserPoints, 0, len(totals))
	for userID, points := range totals {
		out = append(out, roster.UserPoints{UserID: userID, Points: points})
	}

	return out, nil
}

func (r *RosterRepository) ListTransfers(_ context.Context, userID string, week int) ([]roster.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]roster.Transfer, 0)
	for _, t := range r.transfers {
		if t.UserID != userID || t.Week != week {
			continue
		}
		out = append(out, t)
	}

	return out, nil
}
