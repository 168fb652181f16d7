package roster

import (
	"errors"
	"fmt"

	"github.com/mlbb-fantasy/api/internal/domain/player"
)

var (
	ErrBudgetExceeded = errors.New("budget exceeded")
	ErrUnknownPlayer  = errors.New("unknown player")
)

// CostOf resolves every id in playerIDs against the supplied catalog slice
// and returns the summed cost. An id with no catalog entry fails with
// ErrUnknownPlayer: a draft must never be priced from a partial lookup.
// Duplicate ids are priced once per occurrence.
func CostOf(playerIDs []string, players []player.Player) (int64, error) {
	costByID := make(map[string]int64, len(players))
	for _, p := range players {
		costByID[p.ID] = p.Cost
	}

	var total int64
	for _, playerID := range playerIDs {
		cost, ok := costByID[playerID]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
		}
		total += cost
	}

	return total, nil
}

// CheckBudget fails with ErrBudgetExceeded when totalCost is over the cap.
// A roster exactly at the cap is allowed.
func CheckBudget(totalCost, budget int64) error {
	if totalCost > budget {
		return fmt.Errorf("%w: cap=%d used=%d", ErrBudgetExceeded, budget, totalCost)
	}

	return nil
}

// Swap removes out by value (a no-op when absent) and appends in, preserving
// the order of the remaining picks. It never errors: the source contract
// tolerates a missing out-player and does not forbid drafting a player twice.
func Swap(playerIDs []string, out, in string) []string {
	next := make([]string, 0, len(playerIDs)+1)
	for _, playerID := range playerIDs {
		if playerID == out {
			continue
		}
		next = append(next, playerID)
	}

	return append(next, in)
}
