package roster

import (
	"fmt"
	"time"
)

// DefaultBudget is the cap applied when a draft request omits one.
const DefaultBudget int64 = 100

// Roster is a user's drafted squad for one scoring week. TotalCost caches the
// sum of the referenced players' costs and must always match a recomputation
// from PlayerIDs. Version is the optimistic-concurrency token guarding the
// read-modify-write cycle of transfers.
type Roster struct {
	ID        string
	UserID    string
	Week      int
	Budget    int64
	PlayerIDs []string
	TotalCost int64
	Points    int64
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Roster) ValidateBasic() error {
	if r.ID == "" {
		return fmt.Errorf("roster id is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if r.Week <= 0 {
		return fmt.Errorf("week must be greater than zero")
	}
	if r.Budget <= 0 {
		return fmt.Errorf("budget must be greater than zero")
	}
	if len(r.PlayerIDs) == 0 {
		return fmt.Errorf("player ids are required")
	}

	return nil
}

// Transfer is an immutable audit entry written when a swap succeeds.
type Transfer struct {
	ID          string
	UserID      string
	Week        int
	OutPlayerID string
	InPlayerID  string
	CreatedAt   time.Time
}
