package matchweek

import (
	"fmt"
	"time"
)

// Matchweek is calendar metadata for one scoring week.
type Matchweek struct {
	ID        string
	Week      int
	Name      string
	IsCurrent bool
	LockTime  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Matchweek) Validate() error {
	if m.Week <= 0 {
		return fmt.Errorf("week must be greater than zero")
	}
	if m.Name == "" {
		return fmt.Errorf("matchweek name is required")
	}

	return nil
}
