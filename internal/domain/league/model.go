package league

import (
	"fmt"
	"time"
)

// League is an invite-code-gated grouping of users. Membership is a set:
// joining twice is a no-op. Leagues carry no budget or scoring logic.
type League struct {
	ID            string
	Name          string
	Code          string
	OwnerUserID   string
	MemberUserIDs []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Code == "" {
		return fmt.Errorf("league code is required")
	}
	if l.OwnerUserID == "" {
		return fmt.Errorf("league owner is required")
	}

	return nil
}

func (l League) HasMember(userID string) bool {
	for _, memberID := range l.MemberUserIDs {
		if memberID == userID {
			return true
		}
	}
	return false
}
