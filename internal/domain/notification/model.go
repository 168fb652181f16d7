package notification

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindMatch  Kind = "match"
	KindPoints Kind = "points"
	KindLeague Kind = "league"
	KindSystem Kind = "system"
)

var AllKinds = map[Kind]struct{}{
	KindMatch:  {},
	KindPoints: {},
	KindLeague: {},
	KindSystem: {},
}

// Notification is a broadcast message shown to every user.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

func (n Notification) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("notification title is required")
	}
	if n.Message == "" {
		return fmt.Errorf("notification message is required")
	}
	if _, ok := AllKinds[n.Kind]; !ok {
		return fmt.Errorf("invalid notification kind: %s", n.Kind)
	}

	return nil
}
