package roster

import (
	"context"
	"errors"
)

// ErrAlreadyExists signals a create against an occupied (user, week) key.
var ErrAlreadyExists = errors.New("roster already exists for user and week")

// UserPoints is one leaderboard aggregation row before username hydration.
type UserPoints struct {
	UserID string
	Points int64
}

// Update carries the mutable slice of a roster for a conditional write.
type Update struct {
	PlayerIDs []string
	TotalCost int64
}

// Repository describes roster persistence needs from use cases.
//
// ApplyTransfer is the single atomic step of the transfer flow: it persists
// the updated player list, total cost, and audit record if and only if the
// stored roster still carries expectedVersion. It returns false without
// writing anything when the version is stale.
type Repository interface {
	Create(ctx context.Context, r Roster) error
	GetByUserAndWeek(ctx context.Context, userID string, week int) (Roster, bool, error)
	ApplyTransfer(ctx context.Context, rosterID string, expectedVersion int64, update Update, audit Transfer) (bool, error)
	SetPoints(ctx context.Context, userID string, week int, points int64) (bool, error)
	SumPointsByUser(ctx context.Context, week *int) ([]UserPoints, error)
	ListTransfers(ctx context.Context, userID string, week int) ([]Transfer, error)
}
