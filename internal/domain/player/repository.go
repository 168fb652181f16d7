package player

import "context"

// Filter narrows catalog listings. Empty fields match everything.
type Filter struct {
	Role Role
	Team string
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	Create(ctx context.Context, p Player) error
}
