package league

import "context"

// Repository describes league persistence needs from use cases.
// AddMember must apply set semantics: adding an existing member is a no-op.
type Repository interface {
	Create(ctx context.Context, l League) error
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetByCode(ctx context.Context, code string) (League, bool, error)
	AddMember(ctx context.Context, leagueID, userID string) error
}
