package matchweek

import "context"

type Repository interface {
	List(ctx context.Context) ([]Matchweek, error)
	Create(ctx context.Context, m Matchweek) error
}
