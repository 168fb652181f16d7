package notification

import "context"

type Repository interface {
	List(ctx context.Context, limit int) ([]Notification, error)
	Create(ctx context.Context, n Notification) error
}
