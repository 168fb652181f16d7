package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mlbb-fantasy/api/internal/domain/notification"
)

type NotificationRepository struct {
	mu    sync.RWMutex
	items []notification.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) List(_ context.Context, limit int) ([]notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]notification.Notification(nil), r.items...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *NotificationRepository) Create(_ context.Context, n notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, n)

	return nil
}
