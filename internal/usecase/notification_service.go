package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/notification"
	idgen "github.com/mlbb-fantasy/api/internal/platform/id"
)

const defaultNotificationLimit = 20

type NotificationService struct {
	notificationRepo notification.Repository
	idGen            idgen.Generator
	now              func() time.Time
}

func NewNotificationService(notificationRepo notification.Repository, idGen idgen.Generator) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		idGen:            idGen,
		now:              time.Now,
	}
}

func (s *NotificationService) ListNotifications(ctx context.Context, limit int) ([]notification.Notification, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NotificationService.ListNotifications")
	defer span.End()

	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	items, err := s.notificationRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return items, nil
}

func (s *NotificationService) CreateNotification(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NotificationService.CreateNotification")
	defer span.End()

	n.Title = strings.TrimSpace(n.Title)
	n.Message = strings.TrimSpace(n.Message)
	if n.Kind == "" {
		n.Kind = notification.KindSystem
	}
	if err := n.Validate(); err != nil {
		return notification.Notification{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	notificationID, err := s.idGen.NewID()
	if err != nil {
		return notification.Notification{}, fmt.Errorf("generate notification id: %w", err)
	}

	n.ID = notificationID
	n.CreatedAt = s.now().UTC()

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return notification.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	return n, nil
}
