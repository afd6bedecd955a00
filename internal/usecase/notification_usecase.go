package usecase

import (
	"context"

	"connkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase exposes a user's notification feed.
type NotificationUsecase interface {
	// ListNotifications retrieves a user's notifications newest-first.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationEvent, error)

	// UnreadCount counts the user's unread notifications.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkAsRead flags a notification as read.
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
