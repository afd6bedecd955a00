package repository

import (
	"context"
	"errors"
	"time"

	"connkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new zone transition notification.
	CreateNotification(ctx context.Context, event *entity.NotificationEvent) error

	// CountRecentNotifications counts persisted notifications matching the
	// exact (member, place, kind) tuple created after the given instant.
	// The deduplicator suppresses emission when the count is non-zero.
	CountRecentNotifications(ctx context.Context, memberID, placeID uuid.UUID, kind entity.TransitionKind, since time.Time) (int64, error)

	// FindNotificationsByUser retrieves a user's notifications newest-first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationEvent, error)

	// CountUnreadByUser counts a user's unread notifications.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkNotificationRead sets the read flag on a user's notification.
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID, readAt time.Time) error
}
