package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"connkeeper/internal/domain/entity"
	"connkeeper/internal/domain/repository"
	mockRepo "connkeeper/internal/mocks/repository"
	"connkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(logger, notificationRepo)

	return service, notificationRepo
}

func TestNotificationService_ListNotifications(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.NotificationEvent{
		{ID: uuid.New(), UserID: userID, Kind: entity.TransitionEnter},
	}

	notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, 10, 0).
		Return(expected, nil)

	got, err := service.ListNotifications(ctx, userID, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestNotificationService_ListNotifications_DefaultLimit(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultNotificationLimit, 0).
		Return([]*entity.NotificationEvent{}, nil)

	_, err := service.ListNotifications(ctx, userID, 0, -5)

	require.NoError(t, err)
}

func TestNotificationService_ListNotifications_LimitClamped(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, maxNotificationLimit, 0).
		Return([]*entity.NotificationEvent{}, nil)

	_, err := service.ListNotifications(ctx, userID, 10000, 0)

	require.NoError(t, err)
}

func TestNotificationService_ListNotifications_Error(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, 10, 0).
		Return(nil, errors.New("database error"))

	got, err := service.ListNotifications(ctx, userID, 10, 0)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to list notifications")
}

func TestNotificationService_UnreadCount(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().CountUnreadByUser(ctx, userID).Return(int64(3), nil)

	count, err := service.UnreadCount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		MarkNotificationRead(ctx, userID, notificationID, mock.Anything).
		Return(nil)

	err := service.MarkAsRead(ctx, userID, notificationID)

	require.NoError(t, err)
}

func TestNotificationService_MarkAsRead_NotFound(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		MarkNotificationRead(ctx, userID, notificationID, mock.Anything).
		Return(repository.ErrNotificationNotFound)

	err := service.MarkAsRead(ctx, userID, notificationID)

	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}
