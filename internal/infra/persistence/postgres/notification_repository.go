package postgres

import (
	"context"
	"time"

	"connkeeper/internal/domain/entity"
	"connkeeper/internal/domain/repository"
	"connkeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new zone transition notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, event *entity.NotificationEvent) error {
	notificationM := fromNotificationDomain(event)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid member or place reference")
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required notification information")
		}

		return errors.Wrap(err, "failed to create notification")
	}

	// Update the entity with generated values
	event.ID = notificationM.ID
	event.CreatedAt = notificationM.CreatedAt

	return nil
}

// CountRecentNotifications counts persisted notifications matching the exact
// (member, place, kind) tuple created after the given instant.
func (repo *notificationRepository) CountRecentNotifications(ctx context.Context, memberID, placeID uuid.UUID, kind entity.TransitionKind, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ZoneNotificationModel{}).
		Where("member_id = ? AND place_id = ? AND kind = ? AND created_at > ?", memberID, placeID, string(kind), since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent notifications")
	}

	return count, nil
}

// FindNotificationsByUser retrieves a user's notifications newest-first with pagination.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.NotificationEvent, error) {
	var notificationModels []*model.ZoneNotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	events := make([]*entity.NotificationEvent, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		events = append(events, toNotificationDomain(notificationM))
	}

	return events, nil
}

// CountUnreadByUser counts a user's unread notifications.
func (repo *notificationRepository) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ZoneNotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkNotificationRead sets the read flag on a user's notification. The user
// filter keeps one user from marking another user's notification.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID, readAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ZoneNotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": readAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM ZoneNotificationModel to a domain NotificationEvent entity.
func toNotificationDomain(data *model.ZoneNotificationModel) *entity.NotificationEvent {
	if data == nil {
		return nil
	}

	return &entity.NotificationEvent{
		ID:         data.ID,
		UserID:     data.UserID,
		MemberID:   data.MemberID,
		PlaceID:    data.PlaceID,
		Kind:       entity.TransitionKind(data.Kind),
		MemberName: data.MemberName,
		PlaceName:  data.PlaceName,
		IsRead:     data.IsRead,
		ReadAt:     data.ReadAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain NotificationEvent entity to a GORM ZoneNotificationModel.
func fromNotificationDomain(data *entity.NotificationEvent) *model.ZoneNotificationModel {
	if data == nil {
		return nil
	}

	return &model.ZoneNotificationModel{
		ID:         data.ID,
		UserID:     data.UserID,
		MemberID:   data.MemberID,
		PlaceID:    data.PlaceID,
		Kind:       string(data.Kind),
		MemberName: data.MemberName,
		PlaceName:  data.PlaceName,
		IsRead:     data.IsRead,
		ReadAt:     data.ReadAt,
		CreatedAt:  data.CreatedAt,
	}
}
