package model

import (
	"time"

	"github.com/google/uuid"
)

// ZoneNotificationModel is the GORM-specific struct for the 'zone_notifications' table.
// It records one zone transition surfaced to the owning user. The composite
// index backs the deduplication window query.
type ZoneNotificationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MemberID   uuid.UUID `gorm:"type:uuid;not null;index:idx_zone_notifications_dedup,priority:1"`
	PlaceID    uuid.UUID `gorm:"type:uuid;not null;index:idx_zone_notifications_dedup,priority:2"`
	Kind       string    `gorm:"type:text;not null;index:idx_zone_notifications_dedup,priority:3"`
	MemberName string    `gorm:"type:text;not null"`
	PlaceName  string    `gorm:"type:text;not null"`
	IsRead     bool      `gorm:"not null;default:false"`
	ReadAt     *time.Time
	CreatedAt  time.Time `gorm:"index:idx_zone_notifications_dedup,priority:4"`
}

// TableName explicitly sets the table name for GORM.
func (ZoneNotificationModel) TableName() string {
	return "zone_notifications"
}
