package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaceModel is the GORM-specific struct for the 'places' table.
// It represents a circular geofence owned by a user. A zero radius means "not
// set"; the evaluation layer substitutes the configured default.
type PlaceModel struct {
	ID              uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID         uuid.UUID   `gorm:"type:uuid;not null;index"`
	Name            string      `gorm:"type:text;not null"`
	Latitude        float64     `gorm:"type:decimal(10,8);not null"`
	Longitude       float64     `gorm:"type:decimal(11,8);not null"`
	RadiusMeters    float64     `gorm:"not null;default:0"`
	SelectedMembers []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
