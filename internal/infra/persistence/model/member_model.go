// Package model contains the GORM-specific structs that map domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel is the GORM-specific struct for the 'members' table.
// It represents a tracked person in a user's circle. Location columns are
// nullable: they stay NULL until the first accepted sample.
type MemberModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	InviterUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:text;not null"`
	ShareLocation bool      `gorm:"not null;default:true"`
	Latitude      *float64  `gorm:"type:decimal(10,8)"`
	Longitude     *float64  `gorm:"type:decimal(11,8)"`
	Accuracy      *float64  `gorm:"type:decimal(10,3)"`
	Heading       *float64  `gorm:"type:decimal(6,3)"`
	Speed         *float64  `gorm:"type:decimal(8,3)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
