// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Coordinate is a single geographic position. Accuracy, heading and speed are
// only present on live samples; a Coordinate is immutable once captured.
type Coordinate struct {
	Latitude  float64  `json:"latitude"`            // Degrees, signed. North positive.
	Longitude float64  `json:"longitude"`           // Degrees, signed. East positive.
	Accuracy  *float64 `json:"accuracy,omitempty"`  // Horizontal accuracy in meters, if the sampler reported one.
	Heading   *float64 `json:"heading,omitempty"`   // Degrees from true north, if the sampler reported one.
	Speed     *float64 `json:"speed,omitempty"`     // Meters per second, if the sampler reported one.
}

// Point converts the coordinate to an orb.Point (lon/lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Member represents a tracked person in a user's circle.
type Member struct {
	ID              uuid.UUID   `json:"id"`               // The Global Unique Identifier (GUID) for the member.
	UserID          uuid.UUID   `json:"user_id"`          // The account whose device feeds this member's location.
	InviterUserID   uuid.UUID   `json:"inviter_user_id"`  // The user who invited this member and owns the tracking relationship.
	Name            string      `json:"name"`             // Display name shown in notifications.
	ShareLocation   bool        `json:"share_location"`   // Whether the member has consented to location sharing.
	CurrentLocation *Coordinate `json:"current_location"` // Last accepted sample; nil until the first sample arrives.
	UpdatedAt       time.Time   `json:"updated_at"`       // Timestamp of the last accepted location sample.
	CreatedAt       time.Time   `json:"created_at"`       // Timestamp of when this record was created.
}
