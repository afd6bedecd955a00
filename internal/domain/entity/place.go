package entity

import (
	"time"

	"github.com/google/uuid"
)

// Place represents a circular geofence owned by a user.
type Place struct {
	ID              uuid.UUID   `json:"id"`               // The Global Unique Identifier (GUID) for the place.
	OwnerID         uuid.UUID   `json:"owner_id"`         // The user who created the place.
	Name            string      `json:"name"`             // Display name shown in notifications.
	Center          Coordinate  `json:"center"`           // Geofence center.
	RadiusMeters    float64     `json:"radius_meters"`    // Geofence radius; zero means "not set" and a default applies at evaluation time.
	SelectedMembers []uuid.UUID `json:"selected_members"` // User IDs of the members monitored against this place.
	CreatedAt       time.Time   `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time   `json:"updated_at"`       // Timestamp of the last modification.
}

// EffectiveRadius returns the radius to evaluate against, substituting
// defaultRadius when the place has no radius set. The substitution is never
// persisted.
func (p *Place) EffectiveRadius(defaultRadius float64) float64 {
	if p.RadiusMeters > 0 {
		return p.RadiusMeters
	}

	return defaultRadius
}
