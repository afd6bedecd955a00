package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationEvent records a single zone transition that was surfaced to the
// owning user. Member and place names are denormalized so the notification
// list renders without extra lookups. Immutable after creation except for the
// read flag.
type NotificationEvent struct {
	ID         uuid.UUID      `json:"id"`          // The Global Unique Identifier (GUID) for the event.
	UserID     uuid.UUID      `json:"user_id"`     // The owner who receives the notification.
	MemberID   uuid.UUID      `json:"member_id"`   // The member who crossed the boundary.
	PlaceID    uuid.UUID      `json:"place_id"`    // The place whose boundary was crossed.
	Kind       TransitionKind `json:"kind"`        // zone_enter or zone_exit.
	MemberName string         `json:"member_name"` // Member display name at emission time.
	PlaceName  string         `json:"place_name"`  // Place display name at emission time.
	IsRead     bool           `json:"is_read"`     // Set once the user opens the notification.
	ReadAt     *time.Time     `json:"read_at"`     // Timestamp of when the notification was read.
	CreatedAt  time.Time      `json:"created_at"`  // Timestamp of when the transition was detected.
}
