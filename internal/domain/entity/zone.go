package entity

import "github.com/google/uuid"

// TransitionKind identifies the direction of a zone boundary crossing.
type TransitionKind string

const (
	// TransitionEnter marks an outside-to-inside crossing.
	TransitionEnter TransitionKind = "zone_enter"
	// TransitionExit marks an inside-to-outside crossing.
	TransitionExit TransitionKind = "zone_exit"
)

// ZoneKey uniquely identifies one monitored (member, place) relationship.
type ZoneKey struct {
	MemberID uuid.UUID
	PlaceID  uuid.UUID
}

// String renders the key as "<memberID>-<placeID>".
func (k ZoneKey) String() string {
	return k.MemberID.String() + "-" + k.PlaceID.String()
}
