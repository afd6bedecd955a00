package repository

import (
	"context"
	"errors"

	"connkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for place persistence.
var (
	// ErrPlaceNotFound is returned when a place is not found.
	ErrPlaceNotFound = errors.New("place not found")
)

// PlaceRepository defines the interface for place-related database operations.
// Places are created and edited outside the engine; the engine only reads them.
type PlaceRepository interface {
	// ListPlacesByOwner retrieves all places owned by a user.
	ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error)

	// ListOwnerIDs retrieves the distinct owners that have at least one place.
	// Used by the timer trigger to run a cycle per owner.
	ListOwnerIDs(ctx context.Context) ([]uuid.UUID, error)
}
