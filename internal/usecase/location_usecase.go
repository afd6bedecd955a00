package usecase

import (
	"context"
	"time"

	"connkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationSample is one raw position sample reported by a device.
type LocationSample struct {
	Latitude   float64
	Longitude  float64
	Accuracy   *float64
	Heading    *float64
	Speed      *float64
	RecordedAt time.Time
}

// LocationUsecase ingests raw samples from the device location pipeline.
type LocationUsecase interface {
	// AcceptSample stores a sample for the member fed by userID and triggers
	// an evaluation cycle. Samples are silently dropped when the member has
	// sharing disabled or the per-member sampling throttle is active.
	AcceptSample(ctx context.Context, userID uuid.UUID, sample *LocationSample) error

	// GetMemberLocations lists the members tracked by ownerID with their last
	// accepted locations. Members with sharing disabled are returned without a
	// location.
	GetMemberLocations(ctx context.Context, ownerID uuid.UUID) ([]*entity.Member, error)
}
