package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"connkeeper/config"
	deliveryctx "connkeeper/internal/delivery/context"
	"connkeeper/internal/domain/entity"
	"connkeeper/internal/domain/repository"
	"connkeeper/internal/domain/service"
	"connkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type locationService struct {
	logger     *slog.Logger
	memberRepo repository.MemberRepository
	geofence   usecase.GeofenceUsecase
	publisher  service.EventPublisher

	minSampleInterval time.Duration

	// lastAccepted tracks the wall-clock instant the last sample was accepted
	// per member, for the sampling throttle. Process-local, like the zone state.
	mu           sync.Mutex
	lastAccepted map[uuid.UUID]time.Time
}

// NewLocationService creates a new location service instance
func NewLocationService(
	logger *slog.Logger,
	memberRepo repository.MemberRepository,
	geofence usecase.GeofenceUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
) usecase.LocationUsecase {
	interval := defaultMinSampleInterval
	if cfg.Geofence != nil && cfg.Geofence.MinSampleInterval > 0 {
		interval = cfg.Geofence.MinSampleInterval
	}

	return &locationService{
		logger:            logger,
		memberRepo:        memberRepo,
		geofence:          geofence,
		publisher:         publisher,
		minSampleInterval: interval,
		lastAccepted:      make(map[uuid.UUID]time.Time),
	}
}

// AcceptSample stores a sample for the member fed by userID, runs an inline
// evaluation cycle, and fans the sample out to the background worker. Sharing
// gate and throttle drops are silent by design: the device keeps streaming
// regardless, and the caller has nothing useful to do with a drop.
func (s *locationService) AcceptSample(ctx context.Context, userID uuid.UUID, sample *usecase.LocationSample) error {
	member, err := s.memberRepo.FindMemberByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			s.logger.Debug("Sample dropped, no member record",
				slog.String("user_id", userID.String()),
			)

			return nil
		}

		return errors.Wrap(err, "failed to find member by user id")
	}

	if !member.ShareLocation {
		s.logger.Debug("Sample dropped, sharing disabled",
			slog.String("member_id", member.ID.String()),
		)

		return nil
	}

	if !s.throttleAccept(member.ID, time.Now()) {
		s.logger.Debug("Sample dropped, throttled",
			slog.String("member_id", member.ID.String()),
		)

		return nil
	}

	location := entity.Coordinate{
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Accuracy:  sample.Accuracy,
		Heading:   sample.Heading,
		Speed:     sample.Speed,
	}
	if err := s.memberRepo.UpdateMemberLocation(ctx, member.ID, location, sample.RecordedAt); err != nil {
		return errors.Wrap(err, "failed to update member location")
	}

	// Inline cycle on sample arrival. The cycle is idempotent against the
	// timer and background triggers, so a failure here only delays detection
	// until the next trigger fires.
	if _, err := s.geofence.RunCycle(ctx, member.InviterUserID, usecase.TriggerSampleArrival); err != nil {
		s.logger.Warn("Inline evaluation cycle failed",
			slog.String("member_id", member.ID.String()),
			slog.Any("error", err),
		)
	}

	event := &service.LocationSampleEvent{
		RequestID:  deliveryctx.GetRequestIDFromContext(ctx),
		UserID:     userID.String(),
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
		Accuracy:   sample.Accuracy,
		Heading:    sample.Heading,
		Speed:      sample.Speed,
		RecordedAt: sample.RecordedAt,
	}
	if err := s.publisher.PublishSampleEvent(ctx, event); err != nil {
		s.logger.Warn("Sample event publish failed",
			slog.String("member_id", member.ID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// GetMemberLocations lists the members tracked by ownerID with their last
// accepted locations. The sharing preference hides the location, not the
// member: a member who stopped sharing still appears, without a coordinate.
func (s *locationService) GetMemberLocations(ctx context.Context, ownerID uuid.UUID) ([]*entity.Member, error) {
	members, err := s.memberRepo.ListMembersByInviter(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members by inviter")
	}

	for _, member := range members {
		if !member.ShareLocation {
			member.CurrentLocation = nil
		}
	}

	return members, nil
}

// throttleAccept records the sample instant and reports whether enough time
// passed since the member's previous accepted sample.
func (s *locationService) throttleAccept(memberID uuid.UUID, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastAccepted[memberID]; ok && now.Sub(last) < s.minSampleInterval {
		return false
	}
	s.lastAccepted[memberID] = now

	return true
}
