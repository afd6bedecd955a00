package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connkeeper/config"
	"connkeeper/internal/domain/entity"
	"connkeeper/internal/domain/repository"
	"connkeeper/internal/domain/service"
	"connkeeper/internal/geo"
	"connkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// Alert copy shown to the owner. The member name and place name are
	// denormalized into the body at emission time.
	enterAlertTitle = "Welcome In!"
	exitAlertTitle  = "Goodbye!"

	defaultRadiusMeters      = 100.0
	defaultCooldownWindow    = 5 * time.Minute
	defaultMinSampleInterval = 30 * time.Second
)

type geofenceService struct {
	logger           *slog.Logger
	placeRepo        repository.PlaceRepository
	memberRepo       repository.MemberRepository
	notificationRepo repository.NotificationRepository
	alertSvc         service.AlertService
	transitionCache  service.TransitionCache
	zones            *ZoneStateStore
	defaultRadius    float64
	cooldown         time.Duration
}

// NewGeofenceService creates a new geofence service instance
func NewGeofenceService(
	logger *slog.Logger,
	placeRepo repository.PlaceRepository,
	memberRepo repository.MemberRepository,
	notificationRepo repository.NotificationRepository,
	alertSvc service.AlertService,
	transitionCache service.TransitionCache,
	zones *ZoneStateStore,
	cfg *config.Config,
) usecase.GeofenceUsecase {
	// Default locally; the injected config is shared across providers and
	// must not be mutated here.
	defaultRadius := defaultRadiusMeters
	cooldown := defaultCooldownWindow
	if cfg.Geofence != nil {
		if cfg.Geofence.DefaultRadiusMeters > 0 {
			defaultRadius = cfg.Geofence.DefaultRadiusMeters
		}
		if cfg.Geofence.CooldownWindow > 0 {
			cooldown = cfg.Geofence.CooldownWindow
		}
	}

	return &geofenceService{
		logger:           logger,
		placeRepo:        placeRepo,
		memberRepo:       memberRepo,
		notificationRepo: notificationRepo,
		alertSvc:         alertSvc,
		transitionCache:  transitionCache,
		zones:            zones,
		defaultRadius:    defaultRadius,
		cooldown:         cooldown,
	}
}

// RunCycle evaluates every monitored (member, place) pair owned by ownerID.
// Item-level failures are logged and skipped so one bad record does not abort
// the remaining pairs; only the initial place listing aborts the cycle.
func (s *geofenceService) RunCycle(ctx context.Context, ownerID uuid.UUID, trigger usecase.Trigger) (*usecase.CycleStats, error) {
	stats := &usecase.CycleStats{}

	if ownerID == uuid.Nil {
		s.logger.Debug("Geofence cycle skipped, no owner", slog.String("trigger", string(trigger)))

		return stats, nil
	}

	places, err := s.placeRepo.ListPlacesByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places by owner")
	}

	for _, place := range places {
		// A place without a member selection yields no evaluations.
		if len(place.SelectedMembers) == 0 {
			continue
		}

		members, err := s.memberRepo.ListMembersByUserIDs(ctx, place.SelectedMembers)
		if err != nil {
			s.logger.Warn("Skipping place, member lookup failed",
				slog.String("place_id", place.ID.String()),
				slog.Any("error", err),
			)
			stats.Skipped += len(place.SelectedMembers)

			continue
		}

		for _, member := range members {
			s.evaluatePair(ctx, ownerID, place, member, stats)
		}
	}

	s.logger.Info("Geofence cycle completed",
		slog.String("trigger", string(trigger)),
		slog.String("owner_id", ownerID.String()),
		slog.Int("evaluated", stats.Evaluated),
		slog.Int("skipped", stats.Skipped),
		slog.Int("transitions", stats.Transitions),
		slog.Int("emitted", stats.Emitted),
		slog.Int("suppressed", stats.Suppressed),
	)

	return stats, nil
}

// evaluatePair runs the transition evaluator for one (member, place) pair and
// handles any resulting transition. Staleness of the member's location is
// deliberately not filtered.
func (s *geofenceService) evaluatePair(ctx context.Context, ownerID uuid.UUID, place *entity.Place, member *entity.Member, stats *usecase.CycleStats) {
	if member.CurrentLocation == nil {
		stats.Skipped++

		return
	}
	stats.Evaluated++

	distance := geo.DistanceMeters(member.CurrentLocation.Point(), place.Center.Point())
	// The exact boundary counts as inside.
	isInside := distance <= place.EffectiveRadius(s.defaultRadius)

	key := entity.ZoneKey{MemberID: member.ID, PlaceID: place.ID}

	// Advance the shared state before any side effect, in one critical
	// section, so a failed emission is not re-detected as a fresh transition
	// and a concurrent cycle cannot observe a half-applied update.
	wasInside := s.zones.Swap(key, isInside)
	if isInside == wasInside {
		return
	}
	stats.Transitions++

	kind := entity.TransitionExit
	if isInside {
		kind = entity.TransitionEnter
	}

	if !s.shouldEmit(ctx, key, kind) {
		stats.Suppressed++

		return
	}

	s.emit(ctx, ownerID, place, member, kind)
	stats.Emitted++
}

// shouldEmit decides whether an equivalent notification was already recorded
// within the cooldown window. Best-effort: the cache is the fast path, the
// persisted notification query the authoritative check. Two truly concurrent
// cycles can both pass; the duplicate alert is accepted.
func (s *geofenceService) shouldEmit(ctx context.Context, key entity.ZoneKey, kind entity.TransitionKind) bool {
	seen, err := s.transitionCache.MarkIfAbsent(ctx, key, kind, s.cooldown)
	if err != nil {
		s.logger.Debug("Transition cache unavailable, falling back to store query",
			slog.String("zone_key", key.String()),
			slog.Any("error", err),
		)
	} else if seen {
		return false
	}

	since := time.Now().Add(-s.cooldown)
	count, err := s.notificationRepo.CountRecentNotifications(ctx, key.MemberID, key.PlaceID, kind, since)
	if err != nil {
		s.logger.Warn("Dedup query failed, suppressing notification",
			slog.String("zone_key", key.String()),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)

		return false
	}

	return count == 0
}

// emit delivers the alert and persists the notification event. Failures are
// logged only: the zone state has already advanced, so a lost alert stays
// lost rather than repeating on the next cycle.
func (s *geofenceService) emit(ctx context.Context, ownerID uuid.UUID, place *entity.Place, member *entity.Member, kind entity.TransitionKind) {
	title := exitAlertTitle
	action := "just left"
	if kind == entity.TransitionEnter {
		title = enterAlertTitle
		action = "just entered"
	}
	body := fmt.Sprintf("%s %s 📍 %s", member.Name, action, place.Name)

	event := &entity.NotificationEvent{
		ID:         uuid.New(),
		UserID:     ownerID,
		MemberID:   member.ID,
		PlaceID:    place.ID,
		Kind:       kind,
		MemberName: member.Name,
		PlaceName:  place.Name,
		CreatedAt:  time.Now(),
	}

	data := map[string]string{
		"type":      string(kind),
		"place_id":  place.ID.String(),
		"member_id": member.ID.String(),
	}

	if err := s.alertSvc.EmitLocalAlert(ctx, ownerID, title, body, data); err != nil {
		s.logger.Warn("Alert delivery failed",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)
	}

	if err := s.notificationRepo.CreateNotification(ctx, event); err != nil {
		s.logger.Warn("Notification persist failed",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)
	}
}
