package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"connkeeper/config"
	"connkeeper/internal/domain/entity"
	"connkeeper/internal/geo"
	mockRepo "connkeeper/internal/mocks/repository"
	mockSvc "connkeeper/internal/mocks/service"
	"connkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestGeofenceService(t *testing.T) (
	usecase.GeofenceUsecase,
	*ZoneStateStore,
	*mockRepo.MockPlaceRepository,
	*mockRepo.MockMemberRepository,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockAlertService,
	*mockSvc.MockTransitionCache,
) {
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	memberRepo := mockRepo.NewMockMemberRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	alertSvc := mockSvc.NewMockAlertService(t)
	transitionCache := mockSvc.NewMockTransitionCache(t)
	zones := NewZoneStateStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewGeofenceService(
		logger,
		placeRepo,
		memberRepo,
		notificationRepo,
		alertSvc,
		transitionCache,
		zones,
		&config.Config{},
	)

	return service, zones, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache
}

func testPlaceAndMember() (*entity.Place, *entity.Member) {
	memberUserID := uuid.New()
	place := &entity.Place{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Name:            "Home",
		Center:          entity.Coordinate{Latitude: 25.0, Longitude: 121.5},
		SelectedMembers: []uuid.UUID{memberUserID},
	}
	member := &entity.Member{
		ID:              uuid.New(),
		UserID:          memberUserID,
		InviterUserID:   place.OwnerID,
		Name:            "Alice",
		ShareLocation:   true,
		CurrentLocation: &entity.Coordinate{Latitude: 25.0, Longitude: 121.5},
	}

	return place, member
}

func TestGeofenceService_RunCycle_EnterFromDefaultState(t *testing.T) {
	service, zones, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	transitionCache.EXPECT().
		MarkIfAbsent(ctx, entity.ZoneKey{MemberID: member.ID, PlaceID: place.ID}, entity.TransitionEnter, mock.Anything).
		Return(false, nil)
	notificationRepo.EXPECT().
		CountRecentNotifications(ctx, member.ID, place.ID, entity.TransitionEnter, mock.MatchedBy(func(since time.Time) bool {
			// The dedup window lower bound is now minus the 5m cooldown.
			return since.Sub(time.Now().Add(-5*time.Minute)).Abs() < time.Second
		})).
		Return(int64(0), nil)

	alertSvc.EXPECT().
		EmitLocalAlert(ctx, place.OwnerID, "Welcome In!", "Alice just entered 📍 Home", mock.Anything).
		Return(nil)
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(event *entity.NotificationEvent) bool {
			return event.Kind == entity.TransitionEnter &&
				event.UserID == place.OwnerID &&
				event.MemberName == "Alice" &&
				event.PlaceName == "Home"
		})).
		Return(nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Evaluated)
	assert.Equal(t, 1, stats.Transitions)
	assert.Equal(t, 1, stats.Emitted)
	assert.Equal(t, 0, stats.Suppressed)
	assert.True(t, zones.Get(entity.ZoneKey{MemberID: member.ID, PlaceID: place.ID}))
}

func TestGeofenceService_RunCycle_OutsideProducesNoTransition(t *testing.T) {
	service, zones, placeRepo, memberRepo, _, _, _ := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()
	// ~1.1 km east of the center, well outside the 100 m default radius.
	member.CurrentLocation = &entity.Coordinate{Latitude: 25.0, Longitude: 121.51}

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Evaluated)
	assert.Equal(t, 0, stats.Transitions)
	assert.False(t, zones.Get(entity.ZoneKey{MemberID: member.ID, PlaceID: place.ID}))
}

func TestGeofenceService_RunCycle_ConsecutiveCyclesIdempotent(t *testing.T) {
	service, _, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	// Emission happens once, on the first cycle only.
	transitionCache.EXPECT().MarkIfAbsent(ctx, mock.Anything, entity.TransitionEnter, mock.Anything).Return(false, nil).Once()
	notificationRepo.EXPECT().CountRecentNotifications(ctx, member.ID, place.ID, entity.TransitionEnter, mock.Anything).Return(int64(0), nil).Once()
	alertSvc.EXPECT().EmitLocalAlert(ctx, place.OwnerID, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Once()

	first, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerSampleArrival)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Emitted)

	second, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Evaluated)
	assert.Equal(t, 0, second.Transitions)
	assert.Equal(t, 0, second.Emitted)
}

func TestGeofenceService_RunCycle_ExitEmitsGoodbye(t *testing.T) {
	service, zones, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()
	member.CurrentLocation = &entity.Coordinate{Latitude: 25.0, Longitude: 121.51}

	key := entity.ZoneKey{MemberID: member.ID, PlaceID: place.ID}
	zones.Set(key, true)

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	transitionCache.EXPECT().MarkIfAbsent(ctx, key, entity.TransitionExit, mock.Anything).Return(false, nil)
	notificationRepo.EXPECT().CountRecentNotifications(ctx, member.ID, place.ID, entity.TransitionExit, mock.Anything).Return(int64(0), nil)

	alertSvc.EXPECT().
		EmitLocalAlert(ctx, place.OwnerID, "Goodbye!", "Alice just left 📍 Home", mock.Anything).
		Return(nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerBackgroundCallback)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Emitted)
	assert.False(t, zones.Get(key))
}

func TestGeofenceService_RunCycle_CooldownSuppressesViaCache(t *testing.T) {
	service, zones, placeRepo, memberRepo, _, _, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	// Cache already holds the mark: an equivalent transition fired recently.
	transitionCache.EXPECT().MarkIfAbsent(ctx, mock.Anything, entity.TransitionEnter, mock.Anything).Return(true, nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Transitions)
	assert.Equal(t, 1, stats.Suppressed)
	assert.Equal(t, 0, stats.Emitted)
	// Suppression does not roll back the state transition.
	assert.True(t, zones.Get(entity.ZoneKey{MemberID: member.ID, PlaceID: place.ID}))
}

func TestGeofenceService_RunCycle_CooldownSuppressesViaStore(t *testing.T) {
	service, _, placeRepo, memberRepo, notificationRepo, _, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	// Cache misses but a persisted notification within the window exists,
	// e.g. emitted by another replica two minutes ago.
	transitionCache.EXPECT().MarkIfAbsent(ctx, mock.Anything, entity.TransitionEnter, mock.Anything).Return(false, nil)
	notificationRepo.EXPECT().
		CountRecentNotifications(ctx, member.ID, place.ID, entity.TransitionEnter, mock.Anything).
		Return(int64(1), nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Suppressed)
	assert.Equal(t, 0, stats.Emitted)
}

func TestGeofenceService_RunCycle_CacheErrorFallsBackToStore(t *testing.T) {
	service, _, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	transitionCache.EXPECT().
		MarkIfAbsent(ctx, mock.Anything, entity.TransitionEnter, mock.Anything).
		Return(false, errors.New("redis unavailable"))
	notificationRepo.EXPECT().
		CountRecentNotifications(ctx, member.ID, place.ID, entity.TransitionEnter, mock.Anything).
		Return(int64(0), nil)
	alertSvc.EXPECT().EmitLocalAlert(ctx, place.OwnerID, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Emitted)
}

func TestGeofenceService_RunCycle_DedupQueryErrorSuppresses(t *testing.T) {
	service, _, placeRepo, memberRepo, notificationRepo, _, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	transitionCache.EXPECT().MarkIfAbsent(ctx, mock.Anything, entity.TransitionEnter, mock.Anything).Return(false, nil)
	notificationRepo.EXPECT().
		CountRecentNotifications(ctx, member.ID, place.ID, entity.TransitionEnter, mock.Anything).
		Return(int64(0), errors.New("db timeout"))

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Suppressed)
	assert.Equal(t, 0, stats.Emitted)
}

func TestGeofenceService_RunCycle_AlertFailureStillPersists(t *testing.T) {
	service, zones, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	transitionCache.EXPECT().MarkIfAbsent(ctx, mock.Anything, entity.TransitionEnter, mock.Anything).Return(false, nil)
	notificationRepo.EXPECT().
		CountRecentNotifications(ctx, member.ID, place.ID, entity.TransitionEnter, mock.Anything).
		Return(int64(0), nil)
	alertSvc.EXPECT().
		EmitLocalAlert(ctx, place.OwnerID, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Emitted)
	// The failed alert is not re-detected: state already advanced.
	assert.True(t, zones.Get(entity.ZoneKey{MemberID: member.ID, PlaceID: place.ID}))
}

func TestGeofenceService_RunCycle_MemberWithoutLocationSkipped(t *testing.T) {
	service, _, placeRepo, memberRepo, _, _, _ := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()
	member.CurrentLocation = nil

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Evaluated)
	assert.Equal(t, 1, stats.Skipped)
}

func TestGeofenceService_RunCycle_MemberLookupFailureIsolated(t *testing.T) {
	service, _, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	badPlace, _ := testPlaceAndMember()
	badPlace.OwnerID = ownerID
	goodPlace, goodMember := testPlaceAndMember()
	goodPlace.OwnerID = ownerID
	goodMember.InviterUserID = ownerID

	placeRepo.EXPECT().ListPlacesByOwner(ctx, ownerID).Return([]*entity.Place{badPlace, goodPlace}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, badPlace.SelectedMembers).Return(nil, errors.New("db error"))
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, goodPlace.SelectedMembers).Return([]*entity.Member{goodMember}, nil)

	transitionCache.EXPECT().MarkIfAbsent(ctx, mock.Anything, entity.TransitionEnter, mock.Anything).Return(false, nil)
	notificationRepo.EXPECT().
		CountRecentNotifications(ctx, goodMember.ID, goodPlace.ID, entity.TransitionEnter, mock.Anything).
		Return(int64(0), nil)
	alertSvc.EXPECT().EmitLocalAlert(ctx, ownerID, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	stats, err := service.RunCycle(ctx, ownerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Emitted)
}

func TestGeofenceService_RunCycle_PlaceListError(t *testing.T) {
	service, _, placeRepo, _, _, _, _ := createTestGeofenceService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	placeRepo.EXPECT().ListPlacesByOwner(ctx, ownerID).Return(nil, errors.New("db down"))

	stats, err := service.RunCycle(ctx, ownerID, usecase.TriggerTimer)

	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.Contains(t, err.Error(), "failed to list places by owner")
}

func TestGeofenceService_RunCycle_NilOwnerIsNoop(t *testing.T) {
	service, _, _, _, _, _, _ := createTestGeofenceService(t)

	stats, err := service.RunCycle(context.Background(), uuid.Nil, usecase.TriggerSampleArrival)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Evaluated)
}

func TestGeofenceService_RunCycle_PlaceRadiusOverridesDefault(t *testing.T) {
	service, _, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()
	// Member ~1.1 km east; a 2 km radius keeps them inside where the 100 m
	// default would not.
	place.RadiusMeters = 2000
	member.CurrentLocation = &entity.Coordinate{Latitude: 25.0, Longitude: 121.51}

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	transitionCache.EXPECT().MarkIfAbsent(ctx, mock.Anything, entity.TransitionEnter, mock.Anything).Return(false, nil)
	notificationRepo.EXPECT().
		CountRecentNotifications(ctx, member.ID, place.ID, entity.TransitionEnter, mock.Anything).
		Return(int64(0), nil)
	alertSvc.EXPECT().EmitLocalAlert(ctx, place.OwnerID, "Welcome In!", mock.Anything, mock.Anything).Return(nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Emitted)
}

func TestGeofenceService_RunCycle_ExactBoundaryCountsInside(t *testing.T) {
	service, zones, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()
	member.CurrentLocation = &entity.Coordinate{Latitude: 25.0, Longitude: 121.501}

	// Radius equal to the computed distance puts the member exactly on the
	// boundary, which counts as inside.
	d := geo.DistanceMeters(member.CurrentLocation.Point(), place.Center.Point())
	place.RadiusMeters = d

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	transitionCache.EXPECT().MarkIfAbsent(ctx, mock.Anything, entity.TransitionEnter, mock.Anything).Return(false, nil)
	notificationRepo.EXPECT().
		CountRecentNotifications(ctx, member.ID, place.ID, entity.TransitionEnter, mock.Anything).
		Return(int64(0), nil)
	alertSvc.EXPECT().EmitLocalAlert(ctx, place.OwnerID, "Welcome In!", mock.Anything, mock.Anything).Return(nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Transitions)
	assert.Equal(t, 1, stats.Emitted)
	assert.True(t, zones.Get(entity.ZoneKey{MemberID: member.ID, PlaceID: place.ID}))
}

func TestGeofenceService_RunCycle_JustBeyondBoundaryStaysOutside(t *testing.T) {
	service, zones, placeRepo, memberRepo, _, _, _ := createTestGeofenceService(t)

	ctx := context.Background()
	place, member := testPlaceAndMember()
	member.CurrentLocation = &entity.Coordinate{Latitude: 25.0, Longitude: 121.501}

	// A radius one millimeter short of the distance leaves the member outside.
	d := geo.DistanceMeters(member.CurrentLocation.Point(), place.Center.Point())
	place.RadiusMeters = d - 0.001

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)
	memberRepo.EXPECT().ListMembersByUserIDs(ctx, place.SelectedMembers).Return([]*entity.Member{member}, nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Evaluated)
	assert.Equal(t, 0, stats.Transitions)
	assert.False(t, zones.Get(entity.ZoneKey{MemberID: member.ID, PlaceID: place.ID}))
}

func TestGeofenceService_New_DoesNotMutateSharedConfig(t *testing.T) {
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	memberRepo := mockRepo.NewMockMemberRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	alertSvc := mockSvc.NewMockAlertService(t)
	transitionCache := mockSvc.NewMockTransitionCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	NewGeofenceService(logger, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache, NewZoneStateStore(), cfg)

	// Defaulting happens on local copies; the injected config is shared with
	// every other provider and stays untouched.
	assert.Nil(t, cfg.Geofence)

	cfg = &config.Config{Geofence: &config.GeofenceConfig{}}
	NewGeofenceService(logger, placeRepo, memberRepo, notificationRepo, alertSvc, transitionCache, NewZoneStateStore(), cfg)

	assert.Zero(t, cfg.Geofence.DefaultRadiusMeters)
	assert.Zero(t, cfg.Geofence.CooldownWindow)
}

func TestGeofenceService_RunCycle_PlaceWithoutSelectionSkipped(t *testing.T) {
	service, _, placeRepo, _, _, _, _ := createTestGeofenceService(t)

	ctx := context.Background()
	place, _ := testPlaceAndMember()
	place.SelectedMembers = nil

	placeRepo.EXPECT().ListPlacesByOwner(ctx, place.OwnerID).Return([]*entity.Place{place}, nil)

	stats, err := service.RunCycle(ctx, place.OwnerID, usecase.TriggerTimer)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Evaluated)
}
