package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockRepo "connkeeper/internal/mocks/repository"
	mockUsecase "connkeeper/internal/mocks/usecase"
	"connkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func createTestScheduler(t *testing.T) (*cycleScheduler, *mockRepo.MockPlaceRepository, *mockUsecase.MockGeofenceUsecase) {
	t.Helper()

	placeRepo := mockRepo.NewMockPlaceRepository(t)
	geofenceUC := mockUsecase.NewMockGeofenceUsecase(t)

	s := &cycleScheduler{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		placeRepo:  placeRepo,
		geofenceUC: geofenceUC,
		interval:   time.Minute,
		done:       make(chan struct{}),
	}

	return s, placeRepo, geofenceUC
}

func TestSweep_RunsCycleForEveryOwner(t *testing.T) {
	s, placeRepo, geofenceUC := createTestScheduler(t)

	ownerA := uuid.New()
	ownerB := uuid.New()

	placeRepo.EXPECT().ListOwnerIDs(mock.Anything).Return([]uuid.UUID{ownerA, ownerB}, nil).Once()
	geofenceUC.EXPECT().RunCycle(mock.Anything, ownerA, usecase.TriggerTimer).
		Return(&usecase.CycleStats{Evaluated: 1}, nil).Once()
	geofenceUC.EXPECT().RunCycle(mock.Anything, ownerB, usecase.TriggerTimer).
		Return(&usecase.CycleStats{Evaluated: 2, Transitions: 1, Emitted: 1}, nil).Once()

	s.sweep(context.Background())
}

func TestSweep_OwnerFailureDoesNotStopSweep(t *testing.T) {
	s, placeRepo, geofenceUC := createTestScheduler(t)

	ownerA := uuid.New()
	ownerB := uuid.New()

	placeRepo.EXPECT().ListOwnerIDs(mock.Anything).Return([]uuid.UUID{ownerA, ownerB}, nil).Once()
	geofenceUC.EXPECT().RunCycle(mock.Anything, ownerA, usecase.TriggerTimer).
		Return(nil, errors.New("database unavailable")).Once()
	geofenceUC.EXPECT().RunCycle(mock.Anything, ownerB, usecase.TriggerTimer).
		Return(&usecase.CycleStats{}, nil).Once()

	s.sweep(context.Background())
}

func TestSweep_ListOwnersFailureSkipsSweep(t *testing.T) {
	s, placeRepo, _ := createTestScheduler(t)

	placeRepo.EXPECT().ListOwnerIDs(mock.Anything).
		Return(nil, errors.New("database unavailable")).Once()

	s.sweep(context.Background())
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	s, _, _ := createTestScheduler(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestServe_StopsOnShutdown(t *testing.T) {
	s, _, _ := createTestScheduler(t)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(context.Background())
	}()

	if err := s.stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on shutdown")
	}
}
