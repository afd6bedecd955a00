// Package scheduler drives the fixed-interval foreground evaluation cadence.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"connkeeper/config"
	"connkeeper/internal/delivery"
	"connkeeper/internal/domain/repository"
	"connkeeper/internal/usecase"
	"connkeeper/internal/util"

	"go.uber.org/fx"
)

const defaultCycleInterval = 30 * time.Second

type cycleScheduler struct {
	logger     *slog.Logger
	placeRepo  repository.PlaceRepository
	geofenceUC usecase.GeofenceUsecase
	interval   time.Duration
	done       chan struct{}
}

// SchedulerParams holds dependencies for the cycle scheduler
type SchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	PlaceRepo  repository.PlaceRepository
	GeofenceUC usecase.GeofenceUsecase
}

// NewScheduler creates the timer-driven delivery that sweeps every owner
// on a fixed interval. Sweeps are idempotent, so overlap with sample-driven
// or background cycles is harmless.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	interval := defaultCycleInterval
	if params.Cfg.Geofence != nil && params.Cfg.Geofence.CycleInterval > 0 {
		interval = params.Cfg.Geofence.CycleInterval
	}

	s := &cycleScheduler{
		logger:     params.Logger,
		placeRepo:  params.PlaceRepo,
		geofenceUC: params.GeofenceUC,
		interval:   interval,
		done:       make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the evaluation ticker until shutdown
func (s *cycleScheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting cycle scheduler",
		slog.String("interval", util.FormatDuration(s.interval)),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one evaluation cycle for every owner with at least one place.
// Per-owner failures are logged and do not stop the sweep.
func (s *cycleScheduler) sweep(ctx context.Context) {
	ownerIDs, err := s.placeRepo.ListOwnerIDs(ctx)
	if err != nil {
		s.logger.Error("[Scheduler] Failed to list owners", slog.Any("error", err))

		return
	}

	for _, ownerID := range ownerIDs {
		stats, err := s.geofenceUC.RunCycle(ctx, ownerID, usecase.TriggerTimer)
		if err != nil {
			s.logger.Error("[Scheduler] Evaluation cycle failed",
				slog.String("owner_id", ownerID.String()),
				slog.Any("error", err),
			)

			continue
		}

		if stats.Transitions > 0 {
			s.logger.Info("[Scheduler] Evaluation cycle detected transitions",
				slog.String("owner_id", ownerID.String()),
				slog.Int("transitions", stats.Transitions),
				slog.Int("emitted", stats.Emitted),
				slog.Int("suppressed", stats.Suppressed),
			)
		}
	}
}

func (s *cycleScheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down cycle scheduler")
	close(s.done)

	return nil
}
