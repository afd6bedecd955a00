// Package usecase defines the application-facing interfaces of the engine.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Trigger names the entry point that started an evaluation cycle. All
// triggers produce the same idempotent effect; they exist for logging and to
// make overlap between cycle invocations observable.
type Trigger string

const (
	// TriggerSampleArrival runs right after a new location sample is accepted.
	TriggerSampleArrival Trigger = "sample_arrival"
	// TriggerTimer is the fixed-interval foreground cadence.
	TriggerTimer Trigger = "timer"
	// TriggerBackgroundCallback is delivered through the message queue.
	TriggerBackgroundCallback Trigger = "background_callback"
)

// CycleStats summarizes one evaluation cycle. Callers use it for logging
// only; a cycle has no other result.
type CycleStats struct {
	Evaluated   int // (member, place) pairs evaluated
	Skipped     int // pairs skipped: missing coordinate or failed lookup
	Transitions int // boundary crossings detected
	Emitted     int // notifications emitted and persisted
	Suppressed  int // transitions suppressed by the deduplicator
}

// GeofenceUsecase runs evaluation cycles over an owner's places and members.
type GeofenceUsecase interface {
	// RunCycle evaluates every monitored (member, place) pair for the owner
	// and emits at most one notification per detected transition. Item-level
	// failures are logged and skipped; only a failure to load the owner's
	// places aborts the cycle.
	RunCycle(ctx context.Context, ownerID uuid.UUID, trigger Trigger) (*CycleStats, error)
}
