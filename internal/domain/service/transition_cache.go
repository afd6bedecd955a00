package service

import (
	"context"
	"time"

	"connkeeper/internal/domain/entity"
)

// TransitionCache is the fast path of the notification deduplicator: a
// shared, TTL-based record of recently emitted transitions. The persisted
// notification query remains the authoritative check; cache failures must
// degrade to that query, never block a cycle.
type TransitionCache interface {
	// MarkIfAbsent records the (key, kind) transition with the given TTL and
	// reports whether an unexpired record was already present.
	MarkIfAbsent(ctx context.Context, key entity.ZoneKey, kind entity.TransitionKind, ttl time.Duration) (alreadySeen bool, err error)
}
