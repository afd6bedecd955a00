package cache

import (
	"context"
	"log/slog"
	"time"

	"connkeeper/internal/domain/entity"
	"connkeeper/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const transitionKeyPrefix = "connkeeper:transition:"

// redisTransitionCache implements service.TransitionCache with a single SETNX
// per transition. The TTL equals the cooldown window, so the key expiring
// means the window has passed.
type redisTransitionCache struct {
	client *redis.Client
}

// NewTransitionCache creates the Redis-backed cache, or a no-op cache when no
// Redis client is available. The no-op cache never reports a transition as
// seen; deduplication then relies entirely on the persisted notification
// query.
func NewTransitionCache(client *redis.Client, logger *slog.Logger) service.TransitionCache {
	if client == nil {
		return &noopTransitionCache{logger: logger}
	}

	return &redisTransitionCache{client: client}
}

func (c *redisTransitionCache) MarkIfAbsent(ctx context.Context, key entity.ZoneKey, kind entity.TransitionKind, ttl time.Duration) (bool, error) {
	cacheKey := transitionKeyPrefix + key.String() + ":" + string(kind)

	set, err := c.client.SetNX(ctx, cacheKey, 1, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to mark transition in cache")
	}

	// SetNX returns false when the key already existed.
	return !set, nil
}

type noopTransitionCache struct {
	logger *slog.Logger
}

func (c *noopTransitionCache) MarkIfAbsent(_ context.Context, _ entity.ZoneKey, _ entity.TransitionKind, _ time.Duration) (bool, error) {
	return false, nil
}
