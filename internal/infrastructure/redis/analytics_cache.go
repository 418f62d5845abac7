package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/config"
	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// AnalyticsCache is a best-effort read-through cache for the analytics
// payload. Cache failures are logged and treated as misses so Redis outages
// never break the analytics endpoint.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

// NewAnalyticsCache creates an analytics cache with the given TTL.
func NewAnalyticsCache(client *redis.Client, ttl time.Duration, logger *zap.SugaredLogger) *AnalyticsCache {
	return &AnalyticsCache{client: client, ttl: ttl, logger: logger}
}

func (c *AnalyticsCache) key(profileID uuid.UUID) string {
	return fmt.Sprintf("analytics:%s", profileID.String())
}

func (c *AnalyticsCache) Get(ctx context.Context, profileID uuid.UUID) (*service.Analytics, bool) {
	data, err := c.client.Get(ctx, c.key(profileID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("failed to read analytics cache", "profile_id", profileID, "error", err)
		}
		return nil, false
	}

	var analytics service.Analytics
	if err := json.Unmarshal([]byte(data), &analytics); err != nil {
		c.logger.Warnw("failed to decode cached analytics", "profile_id", profileID, "error", err)
		return nil, false
	}

	return &analytics, true
}

func (c *AnalyticsCache) Set(ctx context.Context, profileID uuid.UUID, analytics *service.Analytics) {
	data, err := json.Marshal(analytics)
	if err != nil {
		c.logger.Warnw("failed to encode analytics for cache", "profile_id", profileID, "error", err)
		return
	}

	if err := c.client.Set(ctx, c.key(profileID), data, c.ttl).Err(); err != nil {
		c.logger.Warnw("failed to write analytics cache", "profile_id", profileID, "error", err)
	}
}

func (c *AnalyticsCache) Invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := c.client.Del(ctx, c.key(profileID)).Err(); err != nil {
		c.logger.Warnw("failed to invalidate analytics cache", "profile_id", profileID, "error", err)
	}
}
