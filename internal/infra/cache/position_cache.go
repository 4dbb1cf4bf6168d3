package cache

import (
	"context"
	"encoding/json"
	"time"

	"proximity/config"
	"proximity/internal/domain/entity"
	"proximity/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	positionKeyPrefix  = "proximity:vendor:"
	positionKeySuffix  = ":last_position"
	defaultPositionTTL = 24 * time.Hour
)

type positionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPositionCache stores the last known position of each vendor in redis.
func NewPositionCache(client *redis.Client, cfg *config.Config) service.PositionCache {
	ttl := defaultPositionTTL
	if cfg != nil && cfg.Redis != nil && cfg.Redis.PositionTTL > 0 {
		ttl = cfg.Redis.PositionTTL
	}

	return &positionCache{client: client, ttl: ttl}
}

func positionKey(vendorID uuid.UUID) string {
	return positionKeyPrefix + vendorID.String() + positionKeySuffix
}

func (c *positionCache) SaveLastPosition(ctx context.Context, vendorID uuid.UUID, position entity.Position) error {
	data, err := json.Marshal(position)
	if err != nil {
		return errors.Wrap(err, "failed to encode position")
	}

	if err := c.client.Set(ctx, positionKey(vendorID), data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save last position")
	}

	return nil
}

func (c *positionCache) GetLastPosition(ctx context.Context, vendorID uuid.UUID) (*entity.Position, error) {
	data, err := c.client.Get(ctx, positionKey(vendorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrPositionNotCached
		}

		return nil, errors.Wrap(err, "failed to load last position")
	}

	var position entity.Position
	if err := json.Unmarshal(data, &position); err != nil {
		return nil, errors.Wrap(err, "failed to decode last position")
	}

	return &position, nil
}
