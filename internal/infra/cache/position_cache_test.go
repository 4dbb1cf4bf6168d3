package cache

import (
	"context"
	"testing"
	"time"

	"proximity/config"
	"proximity/internal/domain/entity"
	"proximity/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, service.PositionCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), PositionTTL: ttl}}

	return mr, NewPositionCache(client, cfg)
}

func TestPositionCache_SaveAndGet(t *testing.T) {
	mr, cache := setupTestCache(t, time.Hour)
	ctx := context.Background()
	vendorID := uuid.New()

	position := entity.Position{
		Latitude:       19.4326,
		Longitude:      -99.1332,
		AccuracyMeters: 8,
		Timestamp:      time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, cache.SaveLastPosition(ctx, vendorID, position))

	got, err := cache.GetLastPosition(ctx, vendorID)
	require.NoError(t, err)
	assert.Equal(t, position.Latitude, got.Latitude)
	assert.Equal(t, position.Longitude, got.Longitude)
	assert.Equal(t, position.AccuracyMeters, got.AccuracyMeters)
	assert.True(t, position.Timestamp.Equal(got.Timestamp))

	assert.Equal(t, time.Hour, mr.TTL(positionKey(vendorID)))
}

func TestPositionCache_Missing(t *testing.T) {
	_, cache := setupTestCache(t, 0)

	_, err := cache.GetLastPosition(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrPositionNotCached)
}

func TestPositionCache_Expired(t *testing.T) {
	mr, cache := setupTestCache(t, time.Minute)
	ctx := context.Background()
	vendorID := uuid.New()

	require.NoError(t, cache.SaveLastPosition(ctx, vendorID, entity.Position{Latitude: 1, Longitude: 2}))
	mr.FastForward(2 * time.Minute)

	_, err := cache.GetLastPosition(ctx, vendorID)
	assert.ErrorIs(t, err, service.ErrPositionNotCached)
}

func TestPositionCache_Corrupt(t *testing.T) {
	mr, cache := setupTestCache(t, 0)
	vendorID := uuid.New()

	require.NoError(t, mr.Set(positionKey(vendorID), "not-json"))

	_, err := cache.GetLastPosition(context.Background(), vendorID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrPositionNotCached)
}
