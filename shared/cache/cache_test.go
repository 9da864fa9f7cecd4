package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lbm/infras/otel/mocks"
	"lbm/shared/cache"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	saved := payload{Name: "bookings", Count: 3}

	require.NoError(t, redisCache.Save(ctx, "booking:count", saved, 60))

	var loaded payload

	require.NoError(t, redisCache.Get(ctx, "booking:count", &loaded))
	assert.Equal(t, saved, loaded)
}

func TestRedisCache_SaveAndGetString(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "plain", "hello", 60))

	var loaded string

	require.NoError(t, redisCache.Get(ctx, "plain", &loaded))
	assert.Equal(t, "hello", loaded)
}

func TestRedisCache_GetMissingKey(t *testing.T) {
	redisCache, _ := newTestCache(t)

	var loaded payload

	err := redisCache.Get(context.Background(), "missing", &loaded)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_Delete(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "booking:get:1", payload{Name: "one"}, 60))
	require.NoError(t, redisCache.Delete(ctx, "booking:get:1"))

	var loaded payload

	err := redisCache.Get(ctx, "booking:get:1", &loaded)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_Clear(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "booking:gets:a", payload{Name: "a"}, 60))
	require.NoError(t, redisCache.Save(ctx, "booking:gets:b", payload{Name: "b"}, 60))
	require.NoError(t, redisCache.Save(ctx, "content:get:home", payload{Name: "home"}, 60))

	require.NoError(t, redisCache.Clear(ctx, "booking:gets:*"))

	var loaded payload

	assert.True(t, errors.Is(redisCache.Get(ctx, "booking:gets:a", &loaded), cache.Nil))
	assert.True(t, errors.Is(redisCache.Get(ctx, "booking:gets:b", &loaded), cache.Nil))
	assert.NoError(t, redisCache.Get(ctx, "content:get:home", &loaded))
}

func TestRedisCache_SaveExpires(t *testing.T) {
	redisCache, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "short-lived", "value", 1))

	server.FastForward(2 * time.Second)

	var loaded string

	err := redisCache.Get(ctx, "short-lived", &loaded)
	assert.True(t, errors.Is(err, cache.Nil))
}
