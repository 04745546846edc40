//go:build integration

package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"givegate/pkg/platform/sentinel"
)

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	require.NoError(t, client.Ping(ctx).Err())
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	sess := Session{
		ID:        "sid-1",
		Principal: "2vxsx-fae",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.Save(ctx, sess))

	found, err := store.Find(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, sess.Principal, found.Principal)
	require.True(t, sess.ExpiresAt.Equal(found.ExpiresAt))
}

func TestRedisStoreMissingSession(t *testing.T) {
	store := setupRedisStore(t)

	_, err := store.Find(context.Background(), "never-saved")
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestRedisStoreDeleteRevokes(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	sess := Session{ID: "sid-2", Principal: "2vxsx-fae", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, "sid-2"))

	_, err := store.Find(ctx, "sid-2")
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestRedisStoreExpiryBehavesAsMissing(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	sess := Session{ID: "sid-3", Principal: "2vxsx-fae", ExpiresAt: time.Now().Add(time.Second)}
	require.NoError(t, store.Save(ctx, sess))

	time.Sleep(1500 * time.Millisecond)

	_, err := store.Find(ctx, "sid-3")
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestRedisStoreRejectsAlreadyExpired(t *testing.T) {
	store := setupRedisStore(t)

	sess := Session{ID: "sid-4", Principal: "2vxsx-fae", ExpiresAt: time.Now().Add(-time.Minute)}
	require.Error(t, store.Save(context.Background(), sess))
}
