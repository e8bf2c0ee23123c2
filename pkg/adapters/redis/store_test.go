package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hanoi/pkg/adapters/redis"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/ports"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newTestClient(t)
	store := redis.NewFromClient(client)
	ports.RunSessionStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	sess, err := domain.NewSession(3, domain.PegA, domain.PegB, domain.PegC, domain.ModeManual)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "session-ttl", sess))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "session-ttl")

	// miniredis does not tick on its own.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "session-ttl")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, "session-ttl", "expired sessions should be pruned from List")
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newTestClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:"))
	ctx := context.Background()

	sess, err := domain.NewSession(3, domain.PegA, domain.PegB, domain.PegC, domain.ModeAuto)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "abc", sess))

	assert.True(t, mr.Exists("custom:abc"))
}
