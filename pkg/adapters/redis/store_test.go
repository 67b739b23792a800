package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/submittals/pkg/adapters/redis"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ports.RunStateStoreContract(t, store)
}

func TestRedisBlobStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewBlobStore(client, redis.DefaultPrefix, 0)
	ports.RunBlobStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	now := time.Now()
	clock := func() time.Time { return now }

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second), redis.WithClock(clock))
	ctx := context.Background()
	sessionID := "session-ttl"
	state := domain.NewState(sessionID)
	state.Answers.Set("project_name", "Acme Tower")

	require.NoError(t, store.Save(ctx, sessionID, state))

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, sessions, sessionID)

	// Key expiration is driven by miniredis time, the index by our clock.
	mr.FastForward(2 * time.Second)
	now = now.Add(2 * time.Second)

	_, err = store.Load(ctx, sessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	sessions, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()
	sessionID := "my-session"

	require.NoError(t, store.Save(ctx, sessionID, domain.NewState(sessionID)))

	assert.True(t, mr.Exists("custom:app:my-session"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, list, sessionID)
}

func TestRedisBlobStore_ExpiresWithSession(t *testing.T) {
	mr, client := newClient(t)
	ctx := context.Background()

	blobs := redis.NewBlobStore(client, "app:", time.Minute)
	require.NoError(t, blobs.Put(ctx, "s1", "logo", []byte("png")))
	assert.True(t, mr.Exists("app:blob:s1"))

	mr.FastForward(2 * time.Minute)
	_, err := blobs.Get(ctx, "s1", "logo")
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}
