package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupSessionStore(t *testing.T) (*miniredis.Miniredis, SessionStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewSessionStore(client, quietLogger())
}

func TestSessionStore_StoreAndRevoke(t *testing.T) {
	mr, store := setupSessionStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Store(ctx, userID, "tok-1", time.Hour))

	active, err := store.IsActive(ctx, userID, "tok-1")
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, time.Hour, mr.TTL("access_token:"+userID.String()+":tok-1"))

	require.NoError(t, store.Revoke(ctx, userID, "tok-1"))

	active, err = store.IsActive(ctx, userID, "tok-1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSessionStore_Expires(t *testing.T) {
	mr, store := setupSessionStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Store(ctx, userID, "tok-1", time.Minute))
	mr.FastForward(2 * time.Minute)

	active, err := store.IsActive(ctx, userID, "tok-1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSessionStore_RevokeAll(t *testing.T) {
	_, store := setupSessionStore(t)
	ctx := context.Background()
	userID := uuid.New()
	other := uuid.New()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Store(ctx, userID, id, time.Hour))
	}
	require.NoError(t, store.Store(ctx, other, "x", time.Hour))

	revoked, err := store.RevokeAll(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, revoked)

	active, err := store.IsActive(ctx, other, "x")
	require.NoError(t, err)
	assert.True(t, active, "other users keep their sessions")
}
