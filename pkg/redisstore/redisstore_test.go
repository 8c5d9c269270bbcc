package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/session"
)

var _ session.Store = (*Store)(nil)

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, "127.0.0.1:1", 0)
	assert.Error(t, err)
}

// TestStore_Integration runs against a real server when
// HELPDESK_TEST_REDIS_ADDR is set.
func TestStore_Integration(t *testing.T) {
	addr := os.Getenv("HELPDESK_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("HELPDESK_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	store, err := New(ctx, addr, time.Minute)
	require.NoError(t, err)
	defer store.Close()

	key := "integration-" + t.Name()
	t.Cleanup(func() { _ = store.Delete(context.Background(), key) })

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, []byte(`{"id":1}`)))
	value, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":1}`, string(value))

	ttl, err := store.client.TTL(ctx, keyPrefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key), "deleting a missing key is fine")
	_, ok, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
