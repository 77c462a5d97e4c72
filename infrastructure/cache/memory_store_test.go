package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	ok := store.Set(ctx, "group:g1", []byte(`{"id":"g1"}`), time.Minute)
	require.True(t, ok)

	data, found := store.Get(ctx, "group:g1")
	require.True(t, found)
	assert.Equal(t, []byte(`{"id":"g1"}`), data)

	_, found = store.Get(ctx, "group:missing")
	assert.False(t, found)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "dashboard:stats", []byte("{}"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, found := store.Get(ctx, "dashboard:stats")
	assert.False(t, found)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "user-profile:u1", []byte("{}"), time.Minute)
	store.Set(ctx, "user-permissions:u1", []byte("{}"), time.Minute)

	deleted := store.Delete(ctx, "user-profile:u1", "user-permissions:u1", "user-profile:absent")
	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, 0, store.Size())

	// Deleting absent keys is not an error.
	assert.Equal(t, int64(0), store.Delete(ctx, "user-profile:u1"))
}

func TestMemoryStoreDeleteByPattern(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, UsersListKey("all:1:25"), []byte("{}"), time.Minute)
	store.Set(ctx, UsersListKey("active:2:50"), []byte("{}"), time.Minute)
	store.Set(ctx, GroupsListKey(), []byte("{}"), time.Minute)

	deleted := store.DeleteByPattern(ctx, UsersListPattern())
	assert.Equal(t, int64(2), deleted)

	_, found := store.Get(ctx, GroupsListKey())
	assert.True(t, found, "non-matching keys must survive a pattern delete")
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "group:g1", []byte("abc"), time.Minute)

	data, found := store.Get(ctx, "group:g1")
	require.True(t, found)
	data[0] = 'x'

	again, found := store.Get(ctx, "group:g1")
	require.True(t, found)
	assert.Equal(t, []byte("abc"), again)
}
