package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqarverse/internal/domain/entity"
)

func newTestCache(t *testing.T) (*RoleCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache, err := NewRoleCache(mr.Addr(), "", time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	return cache, mr
}

func TestRoleCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	assert.Equal(t, entity.RoleNone, cache.Get(ctx, "u1"))

	cache.Set(ctx, "u1", entity.RoleCompany)
	assert.Equal(t, entity.RoleCompany, cache.Get(ctx, "u1"))

	cache.Invalidate(ctx, "u1")
	assert.Equal(t, entity.RoleNone, cache.Get(ctx, "u1"))
}

func TestRoleCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "u1", entity.RoleCustomer)
	mr.FastForward(2 * time.Minute)

	assert.Equal(t, entity.RoleNone, cache.Get(ctx, "u1"))
}

func TestRoleCacheIgnoresEmptyRole(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "u1", entity.RoleNone)
	assert.Equal(t, entity.RoleNone, cache.Get(ctx, "u1"))
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *RoleCache
	ctx := context.Background()

	assert.Equal(t, entity.RoleNone, cache.Get(ctx, "u1"))
	cache.Set(ctx, "u1", entity.RoleAdmin)
	cache.Invalidate(ctx, "u1")
	assert.NoError(t, cache.Close())
}
