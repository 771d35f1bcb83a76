package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"aqarverse/internal/domain/entity"
	"aqarverse/pkg/logger"
)

const roleKeyPrefix = "role:"

// RoleCache keeps resolved account roles in Redis so repeated requests skip
// the three-collection probe. A nil *RoleCache is a no-op, which is how the
// service runs when Redis is not configured.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoleCache(addr, password string, ttl time.Duration) (*RoleCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RoleCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get returns the cached role for uid, or RoleNone when absent. Cache
// failures degrade to a miss.
func (c *RoleCache) Get(ctx context.Context, uid string) entity.Role {
	if c == nil {
		return entity.RoleNone
	}

	value, err := c.client.Get(ctx, roleKeyPrefix+uid).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Role cache read failed for %s: %v", uid, err)
		}
		return entity.RoleNone
	}

	return entity.Role(value)
}

func (c *RoleCache) Set(ctx context.Context, uid string, role entity.Role) {
	if c == nil || role == entity.RoleNone {
		return
	}

	if err := c.client.Set(ctx, roleKeyPrefix+uid, string(role), c.ttl).Err(); err != nil {
		logger.Warn("Role cache write failed for %s: %v", uid, err)
	}
}

func (c *RoleCache) Invalidate(ctx context.Context, uid string) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, roleKeyPrefix+uid).Err(); err != nil {
		logger.Warn("Role cache invalidate failed for %s: %v", uid, err)
	}
}

func (c *RoleCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
