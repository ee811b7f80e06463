package shopping

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache keeps rendered shopping lists in Redis so repeated reads within a
// week don't recompute the reconciliation. A nil client disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(userID, weekIdentifier string) string {
	return fmt.Sprintf("shopping:%s:%s", userID, weekIdentifier)
}

// Get returns the cached list and whether it was present.
func (c *Cache) Get(ctx context.Context, userID, weekIdentifier string) ([]Item, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, cacheKey(userID, weekIdentifier)).Result()
	if err != nil {
		return nil, false
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *Cache) Set(ctx context.Context, userID, weekIdentifier string, items []Item) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(userID, weekIdentifier), raw, c.ttl)
}

// Invalidate drops the cached list after a plan or inventory change.
func (c *Cache) Invalidate(ctx context.Context, userID, weekIdentifier string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, cacheKey(userID, weekIdentifier))
}
