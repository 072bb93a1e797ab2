// Package cache is a thin Redis wrapper for keeping rendered entities as
// JSON. It is deliberately forgiving: when Redis is unreachable or a payload
// does not round-trip, callers see a cache miss and fall through to the
// database, so a cache outage never fails a request.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client caches JSON-encoded values in Redis. A nil *Client is valid and
// behaves as an always-empty cache.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis. The connection is lazy; a bad address shows up as
// permanent cache misses, never as request failures.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// GetJSON loads the value stored under key into dest and reports whether a
// decodable entry was present.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors alike are a miss
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores value under key for ttl. Marshal and Redis errors are
// dropped; the entry simply is not cached.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, payload, ttl).Err()
}

// Delete evicts key, best effort.
func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, key).Err()
}
