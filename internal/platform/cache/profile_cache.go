// Package cache provides Redis-backed caches for read paths.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"profile_backend/internal/feature/profile/domain/entity"
	"profile_backend/internal/feature/profile/usecase"
)

const (
	defaultTTL       = 30 * time.Second
	defaultNamespace = "profile"
)

// ProfileCache stores the combined latest profile in Redis.
// A nil client disables it: every lookup misses and writes are no-ops.
// All Redis failures are logged and swallowed so the database stays the source of truth.
type ProfileCache struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ProfileCache = (*ProfileCache)(nil)

// NewProfileCache creates a ProfileCache.
// If ttl is 0, it defaults to 30 seconds. If namespace is empty, it uses "profile".
func NewProfileCache(rdb *redis.Client, ttl time.Duration, namespace string) *ProfileCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &ProfileCache{rdb: rdb, ttl: ttl, namespace: safe(namespace)}
}

// GetLatest returns the cached profile for the current generation, if any.
// The generation is returned even on a miss and must be passed back to SetLatest.
func (c *ProfileCache) GetLatest(ctx context.Context) (*entity.CombinedProfile, uint64, bool) {
	if c.rdb == nil {
		return nil, 0, false
	}

	gen, err := c.rdb.Get(ctx, c.genKey()).Uint64()
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("profile cache generation lookup failed", "key", c.genKey(), "error", err)
		return nil, 0, false
	}

	key := c.latestKey(gen)
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("profile cache get failed", "key", key, "error", err)
		}
		return nil, gen, false
	}

	var p entity.CombinedProfile
	if err := json.Unmarshal(b, &p); err != nil {
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
		return nil, gen, false
	}
	return &p, gen, true
}

// SetLatest stores p under generation gen with the configured TTL (best effort).
// A profile read before an Invalidate lands under the old generation and is never served.
func (c *ProfileCache) SetLatest(ctx context.Context, gen uint64, p *entity.CombinedProfile) {
	if c.rdb == nil || p == nil {
		return
	}
	b, err := json.Marshal(p)
	if err != nil {
		return
	}
	key := c.latestKey(gen)
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		slog.Warn("profile cache set failed", "key", key, "error", err)
	}
}

// Invalidate bumps the generation so every earlier entry becomes unreachable (best effort).
// Old entries expire by TTL.
func (c *ProfileCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, c.genKey()).Err(); err != nil {
		slog.Warn("profile cache invalidate failed", "key", c.genKey(), "error", err)
	}
}

// genKey は世代カウンタのキーです。TTLは付けない
func (c *ProfileCache) genKey() string {
	return c.namespace + ":latest:gen"
}

func (c *ProfileCache) latestKey(gen uint64) string {
	return c.namespace + ":latest:" + strconv.FormatUint(gen, 10)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
