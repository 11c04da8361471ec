package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Feed pages churn fast, categories almost never.
const (
	UserTTL     = 5 * time.Minute
	PostTTL     = 2 * time.Minute
	FeedTTL     = 30 * time.Second
	CategoryTTL = 1 * time.Hour
)

// UserKey is the cache key for a single user profile.
func UserKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// PostKey is the cache key for a single post with its aggregates.
func PostKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}

// FeedKey is the cache key for a feed page. Keys include the viewer because
// liked/following flags are viewer-specific.
func FeedKey(viewerID uint, mode string, limit, offset int) string {
	return fmt.Sprintf("feed:%d:%s:%d:%d", viewerID, mode, limit, offset)
}

// CategoryListKey is the cache key for the full category list.
func CategoryListKey() string {
	return "categories:all"
}

// CategoryKey is the cache key for a single category by slug.
func CategoryKey(slug string) string {
	return fmt.Sprintf("category:%s", slug)
}

// Aside implements the cache-aside pattern: try Redis, fall back to fetch,
// then populate. The fetch func fills dest in place. Cache errors are logged
// and treated as misses so the data path never depends on Redis being up.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	rdb := GetClient()
	if rdb != nil {
		raw, err := rdb.Get(ctx, key).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(raw), dest); err == nil {
				return nil
			}
			// corrupt entry, drop it and refetch
			rdb.Del(ctx, key)
		} else if err != redis.Nil {
			slog.Warn("cache read failed", "key", key, "error", err)
		}
	}

	if err := fetch(); err != nil {
		return err
	}

	if rdb != nil {
		if raw, err := json.Marshal(dest); err == nil {
			if err := rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
				slog.Warn("cache write failed", "key", key, "error", err)
			}
		}
	}
	return nil
}

// InvalidateFeeds drops all cached feed pages. Any write that changes feed
// contents (new post, like, follow) calls this.
func InvalidateFeeds(ctx context.Context) {
	InvalidatePattern(ctx, "feed:*")
}

// Invalidate removes the given keys. Missing keys are not an error.
func Invalidate(ctx context.Context, keys ...string) {
	rdb := GetClient()
	if rdb == nil || len(keys) == 0 {
		return
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}

// InvalidatePattern removes all keys matching a glob pattern, e.g. "feed:*".
func InvalidatePattern(ctx context.Context, pattern string) {
	rdb := GetClient()
	if rdb == nil {
		return
	}
	iter := rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("cache scan failed", "pattern", pattern, "error", err)
		return
	}
	if len(keys) > 0 {
		rdb.Del(ctx, keys...)
	}
}
