package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func TestAside_MissThenHit(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedUser) func() error {
		return func() error {
			fetches++
			*dest = cachedUser{ID: 1, Username: "alice"}
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &first, UserTTL, fetch(&first)))
	assert.Equal(t, "alice", first.Username)
	assert.Equal(t, 1, fetches)
	assert.True(t, mr.Exists("user:1"))

	var second cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &second, UserTTL, fetch(&second)))
	assert.Equal(t, "alice", second.Username)
	assert.Equal(t, 1, fetches, "second read should be served from cache")
}

func TestAside_CorruptEntryRefetched(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("user:1", "{not json"))

	var user cachedUser
	fetches := 0
	err := Aside(ctx, UserKey(1), &user, UserTTL, func() error {
		fetches++
		user = cachedUser{ID: 1, Username: "alice"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "alice", user.Username)

	// The corrupt entry was replaced with a good one.
	raw, err := mr.Get("user:1")
	require.NoError(t, err)
	assert.Contains(t, raw, `"alice"`)
}

func TestAside_NoClientFallsThrough(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var user cachedUser
	err := Aside(ctx, UserKey(1), &user, UserTTL, func() error {
		user = cachedUser{ID: 1, Username: "alice"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAside_TTLApplied(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var user cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &user, UserTTL, func() error {
		user = cachedUser{ID: 1, Username: "alice"}
		return nil
	}))

	mr.FastForward(UserTTL + time.Second)
	assert.False(t, mr.Exists("user:1"))
}

func TestInvalidatePattern(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(FeedKey(0, "trending", 20, 0), "[]"))
	require.NoError(t, mr.Set(FeedKey(7, "following", 20, 20), "[]"))
	require.NoError(t, mr.Set(UserKey(7), "{}"))

	InvalidateFeeds(ctx)

	assert.False(t, mr.Exists("feed:0:trending:20:0"))
	assert.False(t, mr.Exists("feed:7:following:20:20"))
	assert.True(t, mr.Exists("user:7"))
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(PostKey(5), "{}"))

	Invalidate(ctx, PostKey(5), PostKey(6))
	assert.False(t, mr.Exists("post:5"))
}
