package client

import (
	"context"
	"sync"

	"ripple/internal/models"
)

// Feed modes accepted by Refresh.
const (
	FeedFollowing = "following"
	FeedTrending  = "trending"
)

// FeedPageSize is the page size requested from the server, which also caps
// pages at 20.
const FeedPageSize = 20

// FeedView holds one feed's loaded pages and keeps them consistent across
// overlapping refreshes. Every refresh bumps a generation counter and tags
// its request with it; a response whose generation no longer matches is
// stale (a newer refresh superseded it) and is discarded instead of
// clobbering newer data.
type FeedView struct {
	gateway Gateway

	mu         sync.Mutex
	mode       string
	posts      []*models.Post
	loading    bool
	err        error
	exhausted  bool
	generation uint64
}

// NewFeedView creates a view starting in trending mode.
func NewFeedView(gateway Gateway) *FeedView {
	return &FeedView{gateway: gateway, mode: FeedTrending}
}

// FeedSnapshot is an immutable view of the feed state.
type FeedSnapshot struct {
	Mode      string
	Posts     []*models.Post
	Loading   bool
	Err       error
	Exhausted bool
}

// Snapshot returns the current feed state. The posts slice is shared;
// callers must not mutate it.
func (f *FeedView) Snapshot() FeedSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FeedSnapshot{
		Mode:      f.mode,
		Posts:     f.posts,
		Loading:   f.loading,
		Err:       f.err,
		Exhausted: f.exhausted,
	}
}

// Refresh switches to the given mode and reloads the first page. If another
// Refresh starts before this one's response arrives, this response is
// dropped.
func (f *FeedView) Refresh(ctx context.Context, mode string) error {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	f.mode = mode
	f.loading = true
	f.err = nil
	f.mu.Unlock()

	posts, err := f.gateway.GetFeed(ctx, mode, FeedPageSize, 0)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		// A newer refresh owns the view now.
		return nil
	}
	f.loading = false
	if err != nil {
		f.err = err
		return err
	}
	f.posts = posts
	f.exhausted = len(posts) < FeedPageSize
	return nil
}

// LoadMore appends the next page for the current mode. Stale responses
// (superseded by a Refresh) are dropped.
func (f *FeedView) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.loading || f.exhausted {
		f.mu.Unlock()
		return nil
	}
	gen := f.generation
	mode := f.mode
	offset := len(f.posts)
	f.loading = true
	f.mu.Unlock()

	posts, err := f.gateway.GetFeed(ctx, mode, FeedPageSize, offset)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		return nil
	}
	f.loading = false
	if err != nil {
		f.err = err
		return err
	}
	f.posts = append(f.posts, posts...)
	if len(posts) < FeedPageSize {
		f.exhausted = true
	}
	return nil
}

// ToggleLike flips the viewer's like on a post, then patches the loaded copy
// from the server's confirmed counts. Nothing changes locally until the
// server answers, so the displayed count can never drift from the truth.
func (f *FeedView) ToggleLike(ctx context.Context, postID uint) (*models.Post, error) {
	updated, err := f.gateway.ToggleLike(ctx, postID)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	for i, p := range f.posts {
		if p.ID == updated.ID {
			f.posts[i] = updated
			break
		}
	}
	f.mu.Unlock()
	return updated, nil
}

// RemovePost drops a deleted post from the loaded pages.
func (f *FeedView) RemovePost(postID uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.posts {
		if p.ID == postID {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return
		}
	}
}
