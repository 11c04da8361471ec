package service

import (
	"context"
	"time"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// MaxFeedPageSize caps a feed page regardless of what the client asks for.
const MaxFeedPageSize = 20

type FeedService struct {
	postRepo repository.PostRepository
}

type FeedInput struct {
	Mode          string
	Limit         int
	Offset        int
	CurrentUserID uint
}

func NewFeedService(postRepo repository.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// GetFeed returns one page of the feed. The following mode needs a signed-in
// viewer; trending works anonymously.
func (s *FeedService) GetFeed(ctx context.Context, in FeedInput) ([]*models.Post, error) {
	mode := in.Mode
	if mode == "" {
		mode = repository.FeedModeTrending
	}
	switch mode {
	case repository.FeedModeFollowing, repository.FeedModeTrending:
		// valid
	default:
		return nil, models.NewValidationError("Invalid feed mode")
	}

	if mode == repository.FeedModeFollowing && in.CurrentUserID == 0 {
		return nil, models.NewUnauthorizedError("Sign in to view your following feed")
	}

	limit := in.Limit
	if limit <= 0 || limit > MaxFeedPageSize {
		limit = MaxFeedPageSize
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	start := time.Now()
	posts, err := s.postRepo.Feed(ctx, mode, limit, offset, in.CurrentUserID)
	observability.FeedAssembleLatency.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	// Empty pages are a valid result, not an error.
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}
