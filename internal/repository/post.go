package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// Feed modes. "following" shows posts from accounts the viewer follows,
// "trending" ranks everything by engagement.
const (
	FeedModeFollowing = "following"
	FeedModeTrending  = "trending"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	GetByCategoryID(ctx context.Context, categoryID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Feed(ctx context.Context, mode string, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", "posts")()
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateFeeds(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
			return r.applyPostDetails(r.db.WithContext(ctx), 0).
				Preload("User").
				Preload("Category").
				Preload("Poll").
				Preload("Poll.Options").
				First(&post, id).Error
		})
	} else {
		err = r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			Preload("Category").
			Preload("Poll").
			Preload("Poll.Options").
			First(&post, id).Error
	}

	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Category").
		Preload("Poll").
		Preload("Poll.Options").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetByCategoryID(ctx context.Context, categoryID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Category").
		Preload("Poll").
		Preload("Poll.Options").
		Where("category_id = ?", categoryID).
		Order("engagement_score DESC, created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// Feed returns one page of the feed for the requested mode. Ordering is
// deterministic: ties on the primary sort key fall back to created_at then id,
// so pagination never shuffles rows between requests. Pages are cached per
// viewer with a short TTL; any write that changes feed contents invalidates.
func (r *postRepository) Feed(ctx context.Context, mode string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	key := cache.FeedKey(currentUserID, mode, limit, offset)
	err := cache.Aside(ctx, key, &posts, cache.FeedTTL, func() error {
		defer observability.TrackQuery("select", "posts")()
		base := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			Preload("Category").
			Preload("Poll").
			Preload("Poll.Options")

		switch mode {
		case FeedModeFollowing:
			base = base.
				Where("user_id IN (SELECT following_id FROM followers WHERE follower_id = ?)", currentUserID).
				Order("created_at DESC, id DESC")
		case FeedModeTrending:
			base = base.Order("engagement_score DESC, created_at DESC, id DESC")
		default:
			base = base.Order("created_at DESC, id DESC")
		}

		return base.
			Limit(limit).
			Offset(offset).
			Find(&posts).Error
	})
	return posts, err
}

// applyPostDetails adds subqueries to fetch counts, liked status and the
// engagement score in a single query. Postgres does not allow an output alias
// inside another select or ORDER BY expression, so the score repeats the count
// subqueries and callers order by its bare alias.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	const commentsCount = "(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL)"
	const likesCount = "(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id)"

	selectQuery := "posts.*, " +
		commentsCount + " as comments_count, " +
		likesCount + " as likes_count, " +
		"(" + likesCount + " + " + commentsCount + " * 2) as engagement_score"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PostKey(post.ID))
	cache.InvalidateFeeds(ctx)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PostKey(id))
	cache.InvalidateFeeds(ctx)
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	defer observability.TrackQuery("insert", "likes")()
	// Use INSERT ... ON CONFLICT DO NOTHING to handle race conditions
	// This is atomic and prevents duplicate key errors
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID,
	)
	if result.Error == nil {
		cache.Invalidate(ctx, cache.PostKey(postID))
		cache.InvalidateFeeds(ctx)
	}
	return result.Error
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	defer observability.TrackQuery("delete", "likes")()
	// Hard delete the like record (not soft delete)
	err := r.db.WithContext(ctx).Unscoped().Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{}).Error
	if err == nil {
		cache.Invalidate(ctx, cache.PostKey(postID))
		cache.InvalidateFeeds(ctx)
	}
	return err
}
