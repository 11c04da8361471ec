package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow relationship operations
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error)
	GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, followerID, followingID uint) error {
	// Same atomic upsert pattern as likes: the unique index on the pair plus
	// ON CONFLICT DO NOTHING makes concurrent double-follows a no-op.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO followers (follower_id, following_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (follower_id, following_id) DO NOTHING`,
		followerID, followingID,
	)
	if result.Error == nil {
		cache.Invalidate(ctx, cache.UserKey(followerID), cache.UserKey(followingID))
		cache.InvalidateFeeds(ctx)
	}
	return result.Error
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID uint) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follower{}).Error
	if err == nil {
		cache.Invalidate(ctx, cache.UserKey(followerID), cache.UserKey(followingID))
		cache.InvalidateFeeds(ctx)
	}
	return err
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN followers ON followers.follower_id = users.id").
		Where("followers.following_id = ?", userID).
		Order("followers.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

func (r *followRepository) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN followers ON followers.following_id = users.id").
		Where("followers.follower_id = ?", userID).
		Order("followers.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}
