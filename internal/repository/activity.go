package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// ActivityRepository fetches the raw event rows behind the activity feed.
// Each method is a single bounded query; the service layer merges them.
type ActivityRepository interface {
	RecentLikes(ctx context.Context, userID uint, limit int) ([]models.Like, error)
	RecentComments(ctx context.Context, userID uint, limit int) ([]models.Comment, error)
	RecentFollows(ctx context.Context, userID uint, limit int) ([]models.Follower, error)
}

// activityRepository implements ActivityRepository
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// RecentLikes returns the latest likes on posts authored by userID,
// excluding the author liking their own posts.
func (r *activityRepository) RecentLikes(ctx context.Context, userID uint, limit int) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Post").
		Joins("JOIN posts ON posts.id = likes.post_id").
		Where("posts.user_id = ? AND likes.user_id <> ? AND posts.deleted_at IS NULL", userID, userID).
		Order("likes.created_at DESC, likes.id DESC").
		Limit(limit).
		Find(&likes).Error
	return likes, err
}

// RecentComments returns the latest comments on posts authored by userID,
// excluding the author's own comments.
func (r *activityRepository) RecentComments(ctx context.Context, userID uint, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Post").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("posts.user_id = ? AND comments.user_id <> ? AND posts.deleted_at IS NULL", userID, userID).
		Order("comments.created_at DESC, comments.id DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// RecentFollows returns the latest followers of userID.
func (r *activityRepository) RecentFollows(ctx context.Context, userID uint, limit int) ([]models.Follower, error) {
	var follows []models.Follower
	err := r.db.WithContext(ctx).
		Preload("FollowerUser").
		Where("following_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&follows).Error
	return follows, err
}
