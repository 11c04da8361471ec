package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_ToggleFollow(t *testing.T) {
	ctx := context.Background()

	userRepo := func(followed *bool) *stubUserRepo {
		return &stubUserRepo{
			getByIDFn: func(ctx context.Context, id uint, currentUserID uint) (*models.User, error) {
				u := &models.User{Username: "bob"}
				u.ID = id
				if followed != nil {
					u.IsFollowing = *followed
					if *followed {
						u.FollowersCount = 1
					}
				}
				return u, nil
			},
		}
	}

	t.Run("Self-follow rejected", func(t *testing.T) {
		svc := NewFollowService(&stubFollowRepo{}, &stubUserRepo{})

		_, err := svc.ToggleFollow(ctx, 1, 1)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("Follow when no edge exists", func(t *testing.T) {
		followed := false
		followRepo := &stubFollowRepo{
			isFollowingFn: func(ctx context.Context, followerID, followingID uint) (bool, error) {
				return followed, nil
			},
			followFn: func(ctx context.Context, followerID, followingID uint) error {
				followed = true
				return nil
			},
		}
		svc := NewFollowService(followRepo, userRepo(&followed))

		user, err := svc.ToggleFollow(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, followed)
		assert.True(t, user.IsFollowing)
		assert.Equal(t, 1, user.FollowersCount)
	})

	t.Run("Unfollow when edge exists", func(t *testing.T) {
		followed := true
		followRepo := &stubFollowRepo{
			isFollowingFn: func(ctx context.Context, followerID, followingID uint) (bool, error) {
				return followed, nil
			},
			unfollowFn: func(ctx context.Context, followerID, followingID uint) error {
				followed = false
				return nil
			},
		}
		svc := NewFollowService(followRepo, userRepo(&followed))

		user, err := svc.ToggleFollow(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, followed)
		assert.False(t, user.IsFollowing)
	})

	t.Run("Missing target", func(t *testing.T) {
		repo := &stubUserRepo{
			getByIDFn: func(ctx context.Context, id uint, currentUserID uint) (*models.User, error) {
				return nil, models.NewNotFoundError("User", id)
			},
		}
		svc := NewFollowService(&stubFollowRepo{}, repo)

		_, err := svc.ToggleFollow(ctx, 1, 99)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestFollowService_GetFollowers_ClampsLimit(t *testing.T) {
	ctx := context.Background()

	var gotLimit int
	followRepo := &stubFollowRepo{
		getFollowersFn: func(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewFollowService(followRepo, &stubUserRepo{})

	_, err := svc.GetFollowers(ctx, 1, 1000, 0)
	assert.NoError(t, err)
	assert.Equal(t, 50, gotLimit)
}
