package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// ToggleFollow flips the follow edge from followerID to followingID and
// returns the target profile with fresh counts and follow status.
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, followingID uint) (*models.User, error) {
	if followerID == followingID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followingID, 0); err != nil {
		return nil, models.NewNotFoundError("User", followingID)
	}

	following, err := s.followRepo.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}

	if following {
		err = s.followRepo.Unfollow(ctx, followerID, followingID)
		observability.ToggleTotal.WithLabelValues("follow", "off").Inc()
	} else {
		err = s.followRepo.Follow(ctx, followerID, followingID)
		observability.ToggleTotal.WithLabelValues("follow", "on").Inc()
	}
	if err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, followingID, followerID)
}

func (s *FollowService) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.followRepo.GetFollowers(ctx, userID, limit, offset)
}

func (s *FollowService) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.followRepo.GetFollowing(ctx, userID, limit, offset)
}
