package service

import (
	"context"
	"errors"

	"ripple/internal/models"
)

// Function-field stubs for the repository interfaces. Tests set only the
// fields they care about; unset fields fail loudly.

var errStubNotConfigured = errors.New("stub method not configured")

type stubPostRepo struct {
	createFn          func(ctx context.Context, post *models.Post) error
	getByIDFn         func(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	getByUserIDFn     func(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	getByCategoryIDFn func(ctx context.Context, categoryID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	feedFn            func(ctx context.Context, mode string, limit, offset int, currentUserID uint) ([]*models.Post, error)
	updateFn          func(ctx context.Context, post *models.Post) error
	deleteFn          func(ctx context.Context, id uint) error
	isLikedFn         func(ctx context.Context, userID, postID uint) (bool, error)
	likeFn            func(ctx context.Context, userID, postID uint) error
	unlikeFn          func(ctx context.Context, userID, postID uint) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	if s.createFn == nil {
		return errStubNotConfigured
	}
	return s.createFn(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	if s.getByIDFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getByIDFn(ctx, id, currentUserID)
}

func (s *stubPostRepo) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if s.getByUserIDFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}

func (s *stubPostRepo) GetByCategoryID(ctx context.Context, categoryID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if s.getByCategoryIDFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getByCategoryIDFn(ctx, categoryID, limit, offset, currentUserID)
}

func (s *stubPostRepo) Feed(ctx context.Context, mode string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if s.feedFn == nil {
		return nil, errStubNotConfigured
	}
	return s.feedFn(ctx, mode, limit, offset, currentUserID)
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	if s.updateFn == nil {
		return errStubNotConfigured
	}
	return s.updateFn(ctx, post)
}

func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		return errStubNotConfigured
	}
	return s.deleteFn(ctx, id)
}

func (s *stubPostRepo) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	if s.isLikedFn == nil {
		return false, errStubNotConfigured
	}
	return s.isLikedFn(ctx, userID, postID)
}

func (s *stubPostRepo) Like(ctx context.Context, userID, postID uint) error {
	if s.likeFn == nil {
		return errStubNotConfigured
	}
	return s.likeFn(ctx, userID, postID)
}

func (s *stubPostRepo) Unlike(ctx context.Context, userID, postID uint) error {
	if s.unlikeFn == nil {
		return errStubNotConfigured
	}
	return s.unlikeFn(ctx, userID, postID)
}

type stubCategoryRepo struct {
	listFn      func(ctx context.Context) ([]models.Category, error)
	getBySlugFn func(ctx context.Context, slug string) (*models.Category, error)
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	if s.listFn == nil {
		return nil, errStubNotConfigured
	}
	return s.listFn(ctx)
}

func (s *stubCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if s.getBySlugFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getBySlugFn(ctx, slug)
}

type stubUserRepo struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByIDFn       func(ctx context.Context, id uint, currentUserID uint) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	updateFn        func(ctx context.Context, user *models.User) error
	searchFn        func(ctx context.Context, query string, limit, offset int) ([]*models.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.createFn == nil {
		return errStubNotConfigured
	}
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.User, error) {
	if s.getByIDFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getByIDFn(ctx, id, currentUserID)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsernameFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getByUsernameFn(ctx, username)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.updateFn == nil {
		return errStubNotConfigured
	}
	return s.updateFn(ctx, user)
}

func (s *stubUserRepo) Search(ctx context.Context, query string, limit, offset int) ([]*models.User, error) {
	if s.searchFn == nil {
		return nil, errStubNotConfigured
	}
	return s.searchFn(ctx, query, limit, offset)
}

type stubFollowRepo struct {
	followFn       func(ctx context.Context, followerID, followingID uint) error
	unfollowFn     func(ctx context.Context, followerID, followingID uint) error
	isFollowingFn  func(ctx context.Context, followerID, followingID uint) (bool, error)
	getFollowersFn func(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error)
	getFollowingFn func(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error)
}

func (s *stubFollowRepo) Follow(ctx context.Context, followerID, followingID uint) error {
	if s.followFn == nil {
		return errStubNotConfigured
	}
	return s.followFn(ctx, followerID, followingID)
}

func (s *stubFollowRepo) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if s.unfollowFn == nil {
		return errStubNotConfigured
	}
	return s.unfollowFn(ctx, followerID, followingID)
}

func (s *stubFollowRepo) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	if s.isFollowingFn == nil {
		return false, errStubNotConfigured
	}
	return s.isFollowingFn(ctx, followerID, followingID)
}

func (s *stubFollowRepo) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	if s.getFollowersFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getFollowersFn(ctx, userID, limit, offset)
}

func (s *stubFollowRepo) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]*models.User, error) {
	if s.getFollowingFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getFollowingFn(ctx, userID, limit, offset)
}

type stubCommentRepo struct {
	createFn      func(ctx context.Context, comment *models.Comment) error
	getByPostIDFn func(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if s.createFn == nil {
		return errStubNotConfigured
	}
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepo) GetByPostID(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	if s.getByPostIDFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getByPostIDFn(ctx, postID, limit, offset)
}

type stubActivityRepo struct {
	recentLikesFn    func(ctx context.Context, userID uint, limit int) ([]models.Like, error)
	recentCommentsFn func(ctx context.Context, userID uint, limit int) ([]models.Comment, error)
	recentFollowsFn  func(ctx context.Context, userID uint, limit int) ([]models.Follower, error)
}

func (s *stubActivityRepo) RecentLikes(ctx context.Context, userID uint, limit int) ([]models.Like, error) {
	if s.recentLikesFn == nil {
		return nil, errStubNotConfigured
	}
	return s.recentLikesFn(ctx, userID, limit)
}

func (s *stubActivityRepo) RecentComments(ctx context.Context, userID uint, limit int) ([]models.Comment, error) {
	if s.recentCommentsFn == nil {
		return nil, errStubNotConfigured
	}
	return s.recentCommentsFn(ctx, userID, limit)
}

func (s *stubActivityRepo) RecentFollows(ctx context.Context, userID uint, limit int) ([]models.Follower, error) {
	if s.recentFollowsFn == nil {
		return nil, errStubNotConfigured
	}
	return s.recentFollowsFn(ctx, userID, limit)
}
