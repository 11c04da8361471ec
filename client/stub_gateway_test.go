package client

import (
	"context"
	"errors"

	"ripple/internal/models"
)

// stubGateway is a function-field Gateway for tests. Unset fields fail
// loudly so a test never silently exercises a path it did not stub.

var errStubNotConfigured = errors.New("stub method not configured")

type stubGateway struct {
	signUpFn        func(ctx context.Context, in SignUpInput) (*AuthResult, error)
	signInFn        func(ctx context.Context, creds Credentials) (*AuthResult, error)
	signOutFn       func(ctx context.Context) error
	currentUserFn   func(ctx context.Context) (*models.User, bool, error)
	getProfileFn    func(ctx context.Context, userID uint) (*models.User, error)
	updateProfileFn func(ctx context.Context, draft ProfileDraft) (*models.User, error)
	toggleFollowFn  func(ctx context.Context, userID uint) (*models.User, error)
	getFeedFn       func(ctx context.Context, mode string, limit, offset int) ([]*models.Post, error)
	getUserPostsFn  func(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	createPostFn    func(ctx context.Context, in NewPost) (*models.Post, error)
	deletePostFn    func(ctx context.Context, postID uint) error
	toggleLikeFn    func(ctx context.Context, postID uint) (*models.Post, error)
	getCommentsFn   func(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error)
	addCommentFn    func(ctx context.Context, postID uint, content string) (*models.Comment, error)
	getActivityFn   func(ctx context.Context, limit int) ([]models.Activity, error)
	getCategoriesFn func(ctx context.Context) ([]models.Category, error)
	createUploadFn  func(ctx context.Context, kind, fileName, contentType string) (*UploadTicket, error)
}

var _ Gateway = (*stubGateway)(nil)

func (g *stubGateway) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	if g.signUpFn == nil {
		return nil, errStubNotConfigured
	}
	return g.signUpFn(ctx, in)
}

func (g *stubGateway) SignIn(ctx context.Context, creds Credentials) (*AuthResult, error) {
	if g.signInFn == nil {
		return nil, errStubNotConfigured
	}
	return g.signInFn(ctx, creds)
}

func (g *stubGateway) SignOut(ctx context.Context) error {
	if g.signOutFn == nil {
		return errStubNotConfigured
	}
	return g.signOutFn(ctx)
}

func (g *stubGateway) CurrentUser(ctx context.Context) (*models.User, bool, error) {
	if g.currentUserFn == nil {
		return nil, false, errStubNotConfigured
	}
	return g.currentUserFn(ctx)
}

func (g *stubGateway) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	if g.getProfileFn == nil {
		return nil, errStubNotConfigured
	}
	return g.getProfileFn(ctx, userID)
}

func (g *stubGateway) UpdateProfile(ctx context.Context, draft ProfileDraft) (*models.User, error) {
	if g.updateProfileFn == nil {
		return nil, errStubNotConfigured
	}
	return g.updateProfileFn(ctx, draft)
}

func (g *stubGateway) ToggleFollow(ctx context.Context, userID uint) (*models.User, error) {
	if g.toggleFollowFn == nil {
		return nil, errStubNotConfigured
	}
	return g.toggleFollowFn(ctx, userID)
}

func (g *stubGateway) GetFeed(ctx context.Context, mode string, limit, offset int) ([]*models.Post, error) {
	if g.getFeedFn == nil {
		return nil, errStubNotConfigured
	}
	return g.getFeedFn(ctx, mode, limit, offset)
}

func (g *stubGateway) GetUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	if g.getUserPostsFn == nil {
		return nil, errStubNotConfigured
	}
	return g.getUserPostsFn(ctx, userID, limit, offset)
}

func (g *stubGateway) CreatePost(ctx context.Context, in NewPost) (*models.Post, error) {
	if g.createPostFn == nil {
		return nil, errStubNotConfigured
	}
	return g.createPostFn(ctx, in)
}

func (g *stubGateway) DeletePost(ctx context.Context, postID uint) error {
	if g.deletePostFn == nil {
		return errStubNotConfigured
	}
	return g.deletePostFn(ctx, postID)
}

func (g *stubGateway) ToggleLike(ctx context.Context, postID uint) (*models.Post, error) {
	if g.toggleLikeFn == nil {
		return nil, errStubNotConfigured
	}
	return g.toggleLikeFn(ctx, postID)
}

func (g *stubGateway) GetComments(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	if g.getCommentsFn == nil {
		return nil, errStubNotConfigured
	}
	return g.getCommentsFn(ctx, postID, limit, offset)
}

func (g *stubGateway) AddComment(ctx context.Context, postID uint, content string) (*models.Comment, error) {
	if g.addCommentFn == nil {
		return nil, errStubNotConfigured
	}
	return g.addCommentFn(ctx, postID, content)
}

func (g *stubGateway) GetActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	if g.getActivityFn == nil {
		return nil, errStubNotConfigured
	}
	return g.getActivityFn(ctx, limit)
}

func (g *stubGateway) GetCategories(ctx context.Context) ([]models.Category, error) {
	if g.getCategoriesFn == nil {
		return nil, errStubNotConfigured
	}
	return g.getCategoriesFn(ctx)
}

func (g *stubGateway) CreateUpload(ctx context.Context, kind, fileName, contentType string) (*UploadTicket, error) {
	if g.createUploadFn == nil {
		return nil, errStubNotConfigured
	}
	return g.createUploadFn(ctx, kind, fileName, contentType)
}
