// Package client is the Go SDK for the Ripple API. It wraps the HTTP surface
// behind a Gateway interface and layers stateful views (session, feed,
// profile, comments, activity) on top, so applications consume confirmed
// server state instead of raw requests.
package client

import (
	"context"
	"time"

	"ripple/internal/models"
)

// Credentials is the payload for signing in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpInput is the payload for creating an account.
type SignUpInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the server's answer to signup/login: a token, the user, and
// whether the profile-completion step has already been done.
type AuthResult struct {
	Token      string      `json:"token"`
	User       models.User `json:"user"`
	Registered bool        `json:"registered"`
}

// ProfileDraft is the full editable profile state. Saving sends the whole
// draft; the server replaces rather than merges.
type ProfileDraft struct {
	FullName    string     `json:"full_name"`
	Bio         string     `json:"bio"`
	AvatarURL   string     `json:"avatar_url"`
	DateOfBirth *time.Time `json:"-"`
	Interests   []string   `json:"interests"`
}

// NewPost is the payload for creating a post.
type NewPost struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Type     string   `json:"type"`
	ImageURL string   `json:"image_url,omitempty"`
	VideoURL string   `json:"video_url,omitempty"`
	Category string   `json:"category"`
	Poll     *NewPoll `json:"poll,omitempty"`
}

// NewPoll is the poll payload attached to a poll post.
type NewPoll struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// UploadTicket mirrors the server's presigned upload response.
type UploadTicket struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Key       string `json:"key"`
}

// Gateway is the remote data surface the SDK's views are built on. The
// canonical implementation is HTTPGateway; tests substitute stubs.
type Gateway interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, creds Credentials) (*AuthResult, error)
	SignOut(ctx context.Context) error

	CurrentUser(ctx context.Context) (*models.User, bool, error)
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, draft ProfileDraft) (*models.User, error)
	ToggleFollow(ctx context.Context, userID uint) (*models.User, error)

	GetFeed(ctx context.Context, mode string, limit, offset int) ([]*models.Post, error)
	GetUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	CreatePost(ctx context.Context, in NewPost) (*models.Post, error)
	DeletePost(ctx context.Context, postID uint) error
	ToggleLike(ctx context.Context, postID uint) (*models.Post, error)

	GetComments(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error)
	AddComment(ctx context.Context, postID uint, content string) (*models.Comment, error)

	GetActivity(ctx context.Context, limit int) ([]models.Activity, error)
	GetCategories(ctx context.Context) ([]models.Category, error)

	CreateUpload(ctx context.Context, kind, fileName, contentType string) (*UploadTicket, error)
}
