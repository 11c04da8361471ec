package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"ripple/internal/models"
)

// HTTPGateway talks to a Ripple API server over HTTP.
type HTTPGateway struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPGateway builds a gateway against the given base URL, e.g.
// "http://localhost:8480".
func NewHTTPGateway(baseURL string) *HTTPGateway {
	return &HTTPGateway{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (g *HTTPGateway) SetToken(token string) {
	g.mu.Lock()
	g.token = token
	g.mu.Unlock()
}

// Token returns the currently installed bearer token.
func (g *HTTPGateway) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// apiError mirrors the server's error envelope.
type apiError struct {
	Message string `json:"error"`
	Code    string `json:"code"`
	Status  int    `json:"-"`
}

func (e *apiError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*apiError)
	return ok && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*apiError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := g.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &apiError{Status: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (g *HTTPGateway) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	var result AuthResult
	if err := g.do(ctx, http.MethodPost, "/api/auth/signup", in, &result); err != nil {
		return nil, err
	}
	g.SetToken(result.Token)
	return &result, nil
}

func (g *HTTPGateway) SignIn(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var result AuthResult
	if err := g.do(ctx, http.MethodPost, "/api/auth/login", creds, &result); err != nil {
		return nil, err
	}
	g.SetToken(result.Token)
	return &result, nil
}

func (g *HTTPGateway) SignOut(ctx context.Context) error {
	err := g.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	// The local token is dropped regardless; a failed revocation should not
	// leave the client signed in.
	g.SetToken("")
	return err
}

// CurrentUser returns the signed-in user, or (nil, false, nil) when no token
// is installed.
func (g *HTTPGateway) CurrentUser(ctx context.Context) (*models.User, bool, error) {
	if g.Token() == "" {
		return nil, false, nil
	}
	var result struct {
		User       models.User `json:"user"`
		Registered bool        `json:"registered"`
	}
	if err := g.do(ctx, http.MethodGet, "/api/users/me", nil, &result); err != nil {
		if IsUnauthorized(err) {
			g.SetToken("")
			return nil, false, nil
		}
		return nil, false, err
	}
	return &result.User, result.Registered, nil
}

func (g *HTTPGateway) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *HTTPGateway) UpdateProfile(ctx context.Context, draft ProfileDraft) (*models.User, error) {
	payload := map[string]any{
		"full_name":  draft.FullName,
		"bio":        draft.Bio,
		"avatar_url": draft.AvatarURL,
		"interests":  draft.Interests,
	}
	if draft.DateOfBirth != nil {
		payload["date_of_birth"] = draft.DateOfBirth.Format("2006-01-02")
	}

	var result struct {
		User models.User `json:"user"`
	}
	if err := g.do(ctx, http.MethodPut, "/api/users/me", payload, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

func (g *HTTPGateway) ToggleFollow(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *HTTPGateway) GetFeed(ctx context.Context, mode string, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	path := fmt.Sprintf("/api/feed?mode=%s&limit=%d&offset=%d", mode, limit, offset)
	if err := g.do(ctx, http.MethodGet, path, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (g *HTTPGateway) GetUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	path := fmt.Sprintf("/api/users/%d/posts?limit=%d&offset=%d", userID, limit, offset)
	if err := g.do(ctx, http.MethodGet, path, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (g *HTTPGateway) CreatePost(ctx context.Context, in NewPost) (*models.Post, error) {
	var post models.Post
	if err := g.do(ctx, http.MethodPost, "/api/posts", in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (g *HTTPGateway) DeletePost(ctx context.Context, postID uint) error {
	return g.do(ctx, http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), nil, nil)
}

func (g *HTTPGateway) ToggleLike(ctx context.Context, postID uint) (*models.Post, error) {
	var post models.Post
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", postID), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (g *HTTPGateway) GetComments(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	path := fmt.Sprintf("/api/posts/%d/comments?limit=%d&offset=%d", postID, limit, offset)
	if err := g.do(ctx, http.MethodGet, path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (g *HTTPGateway) AddComment(ctx context.Context, postID uint, content string) (*models.Comment, error) {
	var comment models.Comment
	payload := map[string]string{"content": content}
	if err := g.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), payload, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (g *HTTPGateway) GetActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	var items []models.Activity
	if err := g.do(ctx, http.MethodGet, fmt.Sprintf("/api/activity?limit=%d", limit), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *HTTPGateway) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := g.do(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (g *HTTPGateway) CreateUpload(ctx context.Context, kind, fileName, contentType string) (*UploadTicket, error) {
	var ticket UploadTicket
	payload := map[string]string{
		"kind":         kind,
		"file_name":    fileName,
		"content_type": contentType,
	}
	if err := g.do(ctx, http.MethodPost, "/api/uploads", payload, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

var _ Gateway = (*HTTPGateway)(nil)
