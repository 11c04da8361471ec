package client

import (
	"context"
	"sync"

	"ripple/internal/models"
)

// ProfileEditor manages the edit cycle for the signed-in user's profile:
// a draft is seeded from the server copy, edited freely, then either saved
// (sent wholesale, reconciled from the response) or cancelled (reset from
// the untouched server copy).
type ProfileEditor struct {
	gateway Gateway

	mu     sync.Mutex
	server *models.User // last confirmed server copy
	draft  ProfileDraft
	dirty  bool
}

// NewProfileEditor seeds an editor from the given server copy.
func NewProfileEditor(gateway Gateway, user *models.User) *ProfileEditor {
	e := &ProfileEditor{gateway: gateway}
	e.reset(user)
	return e
}

func (e *ProfileEditor) reset(user *models.User) {
	e.server = user
	e.draft = ProfileDraft{
		FullName:    user.FullName,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		DateOfBirth: user.DateOfBirth,
		Interests:   append([]string(nil), user.Interests...),
	}
	e.dirty = false
}

// Draft returns the current draft.
func (e *ProfileEditor) Draft() ProfileDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Dirty reports whether the draft differs from the server copy.
func (e *ProfileEditor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// Edit applies fn to the draft. Edits only touch the draft; the server copy
// stays untouched until Save.
func (e *ProfileEditor) Edit(fn func(*ProfileDraft)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.draft)
	e.dirty = true
}

// UploadAvatar presigns an avatar upload and stages the resulting public URL
// into the draft. The caller PUTs the file bytes to ticket.UploadURL; the
// avatar only becomes the profile picture when the draft is saved.
func (e *ProfileEditor) UploadAvatar(ctx context.Context, fileName, contentType string) (*UploadTicket, error) {
	ticket, err := e.gateway.CreateUpload(ctx, "avatar", fileName, contentType)
	if err != nil {
		return nil, err
	}
	e.Edit(func(d *ProfileDraft) {
		d.AvatarURL = ticket.PublicURL
	})
	return ticket, nil
}

// Save sends the whole draft and reconciles local state from the server's
// response, never from the draft itself.
func (e *ProfileEditor) Save(ctx context.Context) (*models.User, error) {
	e.mu.Lock()
	draft := e.draft
	e.mu.Unlock()

	user, err := e.gateway.UpdateProfile(ctx, draft)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.reset(user)
	e.mu.Unlock()
	return user, nil
}

// Cancel discards the draft and reseeds it from the server copy.
func (e *ProfileEditor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset(e.server)
}

// ProfileView loads and displays another user's profile, including the
// follow toggle.
type ProfileView struct {
	gateway Gateway

	mu    sync.Mutex
	user  *models.User
	posts []*models.Post
}

// NewProfileView creates an empty view; call Load before reading.
func NewProfileView(gateway Gateway) *ProfileView {
	return &ProfileView{gateway: gateway}
}

// Load fetches the profile and the user's posts.
func (v *ProfileView) Load(ctx context.Context, userID uint) error {
	user, err := v.gateway.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	posts, err := v.gateway.GetUserPosts(ctx, userID, FeedPageSize, 0)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.user = user
	v.posts = posts
	v.mu.Unlock()
	return nil
}

// User returns the loaded profile, or nil before Load.
func (v *ProfileView) User() *models.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.user
}

// Posts returns the loaded posts.
func (v *ProfileView) Posts() []*models.Post {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.posts
}

// ToggleFollow flips the follow state and patches the loaded profile from
// the server's confirmed counts.
func (v *ProfileView) ToggleFollow(ctx context.Context) (*models.User, error) {
	v.mu.Lock()
	if v.user == nil {
		v.mu.Unlock()
		return nil, models.NewValidationError("No profile loaded")
	}
	userID := v.user.ID
	v.mu.Unlock()

	updated, err := v.gateway.ToggleFollow(ctx, userID)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	v.user = updated
	v.mu.Unlock()
	return updated, nil
}
