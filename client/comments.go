package client

import (
	"context"
	"sync"

	"ripple/internal/models"
)

// CommentPageSize is the page size requested when loading comments.
const CommentPageSize = 50

// CommentPanel loads and posts comments for one post. The list is always
// what the server returned, newest first; posting reloads rather than
// splicing the new comment in locally.
type CommentPanel struct {
	gateway Gateway
	postID  uint

	mu       sync.Mutex
	comments []*models.Comment

	// OnAdded, if set, fires after a posted comment has been confirmed and
	// the list reloaded. Applications use it to bump visible counts.
	OnAdded func(comment *models.Comment)
}

// NewCommentPanel creates a panel for the given post.
func NewCommentPanel(gateway Gateway, postID uint) *CommentPanel {
	return &CommentPanel{gateway: gateway, postID: postID}
}

// Load fetches the first page of comments, newest first.
func (p *CommentPanel) Load(ctx context.Context) error {
	comments, err := p.gateway.GetComments(ctx, p.postID, CommentPageSize, 0)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.comments = comments
	p.mu.Unlock()
	return nil
}

// Comments returns the loaded comments.
func (p *CommentPanel) Comments() []*models.Comment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.comments
}

// Post submits a comment, reloads the list from the server, then fires
// OnAdded with the confirmed comment.
func (p *CommentPanel) Post(ctx context.Context, content string) (*models.Comment, error) {
	comment, err := p.gateway.AddComment(ctx, p.postID, content)
	if err != nil {
		return nil, err
	}
	if err := p.Load(ctx); err != nil {
		return nil, err
	}
	if p.OnAdded != nil {
		p.OnAdded(comment)
	}
	return comment, nil
}
