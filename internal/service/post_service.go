// Package service contains the application's business logic.
package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

// CreatePostPollInput is the poll payload when creating a poll post.
type CreatePostPollInput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type CreatePostInput struct {
	UserID       uint
	Title        string
	Content      string
	PostType     string
	ImageURL     string
	VideoURL     string
	CategorySlug string
	Poll         *CreatePostPollInput
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *PostService {
	return &PostService{postRepo: postRepo, categoryRepo: categoryRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	postType := in.PostType
	if postType == "" {
		postType = models.PostTypeText
	}
	switch postType {
	case models.PostTypeText, models.PostTypePhoto, models.PostTypeVideo, models.PostTypePoll:
		// valid
	default:
		return nil, models.NewValidationError("Invalid post type")
	}

	const maxTitleLen = 300
	const maxContentLen = 10000

	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}
	if postType == models.PostTypeText && strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	// Media URLs are tied to the post type; anything else is dropped.
	imageURL, videoURL := "", ""
	switch postType {
	case models.PostTypePhoto:
		if strings.TrimSpace(in.ImageURL) == "" {
			return nil, models.NewValidationError("Photo posts require an image URL")
		}
		imageURL = in.ImageURL
	case models.PostTypeVideo:
		if strings.TrimSpace(in.VideoURL) == "" {
			return nil, models.NewValidationError("Video posts require a video URL")
		}
		videoURL = in.VideoURL
	}

	if in.CategorySlug == "" {
		return nil, models.NewValidationError("Category is required")
	}
	category, err := s.categoryRepo.GetBySlug(ctx, in.CategorySlug)
	if err != nil {
		return nil, models.NewNotFoundError("Category", in.CategorySlug)
	}

	post := &models.Post{
		Title:      in.Title,
		Content:    in.Content,
		PostType:   postType,
		ImageURL:   imageURL,
		VideoURL:   videoURL,
		UserID:     in.UserID,
		CategoryID: category.ID,
	}

	if postType == models.PostTypePoll {
		poll, err := buildPoll(in.Poll)
		if err != nil {
			return nil, err
		}
		post.Poll = poll
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// buildPoll validates and assembles the poll attached to a poll post.
// Options are trimmed and blanks discarded. More than 4 usable options is an
// error. Fewer than 2 yields a poll with no options rather than an error, so
// a half-filled poll form still produces a post.
func buildPoll(in *CreatePostPollInput) (*models.Poll, error) {
	if in == nil {
		return nil, models.NewValidationError("Poll posts require a poll")
	}
	if strings.TrimSpace(in.Question) == "" {
		return nil, models.NewValidationError("Poll question is required")
	}

	options := make([]models.PollOption, 0, len(in.Options))
	for _, opt := range in.Options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		options = append(options, models.PollOption{OptionText: opt})
	}

	if len(options) > 4 {
		return nil, models.NewValidationError("Polls allow at most 4 options")
	}
	if len(options) < 2 {
		options = nil
	}

	return &models.Poll{
		Question: in.Question,
		Options:  options,
	}, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		return nil, models.NewNotFoundError("Post", id)
	}
	return post, nil
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *PostService) GetCategoryPosts(ctx context.Context, slug string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, models.NewNotFoundError("Category", slug)
	}
	return s.postRepo.GetByCategoryID(ctx, category.ID, limit, offset, currentUserID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return models.NewNotFoundError("Post", in.PostID)
	}
	if post.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, in.PostID)
}

// ToggleLike flips the viewer's like on a post and returns the post with
// fresh aggregates, so clients patch from the confirmed server state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, models.NewNotFoundError("Post", postID)
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if liked {
		err = s.postRepo.Unlike(ctx, userID, postID)
		observability.ToggleTotal.WithLabelValues("like", "off").Inc()
	} else {
		err = s.postRepo.Like(ctx, userID, postID)
		observability.ToggleTotal.WithLabelValues("like", "on").Inc()
	}
	if err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID, userID)
}
