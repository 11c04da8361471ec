package service

import (
	"context"
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// Categories a user may pick as interests. Matches the seeded category set.
var validInterests = map[string]bool{
	"politics":      true,
	"entertainment": true,
	"sports":        true,
	"technology":    true,
	"fashion":       true,
	"science":       true,
	"health":        true,
	"business":      true,
}

type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput replaces the editable profile fields wholesale. Callers
// send the complete desired state, not a diff; an empty field clears it.
type UpdateProfileInput struct {
	UserID      uint
	FullName    string
	Bio         string
	AvatarURL   string
	DateOfBirth *time.Time
	Interests   []string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, id uint, currentUserID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		return nil, models.NewNotFoundError("User", id)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID, 0)
	if err != nil {
		return nil, models.NewNotFoundError("User", in.UserID)
	}

	const maxBioLen = 500
	const maxFullNameLen = 100

	if len(in.FullName) > maxFullNameLen {
		return nil, models.NewValidationError("Full name too long (max 100 characters)")
	}
	if len(in.Bio) > maxBioLen {
		return nil, models.NewValidationError("Bio too long (max 500 characters)")
	}
	for _, interest := range in.Interests {
		if !validInterests[interest] {
			return nil, models.NewValidationError("Unknown interest: " + interest)
		}
	}

	user.FullName = in.FullName
	user.Bio = in.Bio
	user.AvatarURL = in.AvatarURL
	user.DateOfBirth = in.DateOfBirth
	user.Interests = in.Interests

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, in.UserID, in.UserID)
}

func (s *UserService) SearchUsers(ctx context.Context, query string, limit, offset int) ([]*models.User, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.userRepo.Search(ctx, query, limit, offset)
}
