package service

import (
	"context"
	"sort"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// MaxActivityItems caps the merged activity feed.
const MaxActivityItems = 30

// activityPerSource bounds each underlying query; three sources at ten
// apiece fill the cap exactly.
const activityPerSource = MaxActivityItems / 3

type ActivityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// GetActivity merges recent likes, comments and follows aimed at the viewer
// into a single list, newest first. Each source is fetched with its own
// per-source bound so one noisy source cannot crowd the others out of the
// merged result.
func (s *ActivityService) GetActivity(ctx context.Context, userID uint, limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > MaxActivityItems {
		limit = MaxActivityItems
	}

	likes, err := s.activityRepo.RecentLikes(ctx, userID, activityPerSource)
	if err != nil {
		return nil, err
	}
	comments, err := s.activityRepo.RecentComments(ctx, userID, activityPerSource)
	if err != nil {
		return nil, err
	}
	follows, err := s.activityRepo.RecentFollows(ctx, userID, activityPerSource)
	if err != nil {
		return nil, err
	}

	items := make([]models.Activity, 0, len(likes)+len(comments)+len(follows))
	for _, l := range likes {
		items = append(items, models.Activity{
			ID:        l.ID,
			Type:      models.ActivityLike,
			Actor:     l.User,
			Post:      l.Post,
			CreatedAt: l.CreatedAt,
		})
	}
	for _, c := range comments {
		items = append(items, models.Activity{
			ID:        c.ID,
			Type:      models.ActivityComment,
			Actor:     c.User,
			Post:      c.Post,
			CreatedAt: c.CreatedAt,
		})
	}
	for _, f := range follows {
		items = append(items, models.Activity{
			ID:        f.ID,
			Type:      models.ActivityFollow,
			Actor:     f.FollowerUser,
			CreatedAt: f.CreatedAt,
		})
	}

	// Newest first; tie-break on type then id so ordering is stable.
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		if items[i].Type != items[j].Type {
			return items[i].Type < items[j].Type
		}
		return items[i].ID > items[j].ID
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
