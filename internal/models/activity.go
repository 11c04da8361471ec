package models

import "time"

// ActivityType tags an activity item by the kind of event that produced it.
type ActivityType string

const (
	// ActivityLike is recorded when someone likes one of the viewer's posts.
	ActivityLike ActivityType = "like"
	// ActivityComment is recorded when someone comments on one of the viewer's posts.
	ActivityComment ActivityType = "comment"
	// ActivityFollow is recorded when someone starts following the viewer.
	ActivityFollow ActivityType = "follow"
)

// Activity is a single item in the merged activity feed. It is assembled from
// the likes, comments and followers tables, not persisted on its own.
type Activity struct {
	ID        uint         `json:"id"`
	Type      ActivityType `json:"type"`
	Actor     User         `json:"actor"`
	Post      *Post        `json:"post,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
