// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post type tags. Media URLs are tied to the type: image_url is set iff the
// post is a photo, video_url iff it is a video, and a poll post owns a Poll
// row with its options.
const (
	PostTypeText  = "text"
	PostTypePhoto = "photo"
	PostTypeVideo = "video"
	PostTypePoll  = "poll"
)

// Post represents a post in the Ripple application.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	PostType   string    `gorm:"type:varchar(10);not null;default:'text'" json:"type"`
	ImageURL   string    `json:"image_url,omitempty"`
	VideoURL   string    `json:"video_url,omitempty"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Poll       *Poll     `gorm:"foreignKey:PostID" json:"poll,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->;-:migration" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->;-:migration" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked bool `gorm:"->;-:migration" json:"user_has_liked"`
	// EngagementScore ranks trending results; computed at query time
	EngagementScore int            `gorm:"->;-:migration" json:"-"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
