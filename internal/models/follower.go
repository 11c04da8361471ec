package models

import (
	"time"
)

// Follower represents a follow relationship: FollowerID follows FollowingID.
// At most one row per ordered pair, enforced by the unique index. Self-follow
// is rejected in the service layer before it ever reaches the table.
type Follower struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follower_pair" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follower_pair" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	FollowerUser  User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	FollowingUser User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}
