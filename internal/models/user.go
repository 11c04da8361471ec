// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a profile in the Ripple application. A user is created
// minimal at signup (username, email, password) and completed later through
// the registration step, so every field beyond those three may be empty.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"unique;not null" json:"username"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	FullName    string         `json:"full_name,omitempty"`
	Bio         string         `json:"bio,omitempty"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`
	Interests   []string       `gorm:"serializer:json" json:"interests,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`

	// FollowersCount is not persisted; computed at query time
	FollowersCount int `gorm:"->;-:migration" json:"followers_count"`
	// FollowingCount is not persisted; computed at query time
	FollowingCount int `gorm:"->;-:migration" json:"following_count"`
	// IsFollowing indicates whether the requesting user follows this profile (computed)
	IsFollowing bool `gorm:"->;-:migration" json:"is_following"`
}

// Registered reports whether the profile-completion step has been done.
// A freshly signed-up user only has a username, so an empty full name is
// the signal the client uses to route to the registration form.
func (u *User) Registered() bool {
	return u.FullName != ""
}
