// Package models contains data structures for the application's domain models.
package models

import "time"

// Category is one of the fixed, admin-managed content categories.
// The set is seeded at bootstrap and never mutated through the API.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Slug      string    `gorm:"unique;not null;index" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
