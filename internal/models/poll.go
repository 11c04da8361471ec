package models

import "time"

// Poll holds the question of a poll-type post, tied 1:1 to the post.
type Poll struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	PostID    uint         `gorm:"not null;uniqueIndex" json:"post_id"`
	Question  string       `gorm:"not null" json:"question"`
	Options   []PollOption `gorm:"foreignKey:PollID" json:"options"`
	CreatedAt time.Time    `json:"created_at"`
}

// PollOption is one of 2-4 answer texts attached to a poll. Vote counts are
// declared for shape compatibility but not surfaced by this application.
type PollOption struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PollID     uint      `gorm:"not null;index" json:"poll_id"`
	OptionText string    `gorm:"not null" json:"option_text"`
	VotesCount int       `gorm:"->;-:migration" json:"votes_count"`
	CreatedAt  time.Time `json:"created_at"`
}
