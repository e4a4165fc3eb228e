package model

import "time"

// RSVP joins a user to an event post. At most one row per (user, post).
type RSVP struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RSVP) TableName() string {
	return "rsvps"
}
