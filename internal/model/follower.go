package model

import "time"

// ClubFollower joins a user to a club. At most one row per (user, club).
type ClubFollower struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_club"`
	ClubID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_club"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClubFollower) TableName() string {
	return "club_followers"
}
