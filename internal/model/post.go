package model

import "time"

// Post unifies social posts and events. When IsEvent is set the event fields
// are required and the post becomes RSVP-able.
type Post struct {
	ID     uint64 `gorm:"primaryKey"`
	ClubID uint64 `gorm:"not null;index:idx_club_time"`

	ImageFile string `gorm:"size:120;not null;default:'default.jpg'"`
	Caption   string `gorm:"type:text"`

	IsEvent       bool       `gorm:"not null;default:false"`
	EventTitle    string     `gorm:"size:100"`
	EventDate     *time.Time `gorm:"index"`
	EventLocation string     `gorm:"size:100"`

	CreatedAt time.Time `gorm:"index:idx_club_time"`
	UpdatedAt time.Time
}
