package model

import "time"

type Club struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:150;not null"`
	Category    string `gorm:"size:100"`
	Description string `gorm:"type:text"`
	Verified    bool   `gorm:"not null;default:false"`

	// Directory metadata filled in by the ingestion pipeline.
	MeetingTime string `gorm:"size:100"`
	Location    string `gorm:"size:100"`
	MemberCount int    `gorm:"not null;default:0"`

	// Officer account that manages this club. Nil for clubs that were only
	// scraped and never claimed.
	OwnerID *uint64 `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
