package model

import "time"

// Activity event types written to the outbox.
const (
	EventFollow       = "follow"
	EventUnfollow     = "unfollow"
	EventRSVP         = "rsvp"
	EventUnRSVP       = "unrsvp"
	EventClubVerified = "club_verified"
)

// ActivityOutbox records interaction events in the same transaction as the
// mutation that caused them. A relayer drains pending rows to the broker.
type ActivityOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"`
	ActorID   uint64 `gorm:"not null"`
	SubjectID uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ActivityOutbox) TableName() string { return "activity_outbox" }
