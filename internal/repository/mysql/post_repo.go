package mysql

import (
	"time"

	"bobcathub/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	return &post, err
}

// ListVerified returns posts of verified clubs only, newest first. The
// global feed never shows an unverified club's posts.
func (r *PostRepository) ListVerified() ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Joins("JOIN clubs ON clubs.id = posts.club_id").
		Where("clubs.verified = ?", true).
		Order("posts.created_at DESC").
		Find(&list).Error
	return list, err
}

// ListByClubs returns posts of the given clubs, newest first, regardless of
// verification status.
func (r *PostRepository) ListByClubs(clubIDs []uint64) ([]model.Post, error) {
	if len(clubIDs) == 0 {
		return nil, nil
	}
	var list []model.Post
	err := r.DB.
		Where("club_id IN ?", clubIDs).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByClub(clubID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("club_id = ?", clubID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ListUpcomingByClub returns the club's future events, soonest first.
func (r *PostRepository) ListUpcomingByClub(clubID uint64, now time.Time) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("club_id = ? AND is_event = ? AND event_date >= ?", clubID, true, now).
		Order("event_date ASC").
		Find(&list).Error
	return list, err
}

// ListRSVPed returns the posts a user has RSVP'd to, ordered by event date.
func (r *PostRepository) ListRSVPed(userID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Joins("JOIN rsvps ON rsvps.post_id = posts.id").
		Where("rsvps.user_id = ?", userID).
		Order("posts.event_date ASC").
		Find(&list).Error
	return list, err
}
