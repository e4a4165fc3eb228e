package mysql

import (
	"context"
	"errors"

	"bobcathub/internal/model"

	"gorm.io/gorm"
)

type FollowerRepository struct {
	DB *gorm.DB
}

// Toggle follows the club if not yet followed, unfollows otherwise. Returns
// whether the user is following after the toggle.
func (r *FollowerRepository) Toggle(ctx context.Context, userID, clubID uint64) (bool, error) {
	var following bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var follow model.ClubFollower
		err := tx.Where("user_id = ? AND club_id = ?", userID, clubID).First(&follow).Error
		switch {
		case err == nil:
			if err := tx.Delete(&follow).Error; err != nil {
				return err
			}
			following = false
			return insertOutbox(tx, model.EventUnfollow, userID, clubID)
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.ClubFollower{UserID: userID, ClubID: clubID}).Error; err != nil {
				return err
			}
			following = true
			return insertOutbox(tx, model.EventFollow, userID, clubID)
		default:
			return err
		}
	})
	return following, err
}

func (r *FollowerRepository) Exists(userID, clubID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ClubFollower{}).
		Where("user_id = ? AND club_id = ?", userID, clubID).
		Count(&count).Error
	return count > 0, err
}

func (r *FollowerRepository) ClubIDsForUser(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.Model(&model.ClubFollower{}).
		Where("user_id = ?", userID).
		Pluck("club_id", &ids).Error
	return ids, err
}

func (r *FollowerRepository) CountForClub(clubID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ClubFollower{}).
		Where("club_id = ?", clubID).
		Count(&count).Error
	return count, err
}

// ListFollowedVerified returns the verified clubs the user follows; the
// my-clubs view intentionally hides followed-but-unverified clubs.
func (r *FollowerRepository) ListFollowedVerified(userID uint64) ([]model.Club, error) {
	var clubs []model.Club
	err := r.DB.Model(&model.Club{}).
		Joins("JOIN club_followers ON club_followers.club_id = clubs.id").
		Where("club_followers.user_id = ? AND clubs.verified = ?", userID, true).
		Find(&clubs).Error
	return clubs, err
}
