package mysql

import (
	"context"

	"bobcathub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClubRepository struct {
	DB *gorm.DB
}

func (r *ClubRepository) Create(club *model.Club) error {
	return r.DB.Create(club).Error
}

func (r *ClubRepository) FindByID(id uint64) (*model.Club, error) {
	var club model.Club
	err := r.DB.First(&club, id).Error
	return &club, err
}

func (r *ClubRepository) FindByName(name string) (*model.Club, error) {
	var club model.Club
	err := r.DB.Where("name = ?", name).First(&club).Error
	return &club, err
}

func (r *ClubRepository) FindByOwner(userID uint64) (*model.Club, error) {
	var club model.Club
	err := r.DB.Where("owner_id = ?", userID).First(&club).Error
	return &club, err
}

func (r *ClubRepository) List() ([]model.Club, error) {
	var list []model.Club
	err := r.DB.Order("name ASC").Find(&list).Error
	return list, err
}

func (r *ClubRepository) ListPending() ([]model.Club, error) {
	var list []model.Club
	err := r.DB.Where("verified = ?", false).Order("name ASC").Find(&list).Error
	return list, err
}

func (r *ClubRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Club{}).Count(&count).Error
	return count, err
}

// Verify sets the verified flag. Returns gorm.ErrRecordNotFound for a
// missing id; verifying an already-verified club is a no-op success.
func (r *ClubRepository) Verify(ctx context.Context, id uint64) (*model.Club, error) {
	var club model.Club
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&club, id).Error; err != nil {
			return err
		}
		if club.Verified {
			return nil
		}
		club.Verified = true
		return tx.Model(&club).Update("verified", true).Error
	})
	return &club, err
}

// Upsert inserts a directory record, or refreshes the metadata columns when a
// club with the same name already exists. Ingested clubs are always verified.
func (r *ClubRepository) Upsert(club *model.Club) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category", "description", "meeting_time", "location", "member_count", "verified",
		}),
	}).Create(club).Error
}

// Delete removes the club, its posts, those posts' RSVPs and the club's
// follower rows in one transaction. Returns club rows removed (0 = missing).
func (r *ClubRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint64
		if err := tx.Model(&model.Post{}).Where("club_id = ?", id).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.RSVP{}).Error; err != nil {
				return err
			}
			if err := tx.Where("club_id = ?", id).Delete(&model.Post{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.ClubFollower{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Club{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
