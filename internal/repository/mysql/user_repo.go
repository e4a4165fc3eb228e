package mysql

import (
	"context"

	"bobcathub/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}

// Delete removes the user together with their RSVPs and follows so no join
// rows are orphaned, and releases ownership of any clubs they manage so the
// clubs stay claimable. Returns user rows removed (0 = not found).
func (r *UserRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Club{}).Where("owner_id = ?", id).
			Update("owner_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.RSVP{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.ClubFollower{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.User{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
