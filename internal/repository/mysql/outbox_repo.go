package mysql

import (
	"context"

	"bobcathub/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func (r *OutboxRepository) ListPending(ctx context.Context, batchSize int) ([]model.ActivityOutbox, error) {
	var list []model.ActivityOutbox
	err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error
	return list, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ActivityOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ActivityOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// InsertVerified records a club_verified event outside a toggle transaction.
func (r *OutboxRepository) InsertVerified(ctx context.Context, adminID, clubID uint64) error {
	return insertOutbox(r.DB.WithContext(ctx), model.EventClubVerified, adminID, clubID)
}
