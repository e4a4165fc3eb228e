package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bobcathub/internal/model"

	"gorm.io/gorm"
)

type RSVPRepository struct {
	DB *gorm.DB
}

// Toggle creates the RSVP if absent, removes it if present, in a single
// transaction together with the outbox row. Returns whether the user is
// attending after the toggle.
func (r *RSVPRepository) Toggle(ctx context.Context, userID, postID uint64) (bool, error) {
	var attending bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rsvp model.RSVP
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&rsvp).Error
		switch {
		case err == nil:
			if err := tx.Delete(&rsvp).Error; err != nil {
				return err
			}
			attending = false
			return insertOutbox(tx, model.EventUnRSVP, userID, postID)
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.RSVP{UserID: userID, PostID: postID}).Error; err != nil {
				return err
			}
			attending = true
			return insertOutbox(tx, model.EventRSVP, userID, postID)
		default:
			return err
		}
	})
	return attending, err
}

func (r *RSVPRepository) Exists(userID, postID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.RSVP{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// PostIDsForUser returns the set of post ids the user has RSVP'd to, used
// for per-user UI state on feeds.
func (r *RSVPRepository) PostIDsForUser(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.Model(&model.RSVP{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	return ids, err
}

func (r *RSVPRepository) CountForPost(postID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.RSVP{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func insertOutbox(tx *gorm.DB, event string, actorID, subjectID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"subject":    subjectID,
	})
	return tx.Create(&model.ActivityOutbox{
		EventType: event,
		ActorID:   actorID,
		SubjectID: subjectID,
		Payload:   string(payload),
		Status:    0,
	}).Error
}
