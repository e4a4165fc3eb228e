package mysql

import (
	"bobcathub/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open connects to MySQL. The handle is passed to repositories explicitly;
// there is no package-level connection.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Club{},
		&model.Post{},
		&model.RSVP{},
		&model.ClubFollower{},
		&model.ActivityOutbox{},
	)
}
