package mysql

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"bobcathub/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test and runs the
// migrations against it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role model.Role) *model.User {
	t.Helper()
	u := &model.User{Email: email, PasswordHash: "x", Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedClub(t *testing.T, db *gorm.DB, name string, verified bool) *model.Club {
	t.Helper()
	c := &model.Club{Name: name, Category: "Academic", Verified: verified}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed club: %v", err)
	}
	return c
}

func seedEvent(t *testing.T, db *gorm.DB, clubID uint64, title string, date time.Time) *model.Post {
	t.Helper()
	p := &model.Post{
		ClubID:        clubID,
		ImageFile:     "default.jpg",
		Caption:       title,
		IsEvent:       true,
		EventTitle:    title,
		EventDate:     &date,
		EventLocation: "KL 130",
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return p
}

func seedPost(t *testing.T, db *gorm.DB, clubID uint64, caption string, createdAt time.Time) *model.Post {
	t.Helper()
	p := &model.Post{ClubID: clubID, ImageFile: "default.jpg", Caption: caption}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	if err := db.Model(p).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("backdate post: %v", err)
	}
	return p
}
