package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"bobcathub/internal/model"
	"bobcathub/internal/repository/mysql"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := mysql.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type testRepos struct {
	users     *mysql.UserRepository
	clubs     *mysql.ClubRepository
	posts     *mysql.PostRepository
	rsvps     *mysql.RSVPRepository
	followers *mysql.FollowerRepository
	outbox    *mysql.OutboxRepository
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		users:     &mysql.UserRepository{DB: db},
		clubs:     &mysql.ClubRepository{DB: db},
		posts:     &mysql.PostRepository{DB: db},
		rsvps:     &mysql.RSVPRepository{DB: db},
		followers: &mysql.FollowerRepository{DB: db},
		outbox:    &mysql.OutboxRepository{DB: db},
	}
}

// fakeSessions is an in-memory stand-in for the redis session repository.
type fakeSessions struct {
	tokens map[uint64]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[uint64]string)}
}

func (f *fakeSessions) Add(ctx context.Context, userID uint64, token string) error {
	f.tokens[userID] = token
	return nil
}

func (f *fakeSessions) Delete(ctx context.Context, userID uint64) error {
	delete(f.tokens, userID)
	return nil
}

func mustCreateUser(t *testing.T, db *gorm.DB, email string, role model.Role) *model.User {
	t.Helper()
	u := &model.User{Email: email, PasswordHash: "x", Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func mustCreateClub(t *testing.T, db *gorm.DB, name string, verified bool, ownerID *uint64) *model.Club {
	t.Helper()
	c := &model.Club{Name: name, Category: "Academic", Verified: verified, OwnerID: ownerID}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create club: %v", err)
	}
	return c
}

func mustCreateEvent(t *testing.T, db *gorm.DB, clubID uint64, title string, date time.Time) *model.Post {
	t.Helper()
	p := &model.Post{
		ClubID:        clubID,
		ImageFile:     "default.jpg",
		IsEvent:       true,
		EventTitle:    title,
		EventDate:     &date,
		EventLocation: "COB 102",
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	return p
}

func mustCreatePost(t *testing.T, db *gorm.DB, clubID uint64, caption string) *model.Post {
	t.Helper()
	p := &model.Post{ClubID: clubID, ImageFile: "default.jpg", Caption: caption}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}
