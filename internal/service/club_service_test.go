package service

import (
	"testing"
	"time"

	"bobcathub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClubService(t *testing.T) (*ClubService, testRepos) {
	t.Helper()
	db := newTestDB(t)
	repos := newTestRepos(db)
	return NewClubService(repos.clubs, repos.posts), repos
}

func TestClubDashboard(t *testing.T) {
	svc, repos := newClubService(t)
	db := repos.posts.DB

	officer := mustCreateUser(t, db, "officer@ucmerced.edu", model.RoleClub)
	club := mustCreateClub(t, db, "Chess Club", true, &officer.ID)
	mustCreatePost(t, db, club.ID, "first post")

	view, err := svc.Dashboard(officer.ID)
	require.NoError(t, err)
	assert.Equal(t, club.ID, view.Club.ID)
	assert.Len(t, view.Posts, 1)
}

func TestClubDashboardWithoutClub(t *testing.T) {
	svc, repos := newClubService(t)
	db := repos.posts.DB

	orphan := mustCreateUser(t, db, "orphan@ucmerced.edu", model.RoleClub)

	_, err := svc.Dashboard(orphan.ID)
	assert.ErrorIs(t, err, ErrNoClub)
}

func TestCreatePostDefaultsImage(t *testing.T) {
	svc, repos := newClubService(t)
	db := repos.posts.DB

	officer := mustCreateUser(t, db, "officer@ucmerced.edu", model.RoleClub)
	mustCreateClub(t, db, "Chess Club", true, &officer.ID)

	post, err := svc.CreatePost(officer.ID, model.RoleClub, CreatePostInput{Caption: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "default.jpg", post.ImageFile)
	assert.False(t, post.IsEvent)
}

func TestCreateEventRequiresAllFields(t *testing.T) {
	svc, repos := newClubService(t)
	db := repos.posts.DB

	officer := mustCreateUser(t, db, "officer@ucmerced.edu", model.RoleClub)
	mustCreateClub(t, db, "Chess Club", true, &officer.ID)

	date := time.Now().Add(24 * time.Hour)
	cases := []CreatePostInput{
		{IsEvent: true, EventDate: &date, EventLocation: "KL 130"},
		{IsEvent: true, EventTitle: "Blitz Night", EventLocation: "KL 130"},
		{IsEvent: true, EventTitle: "Blitz Night", EventDate: &date},
	}
	for _, in := range cases {
		_, err := svc.CreatePost(officer.ID, model.RoleClub, in)
		assert.ErrorIs(t, err, ErrMissingEventFields)
	}

	post, err := svc.CreatePost(officer.ID, model.RoleClub, CreatePostInput{
		IsEvent: true, EventTitle: "Blitz Night", EventDate: &date, EventLocation: "KL 130",
	})
	require.NoError(t, err)
	assert.True(t, post.IsEvent)
}

func TestCreatePostOfficerIgnoresClubID(t *testing.T) {
	svc, repos := newClubService(t)
	db := repos.posts.DB

	officer := mustCreateUser(t, db, "officer@ucmerced.edu", model.RoleClub)
	own := mustCreateClub(t, db, "Chess Club", true, &officer.ID)
	other := mustCreateClub(t, db, "Robotics Society", true, nil)

	post, err := svc.CreatePost(officer.ID, model.RoleClub, CreatePostInput{
		ClubID: other.ID, Caption: "hijack attempt",
	})
	require.NoError(t, err)
	assert.Equal(t, own.ID, post.ClubID)
}

func TestCreatePostAdminTargetsAnyClub(t *testing.T) {
	svc, repos := newClubService(t)
	db := repos.posts.DB

	admin := mustCreateUser(t, db, "boss@ucmerced.edu", model.RoleAdmin)
	club := mustCreateClub(t, db, "Robotics Society", true, nil)

	post, err := svc.CreatePost(admin.ID, model.RoleAdmin, CreatePostInput{
		ClubID: club.ID, Caption: "announcement",
	})
	require.NoError(t, err)
	assert.Equal(t, club.ID, post.ClubID)

	_, err = svc.CreatePost(admin.ID, model.RoleAdmin, CreatePostInput{ClubID: 999})
	assert.ErrorIs(t, err, ErrNotFound)
}
