package mysql

import (
	"context"
	"testing"
	"time"

	"bobcathub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSVPToggle(t *testing.T) {
	db := newTestDB(t)
	repo := &RSVPRepository{DB: db}
	ctx := context.Background()

	user := seedUser(t, db, "s@ucmerced.edu", model.RoleStudent)
	club := seedClub(t, db, "Chess Club", true)
	post := seedEvent(t, db, club.ID, "Blitz Night", time.Now().Add(24*time.Hour))

	attending, err := repo.Toggle(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, attending)

	exists, err := repo.Exists(user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// Toggling again removes the row rather than erroring on the unique key.
	attending, err = repo.Toggle(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, attending)

	var count int64
	require.NoError(t, db.Model(&model.RSVP{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRSVPToggleWritesOutbox(t *testing.T) {
	db := newTestDB(t)
	repo := &RSVPRepository{DB: db}
	ctx := context.Background()

	user := seedUser(t, db, "s@ucmerced.edu", model.RoleStudent)
	club := seedClub(t, db, "Chess Club", true)
	post := seedEvent(t, db, club.ID, "Blitz Night", time.Now().Add(24*time.Hour))

	_, err := repo.Toggle(ctx, user.ID, post.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, user.ID, post.ID)
	require.NoError(t, err)

	var events []model.ActivityOutbox
	require.NoError(t, db.Order("id ASC").Find(&events).Error)
	require.Len(t, events, 2)
	assert.Equal(t, model.EventRSVP, events[0].EventType)
	assert.Equal(t, model.EventUnRSVP, events[1].EventType)
	assert.Equal(t, user.ID, events[0].ActorID)
	assert.Equal(t, post.ID, events[0].SubjectID)
}

func TestRSVPCountAndPostIDs(t *testing.T) {
	db := newTestDB(t)
	repo := &RSVPRepository{DB: db}
	ctx := context.Background()

	a := seedUser(t, db, "a@ucmerced.edu", model.RoleStudent)
	b := seedUser(t, db, "b@ucmerced.edu", model.RoleStudent)
	club := seedClub(t, db, "Chess Club", true)
	post := seedEvent(t, db, club.ID, "Blitz Night", time.Now().Add(24*time.Hour))

	_, err := repo.Toggle(ctx, a.ID, post.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, b.ID, post.ID)
	require.NoError(t, err)

	count, err := repo.CountForPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ids, err := repo.PostIDsForUser(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{post.ID}, ids)
}
