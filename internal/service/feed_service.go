package service

import (
	"context"
	"errors"
	"time"

	"bobcathub/internal/model"
	"bobcathub/internal/pkg"
	"bobcathub/internal/repository/mysql"

	"gorm.io/gorm"
)

// FeedCache caches whole feed view-models per (route, user). Nil disables
// caching; entries may be stale up to the configured TTL.
type FeedCache interface {
	Get(ctx context.Context, route string, userID uint64, v any) (bool, error)
	Set(ctx context.Context, route string, userID uint64, v any) error
}

// RSVPCounts caches the per-post RSVP count behind a global key, so toggles
// must call Delete. Nil disables caching.
type RSVPCounts interface {
	Get(ctx context.Context, postID uint64) (int64, bool, error)
	Set(ctx context.Context, postID uint64, count int64) error
	Delete(ctx context.Context, postID uint64) error
}

// Cache routes; part of the cache key, one per feed shape.
const (
	routeDashboard = "student/dashboard"
	routeFollowing = "student/following"
	routeMyRSVPs   = "student/my-rsvps"
)

type FeedView struct {
	FeedType        string       `json:"feed_type"`
	Posts           []model.Post `json:"posts"`
	RSVPdPostIDs    []uint64     `json:"rsvpd_post_ids"`
	FollowedClubIDs []uint64     `json:"followed_club_ids"`
}

// normalize keeps the JSON arrays non-null for users with no activity.
func (v *FeedView) normalize() *FeedView {
	if v.Posts == nil {
		v.Posts = []model.Post{}
	}
	if v.RSVPdPostIDs == nil {
		v.RSVPdPostIDs = []uint64{}
	}
	if v.FollowedClubIDs == nil {
		v.FollowedClubIDs = []uint64{}
	}
	return v
}

type ClubDetailView struct {
	Club           model.Club   `json:"club"`
	Slug           string       `json:"slug"`
	IsFollowing    bool         `json:"is_following"`
	UpcomingEvents []model.Post `json:"upcoming_events"`
	FollowerCount  int64        `json:"follower_count"`
}

type EventDetailView struct {
	Post        model.Post `json:"post"`
	HasRSVP     bool       `json:"has_rsvp"`
	IsFollowing bool       `json:"is_following"`
	RSVPCount   int64      `json:"rsvp_count"`
}

type FeedService struct {
	posts     *mysql.PostRepository
	clubs     *mysql.ClubRepository
	rsvps     *mysql.RSVPRepository
	followers *mysql.FollowerRepository
	cache     FeedCache
	counts    RSVPCounts
}

func NewFeedService(posts *mysql.PostRepository, clubs *mysql.ClubRepository, rsvps *mysql.RSVPRepository, followers *mysql.FollowerRepository, cache FeedCache, counts RSVPCounts) *FeedService {
	return &FeedService{
		posts:     posts,
		clubs:     clubs,
		rsvps:     rsvps,
		followers: followers,
		cache:     cache,
		counts:    counts,
	}
}

// GlobalFeed shows every post from verified clubs, newest first.
func (s *FeedService) GlobalFeed(ctx context.Context, userID uint64) (*FeedView, error) {
	if view, ok := s.cached(ctx, routeDashboard, userID); ok {
		return view, nil
	}

	posts, err := s.posts.ListVerified()
	if err != nil {
		return nil, err
	}
	view, err := s.assemble(ctx, "global", userID, posts)
	if err != nil {
		return nil, err
	}
	s.store(ctx, routeDashboard, userID, view)
	return view, nil
}

// FollowingFeed shows posts from followed clubs, newest first. Verification
// is intentionally not filtered here.
func (s *FeedService) FollowingFeed(ctx context.Context, userID uint64) (*FeedView, error) {
	if view, ok := s.cached(ctx, routeFollowing, userID); ok {
		return view, nil
	}

	clubIDs, err := s.followers.ClubIDsForUser(userID)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.ListByClubs(clubIDs)
	if err != nil {
		return nil, err
	}
	view := &FeedView{
		FeedType:        "following",
		Posts:           posts,
		FollowedClubIDs: clubIDs,
	}
	if view.RSVPdPostIDs, err = s.rsvps.PostIDsForUser(userID); err != nil {
		return nil, err
	}
	view.normalize()
	s.store(ctx, routeFollowing, userID, view)
	return view, nil
}

// MySchedule lists the posts the user RSVP'd to, soonest event first.
func (s *FeedService) MySchedule(ctx context.Context, userID uint64) (*FeedView, error) {
	if view, ok := s.cached(ctx, routeMyRSVPs, userID); ok {
		return view, nil
	}

	posts, err := s.posts.ListRSVPed(userID)
	if err != nil {
		return nil, err
	}
	view, err := s.assemble(ctx, "schedule", userID, posts)
	if err != nil {
		return nil, err
	}
	s.store(ctx, routeMyRSVPs, userID, view)
	return view, nil
}

// ClubDetail resolves the slug back to the exact club name. Not cached so
// the follow button reflects a toggle immediately.
func (s *FeedService) ClubDetail(ctx context.Context, slug string, userID uint64) (*ClubDetailView, error) {
	club, err := s.clubs.FindByName(pkg.Unslugify(slug))
	if err != nil {
		return nil, notFound(err)
	}

	isFollowing, err := s.followers.Exists(userID, club.ID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.posts.ListUpcomingByClub(club.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	followerCount, err := s.followers.CountForClub(club.ID)
	if err != nil {
		return nil, err
	}

	return &ClubDetailView{
		Club:           *club,
		Slug:           pkg.Slugify(club.Name),
		IsFollowing:    isFollowing,
		UpcomingEvents: upcoming,
		FollowerCount:  followerCount,
	}, nil
}

func (s *FeedService) EventDetail(ctx context.Context, postID, userID uint64) (*EventDetailView, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, notFound(err)
	}

	hasRSVP, err := s.rsvps.Exists(userID, postID)
	if err != nil {
		return nil, err
	}
	isFollowing, err := s.followers.Exists(userID, post.ClubID)
	if err != nil {
		return nil, err
	}
	count, err := s.rsvpCount(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &EventDetailView{
		Post:        *post,
		HasRSVP:     hasRSVP,
		IsFollowing: isFollowing,
		RSVPCount:   count,
	}, nil
}

func (s *FeedService) BrowseClubs() ([]model.Club, error) {
	return s.clubs.List()
}

// MyClubs lists followed clubs that are verified; an unverified club stays
// hidden here even while followed.
func (s *FeedService) MyClubs(userID uint64) ([]model.Club, error) {
	return s.followers.ListFollowedVerified(userID)
}

func (s *FeedService) assemble(ctx context.Context, feedType string, userID uint64, posts []model.Post) (*FeedView, error) {
	rsvpd, err := s.rsvps.PostIDsForUser(userID)
	if err != nil {
		return nil, err
	}
	followed, err := s.followers.ClubIDsForUser(userID)
	if err != nil {
		return nil, err
	}
	view := &FeedView{
		FeedType:        feedType,
		Posts:           posts,
		RSVPdPostIDs:    rsvpd,
		FollowedClubIDs: followed,
	}
	return view.normalize(), nil
}

// rsvpCount reads through the count cache when one is wired.
func (s *FeedService) rsvpCount(ctx context.Context, postID uint64) (int64, error) {
	if s.counts != nil {
		if v, ok, err := s.counts.Get(ctx, postID); err == nil && ok {
			return v, nil
		}
	}
	count, err := s.rsvps.CountForPost(postID)
	if err != nil {
		return 0, err
	}
	if s.counts != nil {
		_ = s.counts.Set(ctx, postID, count)
	}
	return count, nil
}

func (s *FeedService) cached(ctx context.Context, route string, userID uint64) (*FeedView, bool) {
	if s.cache == nil {
		return nil, false
	}
	var view FeedView
	ok, err := s.cache.Get(ctx, route, userID, &view)
	if err != nil || !ok {
		return nil, false
	}
	return &view, true
}

func (s *FeedService) store(ctx context.Context, route string, userID uint64, view *FeedView) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, route, userID, view)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
