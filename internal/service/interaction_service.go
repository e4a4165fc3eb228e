package service

import (
	"context"
	"fmt"

	"bobcathub/internal/repository/mysql"
)

type InteractionService struct {
	posts     *mysql.PostRepository
	clubs     *mysql.ClubRepository
	rsvps     *mysql.RSVPRepository
	followers *mysql.FollowerRepository
	counts    RSVPCounts
}

func NewInteractionService(posts *mysql.PostRepository, clubs *mysql.ClubRepository, rsvps *mysql.RSVPRepository, followers *mysql.FollowerRepository, counts RSVPCounts) *InteractionService {
	return &InteractionService{
		posts:     posts,
		clubs:     clubs,
		rsvps:     rsvps,
		followers: followers,
		counts:    counts,
	}
}

// ToggleRSVP subscribes or unsubscribes the user to an event post. Non-event
// posts are rejected with no state change.
func (s *InteractionService) ToggleRSVP(ctx context.Context, userID, postID uint64) (bool, string, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return false, "", notFound(err)
	}
	if !post.IsEvent {
		return false, "", ErrNotEvent
	}

	attending, err := s.rsvps.Toggle(ctx, userID, postID)
	if err != nil {
		return false, "", err
	}
	if s.counts != nil {
		_ = s.counts.Delete(ctx, postID)
	}

	if attending {
		return true, "RSVP confirmed!", nil
	}
	return false, "RSVP removed", nil
}

// ToggleFollow subscribes or unsubscribes the user to a club.
func (s *InteractionService) ToggleFollow(ctx context.Context, userID, clubID uint64) (bool, string, error) {
	club, err := s.clubs.FindByID(clubID)
	if err != nil {
		return false, "", notFound(err)
	}

	following, err := s.followers.Toggle(ctx, userID, clubID)
	if err != nil {
		return false, "", err
	}

	if following {
		return true, fmt.Sprintf("Now following %s!", club.Name), nil
	}
	return false, fmt.Sprintf("Unfollowed %s", club.Name), nil
}
