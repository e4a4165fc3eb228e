package service

import (
	"errors"
	"time"

	"bobcathub/internal/model"
	"bobcathub/internal/repository/mysql"

	"gorm.io/gorm"
)

type ClubService struct {
	clubs *mysql.ClubRepository
	posts *mysql.PostRepository
}

func NewClubService(clubs *mysql.ClubRepository, posts *mysql.PostRepository) *ClubService {
	return &ClubService{clubs: clubs, posts: posts}
}

type ClubDashboardView struct {
	Club  model.Club   `json:"club"`
	Posts []model.Post `json:"posts"`
}

// Dashboard shows the club owned by this officer account.
func (s *ClubService) Dashboard(userID uint64) (*ClubDashboardView, error) {
	club, err := s.clubs.FindByOwner(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoClub
		}
		return nil, err
	}
	posts, err := s.posts.ListByClub(club.ID)
	if err != nil {
		return nil, err
	}
	return &ClubDashboardView{Club: *club, Posts: posts}, nil
}

type CreatePostInput struct {
	// ClubID is honored for admins only; officers always post to their own club.
	ClubID        uint64
	Caption       string
	ImageFile     string
	IsEvent       bool
	EventTitle    string
	EventDate     *time.Time
	EventLocation string
}

// CreatePost creates a social post or event on the caller's club. Officers
// may only write to the club they own.
func (s *ClubService) CreatePost(userID uint64, role model.Role, in CreatePostInput) (*model.Post, error) {
	var club *model.Club
	var err error
	if role == model.RoleAdmin && in.ClubID != 0 {
		club, err = s.clubs.FindByID(in.ClubID)
		if err != nil {
			return nil, notFound(err)
		}
	} else {
		club, err = s.clubs.FindByOwner(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoClub
			}
			return nil, err
		}
	}

	if in.IsEvent {
		if in.EventTitle == "" || in.EventDate == nil || in.EventLocation == "" {
			return nil, ErrMissingEventFields
		}
	}

	post := &model.Post{
		ClubID:        club.ID,
		Caption:       in.Caption,
		IsEvent:       in.IsEvent,
		EventTitle:    in.EventTitle,
		EventDate:     in.EventDate,
		EventLocation: in.EventLocation,
	}
	if in.ImageFile != "" {
		post.ImageFile = in.ImageFile
	} else {
		post.ImageFile = "default.jpg"
	}

	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}
