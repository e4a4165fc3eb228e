package service

import (
	"context"
	"log"

	"bobcathub/internal/model"
	"bobcathub/internal/pkg"
	"bobcathub/internal/repository/mysql"
)

type AdminService struct {
	users  *mysql.UserRepository
	clubs  *mysql.ClubRepository
	outbox *mysql.OutboxRepository
	smtp   pkg.SMTPConfig
}

func NewAdminService(users *mysql.UserRepository, clubs *mysql.ClubRepository, outbox *mysql.OutboxRepository, smtp pkg.SMTPConfig) *AdminService {
	return &AdminService{users: users, clubs: clubs, outbox: outbox, smtp: smtp}
}

type AdminDashboardView struct {
	TotalUsers   int64        `json:"total_users"`
	TotalClubs   int64        `json:"total_clubs"`
	PendingClubs []model.Club `json:"pending_clubs"`
}

func (s *AdminService) Dashboard() (*AdminDashboardView, error) {
	totalUsers, err := s.users.Count()
	if err != nil {
		return nil, err
	}
	totalClubs, err := s.clubs.Count()
	if err != nil {
		return nil, err
	}
	pending, err := s.clubs.ListPending()
	if err != nil {
		return nil, err
	}
	return &AdminDashboardView{
		TotalUsers:   totalUsers,
		TotalClubs:   totalClubs,
		PendingClubs: pending,
	}, nil
}

// VerifyClub marks the club verified. The outbox event and the owner email
// are best-effort: a failure there is logged, never surfaced to the admin.
func (s *AdminService) VerifyClub(ctx context.Context, adminID, clubID uint64) (*model.Club, error) {
	club, err := s.clubs.Verify(ctx, clubID)
	if err != nil {
		return nil, notFound(err)
	}

	if err := s.outbox.InsertVerified(ctx, adminID, club.ID); err != nil {
		log.Printf("outbox insert for club %d: %v", club.ID, err)
	}
	s.notifyOwner(club)
	return club, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id uint64) error {
	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) DeleteClub(ctx context.Context, id uint64) error {
	affected, err := s.clubs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) notifyOwner(club *model.Club) {
	if !s.smtp.Enabled() || club.OwnerID == nil {
		return
	}
	owner, err := s.users.FindByID(*club.OwnerID)
	if err != nil {
		log.Printf("verified notice: owner %d lookup: %v", *club.OwnerID, err)
		return
	}
	html := pkg.VerifiedNoticeHTML(club.Name)
	if err := pkg.SendEmail(s.smtp, owner.Email, "Your club has been verified", html); err != nil {
		log.Printf("verified notice to %s: %v", owner.Email, err)
	}
}
