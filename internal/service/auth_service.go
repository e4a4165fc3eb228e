package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bobcathub/internal/model"
	"bobcathub/internal/pkg"
	"bobcathub/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
)

// Registration and login notices, kept as fixed strings so the rendering
// layer shows predictable messages.
const (
	MsgEmailRegistered     = "Email already registered"
	MsgInvalidRole         = "Invalid role selection"
	MsgInvalidAdminCode    = "Incorrect Admin Passcode. Permission denied."
	MsgInvalidCredentials  = "Invalid email or password"
	MsgRegistrationSuccess = "Registration successful! Please login."
	MsgLogoutSuccess       = "Logged out successfully"
)

// SessionStore is the login-token side of the redis session repository.
type SessionStore interface {
	Add(ctx context.Context, userID uint64, token string) error
	Delete(ctx context.Context, userID uint64) error
}

type AuthService struct {
	users    *mysql.UserRepository
	sessions SessionStore
	tokens   *pkg.TokenManager

	emailDomain string
	adminCodes  []string
}

func NewAuthService(users *mysql.UserRepository, sessions SessionStore, tokens *pkg.TokenManager, emailDomain string, adminCodes []string) *AuthService {
	return &AuthService{
		users:       users,
		sessions:    sessions,
		tokens:      tokens,
		emailDomain: emailDomain,
		adminCodes:  adminCodes,
	}
}

// Register validates in a fixed order so the first failure produces its
// specific notice: email domain, role, admin passcode, email uniqueness.
func (s *AuthService) Register(email, password, role, adminCode string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if !strings.HasSuffix(email, s.emailDomain) {
		return fmt.Errorf("Must use %s email", s.emailDomain)
	}

	parsedRole, err := model.ParseRole(role)
	if err != nil {
		return errors.New(MsgInvalidRole)
	}

	if parsedRole == model.RoleAdmin && !s.validAdminCode(adminCode) {
		return errors.New(MsgInvalidAdminCode)
	}

	exists, err := s.users.ExistsByEmail(email)
	if err != nil {
		return err
	}
	if exists {
		return errors.New(MsgEmailRegistered)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.Create(&model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         parsedRole,
	})
}

type LoginResult struct {
	Tokens   *pkg.Pair
	Role     model.Role
	Redirect string
}

// Login verifies credentials and establishes the session. next, when set,
// wins over the role dashboard so the client can return the user to the page
// that originally bounced them to login.
func (s *AuthService) Login(ctx context.Context, email, password, next string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, errors.New(MsgInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errors.New(MsgInvalidCredentials)
	}

	pair, err := s.tokens.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Add(ctx, user.ID, pair.AccessToken); err != nil {
		return nil, err
	}

	redirect := next
	if redirect == "" {
		redirect = DashboardPath(user.Role)
	}
	return &LoginResult{Tokens: pair, Role: user.Role, Redirect: redirect}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uint64) error {
	return s.sessions.Delete(ctx, userID)
}

// Refresh rotates the token pair and swaps the stored session token so the
// new access token is the one the middleware accepts.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*pkg.Pair, error) {
	pair, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := s.tokens.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Add(ctx, claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *AuthService) validAdminCode(code string) bool {
	for _, c := range s.adminCodes {
		if c == code {
			return true
		}
	}
	return false
}

// DashboardPath maps a role to its landing page.
func DashboardPath(role model.Role) string {
	switch role {
	case model.RoleStudent:
		return "/student/dashboard"
	case model.RoleClub:
		return "/club/dashboard"
	case model.RoleAdmin:
		return "/admin/dashboard"
	}
	return "/"
}
