package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campaign-tracker/backend/internal/apperr"
	"github.com/campaign-tracker/backend/internal/auth"
	"github.com/campaign-tracker/backend/internal/models"
	"github.com/campaign-tracker/backend/internal/repositories"
)

const minPasswordLen = 6

type AuthService struct {
	users *repositories.UserRepo
	log   *zap.Logger
}

func NewAuthService(users *repositories.UserRepo, log *zap.Logger) *AuthService {
	return &AuthService{users: users, log: log}
}

// Register creates a new account. Email uniqueness is checked by linear scan
// over the stored collection.
func (s *AuthService) Register(email, password, name string) error {
	for _, f := range []struct{ name, value string }{
		{"email", email},
		{"password", password},
		{"name", name},
	} {
		if f.value == "" {
			return apperr.Validation("Missing required field: " + f.name)
		}
	}

	if !strings.Contains(email, "@") {
		return apperr.Validation("Invalid email format")
	}
	if len(password) < minPasswordLen {
		return apperr.Validation("Password must be at least 6 characters long")
	}

	users, err := s.users.Load()
	if err != nil {
		return err
	}

	if s.users.FindByEmail(users, email) != nil {
		return apperr.Duplicate("User already exists")
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  auth.HashPassword(password),
		Name:      name,
		CreatedAt: time.Now(),
	}
	users = append(users, user)

	if err := s.users.Save(users); err != nil {
		return err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID))
	return nil
}

// Authenticate verifies credentials and returns the matched user. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("Email and password are required")
	}

	users, err := s.users.Load()
	if err != nil {
		return nil, err
	}

	user := s.users.FindByEmail(users, email)
	if user == nil || !auth.VerifyPassword(password, user.Password) {
		return nil, apperr.Authentication("Invalid email or password")
	}

	u := *user
	return &u, nil
}

// RequestReset issues a reset token valid for one hour and stores it on the
// user record. The token is returned to the caller directly; there is no
// email transport.
func (s *AuthService) RequestReset(email string) (string, error) {
	if email == "" {
		return "", apperr.Validation("Email is required")
	}

	users, err := s.users.Load()
	if err != nil {
		return "", err
	}

	user := s.users.FindByEmail(users, email)
	if user == nil {
		return "", apperr.NotFound("User not found")
	}

	token, err := auth.NewResetToken()
	if err != nil {
		return "", err
	}
	user.ResetToken = token
	user.ResetTokenExpires = time.Now().Unix() + auth.ResetTokenTTLSeconds

	if err := s.users.Save(users); err != nil {
		return "", err
	}

	s.log.Info("reset token issued", zap.String("user_id", user.ID))
	return token, nil
}

// ResetWithToken consumes a reset token and replaces the password digest.
// Expired tokens are rejected here but never purged from storage.
func (s *AuthService) ResetWithToken(token, newPassword string) error {
	if token == "" {
		return apperr.Validation("Missing required field: token")
	}
	if newPassword == "" {
		return apperr.Validation("Missing required field: new_password")
	}
	if len(newPassword) < minPasswordLen {
		return apperr.Validation("Password must be at least 6 characters long")
	}

	users, err := s.users.Load()
	if err != nil {
		return err
	}

	user := s.users.FindByResetToken(users, token)
	if user == nil {
		return apperr.Validation("Invalid reset token")
	}
	if time.Now().Unix() > user.ResetTokenExpires {
		return apperr.Validation("Reset token has expired")
	}

	user.Password = auth.HashPassword(newPassword)
	user.ResetToken = ""
	user.ResetTokenExpires = 0

	if err := s.users.Save(users); err != nil {
		return err
	}

	s.log.Info("password reset", zap.String("user_id", user.ID))
	return nil
}

// ChangePassword replaces the digest for a logged-in user after verifying
// the current password.
func (s *AuthService) ChangePassword(email, currentPassword, newPassword string) error {
	if currentPassword == "" {
		return apperr.Validation("Missing required field: current_password")
	}
	if newPassword == "" {
		return apperr.Validation("Missing required field: new_password")
	}
	if len(newPassword) < minPasswordLen {
		return apperr.Validation("New password must be at least 6 characters long")
	}

	users, err := s.users.Load()
	if err != nil {
		return err
	}

	user := s.users.FindByEmail(users, email)
	if user == nil || !auth.VerifyPassword(currentPassword, user.Password) {
		return apperr.Authentication("Current password is incorrect")
	}

	user.Password = auth.HashPassword(newPassword)
	return s.users.Save(users)
}
