package user

import (
	"context"
	"fmt"
	"strings"

	"tourdesk/models"
	"tourdesk/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength applies to passwords chosen by users.
const MinPasswordLength = 8

func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *DefaultUserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return utils.NewNotFoundError("User", userID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return utils.NewValidationError("current_password", "current password is incorrect")
	}
	if len(next) < MinPasswordLength {
		return utils.NewValidationError("new_password", fmt.Sprintf("password must be at least %d characters long", MinPasswordLength))
	}
	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.Repo.Update(ctx, u)
}

func (s *DefaultUserService) BootstrapAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		utils.GetLogger().Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set; skipping admin bootstrap")
		return nil
	}
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		return nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, &models.User{Email: email, PasswordHash: hash, Role: utils.RoleAdmin}); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	utils.GetLogger().Info("Admin account created", zap.String("email", email))
	return nil
}
