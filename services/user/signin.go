package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tourdesk/config"
	"tourdesk/models"
	"tourdesk/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCompanyInactive    = errors.New("your company account is inactive, please contact the administrator")
)

// SessionTTL is how long a login cookie stays valid.
func SessionTTL() time.Duration {
	hours := config.AppConfig.JWTTTLHours
	if hours <= 0 {
		hours = 12
	}
	return time.Duration(hours) * time.Hour
}

func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()
	email = strings.ToLower(strings.TrimSpace(email))

	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := s.account(ctx, userRec)
	if err != nil {
		return nil, err
	}

	ttl := SessionTTL()
	token, err := utils.GenerateToken(userRec.ID, userRec.Role, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	logger.Info("User signed in", zap.String("userID", userRec.ID), zap.String("role", userRec.Role))
	return &AuthResponse{
		Token:     token,
		User:      userRec,
		Company:   account.Company,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

func (s *DefaultUserService) account(ctx context.Context, u *models.User) (*Account, error) {
	acc := &Account{User: u}
	if u.Role != utils.RoleCompany {
		return acc, nil
	}
	company, err := s.Companies.GetByUserID(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	if company == nil || !company.IsActive() {
		return nil, ErrCompanyInactive
	}
	acc.Company = company
	return acc, nil
}

func (s *DefaultUserService) LoadAccount(ctx context.Context, userID string) (*Account, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, utils.NewNotFoundError("User", userID)
	}
	return s.account(ctx, u)
}
