package user

import (
	"context"

	companyRepo "tourdesk/database/repository/company"
	userRepo "tourdesk/database/repository/user"
	"tourdesk/models"
)

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token     string          `json:"token"`
	User      *models.User    `json:"user"`
	Company   *models.Company `json:"company,omitempty"`
	ExpiresIn int64           `json:"expires_in"`
}

// Account is the signed-in principal loaded for every authenticated request.
type Account struct {
	User    *models.User
	Company *models.Company
}

type UserService interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	// LoadAccount resolves token claims to a live account. Company logins need an active company.
	LoadAccount(ctx context.Context, userID string) (*Account, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
	// BootstrapAdmin creates the admin login when it does not exist yet.
	BootstrapAdmin(ctx context.Context, email, password string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Companies companyRepo.CompanyRepository
}

func NewDefaultUserService(repo userRepo.UserRepository, companies companyRepo.CompanyRepository) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Companies: companies}
}
