package admin

import (
	"context"

	companyRepo "tourdesk/database/repository/company"
	userRepo "tourdesk/database/repository/user"
	"tourdesk/models"
	"tourdesk/services/notification"
)

// CompanyInput is the admin company form.
type CompanyInput struct {
	CompanyName string `json:"company_name" form:"company_name"`
	Email       string `json:"email" form:"email"`
	CountryCode string `json:"country_code" form:"country_code"`
	Phone       string `json:"phone" form:"phone"`
	Currency    string `json:"currency" form:"currency"`
	Country     string `json:"country" form:"country"`
	Status      string `json:"status" form:"status"`
}

// ProfileInput is what a company may change about itself. Logo is an upload reference.
type ProfileInput struct {
	CompanyName string `json:"company_name" form:"company_name"`
	CountryCode string `json:"country_code" form:"country_code"`
	Phone       string `json:"phone" form:"phone"`
	Currency    string `json:"currency" form:"currency"`
	Country     string `json:"country" form:"country"`
	Logo        string `json:"-" form:"-"`
}

// Counts feeds the admin dashboard.
type Counts struct {
	TotalCompanies    int `json:"total_companies"`
	ActiveCompanies   int `json:"active_companies"`
	InactiveCompanies int `json:"inactive_companies"`
}

type AdminService interface {
	CreateCompany(ctx context.Context, in CompanyInput) (*models.Company, error)
	UpdateCompany(ctx context.Context, id string, in CompanyInput) (*models.Company, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, companyID string, in ProfileInput) (*models.Company, error)
	Counts(ctx context.Context) (*Counts, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users      userRepo.UserRepository
	Companies  companyRepo.CompanyRepository
	Dispatcher notification.Dispatcher
	// TempPassword is given to every new company login.
	TempPassword string
	LoginURL     string
}

func NewDefaultAdminService(
	users userRepo.UserRepository,
	companies companyRepo.CompanyRepository,
	dispatcher notification.Dispatcher,
	tempPassword, loginURL string,
) *DefaultAdminService {
	return &DefaultAdminService{
		Users:        users,
		Companies:    companies,
		Dispatcher:   dispatcher,
		TempPassword: tempPassword,
		LoginURL:     loginURL,
	}
}
