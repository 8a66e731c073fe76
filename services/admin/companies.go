package admin

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"tourdesk/models"
	"tourdesk/services/user"
	"tourdesk/utils"

	"go.uber.org/zap"
)

func (in *CompanyInput) normalize() {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.CountryCode = strings.TrimSpace(in.CountryCode)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	in.Country = strings.TrimSpace(in.Country)
	if in.Status == "" {
		in.Status = models.CompanyStatusActive
	}
}

func (in CompanyInput) validate() error {
	if in.CompanyName == "" {
		return utils.NewValidationError("company_name", "company name is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return utils.NewValidationError("email", "a valid email is required")
	}
	if in.Currency != "" && !utils.IsSupportedCurrency(in.Currency) {
		return utils.NewValidationError("currency", "unsupported currency")
	}
	if in.Status != models.CompanyStatusActive && in.Status != models.CompanyStatusInactive {
		return utils.NewValidationError("status", "status must be active or inactive")
	}
	return nil
}

// CreateCompany creates the company login with the temporary password, then
// the company, then queues the welcome email.
func (s *DefaultAdminService) CreateCompany(ctx context.Context, in CompanyInput) (*models.Company, error) {
	logger := utils.GetLogger()
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("The email has already been taken.")
	}

	hash, err := user.HashPassword(s.TempPassword)
	if err != nil {
		return nil, err
	}
	login := &models.User{Email: in.Email, PasswordHash: hash, Role: utils.RoleCompany}
	if err := s.Users.Create(ctx, login); err != nil {
		return nil, fmt.Errorf("failed to create company user: %w", err)
	}

	company := &models.Company{
		UserID:      login.ID,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		CountryCode: in.CountryCode,
		Phone:       in.Phone,
		Currency:    in.Currency,
		Country:     in.Country,
		Status:      in.Status,
	}
	if err := s.Companies.Create(ctx, company); err != nil {
		if delErr := s.Users.Delete(ctx, login.ID); delErr != nil {
			logger.Error("Failed to remove orphan company user", zap.String("userID", login.ID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	logger.Info("Company created", zap.String("companyID", company.ID), zap.String("email", company.Email))

	if s.Dispatcher != nil {
		err := s.Dispatcher.CompanyWelcome(ctx, models.CompanyWelcomePayload{
			CompanyName:  company.CompanyName,
			Email:        company.Email,
			TempPassword: s.TempPassword,
			LoginURL:     s.LoginURL,
		})
		if err != nil {
			logger.Warn("Failed to enqueue company welcome email", zap.String("companyID", company.ID), zap.Error(err))
		}
	}
	return company, nil
}

func (s *DefaultAdminService) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	c, err := s.Companies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if c == nil {
		return nil, utils.NewNotFoundError("Company", id)
	}
	return c, nil
}

func (s *DefaultAdminService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return s.Companies.List(ctx)
}

// UpdateCompany also moves the login email when it changes.
func (s *DefaultAdminService) UpdateCompany(ctx context.Context, id string, in CompanyInput) (*models.Company, error) {
	c, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	if in.Email != c.Email {
		taken, err := s.Users.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken != nil && taken.ID != c.UserID {
			return nil, utils.NewConflictError("The email has already been taken.")
		}
		login, err := s.Users.GetByID(ctx, c.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load company user: %w", err)
		}
		if login != nil {
			login.Email = in.Email
			if err := s.Users.Update(ctx, login); err != nil {
				return nil, fmt.Errorf("failed to update company user: %w", err)
			}
		}
	}

	c.CompanyName = in.CompanyName
	c.Email = in.Email
	c.CountryCode = in.CountryCode
	c.Phone = in.Phone
	c.Currency = in.Currency
	c.Country = in.Country
	c.Status = in.Status
	if err := s.Companies.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return c, nil
}

func (s *DefaultAdminService) DeleteCompany(ctx context.Context, id string) error {
	if _, err := s.GetCompany(ctx, id); err != nil {
		return err
	}
	return s.Companies.SoftDelete(ctx, id)
}

func (s *DefaultAdminService) UpdateProfile(ctx context.Context, companyID string, in ProfileInput) (*models.Company, error) {
	c, err := s.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return nil, utils.NewValidationError("company_name", "company name is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency != "" && !utils.IsSupportedCurrency(currency) {
		return nil, utils.NewValidationError("currency", "unsupported currency")
	}

	c.CompanyName = name
	c.CountryCode = strings.TrimSpace(in.CountryCode)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Currency = currency
	c.Country = strings.TrimSpace(in.Country)
	if in.Logo != "" {
		c.Logo = in.Logo
	}
	if err := s.Companies.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return c, nil
}

func (s *DefaultAdminService) Counts(ctx context.Context) (*Counts, error) {
	total, err := s.Companies.Count(ctx, "")
	if err != nil {
		return nil, err
	}
	active, err := s.Companies.Count(ctx, models.CompanyStatusActive)
	if err != nil {
		return nil, err
	}
	return &Counts{TotalCompanies: total, ActiveCompanies: active, InactiveCompanies: total - active}, nil
}
