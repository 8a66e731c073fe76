package customer

import (
	"context"
	"fmt"
	"strings"

	customerRepo "tourdesk/database/repository/customer"
	"tourdesk/models"
	"tourdesk/utils"

	"go.uber.org/zap"
)

// CustomerInput is the guest identity captured by customer and booking forms.
type CustomerInput struct {
	GuestName   string `json:"guest_name" form:"guest_name"`
	CountryCode string `json:"country_code" form:"country_code"`
	Phone       string `json:"phone" form:"phone"`
	Email       string `json:"email" form:"email"`
}

func (in *CustomerInput) normalize() {
	in.GuestName = strings.TrimSpace(in.GuestName)
	in.CountryCode = strings.TrimSpace(in.CountryCode)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in CustomerInput) validate() error {
	if in.GuestName == "" {
		return utils.NewValidationError("guest_name", "guest name is required")
	}
	if in.Phone == "" {
		return utils.NewValidationError("phone", "phone is required")
	}
	if in.CountryCode == "" {
		return utils.NewValidationError("country_code", "country code is required")
	}
	return nil
}

type CustomerService interface {
	// Create reuses a non-deleted customer with the same (company, country code, phone).
	Create(ctx context.Context, companyID string, in CustomerInput) (*models.Customer, bool, error)
	// Resolve is Create for booking flows: it also refreshes the stored name and email.
	Resolve(ctx context.Context, companyID string, in CustomerInput) (*models.Customer, error)
	Get(ctx context.Context, companyID, id string) (*models.Customer, error)
	List(ctx context.Context, companyID string) ([]models.Customer, error)
	Update(ctx context.Context, companyID, id string, in CustomerInput) (*models.Customer, error)
	Delete(ctx context.Context, companyID, id string) error
}

type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

func NewDefaultCustomerService(repo customerRepo.CustomerRepository) *DefaultCustomerService {
	return &DefaultCustomerService{Repo: repo}
}

func (s *DefaultCustomerService) Create(ctx context.Context, companyID string, in CustomerInput) (*models.Customer, bool, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.Repo.FindByPhone(ctx, companyID, in.CountryCode, in.Phone)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up customer: %w", err)
	}
	if existing != nil {
		utils.GetLogger().Debug("Reusing existing customer",
			zap.String("companyID", companyID),
			zap.String("customerID", existing.ID))
		return existing, false, nil
	}

	c := &models.Customer{
		CompanyID:   companyID,
		GuestName:   in.GuestName,
		CountryCode: in.CountryCode,
		Phone:       in.Phone,
		Email:       in.Email,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, false, fmt.Errorf("failed to create customer: %w", err)
	}
	return c, true, nil
}

func (s *DefaultCustomerService) Resolve(ctx context.Context, companyID string, in CustomerInput) (*models.Customer, error) {
	c, created, err := s.Create(ctx, companyID, in)
	if err != nil || created {
		return c, err
	}

	in.normalize()
	if c.GuestName == in.GuestName && (in.Email == "" || c.Email == in.Email) {
		return c, nil
	}
	c.GuestName = in.GuestName
	if in.Email != "" {
		c.Email = in.Email
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return c, nil
}

func (s *DefaultCustomerService) Get(ctx context.Context, companyID, id string) (*models.Customer, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if c == nil || c.CompanyID != companyID {
		return nil, utils.NewNotFoundError("Customer", id)
	}
	return c, nil
}

func (s *DefaultCustomerService) List(ctx context.Context, companyID string) ([]models.Customer, error) {
	return s.Repo.ListByCompany(ctx, companyID)
}

func (s *DefaultCustomerService) Update(ctx context.Context, companyID, id string, in CustomerInput) (*models.Customer, error) {
	c, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	if in.CountryCode != c.CountryCode || in.Phone != c.Phone {
		other, err := s.Repo.FindByPhone(ctx, companyID, in.CountryCode, in.Phone)
		if err != nil {
			return nil, fmt.Errorf("failed to look up customer: %w", err)
		}
		if other != nil && other.ID != c.ID {
			return nil, utils.NewConflictError("Another customer already uses this phone number")
		}
	}

	c.GuestName = in.GuestName
	c.CountryCode = in.CountryCode
	c.Phone = in.Phone
	c.Email = in.Email
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return c, nil
}

func (s *DefaultCustomerService) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.Get(ctx, companyID, id); err != nil {
		return err
	}
	return s.Repo.SoftDelete(ctx, id)
}
