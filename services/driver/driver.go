package driver

import (
	"context"
	"fmt"
	"strings"

	driverRepo "tourdesk/database/repository/driver"
	"tourdesk/models"
	"tourdesk/utils"
)

// DriverInput is the driver form. Image is the stored upload reference, if any.
type DriverInput struct {
	Name          string `json:"name" form:"name"`
	CountryCode   string `json:"country_code" form:"country_code"`
	PhoneNumber   string `json:"phone_number" form:"phone_number"`
	VehicleType   string `json:"vehicle_type" form:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number" form:"vehicle_number"`
	Seats         int    `json:"seats" form:"seats"`
	Image         string `json:"-" form:"-"`
}

func (in DriverInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return utils.NewValidationError("name", "driver name is required")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		return utils.NewValidationError("phone_number", "phone number is required")
	}
	if in.Seats < 0 {
		return utils.NewValidationError("seats", "seats cannot be negative")
	}
	return nil
}

type DriverService interface {
	Create(ctx context.Context, companyID string, in DriverInput) (*models.Driver, error)
	Update(ctx context.Context, companyID, id string, in DriverInput) (*models.Driver, error)
	Get(ctx context.Context, companyID, id string) (*models.Driver, error)
	List(ctx context.Context, companyID string) ([]models.Driver, error)
	Delete(ctx context.Context, companyID, id string) error
}

type DefaultDriverService struct {
	Repo driverRepo.DriverRepository
}

func NewDefaultDriverService(repo driverRepo.DriverRepository) *DefaultDriverService {
	return &DefaultDriverService{Repo: repo}
}

func (s *DefaultDriverService) Create(ctx context.Context, companyID string, in DriverInput) (*models.Driver, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	d := &models.Driver{CompanyID: companyID}
	apply(d, in)
	d.Image = in.Image
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	return d, nil
}

func apply(d *models.Driver, in DriverInput) {
	d.Name = strings.TrimSpace(in.Name)
	d.CountryCode = strings.TrimSpace(in.CountryCode)
	d.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	d.VehicleType = strings.TrimSpace(in.VehicleType)
	d.VehicleNumber = strings.ToUpper(strings.TrimSpace(in.VehicleNumber))
	d.Seats = in.Seats
}

// Update keeps the current image unless a new one was uploaded.
func (s *DefaultDriverService) Update(ctx context.Context, companyID, id string, in DriverInput) (*models.Driver, error) {
	d, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	apply(d, in)
	if in.Image != "" {
		d.Image = in.Image
	}
	if err := s.Repo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return d, nil
}

func (s *DefaultDriverService) Get(ctx context.Context, companyID, id string) (*models.Driver, error) {
	d, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	if d == nil || d.CompanyID != companyID {
		return nil, utils.NewNotFoundError("Driver", id)
	}
	return d, nil
}

func (s *DefaultDriverService) List(ctx context.Context, companyID string) ([]models.Driver, error) {
	return s.Repo.ListByCompany(ctx, companyID)
}

func (s *DefaultDriverService) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.Get(ctx, companyID, id); err != nil {
		return err
	}
	return s.Repo.SoftDelete(ctx, id)
}
