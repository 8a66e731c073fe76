package companyRepo

import (
	"context"

	"tourdesk/models"
)

// CompanyRepository stores tenants. Soft-deleted companies are invisible to every lookup.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetByUserID(ctx context.Context, userID string) (*models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
	Count(ctx context.Context, status string) (int, error)
	SoftDelete(ctx context.Context, id string) error
}
