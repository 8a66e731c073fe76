package customerRepo

import (
	"context"

	"tourdesk/models"
)

// CustomerRepository stores guests. Lookups skip soft-deleted rows.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.Customer, error)
	// FindByPhone looks up the customer identity key within a company.
	FindByPhone(ctx context.Context, companyID, countryCode, phone string) (*models.Customer, error)
	SoftDelete(ctx context.Context, id string) error
}
