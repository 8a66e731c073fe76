package driverRepo

import (
	"context"

	"tourdesk/models"
)

// DriverRepository stores drivers. Soft-deleted drivers are excluded from reads.
type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	Update(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id string) (*models.Driver, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.Driver, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Driver, error)
	SoftDelete(ctx context.Context, id string) error
}
