package packageRepo

import (
	"context"

	"tourdesk/models"
)

// TourPackageRepository stores packages together with their images and driver assignments.
type TourPackageRepository interface {
	Create(ctx context.Context, pkg *models.TourPackage) error
	Update(ctx context.Context, pkg *models.TourPackage) error
	// GetByID returns (nil, nil) for missing or soft-deleted packages.
	GetByID(ctx context.Context, id string) (*models.TourPackage, error)
	// List returns the requested page and the total number of matches.
	// A zero PageSize returns every match.
	List(ctx context.Context, q models.PackageQuery) ([]models.TourPackage, int, error)
	SoftDelete(ctx context.Context, id string) error

	AddImage(ctx context.Context, img *models.TourPackageImage) error
	GetImage(ctx context.Context, id string) (*models.TourPackageImage, error)
	ListImages(ctx context.Context, packageID string) ([]models.TourPackageImage, error)
	DeleteImage(ctx context.Context, id string) error

	// SetDrivers replaces the package's driver assignments.
	SetDrivers(ctx context.Context, packageID string, driverIDs []string) error
	ListDriverIDs(ctx context.Context, packageID string) ([]string, error)
	CountDrivers(ctx context.Context, packageID string) (int, error)
}
