package tourpackage

import (
	"context"
	"mime/multipart"

	"tourdesk/models"
)

// DefaultPageSize is the number of packages per listing page.
const DefaultPageSize = 10

// PackageInput is the package form.
type PackageInput struct {
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Country     string   `json:"country" form:"country"`
	City        string   `json:"city" form:"city"`
	Currency    string   `json:"currency" form:"currency"`
	Price       float64  `json:"price" form:"price"`
	Itinerary   string   `json:"itinerary" form:"itinerary"`
	Excludes    string   `json:"excludes" form:"excludes"`
	Status      string   `json:"status" form:"status"`
	DriverIDs   []string `json:"driver_ids" form:"driver_ids"`
}

// Images carries the uploads attached to a package form.
type Images struct {
	Cover   *multipart.FileHeader
	Gallery []*multipart.FileHeader
}

// ListOptions filters a listing. A TravelDate hides packages fully booked on that date.
type ListOptions struct {
	Search     string
	TravelDate string
	Page       int
	PageSize   int
}

type TourPackageService interface {
	Create(ctx context.Context, companyID string, in PackageInput, images Images) (*models.TourPackage, error)
	// Update replaces the cover when one is uploaded, appends gallery images and
	// replaces the driver assignments.
	Update(ctx context.Context, companyID, id string, in PackageInput, images Images) (*models.TourPackage, error)
	Get(ctx context.Context, companyID, id string) (*models.TourPackageDetail, error)
	List(ctx context.Context, companyID string, opts ListOptions) (*models.PackagePage, error)
	// Active lists the company's bookable packages, newest first.
	Active(ctx context.Context, companyID string) ([]models.TourPackage, error)
	Delete(ctx context.Context, companyID, id string) error
	DeleteImage(ctx context.Context, companyID, imageID string) error

	PublicList(ctx context.Context, opts ListOptions) ([]models.TourPackage, error)
	PublicDetail(ctx context.Context, id string) (*models.TourPackageDetail, error)
}
