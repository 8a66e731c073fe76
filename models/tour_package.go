package models

import "time"

const (
	PackageStatusActive   = "active"
	PackageStatusInactive = "inactive"
)

const (
	ImageTypeCover   = "cover"
	ImageTypeGallery = "gallery"
)

// TourPackage is a bookable tour offered by one company.
type TourPackage struct {
	ID          string    `bson:"id" json:"id"`
	CompanyID   string    `bson:"company_id" json:"company_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Country     string    `bson:"country" json:"country"`
	City        string    `bson:"city" json:"city"`
	Currency    string    `bson:"currency" json:"currency"`
	Price       float64   `bson:"price" json:"price"`
	Itinerary   string    `bson:"itinerary" json:"itinerary"`
	Excludes    string    `bson:"excludes" json:"excludes"`
	Status      string    `bson:"status" json:"status"`
	IsDeleted   bool      `bson:"is_deleted" json:"is_deleted"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// IsBookable reports whether the package can be offered to guests.
func (p *TourPackage) IsBookable() bool {
	return p.Status == PackageStatusActive && !p.IsDeleted
}

// TourPackageImage is a cover or gallery picture owned by a package.
type TourPackageImage struct {
	ID        string    `bson:"id" json:"id"`
	PackageID string    `bson:"package_id" json:"package_id"`
	Path      string    `bson:"path" json:"path"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// TourPackageDriver assigns a driver to a package. The number of rows per
// package is the package's daily capacity.
type TourPackageDriver struct {
	ID        string    `bson:"id" json:"id"`
	PackageID string    `bson:"package_id" json:"package_id"`
	DriverID  string    `bson:"driver_id" json:"driver_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// TourPackageDetail bundles a package with its images and assigned drivers.
type TourPackageDetail struct {
	TourPackage
	CoverImage    *TourPackageImage  `json:"cover_image,omitempty"`
	GalleryImages []TourPackageImage `json:"gallery_images"`
	Drivers       []Driver           `json:"drivers"`
}

// PackageQuery filters package listings. Zero values are ignored.
type PackageQuery struct {
	CompanyID  string
	Search     string
	City       string
	Status     string
	MaxPrice   float64
	ExcludeIDs []string
	Page       int
	PageSize   int
}

// PackagePage is one page of a package listing.
type PackagePage struct {
	Items      []TourPackage `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}
