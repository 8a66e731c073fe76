package chatbot

import (
	"context"
	"strings"

	packageRepo "tourdesk/database/repository/tourpackage"
	"tourdesk/models"
)

// PackageCatalog finds packages a guest can afford in a city.
type PackageCatalog interface {
	FindPackages(ctx context.Context, city string, budget int) ([]models.PackageOption, error)
}

// RepoCatalog queries active, non-deleted packages. CompanyID narrows the
// search to one tenant; empty searches every company.
type RepoCatalog struct {
	Packages  packageRepo.TourPackageRepository
	CompanyID string
}

// FindPackages matches city case-insensitively; "all" matches every city.
func (c *RepoCatalog) FindPackages(ctx context.Context, city string, budget int) ([]models.PackageOption, error) {
	q := models.PackageQuery{
		CompanyID: c.CompanyID,
		Status:    models.PackageStatusActive,
		MaxPrice:  float64(budget),
	}
	city = strings.TrimSpace(city)
	if !strings.EqualFold(city, "all") {
		q.City = city
	}

	pkgs, _, err := c.Packages.List(ctx, q)
	if err != nil {
		return nil, err
	}
	options := make([]models.PackageOption, 0, len(pkgs))
	for _, p := range pkgs {
		options = append(options, models.PackageOption{ID: p.ID, Name: p.Title, Price: p.Price, Currency: p.Currency})
	}
	return options, nil
}
