package tourpackage

import (
	"context"
	"fmt"
	"strings"

	driverRepo "tourdesk/database/repository/driver"
	packageRepo "tourdesk/database/repository/tourpackage"
	"tourdesk/models"
	"tourdesk/services/availability"
	"tourdesk/services/storage"
	"tourdesk/utils"

	"go.uber.org/zap"
)

const uploadFolder = "tour_packages"

type DefaultTourPackageService struct {
	Packages     packageRepo.TourPackageRepository
	Drivers      driverRepo.DriverRepository
	Availability availability.AvailabilityService
	Uploader     storage.Uploader
}

func NewDefaultTourPackageService(
	packages packageRepo.TourPackageRepository,
	drivers driverRepo.DriverRepository,
	avail availability.AvailabilityService,
	uploader storage.Uploader,
) *DefaultTourPackageService {
	return &DefaultTourPackageService{Packages: packages, Drivers: drivers, Availability: avail, Uploader: uploader}
}

func (in PackageInput) validate() error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return utils.NewValidationError("title", "title is required")
	case strings.TrimSpace(in.City) == "":
		return utils.NewValidationError("city", "city is required")
	case strings.TrimSpace(in.Country) == "":
		return utils.NewValidationError("country", "country is required")
	case in.Price < 0:
		return utils.NewValidationError("price", "price cannot be negative")
	case in.Currency != "" && !utils.IsSupportedCurrency(in.Currency):
		return utils.NewValidationError("currency", "unsupported currency")
	case in.Status != "" && in.Status != models.PackageStatusActive && in.Status != models.PackageStatusInactive:
		return utils.NewValidationError("status", "status must be active or inactive")
	}
	return nil
}

func apply(p *models.TourPackage, in PackageInput) {
	p.Title = strings.TrimSpace(in.Title)
	p.Description = strings.TrimSpace(in.Description)
	p.Country = strings.TrimSpace(in.Country)
	p.City = strings.TrimSpace(in.City)
	p.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	p.Price = utils.RoundMoney(in.Price)
	p.Itinerary = in.Itinerary
	p.Excludes = in.Excludes
	p.Status = in.Status
	if p.Status == "" {
		p.Status = models.PackageStatusActive
	}
}

// companyDrivers drops blank ids and rejects drivers of other companies.
func (s *DefaultTourPackageService) companyDrivers(ctx context.Context, companyID string, ids []string) ([]string, error) {
	seen := map[string]bool{}
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		clean = append(clean, id)
	}
	if len(clean) == 0 {
		return clean, nil
	}
	drivers, err := s.Drivers.ListByIDs(ctx, clean)
	if err != nil {
		return nil, fmt.Errorf("failed to load drivers: %w", err)
	}
	owned := map[string]bool{}
	for _, d := range drivers {
		if d.CompanyID == companyID {
			owned[d.ID] = true
		}
	}
	for _, id := range clean {
		if !owned[id] {
			return nil, utils.NewNotFoundError("Driver", id)
		}
	}
	return clean, nil
}

func (s *DefaultTourPackageService) Create(ctx context.Context, companyID string, in PackageInput, images Images) (*models.TourPackage, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if images.Cover == nil {
		return nil, utils.NewValidationError("cover_image", "cover image is required")
	}
	driverIDs, err := s.companyDrivers(ctx, companyID, in.DriverIDs)
	if err != nil {
		return nil, err
	}

	p := &models.TourPackage{CompanyID: companyID}
	apply(p, in)
	if err := s.Packages.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create tour package: %w", err)
	}
	if err := s.storeImages(ctx, p.ID, images); err != nil {
		return nil, err
	}
	if err := s.Packages.SetDrivers(ctx, p.ID, driverIDs); err != nil {
		return nil, fmt.Errorf("failed to assign drivers: %w", err)
	}
	utils.GetLogger().Info("Tour package created",
		zap.String("packageID", p.ID),
		zap.String("companyID", companyID),
		zap.Int("drivers", len(driverIDs)))
	return p, nil
}

// storeImages uploads the cover (replacing an existing one) and appends gallery images.
func (s *DefaultTourPackageService) storeImages(ctx context.Context, packageID string, images Images) error {
	if images.Cover != nil {
		if err := storage.ValidateImage(images.Cover); err != nil {
			return utils.NewValidationError("cover_image", err.Error())
		}
		existing, err := s.Packages.ListImages(ctx, packageID)
		if err != nil {
			return fmt.Errorf("failed to list images: %w", err)
		}
		for _, img := range existing {
			if img.Type != models.ImageTypeCover {
				continue
			}
			if err := s.Packages.DeleteImage(ctx, img.ID); err != nil {
				return fmt.Errorf("failed to replace cover: %w", err)
			}
			if err := s.Uploader.Delete(ctx, img.Path); err != nil {
				utils.GetLogger().Warn("Failed to remove old cover file", zap.String("path", img.Path), zap.Error(err))
			}
		}
		if err := s.addImage(ctx, packageID, images.Cover, models.ImageTypeCover); err != nil {
			return err
		}
	}

	for _, fh := range images.Gallery {
		if fh == nil || storage.ValidateImage(fh) != nil {
			continue
		}
		if err := s.addImage(ctx, packageID, fh, models.ImageTypeGallery); err != nil {
			return err
		}
	}
	return nil
}

func (s *DefaultTourPackageService) Update(ctx context.Context, companyID, id string, in PackageInput, images Images) (*models.TourPackage, error) {
	p, err := s.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	driverIDs, err := s.companyDrivers(ctx, companyID, in.DriverIDs)
	if err != nil {
		return nil, err
	}

	apply(p, in)
	if err := s.Packages.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update tour package: %w", err)
	}
	if err := s.storeImages(ctx, p.ID, images); err != nil {
		return nil, err
	}
	if err := s.Packages.SetDrivers(ctx, p.ID, driverIDs); err != nil {
		return nil, fmt.Errorf("failed to assign drivers: %w", err)
	}
	return p, nil
}

func (s *DefaultTourPackageService) owned(ctx context.Context, companyID, id string) (*models.TourPackage, error) {
	p, err := s.Packages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour package: %w", err)
	}
	if p == nil || p.CompanyID != companyID {
		return nil, utils.NewNotFoundError("Tour package", id)
	}
	return p, nil
}

func (s *DefaultTourPackageService) detail(ctx context.Context, p *models.TourPackage) (*models.TourPackageDetail, error) {
	out := &models.TourPackageDetail{TourPackage: *p, GalleryImages: []models.TourPackageImage{}, Drivers: []models.Driver{}}

	images, err := s.Packages.ListImages(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	for i := range images {
		if images[i].Type == models.ImageTypeCover {
			cover := images[i]
			out.CoverImage = &cover
			continue
		}
		out.GalleryImages = append(out.GalleryImages, images[i])
	}

	ids, err := s.Packages.ListDriverIDs(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list package drivers: %w", err)
	}
	if len(ids) > 0 {
		drivers, err := s.Drivers.ListByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load drivers: %w", err)
		}
		out.Drivers = drivers
	}
	return out, nil
}

func (s *DefaultTourPackageService) Get(ctx context.Context, companyID, id string) (*models.TourPackageDetail, error) {
	p, err := s.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, p)
}

func (s *DefaultTourPackageService) query(ctx context.Context, companyID string, opts ListOptions) (models.PackageQuery, error) {
	q := models.PackageQuery{
		CompanyID: companyID,
		Search:    strings.TrimSpace(opts.Search),
		Page:      opts.Page,
		PageSize:  opts.PageSize,
	}
	if opts.TravelDate != "" {
		blocked, err := s.Availability.BlockedPackageIDs(ctx, companyID, opts.TravelDate)
		if err != nil {
			return q, err
		}
		q.ExcludeIDs = blocked
	}
	return q, nil
}

func (s *DefaultTourPackageService) List(ctx context.Context, companyID string, opts ListOptions) (*models.PackagePage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	q, err := s.query(ctx, companyID, opts)
	if err != nil {
		return nil, err
	}
	items, total, err := s.Packages.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list tour packages: %w", err)
	}
	return &models.PackagePage{
		Items:      items,
		Total:      total,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: (total + opts.PageSize - 1) / opts.PageSize,
	}, nil
}

func (s *DefaultTourPackageService) Active(ctx context.Context, companyID string) ([]models.TourPackage, error) {
	items, _, err := s.Packages.List(ctx, models.PackageQuery{CompanyID: companyID, Status: models.PackageStatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list tour packages: %w", err)
	}
	return items, nil
}

func (s *DefaultTourPackageService) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.owned(ctx, companyID, id); err != nil {
		return err
	}
	return s.Packages.SoftDelete(ctx, id)
}

func (s *DefaultTourPackageService) DeleteImage(ctx context.Context, companyID, imageID string) error {
	img, err := s.Packages.GetImage(ctx, imageID)
	if err != nil {
		return fmt.Errorf("failed to get image: %w", err)
	}
	if img == nil {
		return utils.NewNotFoundError("Image", imageID)
	}
	if _, err := s.owned(ctx, companyID, img.PackageID); err != nil {
		return utils.NewNotFoundError("Image", imageID)
	}
	if err := s.Packages.DeleteImage(ctx, imageID); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if err := s.Uploader.Delete(ctx, img.Path); err != nil {
		utils.GetLogger().Warn("Failed to remove image file", zap.String("path", img.Path), zap.Error(err))
	}
	return nil
}

func (s *DefaultTourPackageService) PublicList(ctx context.Context, opts ListOptions) ([]models.TourPackage, error) {
	q, err := s.query(ctx, "", ListOptions{Search: opts.Search, TravelDate: opts.TravelDate})
	if err != nil {
		return nil, err
	}
	q.Status = models.PackageStatusActive
	items, _, err := s.Packages.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list tour packages: %w", err)
	}
	return items, nil
}

func (s *DefaultTourPackageService) PublicDetail(ctx context.Context, id string) (*models.TourPackageDetail, error) {
	p, err := s.Packages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour package: %w", err)
	}
	if p == nil || !p.IsBookable() {
		return nil, utils.NewNotFoundError("Tour", id)
	}
	return s.detail(ctx, p)
}
