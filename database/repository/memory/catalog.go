package memoryRepo

import (
	"context"
	"sort"
	"strings"
	"time"

	"tourdesk/models"
	"tourdesk/utils"
)

type packageStore struct{ s *Store }

func (p packageStore) Create(_ context.Context, pkg *models.TourPackage) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	pkg.ID = newID(pkg.ID)
	pkg.CreatedAt = p.s.now()
	pkg.UpdatedAt = pkg.CreatedAt
	p.s.packages[pkg.ID] = *pkg
	return nil
}

func (p packageStore) Update(_ context.Context, pkg *models.TourPackage) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.packages[pkg.ID]; !ok {
		return utils.NewNotFoundError("Tour package", pkg.ID)
	}
	pkg.UpdatedAt = p.s.now()
	p.s.packages[pkg.ID] = *pkg
	return nil
}

func (p packageStore) GetByID(_ context.Context, id string) (*models.TourPackage, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	if pkg, ok := p.s.packages[id]; ok && !pkg.IsDeleted {
		return &pkg, nil
	}
	return nil, nil
}

func matchesPackage(pkg models.TourPackage, q models.PackageQuery, excluded map[string]bool) bool {
	switch {
	case pkg.IsDeleted:
		return false
	case q.CompanyID != "" && pkg.CompanyID != q.CompanyID:
		return false
	case q.Status != "" && pkg.Status != q.Status:
		return false
	case q.City != "" && !strings.EqualFold(pkg.City, q.City):
		return false
	case q.MaxPrice > 0 && pkg.Price > q.MaxPrice:
		return false
	case excluded[pkg.ID]:
		return false
	}
	if q.Search == "" {
		return true
	}
	return containsFold(pkg.Title, q.Search) || containsFold(pkg.City, q.Search) || containsFold(pkg.Country, q.Search)
}

func (p packageStore) List(_ context.Context, q models.PackageQuery) ([]models.TourPackage, int, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	excluded := make(map[string]bool, len(q.ExcludeIDs))
	for _, id := range q.ExcludeIDs {
		excluded[id] = true
	}
	matches := []models.TourPackage{}
	for _, pkg := range p.s.packages {
		if matchesPackage(pkg, q, excluded) {
			matches = append(matches, pkg)
		}
	}
	sortNewestFirst(matches, func(p models.TourPackage) time.Time { return p.CreatedAt })

	total := len(matches)
	if q.PageSize <= 0 {
		return matches, total, nil
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * q.PageSize
	if start >= total {
		return []models.TourPackage{}, total, nil
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return matches[start:end], total, nil
}

func (p packageStore) SoftDelete(_ context.Context, id string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	pkg, ok := p.s.packages[id]
	if !ok || pkg.IsDeleted {
		return utils.NewNotFoundError("Tour package", id)
	}
	pkg.IsDeleted = true
	pkg.UpdatedAt = p.s.now()
	p.s.packages[id] = pkg
	return nil
}

func (p packageStore) AddImage(_ context.Context, img *models.TourPackageImage) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	img.ID = newID(img.ID)
	img.CreatedAt = p.s.now()
	p.s.images[img.ID] = *img
	return nil
}

func (p packageStore) GetImage(_ context.Context, id string) (*models.TourPackageImage, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	if img, ok := p.s.images[id]; ok {
		return &img, nil
	}
	return nil, nil
}

func (p packageStore) ListImages(_ context.Context, packageID string) ([]models.TourPackageImage, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := []models.TourPackageImage{}
	for _, img := range p.s.images {
		if img.PackageID == packageID {
			out = append(out, img)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (p packageStore) DeleteImage(_ context.Context, id string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.images[id]; !ok {
		return utils.NewNotFoundError("Image", id)
	}
	delete(p.s.images, id)
	return nil
}

func (p packageStore) SetDrivers(_ context.Context, packageID string, driverIDs []string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	seen := map[string]bool{}
	ids := []string{}
	for _, id := range driverIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	p.s.packageDrivers[packageID] = ids
	return nil
}

func (p packageStore) ListDriverIDs(_ context.Context, packageID string) ([]string, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	return append([]string{}, p.s.packageDrivers[packageID]...), nil
}

func (p packageStore) CountDrivers(_ context.Context, packageID string) (int, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	return len(p.s.packageDrivers[packageID]), nil
}

type driverStore struct{ s *Store }

func (d driverStore) Create(_ context.Context, driver *models.Driver) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	driver.ID = newID(driver.ID)
	driver.CreatedAt = d.s.now()
	driver.UpdatedAt = driver.CreatedAt
	d.s.drivers[driver.ID] = *driver
	return nil
}

func (d driverStore) Update(_ context.Context, driver *models.Driver) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	if _, ok := d.s.drivers[driver.ID]; !ok {
		return utils.NewNotFoundError("Driver", driver.ID)
	}
	driver.UpdatedAt = d.s.now()
	d.s.drivers[driver.ID] = *driver
	return nil
}

func (d driverStore) GetByID(_ context.Context, id string) (*models.Driver, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	if driver, ok := d.s.drivers[id]; ok && !driver.IsDeleted {
		return &driver, nil
	}
	return nil, nil
}

func (d driverStore) filter(keep func(models.Driver) bool) []models.Driver {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	out := []models.Driver{}
	for _, driver := range d.s.drivers {
		if !driver.IsDeleted && keep(driver) {
			out = append(out, driver)
		}
	}
	sortNewestFirst(out, func(d models.Driver) time.Time { return d.CreatedAt })
	return out
}

func (d driverStore) ListByCompany(_ context.Context, companyID string) ([]models.Driver, error) {
	return d.filter(func(dr models.Driver) bool { return dr.CompanyID == companyID }), nil
}

func (d driverStore) ListByIDs(_ context.Context, ids []string) ([]models.Driver, error) {
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	return d.filter(func(dr models.Driver) bool { return wanted[dr.ID] }), nil
}

func (d driverStore) SoftDelete(_ context.Context, id string) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	driver, ok := d.s.drivers[id]
	if !ok || driver.IsDeleted {
		return utils.NewNotFoundError("Driver", id)
	}
	driver.IsDeleted = true
	driver.UpdatedAt = d.s.now()
	d.s.drivers[id] = driver
	return nil
}
