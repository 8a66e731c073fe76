package availability

import (
	"context"
	"fmt"
	"sort"

	bookingRepo "tourdesk/database/repository/booking"
	driverRepo "tourdesk/database/repository/driver"
	packageRepo "tourdesk/database/repository/tourpackage"
	"tourdesk/models"
)

// AvailabilityService answers capacity and driver-conflict questions from
// current repository state. Nothing is cached and nothing is locked.
type AvailabilityService interface {
	// Capacity computes remaining capacity for a package on a date. A non-empty
	// excludeBookingID is left out of the count.
	Capacity(ctx context.Context, packageID, date, excludeBookingID string) (*models.DateCapacity, error)
	// PackageAvailability lists per-date booking counts for a package.
	PackageAvailability(ctx context.Context, packageID string) (*models.PackageAvailability, error)
	// DriverAvailable reports whether no other non-deleted booking holds the driver on date.
	DriverAvailable(ctx context.Context, driverID, date, excludeBookingID string) (bool, error)
	// AvailableDrivers returns the package's drivers not yet booked on date.
	AvailableDrivers(ctx context.Context, packageID, date string) ([]models.Driver, error)
	// BlockedPackageIDs returns packages with no remaining capacity on date.
	BlockedPackageIDs(ctx context.Context, companyID, date string) ([]string, error)
}

type DefaultAvailabilityService struct {
	Packages packageRepo.TourPackageRepository
	Bookings bookingRepo.BookingRepository
	Drivers  driverRepo.DriverRepository
}

func NewDefaultAvailabilityService(
	packages packageRepo.TourPackageRepository,
	bookings bookingRepo.BookingRepository,
	drivers driverRepo.DriverRepository,
) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Packages: packages, Bookings: bookings, Drivers: drivers}
}

// RemainingCapacity is max(totalDrivers - booked, 0).
func RemainingCapacity(totalDrivers, booked int) int {
	if booked >= totalDrivers {
		return 0
	}
	return totalDrivers - booked
}

func newDateCapacity(date string, totalDrivers, booked int) models.DateCapacity {
	remaining := RemainingCapacity(totalDrivers, booked)
	return models.DateCapacity{
		Date:         date,
		TotalDrivers: totalDrivers,
		Booked:       booked,
		Remaining:    remaining,
		FullyBooked:  remaining == 0,
	}
}

func (s *DefaultAvailabilityService) Capacity(ctx context.Context, packageID, date, excludeBookingID string) (*models.DateCapacity, error) {
	total, err := s.Packages.CountDrivers(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("capacity: %w", err)
	}
	booked, err := s.Bookings.Count(ctx, models.BookingFilter{
		TourPackageID: packageID,
		TravelDate:    date,
		ExcludeID:     excludeBookingID,
	})
	if err != nil {
		return nil, fmt.Errorf("capacity: %w", err)
	}
	dc := newDateCapacity(date, total, booked)
	return &dc, nil
}

func (s *DefaultAvailabilityService) PackageAvailability(ctx context.Context, packageID string) (*models.PackageAvailability, error) {
	total, err := s.Packages.CountDrivers(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("package availability: %w", err)
	}
	bookings, err := s.Bookings.List(ctx, models.BookingFilter{TourPackageID: packageID})
	if err != nil {
		return nil, fmt.Errorf("package availability: %w", err)
	}

	perDate := map[string]int{}
	for _, b := range bookings {
		perDate[b.TravelDate]++
	}
	dates := make([]string, 0, len(perDate))
	for d := range perDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := &models.PackageAvailability{
		PackageID:    packageID,
		TotalDrivers: total,
		Dates:        make([]models.DateCapacity, 0, len(dates)),
		BookedDates:  dates,
		BlockedDates: []string{},
	}
	for _, d := range dates {
		dc := newDateCapacity(d, total, perDate[d])
		out.Dates = append(out.Dates, dc)
		if dc.FullyBooked {
			out.BlockedDates = append(out.BlockedDates, d)
		}
	}
	return out, nil
}

func (s *DefaultAvailabilityService) DriverAvailable(ctx context.Context, driverID, date, excludeBookingID string) (bool, error) {
	if driverID == "" {
		return true, nil
	}
	n, err := s.Bookings.Count(ctx, models.BookingFilter{
		DriverID:   driverID,
		TravelDate: date,
		ExcludeID:  excludeBookingID,
	})
	if err != nil {
		return false, fmt.Errorf("driver availability: %w", err)
	}
	return n == 0, nil
}

func (s *DefaultAvailabilityService) AvailableDrivers(ctx context.Context, packageID, date string) ([]models.Driver, error) {
	ids, err := s.Packages.ListDriverIDs(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("available drivers: %w", err)
	}
	drivers, err := s.Drivers.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("available drivers: %w", err)
	}
	if date == "" {
		return drivers, nil
	}

	free := make([]models.Driver, 0, len(drivers))
	for _, d := range drivers {
		ok, err := s.DriverAvailable(ctx, d.ID, date, "")
		if err != nil {
			return nil, err
		}
		if ok {
			free = append(free, d)
		}
	}
	return free, nil
}

func (s *DefaultAvailabilityService) BlockedPackageIDs(ctx context.Context, companyID, date string) ([]string, error) {
	pkgs, _, err := s.Packages.List(ctx, models.PackageQuery{CompanyID: companyID})
	if err != nil {
		return nil, fmt.Errorf("blocked packages: %w", err)
	}
	blocked := []string{}
	for _, p := range pkgs {
		dc, err := s.Capacity(ctx, p.ID, date, "")
		if err != nil {
			return nil, err
		}
		if dc.FullyBooked {
			blocked = append(blocked, p.ID)
		}
	}
	return blocked, nil
}
