package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	bookingRepo "tourdesk/database/repository/booking"
	companyRepo "tourdesk/database/repository/company"
	driverRepo "tourdesk/database/repository/driver"
	packageRepo "tourdesk/database/repository/tourpackage"
	"tourdesk/models"
	"tourdesk/services/availability"
	"tourdesk/services/customer"
	"tourdesk/services/notification"
	"tourdesk/utils"

	"go.uber.org/zap"
)

// DateLayout is the storage format of ManualBooking.TravelDate.
const DateLayout = "2006-01-02"

type DefaultBookingService struct {
	Bookings     bookingRepo.BookingRepository
	Packages     packageRepo.TourPackageRepository
	Drivers      driverRepo.DriverRepository
	Companies    companyRepo.CompanyRepository
	Customers    customer.CustomerService
	Availability availability.AvailabilityService
	Dispatcher   notification.Dispatcher
}

func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	packages packageRepo.TourPackageRepository,
	drivers driverRepo.DriverRepository,
	companies companyRepo.CompanyRepository,
	customers customer.CustomerService,
	avail availability.AvailabilityService,
	dispatcher notification.Dispatcher,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:     bookings,
		Packages:     packages,
		Drivers:      drivers,
		Companies:    companies,
		Customers:    customers,
		Availability: avail,
		Dispatcher:   dispatcher,
	}
}

func (r *BookingRequest) normalize() {
	r.TourPackageID = strings.TrimSpace(r.TourPackageID)
	r.DriverID = strings.TrimSpace(r.DriverID)
	r.TravelDate = strings.TrimSpace(r.TravelDate)
	r.TravelTime = strings.TrimSpace(r.TravelTime)
	r.PickupLocation = strings.TrimSpace(r.PickupLocation)
}

func (r BookingRequest) validate() error {
	if r.TourPackageID == "" {
		return utils.NewValidationError("tour_package_id", "tour package is required")
	}
	if _, err := time.Parse(DateLayout, r.TravelDate); err != nil {
		return utils.NewValidationError("travel_date", "travel date must be YYYY-MM-DD")
	}
	if r.Adults < 0 || r.Kids < 0 {
		return utils.NewValidationError("adults", "guest counts cannot be negative")
	}
	return nil
}

// loadPackage returns the package if it belongs to companyID.
func (s *DefaultBookingService) loadPackage(ctx context.Context, companyID, id string) (*models.TourPackage, error) {
	pkg, err := s.Packages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load tour package: %w", err)
	}
	if pkg == nil || pkg.CompanyID != companyID {
		return nil, utils.NewNotFoundError("Tour package", id)
	}
	return pkg, nil
}

// checkAvailability rejects a driver already booked on the date (any package)
// and a date with no remaining capacity. excludeID is the booking being edited.
func (s *DefaultBookingService) checkAvailability(ctx context.Context, companyID string, req BookingRequest, excludeID string) error {
	if req.DriverID != "" {
		driver, err := s.Drivers.GetByID(ctx, req.DriverID)
		if err != nil {
			return fmt.Errorf("failed to load driver: %w", err)
		}
		if driver == nil || driver.CompanyID != companyID {
			return utils.NewNotFoundError("Driver", req.DriverID)
		}
		free, err := s.Availability.DriverAvailable(ctx, req.DriverID, req.TravelDate, excludeID)
		if err != nil {
			return err
		}
		if !free {
			return utils.NewConflictError(fmt.Sprintf("Driver %s is already booked on %s.", driver.Name, req.TravelDate))
		}
	}

	capacity, err := s.Availability.Capacity(ctx, req.TourPackageID, req.TravelDate, excludeID)
	if err != nil {
		return err
	}
	if capacity.FullyBooked {
		return utils.NewConflictError("This package is fully booked for the selected date.")
	}
	return nil
}

func (s *DefaultBookingService) fill(b *models.ManualBooking, c *models.Customer, req BookingRequest) error {
	if err := applyAmounts(b, req.TotalAmount, req.AdvanceAmount); err != nil {
		return err
	}
	b.CustomerID = c.ID
	b.TourPackageID = req.TourPackageID
	b.DriverID = req.DriverID
	b.GuestName = c.GuestName
	b.CountryCode = c.CountryCode
	b.Phone = c.Phone
	b.Email = c.Email
	b.Adults = req.Adults
	b.Kids = req.Kids
	b.TravelDate = req.TravelDate
	b.TravelTime = req.TravelTime
	b.PickupLocation = req.PickupLocation
	return nil
}

func (s *DefaultBookingService) Create(ctx context.Context, companyID string, req BookingRequest) (*models.ManualBooking, error) {
	logger := utils.GetLogger()
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}
	if _, _, err := ComputePayment(req.TotalAmount, req.AdvanceAmount); err != nil {
		return nil, err
	}
	pkg, err := s.loadPackage(ctx, companyID, req.TourPackageID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAvailability(ctx, companyID, req, ""); err != nil {
		return nil, err
	}

	guest, err := s.Customers.Resolve(ctx, companyID, req.CustomerInput)
	if err != nil {
		return nil, err
	}

	b := &models.ManualBooking{CompanyID: companyID}
	if err := s.fill(b, guest, req); err != nil {
		return nil, err
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	logger.Info("Booking created",
		zap.String("bookingID", b.ID),
		zap.String("companyID", companyID),
		zap.String("packageID", pkg.ID),
		zap.String("travelDate", b.TravelDate),
		zap.String("paymentStatus", string(b.PaymentStatus)))

	s.notifyConfirmed(ctx, b, pkg)
	return b, nil
}

func (s *DefaultBookingService) Update(ctx context.Context, companyID, id string, req BookingRequest) (*models.ManualBooking, error) {
	b, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}
	if _, _, err := ComputePayment(req.TotalAmount, req.AdvanceAmount); err != nil {
		return nil, err
	}
	if _, err := s.loadPackage(ctx, companyID, req.TourPackageID); err != nil {
		return nil, err
	}
	if err := s.checkAvailability(ctx, companyID, req, b.ID); err != nil {
		return nil, err
	}

	guest, err := s.Customers.Resolve(ctx, companyID, req.CustomerInput)
	if err != nil {
		return nil, err
	}
	if err := s.fill(b, guest, req); err != nil {
		return nil, err
	}
	if err := s.Bookings.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return b, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, companyID, id string) (*models.ManualBooking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if b == nil || b.CompanyID != companyID {
		return nil, utils.NewNotFoundError("Booking", id)
	}
	return b, nil
}

func (s *DefaultBookingService) List(ctx context.Context, companyID string) ([]models.ManualBooking, error) {
	return s.Bookings.List(ctx, models.BookingFilter{CompanyID: companyID})
}

func (s *DefaultBookingService) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.Get(ctx, companyID, id); err != nil {
		return err
	}
	return s.Bookings.Delete(ctx, id)
}

func (s *DefaultBookingService) Cancel(ctx context.Context, companyID, id string) error {
	if _, err := s.Get(ctx, companyID, id); err != nil {
		return err
	}
	return s.Bookings.SoftDelete(ctx, id)
}

func (s *DefaultBookingService) BookedDates(ctx context.Context, companyID, packageID string) (*BookedDates, error) {
	if _, err := s.loadPackage(ctx, companyID, packageID); err != nil {
		return nil, err
	}
	avail, err := s.Availability.PackageAvailability(ctx, packageID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.List(ctx, models.BookingFilter{CompanyID: companyID, TourPackageID: packageID})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	rows := make([]GuestRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, GuestRow{
			BookingID:      b.ID,
			GuestName:      b.GuestName,
			PickupLocation: b.PickupLocation,
			TravelDate:     b.TravelDate,
			TravelTime:     b.TravelTime,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TravelDate < rows[j].TravelDate })
	return &BookedDates{PackageAvailability: *avail, Bookings: rows}, nil
}

// currencyFor picks the package currency, then the company's, then AED.
func (s *DefaultBookingService) currencyFor(ctx context.Context, pkg *models.TourPackage) string {
	if pkg.Currency != "" {
		return pkg.Currency
	}
	if s.Companies != nil {
		if c, err := s.Companies.GetByID(ctx, pkg.CompanyID); err == nil && c != nil && c.Currency != "" {
			return c.Currency
		}
	}
	return "AED"
}

// ConfirmationPayload builds the template data sent to the guest.
func ConfirmationPayload(b *models.ManualBooking, pkg *models.TourPackage, currency string) models.BookingConfirmedPayload {
	date := b.TravelDate
	if t, err := time.Parse(DateLayout, b.TravelDate); err == nil {
		date = t.Format("02-01-2006")
	}
	return models.BookingConfirmedPayload{
		BookingID:    b.ID,
		Phone:        utils.FormatPhone(b.CountryCode, b.Phone),
		Email:        b.Email,
		GuestName:    b.GuestName,
		PackageTitle: pkg.Title,
		TravelDate:   date,
		TravelTime:   b.TravelTime,
		Pickup:       b.PickupLocation,
		Adults:       b.Adults,
		Kids:         b.Kids,
		Total:        utils.FormatAmount(currency, b.TotalAmount),
		Advance:      utils.FormatAmount(currency, b.AdvanceAmount),
		Remaining:    utils.FormatAmount(currency, b.RemainingAmount),
	}
}

// notifyConfirmed enqueues the confirmation after the booking is stored.
// Failures are logged; the booking stands.
func (s *DefaultBookingService) notifyConfirmed(ctx context.Context, b *models.ManualBooking, pkg *models.TourPackage) {
	if s.Dispatcher == nil {
		return
	}
	payload := ConfirmationPayload(b, pkg, s.currencyFor(ctx, pkg))
	if err := s.Dispatcher.BookingConfirmed(ctx, payload); err != nil {
		utils.GetLogger().Warn("Failed to enqueue booking confirmation",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}
