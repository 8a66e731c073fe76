package booking

import (
	"context"
	"io"

	"tourdesk/models"
	"tourdesk/services/customer"
)

// BookingRequest is the manual booking form.
type BookingRequest struct {
	customer.CustomerInput
	TourPackageID  string  `json:"tour_package_id" form:"tour_package_id"`
	DriverID       string  `json:"driver_id" form:"driver_id"`
	Adults         int     `json:"adults" form:"adults"`
	Kids           int     `json:"kids" form:"kids"`
	TravelDate     string  `json:"travel_date" form:"travel_date"`
	TravelTime     string  `json:"travel_time" form:"travel_time"`
	PickupLocation string  `json:"pickup_location" form:"pickup_location"`
	TotalAmount    float64 `json:"total_amount" form:"total_amount"`
	AdvanceAmount  float64 `json:"advance_amount" form:"advance_amount"`
}

// GuestRow is one booking shown on the package availability calendar.
type GuestRow struct {
	BookingID      string `json:"booking_id"`
	GuestName      string `json:"guest_name"`
	PickupLocation string `json:"pickup_location"`
	TravelDate     string `json:"travel_date"`
	TravelTime     string `json:"travel_time"`
}

// BookedDates feeds the availability calendar of one package.
type BookedDates struct {
	models.PackageAvailability
	Bookings []GuestRow `json:"bookings"`
}

// BookingService is the booking ledger. Every write recomputes the derived
// amounts and re-checks driver and capacity availability.
type BookingService interface {
	Create(ctx context.Context, companyID string, req BookingRequest) (*models.ManualBooking, error)
	Update(ctx context.Context, companyID, id string, req BookingRequest) (*models.ManualBooking, error)
	Get(ctx context.Context, companyID, id string) (*models.ManualBooking, error)
	List(ctx context.Context, companyID string) ([]models.ManualBooking, error)
	// Delete removes the booking permanently.
	Delete(ctx context.Context, companyID, id string) error
	// Cancel soft-deletes the booking, releasing its driver and capacity.
	Cancel(ctx context.Context, companyID, id string) error
	BookedDates(ctx context.Context, companyID, packageID string) (*BookedDates, error)
	WriteVoucher(ctx context.Context, companyID, id string, w io.Writer) error
}
