package models

import "time"

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPending PaymentStatus = "pending"
)

// Label is the capitalised form shown in tables.
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentPaid:
		return "Paid"
	case PaymentPartial:
		return "Partial"
	default:
		return "Pending"
	}
}

// ManualBooking is a booking entered by company staff.
type ManualBooking struct {
	ID              string        `bson:"id" json:"id"`
	CompanyID       string        `bson:"company_id" json:"company_id"`
	CustomerID      string        `bson:"customer_id" json:"customer_id"`
	TourPackageID   string        `bson:"tour_package_id" json:"tour_package_id"`
	DriverID        string        `bson:"driver_id" json:"driver_id,omitempty"`
	GuestName       string        `bson:"guest_name" json:"guest_name"`
	CountryCode     string        `bson:"country_code" json:"country_code"`
	Phone           string        `bson:"phone" json:"phone"`
	Email           string        `bson:"email" json:"email,omitempty"`
	Adults          int           `bson:"adults" json:"adults"`
	Kids            int           `bson:"kids" json:"kids"`
	TravelDate      string        `bson:"travel_date" json:"travel_date"` // YYYY-MM-DD
	TravelTime      string        `bson:"travel_time" json:"travel_time,omitempty"`
	PickupLocation  string        `bson:"pickup_location" json:"pickup_location,omitempty"`
	TotalAmount     float64       `bson:"total_amount" json:"total_amount"`
	AdvanceAmount   float64       `bson:"advance_amount" json:"advance_amount"`
	RemainingAmount float64       `bson:"remaining_amount" json:"remaining_amount"`
	PaymentStatus   PaymentStatus `bson:"payment_status" json:"payment_status"`
	IsDeleted       bool          `bson:"is_deleted" json:"is_deleted"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

// BookingFilter narrows booking queries. Zero values are ignored.
type BookingFilter struct {
	CompanyID      string
	TourPackageID  string
	DriverID       string
	TravelDate     string
	ExcludeID      string
	IncludeDeleted bool
}
