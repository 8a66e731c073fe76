package bookingRepo

import (
	"context"

	"tourdesk/models"
)

// BookingRepository stores manual bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.ManualBooking) error
	Update(ctx context.Context, booking *models.ManualBooking) error
	// GetByID returns (nil, nil) for missing or soft-deleted bookings.
	GetByID(ctx context.Context, id string) (*models.ManualBooking, error)
	// List returns matches newest first.
	List(ctx context.Context, filter models.BookingFilter) ([]models.ManualBooking, error)
	Count(ctx context.Context, filter models.BookingFilter) (int, error)
	// Delete removes the row permanently.
	Delete(ctx context.Context, id string) error
	// SoftDelete flags the row; it no longer counts toward capacity or driver conflicts.
	SoftDelete(ctx context.Context, id string) error
}
