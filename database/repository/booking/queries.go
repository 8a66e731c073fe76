package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"tourdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func buildFilter(f models.BookingFilter) bson.M {
	filter := bson.M{}
	if !f.IncludeDeleted {
		filter["is_deleted"] = false
	}
	if f.CompanyID != "" {
		filter["company_id"] = f.CompanyID
	}
	if f.TourPackageID != "" {
		filter["tour_package_id"] = f.TourPackageID
	}
	if f.DriverID != "" {
		filter["driver_id"] = f.DriverID
	}
	if f.TravelDate != "" {
		filter["travel_date"] = f.TravelDate
	}
	if f.ExcludeID != "" {
		filter["id"] = bson.M{"$ne": f.ExcludeID}
	}
	return filter
}

func (r *mongoBookingRepo) List(ctx context.Context, f models.BookingFilter) ([]models.ManualBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, buildFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.ManualBooking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) Count(ctx context.Context, f models.BookingFilter) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, buildFilter(f))
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return int(n), nil
}
