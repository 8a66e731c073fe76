package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourdesk/database"
	"tourdesk/models"
	"tourdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{coll: database.DB().Collection("manual_bookings")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("manual bookings: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.ManualBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// updateDocument sets every field, so clearing the driver frees them on that date.
func updateDocument(booking *models.ManualBooking) bson.M {
	return bson.M{"$set": booking}
}

func (r *mongoBookingRepo) Update(ctx context.Context, booking *models.ManualBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	booking.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": booking.ID}, updateDocument(booking))
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", booking.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Booking", booking.ID)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.ManualBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.ManualBooking
	err := r.coll.FindOne(ctx, bson.M{"id": id, "is_deleted": false}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("Booking", id)
	}
	return nil
}

func (r *mongoBookingRepo) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Booking", id)
	}
	return nil
}
