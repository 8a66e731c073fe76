package packageRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourdesk/models"
	"tourdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTourPackageRepo) Update(ctx context.Context, pkg *models.TourPackage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pkg.UpdatedAt = time.Now()
	res, err := r.packages.UpdateOne(ctx, bson.M{"id": pkg.ID}, bson.M{"$set": pkg})
	if err != nil {
		return fmt.Errorf("failed to update tour package %s: %w", pkg.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Tour package", pkg.ID)
	}
	return nil
}

func (r *mongoTourPackageRepo) GetByID(ctx context.Context, id string) (*models.TourPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pkg models.TourPackage
	err := r.packages.FindOne(ctx, bson.M{"id": id, "is_deleted": false}).Decode(&pkg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tour package %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *mongoTourPackageRepo) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.packages.UpdateOne(ctx,
		bson.M{"id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to delete tour package %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Tour package", id)
	}
	return nil
}

func (r *mongoTourPackageRepo) AddImage(ctx context.Context, img *models.TourPackageImage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	img.CreatedAt = time.Now()
	if _, err := r.images.InsertOne(ctx, img); err != nil {
		return fmt.Errorf("failed to save package image: %w", err)
	}
	return nil
}

func (r *mongoTourPackageRepo) GetImage(ctx context.Context, id string) (*models.TourPackageImage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var img models.TourPackageImage
	err := r.images.FindOne(ctx, bson.M{"id": id}).Decode(&img)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package image %s: %w", id, err)
	}
	return &img, nil
}

func (r *mongoTourPackageRepo) ListImages(ctx context.Context, packageID string) ([]models.TourPackageImage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.images.Find(ctx, bson.M{"package_id": packageID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list package images: %w", err)
	}
	defer cursor.Close(ctx)

	images := []models.TourPackageImage{}
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode package images: %w", err)
	}
	return images, nil
}

func (r *mongoTourPackageRepo) DeleteImage(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.images.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete package image %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("Image", id)
	}
	return nil
}
