package packageRepo

import (
	"context"
	"fmt"
	"time"

	"tourdesk/database"
	"tourdesk/models"
	"tourdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoTourPackageRepo struct {
	packages *mongo.Collection
	images   *mongo.Collection
	drivers  *mongo.Collection
}

// NewMongoTourPackageRepo constructs a MongoDB TourPackageRepository.
func NewMongoTourPackageRepo() TourPackageRepository {
	db := database.DB()
	repo := &mongoTourPackageRepo{
		packages: db.Collection("tour_packages"),
		images:   db.Collection("tour_package_images"),
		drivers:  db.Collection("tour_package_drivers"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("tour packages: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *mongoTourPackageRepo) Create(ctx context.Context, pkg *models.TourPackage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pkg.ID == "" {
		pkg.ID = uuid.New().String()
	}
	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if _, err := r.packages.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create tour package: %w", err)
	}
	return nil
}
