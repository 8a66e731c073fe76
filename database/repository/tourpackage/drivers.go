package packageRepo

import (
	"context"
	"fmt"
	"time"

	"tourdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// SetDrivers deletes the existing join rows and inserts one per driver id.
// Duplicate ids collapse to a single assignment.
func (r *mongoTourPackageRepo) SetDrivers(ctx context.Context, packageID string, driverIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.drivers.DeleteMany(ctx, bson.M{"package_id": packageID}); err != nil {
		return fmt.Errorf("failed to clear drivers for package %s: %w", packageID, err)
	}

	seen := make(map[string]struct{}, len(driverIDs))
	docs := make([]interface{}, 0, len(driverIDs))
	now := time.Now()
	for _, id := range driverIDs {
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		docs = append(docs, models.TourPackageDriver{
			ID:        uuid.New().String(),
			PackageID: packageID,
			DriverID:  id,
			CreatedAt: now,
		})
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := r.drivers.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to assign drivers to package %s: %w", packageID, err)
	}
	return nil
}

func (r *mongoTourPackageRepo) ListDriverIDs(ctx context.Context, packageID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.drivers.Find(ctx, bson.M{"package_id": packageID})
	if err != nil {
		return nil, fmt.Errorf("failed to list package drivers: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.TourPackageDriver
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode package drivers: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.DriverID)
	}
	return ids, nil
}

func (r *mongoTourPackageRepo) CountDrivers(ctx context.Context, packageID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.drivers.CountDocuments(ctx, bson.M{"package_id": packageID})
	if err != nil {
		return 0, fmt.Errorf("failed to count package drivers: %w", err)
	}
	return int(n), nil
}
